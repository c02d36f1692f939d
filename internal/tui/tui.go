package tui

import (
	"context"

	"jalali-picker/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive picker and returns the selection that was on
// screen when the user quit.
func Run(ctx context.Context, ctrl *picker.Controller, opts Options) (picker.Date, error) {
	applyThemePreference()
	applyColorProfilePreference()

	m := newPickerModel(ctx, ctrl, opts)
	out, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return m.Date(), err
	}
	if fm, ok := out.(pickerModel); ok {
		return fm.Date(), nil
	}
	return m.Date(), nil
}
