package tui

import (
	"strings"

	"jalali-picker/internal/docs"
	"jalali-picker/internal/picker"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	defaultListRows = 12
	minListRows     = 3
	// label line, date line, column borders, status and help lines.
	chromeRows = 8
)

func (m pickerModel) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	var b strings.Builder
	if m.view.Label != "" {
		b.WriteString(styleLabel().Render(m.view.Label))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render("date: "))
	b.WriteString(m.view.Date.String())
	b.WriteString("\n")

	rows := m.listRows()
	cols := make([]string, 0, len(m.view.Fields))
	for _, fo := range m.view.Fields {
		cols = append(cols, m.renderColumn(fo, rows))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(styleStatus(m.statusErr).Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m pickerModel) listRows() int {
	if m.height <= 0 {
		return defaultListRows
	}
	n := m.height - chromeRows
	if n < minListRows {
		n = minListRows
	}
	return n
}

// renderColumn draws one field as a bordered list. Row 0 is the placeholder;
// the window scrolls to keep the selected row visible.
func (m pickerModel) renderColumn(fo picker.FieldOptions, rows int) string {
	focused := fo.Field == m.focus
	width := columnWidth(fo)

	lines := make([]string, 0, rows+1)
	lines = append(lines, styleLabel().Render(padCell(fo.Label, width)))

	if !fo.Enabled {
		lines = append(lines, styleMuted().Render(padCell(fo.Placeholder, width)))
		return styleColumn(focused, false).Render(strings.Join(lines, "\n"))
	}

	cursor := fo.Selected + 1
	if fo.Selected < 0 && m.view.Date.Has(fo.Field) {
		// Set but not listed: highlight nothing rather than the placeholder.
		cursor = -1
	}
	total := len(fo.Options) + 1
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	end := start + rows
	if end > total {
		end = total
	}
	for row := start; row < end; row++ {
		text := fo.Placeholder
		if row > 0 {
			text = fo.Options[row-1].Text
		}
		chosen := row == cursor && row > 0
		lines = append(lines, styleRow(row == cursor, chosen, focused).Render(padCell(text, width)))
	}
	return styleColumn(focused, true).Render(strings.Join(lines, "\n"))
}

func columnWidth(fo picker.FieldOptions) int {
	w := xansi.StringWidth(fo.Label)
	if pw := xansi.StringWidth(fo.Placeholder); pw > w {
		w = pw
	}
	for _, o := range fo.Options {
		if ow := xansi.StringWidth(o.Text); ow > w {
			w = ow
		}
	}
	return w
}

// padCell fits s into exactly w terminal cells.
func padCell(s string, w int) string {
	sw := xansi.StringWidth(s)
	if sw > w {
		return xansi.Cut(s, 0, w)
	}
	return s + strings.Repeat(" ", w-sw)
}

func (m pickerModel) viewHelp() string {
	md, ok := docs.Get("keys")
	if !ok {
		md = "# Keys\n"
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	return renderMarkdown(md, width-2) + "\n\n" + styleMuted().Render("? or q to close")
}
