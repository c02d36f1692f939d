package tui

import (
	"context"
	"time"

	"jalali-picker/internal/calendar"
	"jalali-picker/internal/logging"
	"jalali-picker/internal/picker"
	"jalali-picker/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	ptime "github.com/yaa110/go-persian-calendar"
)

type Options struct {
	// Store receives committed dates. Nil disables saving.
	Store *store.Store
	// Initial is the starting selection; it is normalized before use.
	Initial picker.Date
	// Now defaults to time.Now.
	Now func() time.Time
}

type pickerModel struct {
	ctx   context.Context
	ctrl  *picker.Controller
	store *store.Store
	now   func() time.Time

	keys keyMap
	help help.Model

	view  picker.View
	focus picker.Field

	showHelp  bool
	status    string
	statusErr bool
	saved     int

	width  int
	height int
}

func newPickerModel(ctx context.Context, ctrl *picker.Controller, opts Options) pickerModel {
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := pickerModel{
		ctx:   ctx,
		ctrl:  ctrl,
		store: opts.Store,
		now:   now,
		keys:  defaultKeyMap(),
		help:  help.New(),
		focus: ctrl.Config().Order[0],
	}
	m.setDate(opts.Initial)
	m.ensureFocus()
	return m
}

func (m pickerModel) Init() tea.Cmd { return nil }

// Date is the current (normalized) selection.
func (m pickerModel) Date() picker.Date { return m.view.Date }

// setDate re-derives the view; the normalized date it returns becomes the
// current selection.
func (m *pickerModel) setDate(d picker.Date) {
	m.view = m.ctrl.Derive(d)
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m pickerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Help):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Up):
		m.step(-1)
	case key.Matches(msg, m.keys.Down):
		m.step(1)
	case key.Matches(msg, m.keys.First):
		m.selectRow(0)
	case key.Matches(msg, m.keys.Last):
		m.selectRow(len(m.view.Field(m.focus).Options))
	case key.Matches(msg, m.keys.Clear):
		m.selectRow(0)
	case key.Matches(msg, m.keys.Today):
		m.selectToday()
	case key.Matches(msg, m.keys.Commit):
		m.commit()
	}
	return m, nil
}

// step moves the focused list's cursor by delta rows. Row 0 is the
// placeholder and row i+1 is option i.
func (m *pickerModel) step(delta int) {
	fo := m.view.Field(m.focus)
	if fo.Selected < 0 && m.view.Date.Has(m.focus) {
		// The value is set but not listed (a saved year outside the
		// configured range); move to the nearest listed value instead.
		if row := nearestRow(fo, fieldValue(m.view.Date, m.focus), delta); row > 0 {
			m.selectRow(row)
		}
		return
	}
	m.selectRow(fo.Selected + 1 + delta)
}

// nearestRow returns the row of the first option past v in the direction of
// delta, or 0 when there is none.
func nearestRow(fo picker.FieldOptions, v, delta int) int {
	if delta > 0 {
		for i, o := range fo.Options {
			if o.Value > v {
				return i + 1
			}
		}
		return 0
	}
	for i := len(fo.Options) - 1; i >= 0; i-- {
		if fo.Options[i].Value < v {
			return i + 1
		}
	}
	return 0
}

func fieldValue(d picker.Date, f picker.Field) int {
	switch f {
	case picker.FieldYear:
		return d.Year.Value
	case picker.FieldMonth:
		return int(*d.Month)
	case picker.FieldDay:
		return d.Day.Value
	}
	return 0
}

func (m *pickerModel) selectRow(row int) {
	fo := m.view.Field(m.focus)
	if !fo.Enabled {
		return
	}
	if row < 0 {
		row = 0
	}
	if row > len(fo.Options) {
		row = len(fo.Options)
	}
	m.status = ""
	m.setDate(m.ctrl.Select(m.view.Date, m.focus, row-1))
}

func (m *pickerModel) moveFocus(delta int) {
	order := m.ctrl.Config().Order
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
		}
	}
	for step := 1; step < len(order); step++ {
		i := ((cur+delta*step)%len(order) + len(order)) % len(order)
		if m.view.Field(order[i]).Enabled {
			m.focus = order[i]
			return
		}
	}
}

// ensureFocus moves focus to the first enabled field when the focused one
// has been disabled. The year field is always enabled.
func (m *pickerModel) ensureFocus() {
	if m.view.Field(m.focus).Enabled {
		return
	}
	for _, f := range m.ctrl.Config().Order {
		if m.view.Field(f).Enabled {
			m.focus = f
			return
		}
	}
}

func (m *pickerModel) selectToday() {
	pt := ptime.New(m.now())
	m.setDate(m.ctrl.DateOf(pt.Year(), calendar.Month(int(pt.Month())-1), pt.Day()))
	m.status = "today: " + m.view.Date.String()
	m.statusErr = false
}

func (m *pickerModel) commit() {
	d := m.view.Date
	if !d.Complete() {
		m.status = "pick a year, month and day first"
		m.statusErr = true
		return
	}
	if m.store == nil {
		m.status = "selected " + d.String()
		m.statusErr = false
		return
	}
	if _, err := m.store.Record(m.ctx, d); err != nil {
		logging.Logger(m.ctx).Error("save selection", "err", err)
		m.status = "save failed: " + err.Error()
		m.statusErr = true
		return
	}
	m.saved++
	m.status = "saved " + d.String()
	m.statusErr = false
}
