package picker

import (
	"jalali-picker/internal/calendar"
	"jalali-picker/internal/numeral"
)

// Option is one selectable entry. For months Value is the month index
// (0..11); for days and years it is the number itself.
type Option struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

type FieldOptions struct {
	Field       Field    `json:"field"`
	Label       string   `json:"label"`
	Enabled     bool     `json:"enabled"`
	Placeholder string   `json:"placeholder"`
	Options     []Option `json:"options"`
	// Selected is the index in Options of the current value, or -1.
	Selected int `json:"selected"`
}

// View is everything a presentation layer needs to render the picker.
type View struct {
	Label  string         `json:"label,omitempty"`
	Date   Date           `json:"date"`
	Fields []FieldOptions `json:"fields"`
}

// Field returns the options for f.
func (v View) Field(f Field) FieldOptions {
	for _, fo := range v.Fields {
		if fo.Field == f {
			return fo
		}
	}
	return FieldOptions{Field: f, Selected: -1}
}

// Derive normalizes cur and computes the per-field choice lists in display
// order. The returned View.Date is the normalized date; callers should adopt
// it as their current selection.
func (c *Controller) Derive(cur Date) View {
	d := c.Normalize(cur)
	v := View{
		Label:  c.cfg.MainLabel,
		Date:   d,
		Fields: make([]FieldOptions, 0, len(c.cfg.Order)),
	}
	for _, f := range c.cfg.Order {
		v.Fields = append(v.Fields, c.fieldOptions(d, f))
	}
	return v
}

func (c *Controller) fieldOptions(d Date, f Field) FieldOptions {
	fo := FieldOptions{
		Field:       f,
		Label:       c.cfg.Labels.For(f),
		Placeholder: c.cfg.Placeholder,
		Selected:    -1,
	}
	switch f {
	case FieldYear:
		fo.Enabled = true
		fo.Options = c.yearOptions()
		if d.Year != nil {
			fo.Selected = indexOfValue(fo.Options, d.Year.Value)
		}
	case FieldMonth:
		fo.Enabled = d.Year != nil
		fo.Options = monthOptions()
		if d.Month != nil {
			fo.Selected = int(*d.Month)
		}
	case FieldDay:
		fo.Enabled = d.Year != nil && d.Month != nil
		fo.Options = []Option{}
		if fo.Enabled {
			fo.Options = c.dayOptions(*d.Month, d.Year.Value)
			if d.Day != nil {
				fo.Selected = indexOfValue(fo.Options, d.Day.Value)
			}
		}
	}
	return fo
}

func (c *Controller) yearOptions() []Option {
	out := make([]Option, 0, len(c.cfg.Years))
	for _, y := range c.cfg.Years {
		out = append(out, Option{Value: y, Text: numeral.New(y, c.cfg.Script).Text})
	}
	return out
}

func monthOptions() []Option {
	months := calendar.Months()
	out := make([]Option, 0, len(months))
	for _, m := range months {
		out = append(out, Option{Value: int(m), Text: m.String()})
	}
	return out
}

func (c *Controller) dayOptions(m calendar.Month, year int) []Option {
	n := calendar.MustDaysInMonth(m, year)
	out := make([]Option, 0, n)
	for d := 1; d <= n; d++ {
		out = append(out, Option{Value: d, Text: numeral.New(d, c.cfg.Script).Text})
	}
	return out
}

func indexOfValue(opts []Option, v int) int {
	for i, o := range opts {
		if o.Value == v {
			return i
		}
	}
	return -1
}

// Select applies the option at index i of field f, where -1 is the
// placeholder (clear). Out-of-range indexes clear the field too.
func (c *Controller) Select(cur Date, f Field, i int) Date {
	fo := c.fieldOptions(c.Normalize(cur), f)
	if i < 0 || i >= len(fo.Options) {
		return c.apply(cur, f, nil)
	}
	return c.apply(cur, f, &fo.Options[i])
}

func (c *Controller) apply(cur Date, f Field, o *Option) Date {
	switch f {
	case FieldYear:
		if o == nil {
			return c.ApplyYear(cur, nil)
		}
		return c.ApplyYear(cur, &numeral.Numeral{Value: o.Value, Text: o.Text})
	case FieldMonth:
		if o == nil {
			return c.ApplyMonth(cur, nil)
		}
		return c.ApplyMonth(cur, monthPtr(calendar.Month(o.Value)))
	case FieldDay:
		if o == nil {
			return c.ApplyDay(cur, nil)
		}
		return c.ApplyDay(cur, &numeral.Numeral{Value: o.Value, Text: o.Text})
	}
	return cur
}
