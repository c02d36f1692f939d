// Package picker keeps a three-field Jalali date selection consistent as any
// one field changes, and derives the choice lists a UI should offer for it.
//
// Every operation is a pure transform of a caller-owned Date. The controller
// holds only configuration and may be shared between goroutines.
package picker

import (
	"fmt"
	"strings"

	"jalali-picker/internal/calendar"
	"jalali-picker/internal/numeral"
)

type Controller struct {
	cfg Config
}

// New validates cfg (after filling defaults) and returns a controller for it.
func New(cfg Config) (*Controller, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	script, _ := numeral.ParseScript(string(cfg.Script))
	cfg.Script = script
	cfg.Order = append([]Field(nil), cfg.Order...)
	cfg.Years = append([]int(nil), cfg.Years...)
	return &Controller{cfg: cfg}, nil
}

// Config returns a copy of the effective configuration.
func (c *Controller) Config() Config {
	cfg := c.cfg
	cfg.Order = append([]Field(nil), c.cfg.Order...)
	cfg.Years = append([]int(nil), c.cfg.Years...)
	return cfg
}

func (c *Controller) Script() numeral.Script { return c.cfg.Script }

func (c *Controller) firstDay() *numeral.Numeral {
	return numPtr(numeral.Padded(1, 2, c.cfg.Script))
}

// ApplyYear sets the year. Clearing it clears month and day; changing it
// resets the day to 01 when the day no longer fits the month.
func (c *Controller) ApplyYear(cur Date, y *numeral.Numeral) Date {
	next := cur
	next.Year = y
	if y == nil {
		next.Month = nil
		next.Day = nil
	} else {
		c.resetDayIfOutOfRange(&next)
	}
	return c.Normalize(next)
}

// ApplyMonth sets the month. Clearing it clears the day; changing it resets
// the day to 01 when the day no longer fits.
func (c *Controller) ApplyMonth(cur Date, m *calendar.Month) Date {
	next := cur
	next.Month = m
	if m == nil {
		next.Day = nil
	} else {
		c.resetDayIfOutOfRange(&next)
	}
	return c.Normalize(next)
}

// ApplyDay sets the day. Clearing the day leaves year and month alone.
func (c *Controller) ApplyDay(cur Date, d *numeral.Numeral) Date {
	next := cur
	next.Day = d
	return c.Normalize(next)
}

// resetDayIfOutOfRange replaces an out-of-range day with 01, measured against
// the month and year already written into d.
func (c *Controller) resetDayIfOutOfRange(d *Date) {
	if d.Day == nil || d.Year == nil || d.Month == nil {
		return
	}
	if d.Day.Value > calendar.MustDaysInMonth(*d.Month, d.Year.Value) {
		d.Day = c.firstDay()
	}
}

// Normalize repairs a date so it satisfies the selection invariants: a month
// needs a year, a day needs a month and a year, and the day lies within the
// month. An oversized day drops to the month's last day.
//
// It panics if the month is outside Farvardin..Esfand.
func (c *Controller) Normalize(d Date) Date {
	if d.Year == nil {
		d.Month = nil
		d.Day = nil
		return d
	}
	if d.Month == nil {
		d.Day = nil
		return d
	}
	if d.Day == nil {
		// Still fails fast on a bad month.
		calendar.MustDaysInMonth(*d.Month, d.Year.Value)
		return d
	}
	switch day := calendar.ClampDay(*d.Month, d.Year.Value, d.Day.Value); {
	case day == d.Day.Value:
	case d.Day.Value < 1:
		d.Day = c.firstDay()
	default:
		d.Day = numPtr(numeral.New(day, c.cfg.Script))
	}
	return d
}

// ValueError reports a raw UI value that does not name any value of the field
// (for example "abc" as a day). Out-of-range numbers are not ValueErrors; they
// are clamped.
type ValueError struct {
	Field Field
	Raw   string
	Err   error
}

func (e *ValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Raw, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Raw)
}

func (e *ValueError) Unwrap() error { return e.Err }

// IsEmpty reports whether raw is the empty selection: blank or the
// placeholder text.
func (c *Controller) IsEmpty(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "" || raw == c.cfg.Placeholder
}

// ApplyChange applies a raw value reported by the presentation layer to field.
// The empty string and the placeholder text both clear the field. Digits may be
// Persian, Arabic-Indic or ASCII; months may also be given by name.
func (c *Controller) ApplyChange(cur Date, field Field, raw string) (Date, error) {
	empty := c.IsEmpty(raw)
	switch field {
	case FieldYear:
		if empty {
			return c.ApplyYear(cur, nil), nil
		}
		n, err := numeral.Parse(raw)
		if err != nil {
			return cur, &ValueError{Field: field, Raw: raw, Err: err}
		}
		return c.ApplyYear(cur, &n), nil
	case FieldMonth:
		if empty {
			return c.ApplyMonth(cur, nil), nil
		}
		m, ok := calendar.ParseMonth(raw)
		if !ok {
			return cur, &ValueError{Field: field, Raw: raw}
		}
		return c.ApplyMonth(cur, &m), nil
	case FieldDay:
		if empty {
			return c.ApplyDay(cur, nil), nil
		}
		n, err := numeral.Parse(raw)
		if err != nil {
			return cur, &ValueError{Field: field, Raw: raw, Err: err}
		}
		return c.ApplyDay(cur, &n), nil
	default:
		return cur, &ValueError{Field: field, Raw: raw, Err: fmt.Errorf("unknown field")}
	}
}

// DateOf builds a complete date in the configured script. The day is clamped
// into the month.
func (c *Controller) DateOf(year int, m calendar.Month, day int) Date {
	return c.Normalize(Date{
		Year:  numPtr(numeral.New(year, c.cfg.Script)),
		Month: monthPtr(m),
		Day:   numPtr(numeral.Padded(day, 2, c.cfg.Script)),
	})
}
