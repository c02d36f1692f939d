package picker

import (
	"errors"
	"fmt"

	"jalali-picker/internal/numeral"
)

type Labels struct {
	Day   string `json:"day,omitempty"`
	Month string `json:"month,omitempty"`
	Year  string `json:"year,omitempty"`
}

func (l Labels) For(f Field) string {
	switch f {
	case FieldDay:
		return l.Day
	case FieldMonth:
		return l.Month
	case FieldYear:
		return l.Year
	}
	return ""
}

type Config struct {
	// Order is the display order of the fields. It does not affect validity.
	Order       []Field        `json:"order,omitempty"`
	Labels      Labels         `json:"labels"`
	MainLabel   string         `json:"mainLabel,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Years       []int          `json:"years,omitempty"`
	Script      numeral.Script `json:"script,omitempty"`
}

const DefaultPlaceholder = "انتخاب"

var (
	DefaultOrder  = []Field{FieldYear, FieldMonth, FieldDay}
	DefaultLabels = Labels{Day: "روز", Month: "ماه", Year: "سال"}
)

// YearRange returns the ascending years from..to inclusive.
func YearRange(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, y)
	}
	return out
}

func DefaultConfig() Config {
	return Config{
		Order:       append([]Field(nil), DefaultOrder...),
		Labels:      DefaultLabels,
		Placeholder: DefaultPlaceholder,
		Years:       YearRange(1400, 1408),
		Script:      numeral.Persian,
	}
}

// WithDefaults fills unset fields from DefaultConfig. Set fields are kept as is,
// including invalid ones; Validate reports those.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if len(c.Order) == 0 {
		c.Order = def.Order
	}
	if c.Labels.Day == "" {
		c.Labels.Day = def.Labels.Day
	}
	if c.Labels.Month == "" {
		c.Labels.Month = def.Labels.Month
	}
	if c.Labels.Year == "" {
		c.Labels.Year = def.Labels.Year
	}
	if c.Placeholder == "" {
		c.Placeholder = def.Placeholder
	}
	if len(c.Years) == 0 {
		c.Years = def.Years
	}
	if c.Script == "" {
		c.Script = def.Script
	}
	return c
}

type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "invalid picker config: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

func (c Config) Validate() error {
	var problems []error

	seen := map[Field]bool{}
	for _, f := range c.Order {
		if !f.Valid() {
			problems = append(problems, fmt.Errorf("order: unknown field %d", int(f)))
			continue
		}
		if seen[f] {
			problems = append(problems, fmt.Errorf("order: duplicate field %s", f))
		}
		seen[f] = true
	}
	for _, f := range DefaultOrder {
		if !seen[f] {
			problems = append(problems, fmt.Errorf("order: missing field %s", f))
		}
	}

	if len(c.Years) == 0 {
		problems = append(problems, errors.New("years: empty"))
	}
	for i := 1; i < len(c.Years); i++ {
		if c.Years[i] <= c.Years[i-1] {
			problems = append(problems, fmt.Errorf("years: not ascending at %d (%d after %d)", i, c.Years[i], c.Years[i-1]))
			break
		}
	}
	for _, y := range c.Years {
		if y < 0 {
			problems = append(problems, fmt.Errorf("years: negative year %d", y))
			break
		}
	}

	if _, err := numeral.ParseScript(string(c.Script)); err != nil {
		problems = append(problems, err)
	}

	if len(problems) == 0 {
		return nil
	}
	return &ConfigError{Err: errors.Join(problems...)}
}
