package picker

import (
	"strings"

	"jalali-picker/internal/calendar"
	"jalali-picker/internal/numeral"
)

// Date is a possibly partial selection. A nil field is unset, which is never
// the same thing as a zero numeral.
//
// Date values are treated as immutable: the controller replaces field
// pointers and never writes through them, so copies may share pointees.
type Date struct {
	Year  *numeral.Numeral `json:"year"`
	Month *calendar.Month  `json:"month"`
	Day   *numeral.Numeral `json:"day"`
}

func (d Date) IsZero() bool {
	return d.Year == nil && d.Month == nil && d.Day == nil
}

// Complete reports whether all three fields are set.
func (d Date) Complete() bool {
	return d.Year != nil && d.Month != nil && d.Day != nil
}

func (d Date) Has(f Field) bool {
	switch f {
	case FieldYear:
		return d.Year != nil
	case FieldMonth:
		return d.Month != nil
	case FieldDay:
		return d.Day != nil
	}
	return false
}

// Equal compares dates field by field using numeral values, so "۰۱" and "1"
// are the same day.
func (d Date) Equal(o Date) bool {
	return numEqual(d.Year, o.Year) && monthEqual(d.Month, o.Month) && numEqual(d.Day, o.Day)
}

func numEqual(a, b *numeral.Numeral) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func monthEqual(a, b *calendar.Month) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Text returns the value of field f as shown to the user, or "" when unset.
func (d Date) Text(f Field) string {
	switch f {
	case FieldYear:
		if d.Year != nil {
			return d.Year.String()
		}
	case FieldMonth:
		if d.Month != nil {
			return d.Month.String()
		}
	case FieldDay:
		if d.Day != nil {
			return d.Day.String()
		}
	}
	return ""
}

// String renders the date as "year/month/day" with "-" for unset fields.
func (d Date) String() string {
	parts := make([]string, 0, 3)
	for _, f := range []Field{FieldYear, FieldMonth, FieldDay} {
		s := d.Text(f)
		if s == "" {
			s = "-"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "/")
}

func numPtr(n numeral.Numeral) *numeral.Numeral { return &n }

func monthPtr(m calendar.Month) *calendar.Month { return &m }
