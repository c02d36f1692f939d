package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"jalali-picker/internal/numeral"
)

// Month is a Jalali month identified by its position in the year (0..11).
type Month int

const (
	Farvardin Month = iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var persianNames = [...]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

var latinNames = [...]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

func (m Month) Valid() bool { return m >= Farvardin && m <= Esfand }

// Number is the 1-based month number.
func (m Month) Number() int { return int(m) + 1 }

// String returns the Persian month name.
func (m Month) String() string {
	if !m.Valid() {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return persianNames[m]
}

func (m Month) Latin() string {
	if !m.Valid() {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return latinNames[m]
}

// Months returns the twelve months in calendar order.
func Months() []Month {
	out := make([]Month, 0, len(persianNames))
	for m := Farvardin; m <= Esfand; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMonth accepts a Persian month name, a Latin transliteration
// (case-insensitive) or a 1-based month number in any supported digit script.
func ParseMonth(s string) (Month, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i, name := range persianNames {
		if s == name {
			return Month(i), true
		}
	}
	for i, name := range latinNames {
		if strings.EqualFold(s, name) {
			return Month(i), true
		}
	}
	n, err := numeral.Parse(s)
	if err != nil || n.Value < 1 || n.Value > len(persianNames) {
		return 0, false
	}
	return Month(n.Value - 1), true
}

func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &InvalidMonthIndexError{Index: int(m)}
	}
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	v, ok := ParseMonth(string(b))
	if !ok {
		return fmt.Errorf("unknown month %q", string(b))
	}
	*m = v
	return nil
}
