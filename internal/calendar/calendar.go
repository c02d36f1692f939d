package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidMonthIndex is matched (errors.Is) by every *InvalidMonthIndexError.
var ErrInvalidMonthIndex = errors.New("invalid month index")

type InvalidMonthIndexError struct {
	Index int
}

func (e *InvalidMonthIndexError) Error() string {
	return fmt.Sprintf("invalid month index %d (expected 0..11)", e.Index)
}

func (e *InvalidMonthIndexError) Is(target error) bool {
	return target == ErrInvalidMonthIndex
}

// cycleLength is the intercalation cycle; a year is leap when its position in
// the cycle is one of leapOffsets.
const cycleLength = 33

var leapOffsets = [cycleLength]bool{
	1: true, 5: true, 9: true, 13: true, 17: true, 22: true, 26: true, 30: true,
}

// IsLeapYear reports whether Esfand has 30 days in the given Jalali year.
func IsLeapYear(year int) bool {
	pos := year % cycleLength
	if pos < 0 {
		pos += cycleLength
	}
	return leapOffsets[pos]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in month m of the given year.
// The first six months have 31 days, the next five 30, and Esfand 29 or 30.
func DaysInMonth(m Month, year int) (int, error) {
	switch {
	case !m.Valid():
		return 0, &InvalidMonthIndexError{Index: int(m)}
	case m <= Shahrivar:
		return 31, nil
	case m <= Bahman:
		return 30, nil
	case IsLeapYear(year):
		return 30, nil
	default:
		return 29, nil
	}
}

// MustDaysInMonth is like DaysInMonth but panics on an invalid month. An
// out-of-range month can only come from a broken caller, never from user input.
func MustDaysInMonth(m Month, year int) int {
	n, err := DaysInMonth(m, year)
	if err != nil {
		panic(err)
	}
	return n
}

// ClampDay limits d to [1, DaysInMonth(m, year)].
// It panics on an invalid month, like MustDaysInMonth.
func ClampDay(m Month, year, d int) int {
	max := MustDaysInMonth(m, year)
	switch {
	case d < 1:
		return 1
	case d > max:
		return max
	}
	return d
}
