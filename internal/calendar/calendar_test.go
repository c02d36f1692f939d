package calendar

import (
	"errors"
	"strconv"
	"testing"
)

func TestIsLeapYear_KnownYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want bool
	}{
		{1395, true},
		{1396, false},
		{1399, true},
		{1400, false},
		{1401, false},
		{1402, false},
		{1403, true},
		{1404, false},
		{1407, false},
		{1408, true},
		{1412, true},
		{0, false},
		{1, true},
		{-32, true}, // floored modulo: -32 ≡ 1 (mod 33)
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Fatalf("IsLeapYear(%d): got %v want %v", tt.year, got, tt.want)
		}
	}
}

func TestIsLeapYear_EightPerCycle(t *testing.T) {
	t.Parallel()

	for start := -66; start <= 3000; start += 33 {
		n := 0
		for y := start; y < start+33; y++ {
			if IsLeapYear(y) {
				n++
			}
		}
		if n != 8 {
			t.Fatalf("cycle starting %d: expected 8 leap years, got %d", start, n)
		}
	}
}

func TestIsLeapYear_Periodic(t *testing.T) {
	t.Parallel()

	for y := -200; y < 2000; y++ {
		if IsLeapYear(y) != IsLeapYear(y+33) {
			t.Fatalf("IsLeapYear not periodic at %d", y)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	for y := 1300; y <= 1500; y++ {
		for _, m := range Months() {
			got, err := DaysInMonth(m, y)
			if err != nil {
				t.Fatalf("DaysInMonth(%d, %d): %v", m, y, err)
			}
			var want int
			switch {
			case m <= Shahrivar:
				want = 31
			case m <= Bahman:
				want = 30
			case IsLeapYear(y):
				want = 30
			default:
				want = 29
			}
			if got != want {
				t.Fatalf("DaysInMonth(%s, %d): got %d want %d", m.Latin(), y, got, want)
			}
		}

		esfand := MustDaysInMonth(Esfand, y)
		if esfand != 29 && esfand != 30 {
			t.Fatalf("Esfand %d has %d days", y, esfand)
		}
		if (esfand == 30) != IsLeapYear(y) {
			t.Fatalf("Esfand %d: %d days but leap=%v", y, esfand, IsLeapYear(y))
		}
	}
}

func TestDaysInMonth_InvalidIndex(t *testing.T) {
	t.Parallel()

	for _, m := range []Month{-1, 12, 99} {
		_, err := DaysInMonth(m, 1403)
		if !errors.Is(err, ErrInvalidMonthIndex) {
			t.Fatalf("DaysInMonth(%d): expected ErrInvalidMonthIndex, got %v", m, err)
		}
		var idxErr *InvalidMonthIndexError
		if !errors.As(err, &idxErr) || idxErr.Index != int(m) {
			t.Fatalf("DaysInMonth(%d): expected InvalidMonthIndexError{%d}, got %#v", m, m, err)
		}
	}
}

func TestMustDaysInMonth_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidMonthIndex) {
			t.Fatalf("expected InvalidMonthIndex panic, got %v", r)
		}
	}()
	MustDaysInMonth(12, 1403)
}

func TestDaysInYear(t *testing.T) {
	t.Parallel()

	for _, y := range []int{1402, 1403} {
		sum := 0
		for _, m := range Months() {
			sum += MustDaysInMonth(m, y)
		}
		if sum != DaysInYear(y) {
			t.Fatalf("year %d: months sum to %d, DaysInYear=%d", y, sum, DaysInYear(y))
		}
	}
}

func TestClampDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		m    Month
		y, d int
		want int
	}{
		{Farvardin, 1403, 31, 31},
		{Mehr, 1403, 31, 30},
		{Esfand, 1402, 30, 29},
		{Esfand, 1403, 30, 30},
		{Tir, 1403, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampDay(tt.m, tt.y, tt.d); got != tt.want {
			t.Fatalf("ClampDay(%s, %d, %d): got %d want %d", tt.m.Latin(), tt.y, tt.d, got, tt.want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	for _, m := range Months() {
		for _, in := range []string{m.String(), m.Latin(), strconv.Itoa(m.Number())} {
			got, ok := ParseMonth(in)
			if !ok || got != m {
				t.Fatalf("ParseMonth(%q): got %d, %v want %d", in, got, ok, m)
			}
		}
	}

	for in, want := range map[string]Month{"mehr": Mehr, " ESFAND ": Esfand, "۷": Mehr, "۱۲": Esfand} {
		got, ok := ParseMonth(in)
		if !ok || got != want {
			t.Fatalf("ParseMonth(%q): got %d, %v want %d", in, got, ok, want)
		}
	}

	for _, in := range []string{"", "0", "13", "Brumaire", "-1"} {
		if _, ok := ParseMonth(in); ok {
			t.Fatalf("ParseMonth(%q): expected failure", in)
		}
	}
}

func TestMonthText(t *testing.T) {
	t.Parallel()

	b, err := Esfand.MarshalText()
	if err != nil || string(b) != "اسفند" {
		t.Fatalf("MarshalText: got %q, %v", b, err)
	}
	var m Month
	if err := m.UnmarshalText([]byte("Mehr")); err != nil || m != Mehr {
		t.Fatalf("UnmarshalText: got %d, %v", m, err)
	}
	if _, err := Month(12).MarshalText(); !errors.Is(err, ErrInvalidMonthIndex) {
		t.Fatalf("expected invalid month error, got %v", err)
	}
	if Month(12).Valid() || !Farvardin.Valid() || Esfand.Number() != 12 {
		t.Fatalf("unexpected Valid/Number")
	}
}
