// Package numeral pairs an integer with its localized digit string and maps
// digits between ASCII and the Persian and Arabic-Indic scripts.
package numeral

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

type Script string

const (
	Persian Script = "persian"
	Arabic  Script = "arabic"
	Latin   Script = "latin"
)

const (
	persianZero = '۰' // U+06F0
	arabicZero  = '٠' // U+0660
)

// ParseScript accepts a script name; empty selects Persian.
func ParseScript(s string) (Script, error) {
	switch Script(strings.ToLower(strings.TrimSpace(s))) {
	case "", Persian:
		return Persian, nil
	case Arabic:
		return Arabic, nil
	case Latin:
		return Latin, nil
	default:
		return "", fmt.Errorf("unknown digit script %q (expected persian|arabic|latin)", s)
	}
}

func (s Script) zero() rune {
	switch s {
	case Arabic:
		return arabicZero
	case Latin:
		return '0'
	default:
		return persianZero
	}
}

func localizer(script Script) transform.Transformer {
	zero := script.zero()
	return runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return zero + (r - '0')
		}
		return r
	})
}

var delocalizer = runes.Map(func(r rune) rune {
	switch {
	case r >= persianZero && r <= persianZero+9:
		return '0' + (r - persianZero)
	case r >= arabicZero && r <= arabicZero+9:
		return '0' + (r - arabicZero)
	}
	return r
})

// Localize rewrites the ASCII digits of s in the given script. Other runes are
// left alone.
func Localize(s string, script Script) string {
	if script == Latin || s == "" {
		return s
	}
	out, _, err := transform.String(localizer(script), s)
	if err != nil {
		return s
	}
	return out
}

// Delocalize rewrites Persian and Arabic-Indic digits of s as ASCII digits.
func Delocalize(s string) string {
	if s == "" {
		return s
	}
	out, _, err := transform.String(delocalizer, s)
	if err != nil {
		return s
	}
	return out
}

var ErrNotNumeral = errors.New("not a numeral")

// Numeral is a non-negative integer together with the text it is displayed as.
// Two numerals are the same number when their Values match, whatever the Text.
type Numeral struct {
	Value int
	Text  string
}

func New(n int, script Script) Numeral {
	return Numeral{Value: n, Text: Localize(strconv.Itoa(n), script)}
}

// Padded is like New but left-pads with zeros to width digits ("۰۱").
func Padded(n, width int, script Script) Numeral {
	s := strconv.Itoa(n)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return Numeral{Value: n, Text: Localize(s, script)}
}

// Parse reads a non-negative integer written in ASCII, Persian or
// Arabic-Indic digits. The returned Text is the trimmed input. Values too
// large for an int saturate at math.MaxInt.
func Parse(s string) (Numeral, error) {
	text := strings.TrimSpace(s)
	ascii := Delocalize(text)
	if ascii == "" {
		return Numeral{}, fmt.Errorf("%w: empty", ErrNotNumeral)
	}
	for _, r := range ascii {
		if r < '0' || r > '9' {
			return Numeral{}, fmt.Errorf("%w: %q", ErrNotNumeral, s)
		}
	}
	n, err := strconv.Atoi(ascii)
	switch {
	case errors.Is(err, strconv.ErrRange):
		// Too many digits is still a number; callers clamp it.
		n = math.MaxInt
	case err != nil:
		return Numeral{}, fmt.Errorf("%w: %q: %v", ErrNotNumeral, s, err)
	}
	return Numeral{Value: n, Text: text}, nil
}

func (n Numeral) Equal(o Numeral) bool { return n.Value == o.Value }

func (n Numeral) Compare(o Numeral) int {
	switch {
	case n.Value < o.Value:
		return -1
	case n.Value > o.Value:
		return 1
	default:
		return 0
	}
}

func (n Numeral) String() string {
	if n.Text == "" {
		return strconv.Itoa(n.Value)
	}
	return n.Text
}

func (n Numeral) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *Numeral) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
