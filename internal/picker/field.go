package picker

import (
	"fmt"
	"strings"
)

type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

var fieldNames = [...]string{"day", "month", "year"}

func (f Field) Valid() bool { return f >= FieldDay && f <= FieldYear }

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range fieldNames {
		if s == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q (expected day|month|year)", s)
}

func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid field %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *Field) UnmarshalText(b []byte) error {
	v, err := ParseField(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseOrder reads a comma separated field order such as "year,month,day".
func ParseOrder(s string) ([]Field, error) {
	var out []Field
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseField(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
