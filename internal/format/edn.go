package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so json tags
// and MarshalText implementations decide the shape; object keys become
// kebab-case keywords (mainLabel -> :main-label).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	out, err := appendEDN(nil, x, 0, pretty)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func appendEDN(b []byte, v any, depth int, pretty bool) ([]byte, error) {
	switch t := v.(type) {
	case nil:
		return append(b, "nil"...), nil
	case bool:
		return strconv.AppendBool(b, t), nil
	case string:
		return appendString(b, t), nil
	case float64:
		if t == float64(int64(t)) {
			return strconv.AppendInt(b, int64(t), 10), nil
		}
		return strconv.AppendFloat(b, t, 'f', -1, 64), nil
	case []any:
		return appendSeq(b, '[', ']', len(t), depth, pretty, func(b []byte, i int) ([]byte, error) {
			return appendEDN(b, t[i], depth+1, pretty)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return appendSeq(b, '{', '}', len(keys), depth, pretty, func(b []byte, i int) ([]byte, error) {
			b = append(b, ':')
			b = append(b, keyword(keys[i])...)
			b = append(b, ' ')
			return appendEDN(b, t[keys[i]], depth+1, pretty)
		})
	default:
		return b, fmt.Errorf("edn: unsupported value of type %T", v)
	}
}

// appendString writes s as an EDN string. EDN only knows the \" \\ \n \t \r
// escapes plus \uXXXX; other control characters use the latter.
func appendString(b []byte, s string) []byte {
	b = append(b, '"')
	for _, r := range s {
		switch r {
		case '"':
			b = append(b, `\"`...)
		case '\\':
			b = append(b, `\\`...)
		case '\n':
			b = append(b, `\n`...)
		case '\t':
			b = append(b, `\t`...)
		case '\r':
			b = append(b, `\r`...)
		default:
			if r < 0x20 || r == 0x7f || r == utf8.RuneError {
				b = fmt.Appendf(b, `\u%04x`, r)
				continue
			}
			b = utf8.AppendRune(b, r)
		}
	}
	return append(b, '"')
}

func appendSeq(b []byte, open, closing byte, n, depth int, pretty bool, elem func([]byte, int) ([]byte, error)) ([]byte, error) {
	b = append(b, open)
	for i := 0; i < n; i++ {
		switch {
		case pretty:
			b = append(b, '\n')
			b = append(b, strings.Repeat("  ", depth+1)...)
		case i > 0:
			b = append(b, ' ')
		}
		var err error
		if b, err = elem(b, i); err != nil {
			return b, err
		}
	}
	if pretty && n > 0 {
		b = append(b, '\n')
		b = append(b, strings.Repeat("  ", depth)...)
	}
	return append(b, closing), nil
}

func keyword(s string) string {
	var sb strings.Builder
	for i, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '_':
			sb.WriteByte('-')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
