package format

import (
	"bytes"
	"strings"
	"testing"

	"jalali-picker/internal/calendar"
	"jalali-picker/internal/picker"
)

type textPayload struct {
	Name string `json:"name"`
}

func (p textPayload) Text() string { return "name=" + p.Name + "\n" }

func TestWrite_JSONEnvelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"leap": true}, "json", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"data":{"leap":true}}` {
		t.Fatalf("unexpected json %q", got)
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := map[string]any{"mainLabel": "x", "years": []int{1402, 1403}, "day": nil}
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `{:data {:day nil :main-label "x" :years [1402 1403]}}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("edn:\n got: %s\nwant: %s", got, want)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []any{1, "b"}, "e": []any{}}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "{\n  :a [\n    1\n    \"b\"\n  ]\n  :e []\n}\n"
	if buf.String() != want {
		t.Fatalf("pretty edn:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, textPayload{Name: "mehr"}, "text", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "name=mehr\n" {
		t.Fatalf("unexpected text %q", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if ValidFormat("yaml") || !ValidFormat("EDN") {
		t.Fatalf("unexpected ValidFormat result")
	}
}

func TestKeyword(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"mainLabel": "main-label", "day": "day", "monthIndex": "month-index", "a b": "a-b"} {
		if got := keyword(in); got != want {
			t.Fatalf("keyword(%q): got %q want %q", in, got, want)
		}
	}
}

func TestViewText(t *testing.T) {
	t.Parallel()

	c, err := picker.New(picker.Config{Years: []int{1402, 1403}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	d, err := c.ApplyChange(picker.Date{}, picker.FieldYear, "1403")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	m := calendar.Esfand
	d = c.ApplyMonth(d, &m)

	out := ViewText(c.Derive(d))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "date: 1403/اسفند/-" {
		t.Fatalf("unexpected date line %q", lines[0])
	}
	if !strings.Contains(lines[1], "[۱۴۰۳]") {
		t.Fatalf("expected selected year in %q", lines[1])
	}
	if !strings.Contains(lines[3], "[انتخاب]") || !strings.HasSuffix(lines[3], "۳۰") {
		t.Fatalf("unexpected day line %q", lines[3])
	}
}

func TestWriteEDN_EscapesStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	in := "a\"b\\c\nd\te\rf\ag\x7fh اسفند"
	if err := WriteEDN(&buf, map[string]any{"s": in}, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `{:s "a\"b\\c\nd\te\rf\u0007g\u007fh اسفند"}` + "\n"
	if buf.String() != want {
		t.Fatalf("edn string:\n got: %s\nwant: %s", buf.String(), want)
	}
}

func TestAppendEDN_RejectsUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := appendEDN(nil, []any{struct{}{}}, 0, false); err == nil {
		t.Fatalf("expected an error for an unsupported value")
	}
}
