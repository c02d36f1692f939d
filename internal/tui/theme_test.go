package tui

import (
	"strings"
	"testing"
)

func TestMarkdownStyle_RespectsTUITheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("JALALIPICK_TUI_THEME", "light")
	applyThemePreference()
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("JALALIPICK_TUI_THEME", "dark")
	applyThemePreference()
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestThemePreference_FallsBackToCOLORFGBG(t *testing.T) {
	t.Setenv("JALALIPICK_TUI_THEME", "")

	t.Setenv("COLORFGBG", "0;15")
	applyThemePreference()
	if got := markdownStyle(); got != "light" {
		t.Fatalf("COLORFGBG=0;15: expected light; got %q", got)
	}

	t.Setenv("COLORFGBG", "15;0")
	applyThemePreference()
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("COLORFGBG=15;0: expected dark; got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Setenv("JALALIPICK_TUI_THEME", "dark")
	applyThemePreference()

	if got := renderMarkdown("   ", 80); got != "" {
		t.Fatalf("expected empty output for blank input, got %q", got)
	}
	out := RenderMarkdown("# Keys\n\nپیمایش با **tab**", 40)
	if !strings.Contains(out, "Keys") || !strings.Contains(out, "tab") {
		t.Fatalf("rendered markdown lost its text:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newlines trimmed")
	}
}
