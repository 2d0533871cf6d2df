package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestStyleRating_ByCode(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	for _, code := range []string{"s", "q", "e"} {
		styled := th.StyleRating(code)
		if !strings.Contains(styled, "\x1b[") {
			t.Fatalf("expected styled rating for %q, got %q", code, styled)
		}
		if !strings.Contains(styled, strings.ToUpper(code)) {
			t.Fatalf("expected uppercase letter for %q, got %q", code, styled)
		}
	}

	if got := th.StyleRating("x"); got != "x" {
		t.Fatalf("expected unknown rating to pass through, got %q", got)
	}
}

func TestStyleTag_GroupFallback(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	artist := th.StyleTag("artist", "someone")
	if !strings.Contains(artist, "\x1b[") {
		t.Fatalf("expected styled artist tag, got %q", artist)
	}

	unknown := th.StyleTag("invalid", "broken_tag")
	if !strings.Contains(unknown, "\x1b[") {
		t.Fatalf("expected plain style for unmapped group, got %q", unknown)
	}
	if !strings.Contains(unknown, "broken_tag") {
		t.Fatalf("expected tag text preserved, got %q", unknown)
	}
}

func TestStyleRule_EnabledState(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	enabled := th.StyleRule(true, "gore")
	disabled := th.StyleRule(false, "gore")
	if enabled == disabled {
		t.Fatalf("expected distinct styles, got %q for both", enabled)
	}
	if !strings.Contains(enabled, "\x1b[") || !strings.Contains(disabled, "\x1b[") {
		t.Fatalf("expected styled rules, got %q and %q", enabled, disabled)
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	if got := th.RenderActiveLine(false, "row"); got != "row" {
		t.Fatalf("expected inactive line unchanged, got %q", got)
	}
	if got := th.RenderActiveLine(true, "row"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected active line styled, got %q", got)
	}
}
