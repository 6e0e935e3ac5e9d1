package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ============================================================================
// CELL LAYOUT
// ============================================================================

func TestTruncateIsWidthAware(t *testing.T) {
	got := truncate("céleste désormais", 8)
	if !utf8.ValidString(got) {
		t.Errorf("Truncation split a rune: %q", got)
	}
	if w := runewidth.StringWidth(got); w > 8 {
		t.Errorf("Expected display width ≤ 8, got %d (%q)", w, got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected ellipsis on truncation, got %q", got)
	}

	if got := truncate("short", 10); got != "short" {
		t.Errorf("Fitting text must pass through, got %q", got)
	}
}

func TestPadIsWidthAware(t *testing.T) {
	padded := pad("naïve", 8)
	if w := runewidth.StringWidth(padded); w != 8 {
		t.Errorf("Expected display width 8, got %d (%q)", w, padded)
	}

	if got := pad("already wide", 4); got != "already wide" {
		t.Errorf("Overlong text must pass through, got %q", got)
	}
}
