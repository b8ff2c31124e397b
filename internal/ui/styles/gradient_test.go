package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestApplyBoldGradient(t *testing.T) {
	from := lipgloss.Color("#1db954")
	to := lipgloss.Color("#f1a208")

	if got := ApplyBoldGradient("", from, to); got != "" {
		t.Errorf("empty input produced %q", got)
	}

	out := ApplyBoldGradient("ripple", from, to)
	if !strings.Contains(out, "r") || !strings.Contains(out, "e") {
		t.Errorf("gradient output lost characters: %q", out)
	}
}

func TestByName(t *testing.T) {
	if ByName("default") == nil {
		t.Fatal("default theme missing")
	}
	if ByName("violet") == ByName("default") {
		t.Error("violet theme should differ from default")
	}
	if ByName("nope") != ByName("default") {
		t.Error("unknown theme should fall back to default")
	}
}

func TestStylesBuiltOnce(t *testing.T) {
	th := T()
	if th.S() != th.S() {
		t.Error("S() should cache built styles")
	}
}
