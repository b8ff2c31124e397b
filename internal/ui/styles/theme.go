// Package styles defines the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // focused items, active states
	Secondary lipgloss.Color // secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgCursor lipgloss.Color // cursor/selection highlight

	// Borders
	Border lipgloss.Color

	// Status colors
	Success lipgloss.Color // playing, saved
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Playing  lipgloss.Style // Currently playing track
	Cursor   lipgloss.Style // Cursor background highlight
	Selected lipgloss.Style // Multi-selected rows
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var themes = map[string]*Theme{
	"default": {
		Primary:   lipgloss.Color("#1db954"),
		Secondary: lipgloss.Color("#f1a208"),

		FgBase:   lipgloss.Color("#c0c0c0"),
		FgMuted:  lipgloss.Color("#808080"),
		FgSubtle: lipgloss.Color("#585858"),

		BgCursor: lipgloss.Color("#303030"),

		Border: lipgloss.Color("#585858"),

		Success: lipgloss.Color("#42b883"),
		Error:   lipgloss.Color("#ff5555"),
		Warning: lipgloss.Color("#f1a208"),
	},
	"violet": {
		Primary:   lipgloss.Color("#a78bfa"),
		Secondary: lipgloss.Color("#f1a208"),

		FgBase:   lipgloss.Color("#c0c0c0"),
		FgMuted:  lipgloss.Color("#808080"),
		FgSubtle: lipgloss.Color("#585858"),

		BgCursor: lipgloss.Color("#303030"),

		Border: lipgloss.Color("#585858"),

		Success: lipgloss.Color("#42b883"),
		Error:   lipgloss.Color("#ff5555"),
		Warning: lipgloss.Color("#f1a208"),
	},
}

// ByName returns the named theme, falling back to the default palette.
func ByName(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// T returns the default theme.
func T() *Theme {
	return themes["default"]
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    base.Bold(true),
		Playing:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Cursor:   base.Background(t.BgCursor),
		Selected: lipgloss.NewStyle().Foreground(t.Secondary),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
	}
}
