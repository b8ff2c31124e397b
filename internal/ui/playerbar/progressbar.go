package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderProgressBar renders a block-style progress bar.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func RenderProgressBar(position, duration time.Duration, width int, playing bool) string {
	status := "▶"
	if !playing {
		status = "⏸"
	}

	posStr := formatDuration(position)
	durStr := formatDuration(duration)

	// Format: "▶  1:23  ▓▓▓░░░  4:56"
	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return status + "  " + posStr + "  " + bar + "  " + durStr
}

// formatDuration renders m:ss, or h:mm:ss past the hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
