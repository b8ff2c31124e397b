// Package playerbar renders the bottom playback bar.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// State holds everything needed to render the player bar.
type State struct {
	Playing    bool
	Title      string
	Artist     string
	Album      string
	Position   time.Duration
	Duration   time.Duration
	RepeatMode appstate.RepeatMode
	Shuffle    bool
}

// Height is the total height of the player bar including borders.
const Height = 4

// NewState constructs a State from the playback substate.
// Returns an empty State when nothing is loaded.
func NewState(p *appstate.PlaybackState) State {
	song := p.CurrentSong()
	if song == nil {
		return State{}
	}
	return State{
		Playing:    p.IsPlaying(),
		Title:      song.Title,
		Artist:     song.ArtistLine(),
		Album:      song.Album.Name,
		Position:   p.Position(),
		Duration:   song.Duration,
		RepeatMode: p.RepeatMode(),
		Shuffle:    p.Shuffle(),
	}
}

var barStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// Render returns the player bar string for the given width.
// Returns empty string when nothing is loaded.
func Render(s State, width int) string {
	if s.Title == "" {
		return ""
	}

	innerWidth := max(width-4, 0)
	st := styles.T().S()

	title := s.Title
	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	line1 := st.Title.Render(ansi.Truncate(title, innerWidth, "…"))
	if len(infoParts) > 0 {
		info := strings.Join(infoParts, " · ")
		rest := innerWidth - lipgloss.Width(line1) - 2
		if rest > 4 {
			line1 += "  " + st.Muted.Render(ansi.Truncate(info, rest, "…"))
		}
	}

	line2 := RenderProgressBar(s.Position, s.Duration, innerWidth-lipgloss.Width(modeFlags(s))-2, s.Playing)
	if flags := modeFlags(s); flags != "" {
		line2 += "  " + st.Subtle.Render(flags)
	}

	content := line1 + "\n" + line2
	return barStyle.Width(innerWidth + 2).Render(content)
}

// modeFlags summarizes repeat and shuffle state, e.g. "[rep:playlist] [shuf]".
func modeFlags(s State) string {
	var parts []string
	if s.RepeatMode != appstate.RepeatNone {
		parts = append(parts, "[rep:"+s.RepeatMode.String()+"]")
	}
	if s.Shuffle {
		parts = append(parts, "[shuf]")
	}
	return strings.Join(parts, " ")
}
