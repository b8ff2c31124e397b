package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/ui/playerbar"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.helpVisible {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())

	if bar := playerbar.Render(playerbar.NewState(&m.state.Playback), m.width); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

func (m Model) renderHeader() string {
	t := m.theme
	title := styles.ApplyBoldGradient("ripple", t.Primary, t.Secondary)

	location := m.screenTitle()
	left := title + "  " + t.S().Muted.Render(location)

	var right string
	if user := m.state.LoggedUser.User(); user != nil {
		name := user.DisplayName
		if name == "" {
			name = user.ID
		}
		right = t.S().Subtle.Render(name)
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) screenTitle() string {
	if m.nowPlaying {
		return "now playing"
	}

	screen := m.state.Browser.CurrentScreen()
	switch screen.Kind {
	case appstate.ScreenHome:
		return "home"
	case appstate.ScreenAlbumDetails:
		return "album " + screen.ID
	case appstate.ScreenArtistDetails:
		return "artist " + screen.ID
	case appstate.ScreenPlaylistDetails:
		if p := m.playlistByID(screen.ID); p != nil {
			return "playlist · " + p.Title
		}
		return "playlist " + screen.ID
	case appstate.ScreenUserDetails:
		return "user " + screen.ID
	case appstate.ScreenSearch:
		if m.searchQuery != "" {
			return "search · " + m.searchQuery
		}
		return "search"
	}
	return screen.String()
}

func (m Model) renderBody() string {
	rows := m.visibleRows()
	if len(rows) == 0 {
		return m.theme.S().Subtle.Render(m.emptyText())
	}

	visible := m.bodyHeight()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	current := ""
	if song := m.state.Playback.CurrentSong(); song != nil {
		current = song.ID
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i == m.cursor, current))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderRow(r row, cursor bool, currentID string) string {
	st := m.theme.S()

	marker := "  "
	if m.state.Selection.Active() && r.kind == rowSong && m.state.Selection.IsSelected(r.song.ID) {
		marker = st.Selected.Render("◆ ")
	}

	var text string
	switch r.kind {
	case rowSong:
		line := r.song.Title
		if artists := r.song.ArtistLine(); artists != "" {
			line += "  " + artists
		}
		text = ansi.Truncate(line, max(m.width-4, 0), "…")
		switch {
		case r.song.ID == currentID:
			text = st.Playing.Render(text)
		case cursor:
			text = st.Cursor.Render(text)
		default:
			text = st.Base.Render(text)
		}
	case rowPlaylist:
		text = ansi.Truncate("▸ "+r.playlist.Title, max(m.width-4, 0), "…")
		if cursor {
			text = st.Cursor.Render(text)
		} else {
			text = st.Muted.Render(text)
		}
	}

	return marker + text
}

func (m Model) emptyText() string {
	if m.nowPlaying {
		return "queue is empty"
	}
	switch m.state.Browser.CurrentScreen().Kind {
	case appstate.ScreenHome:
		return "nothing here yet"
	case appstate.ScreenSearch:
		return "no results"
	default:
		return "loading…"
	}
}

func (m Model) renderStatusLine() string {
	st := m.theme.S()

	if m.prompt != promptNone {
		return m.input.View()
	}
	if m.errMsg != "" {
		return st.Error.Render(ansi.Truncate(m.errMsg, m.width, "…"))
	}

	if m.state.Selection.Active() {
		count := m.state.Selection.Count()
		hint := fmt.Sprintf("%s selected · a queue · d dequeue · f save · esc cancel",
			humanize.Comma(int64(count)))
		return st.Warning.Render(ansi.Truncate(hint, m.width, "…"))
	}

	if m.status != "" {
		return st.Muted.Render(ansi.Truncate(m.status, m.width, "…"))
	}

	rows := m.visibleRows()
	return st.Subtle.Render(fmt.Sprintf("%s items · ? help", humanize.Comma(int64(len(rows)))))
}

// bodyHeight is the number of list rows that fit between the header and
// the bottom bars.
func (m Model) bodyHeight() int {
	h := m.height - 2 // header + status line
	if m.state.Playback.CurrentSong() != nil {
		h -= playerbar.Height
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) renderHelp() string {
	st := m.theme.S()
	var b strings.Builder
	b.WriteString(st.Title.Render("Key bindings"))
	b.WriteString("\n\n")

	for _, context := range []string{"global", "playback", "navigator", "selection", "playlist"} {
		b.WriteString(st.Selected.Render(context))
		b.WriteString("\n")
		for _, binding := range keymap.ByContext(context) {
			keys := strings.Join(binding.Keys, ", ")
			b.WriteString(fmt.Sprintf("  %-14s %s\n", keys, st.Muted.Render(binding.Description)))
		}
		b.WriteString("\n")
	}

	b.WriteString(st.Subtle.Render("esc to close"))
	return b.String()
}
