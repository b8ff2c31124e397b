package app

import (
	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/models"
)

// rowKind distinguishes what the cursor is sitting on.
type rowKind int

const (
	rowSong rowKind = iota
	rowPlaylist
)

// row is one line of the active list.
type row struct {
	kind     rowKind
	song     models.SongDescription
	playlist models.PlaylistSummary
}

// visibleRows returns the list the cursor moves over for the active view.
func (m *Model) visibleRows() []row {
	if m.nowPlaying {
		return songRows(m.state.Playback.Songs())
	}

	screen := m.state.Browser.CurrentScreen()
	switch screen.Kind {
	case appstate.ScreenHome:
		home, ok := m.state.Browser.HomeState()
		if !ok {
			return nil
		}
		rows := songRows(home.SavedTracks())
		for _, p := range home.Playlists() {
			rows = append(rows, row{kind: rowPlaylist, playlist: p.Summary()})
		}
		return rows
	case appstate.ScreenPlaylistDetails:
		if p := m.playlistByID(screen.ID); p != nil {
			return songRows(p.Songs.Songs)
		}
	}
	return nil
}

func songRows(songs []models.SongDescription) []row {
	rows := make([]row, len(songs))
	for i, s := range songs {
		rows[i] = row{kind: rowSong, song: s}
	}
	return rows
}

// playlistByID finds a playlist's full description in the home content.
func (m *Model) playlistByID(id string) *models.PlaylistDescription {
	home, ok := m.state.Browser.HomeState()
	if !ok {
		return nil
	}
	for _, p := range home.Playlists() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// selectionContext maps the active view to the selection context its
// song rows belong to.
func (m *Model) selectionContext() appstate.SelectionContext {
	if m.nowPlaying {
		return appstate.SelectionContextQueue
	}
	switch m.state.Browser.CurrentScreen().Kind {
	case appstate.ScreenHome:
		return appstate.SelectionContextSavedTracks
	case appstate.ScreenPlaylistDetails:
		return appstate.SelectionContextPlaylist
	default:
		return appstate.SelectionContextDefault
	}
}

func (m *Model) clampCursor() {
	n := len(m.visibleRows())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cursorRow returns the row under the cursor, if any.
func (m *Model) cursorRow() (row, bool) {
	rows := m.visibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}
