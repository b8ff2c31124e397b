package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/models"
)

const seekStep = 5 * time.Second

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ActionMsg:
		cmd := m.dispatch(msg.Action)
		return m, cmd

	case TickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTick advances the playback position once per second while a
// track is playing, crossing track boundaries like a transport would.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	p := &m.state.Playback
	if !p.IsPlaying() {
		m.ticking = false
		return m, nil
	}

	song := p.CurrentSong()
	position := p.Position() + time.Second

	var cmd tea.Cmd
	switch {
	case song == nil:
		m.ticking = false
		return m, nil
	case song.Duration > 0 && position >= song.Duration:
		cmd = m.trackFinished()
	default:
		cmd = m.dispatch(appstate.Seek{Position: position})
	}

	return m, tea.Batch(cmd, tickCmd())
}

// trackFinished implements automatic advancement at the end of a track.
// Explicit Next ignores song repeat, so it is handled here.
func (m *Model) trackFinished() tea.Cmd {
	p := &m.state.Playback
	if p.RepeatMode() == appstate.RepeatSong {
		return m.dispatch(appstate.Seek{Position: 0})
	}

	before := p.CurrentIndex()
	cmd := m.dispatch(appstate.Next{})
	if p.CurrentIndex() == before {
		// End of queue without repeat
		return tea.Batch(cmd, m.dispatch(appstate.StopPlayback{}))
	}
	return cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}

	key := msg.String()
	if key == " " {
		key = "space"
	}

	if m.helpVisible {
		if key == "esc" || key == "?" || key == "q" {
			m.helpVisible = false
		}
		return m, nil
	}

	m.errMsg = ""

	switch m.resolver.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		m.helpVisible = true
		return m, nil

	case keymap.ActionSearch:
		return m.openPrompt(promptSearch, "search: ", "")

	case keymap.ActionNowPlaying:
		return m, m.dispatch(appstate.ViewNowPlaying{})

	case keymap.ActionGoHome:
		return m, m.popToHome()

	case keymap.ActionGoBack:
		if m.nowPlaying {
			m.nowPlaying = false
			return m, nil
		}
		return m, m.dispatch(appstate.NavigationPop{})

	case keymap.ActionLogout:
		return m, m.dispatch(appstate.Logout{})

	// Playback
	case keymap.ActionPlayPause:
		return m, m.dispatch(appstate.TogglePlay{})
	case keymap.ActionStop:
		return m, m.dispatch(appstate.StopPlayback{})
	case keymap.ActionNextTrack:
		return m, m.dispatch(appstate.Next{})
	case keymap.ActionPrevTrack:
		return m, m.dispatch(appstate.Previous{})
	case keymap.ActionSeekForward:
		return m, m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		return m, m.seekBy(-seekStep)
	case keymap.ActionCycleRepeat:
		next := (m.state.Playback.RepeatMode() + 1) % 3
		return m, m.dispatch(appstate.SetRepeatMode{Mode: next})
	case keymap.ActionToggleShuffle:
		return m, m.dispatch(appstate.ToggleShuffle{})

	// Cursor movement
	case keymap.ActionMoveDown:
		m.cursor++
		m.clampCursor()
		return m, nil
	case keymap.ActionMoveUp:
		m.cursor--
		m.clampCursor()
		return m, nil
	case keymap.ActionJumpStart:
		m.cursor = 0
		return m, nil
	case keymap.ActionJumpEnd:
		m.cursor = len(m.visibleRows()) - 1
		m.clampCursor()
		return m, nil
	case keymap.ActionPageDown:
		m.cursor += m.pageSize()
		m.clampCursor()
		return m, nil
	case keymap.ActionPageUp:
		m.cursor -= m.pageSize()
		m.clampCursor()
		return m, nil
	case keymap.ActionMoveLeft:
		return m, m.dispatch(appstate.NavigationPop{})

	case keymap.ActionSelect, keymap.ActionMoveRight:
		return m, m.activateCursor()

	// Selection
	case keymap.ActionToggleSelect:
		return m, m.toggleSelect()
	case keymap.ActionClearSelect:
		return m, m.dispatch(appstate.CancelSelection{})
	case keymap.ActionQueueSelection:
		return m, m.dispatch(appstate.QueueSelection{})
	case keymap.ActionDequeueSelection:
		return m, m.dispatch(appstate.DequeueSelection{})
	case keymap.ActionMoveItemUp:
		return m, m.dispatch(appstate.MoveUpSelection{})
	case keymap.ActionMoveItemDown:
		return m, m.dispatch(appstate.MoveDownSelection{})
	case keymap.ActionSaveSelection:
		return m, m.dispatch(appstate.SaveSelection{})
	case keymap.ActionUnsaveSelection:
		return m, m.dispatch(appstate.UnsaveSelection{})

	// Playlist management
	case keymap.ActionNewPlaylist:
		return m.openPrompt(promptNewPlaylist, "new playlist: ", "")
	case keymap.ActionRenamePlaylist:
		if r, ok := m.cursorRow(); ok && r.kind == rowPlaylist {
			m.renameTarget = r.playlist.ID
			return m.openPrompt(promptRenamePlaylist, "rename: ", r.playlist.Title)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) openPrompt(mode promptMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.prompt = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		mode := m.prompt
		m.prompt = promptNone
		m.input.Blur()
		return m, m.submitPrompt(mode, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitPrompt(mode promptMode, value string) tea.Cmd {
	if value == "" {
		return nil
	}

	switch mode {
	case promptSearch:
		m.searchQuery = value
		if m.state.Browser.CurrentScreen().Kind != appstate.ScreenSearch {
			return m.dispatch(appstate.ViewSearch())
		}
		return nil

	case promptNewPlaylist:
		playlist := models.PlaylistDescription{
			ID:    uuid.NewString(),
			Title: value,
		}
		if user := m.state.LoggedUser.User(); user != nil {
			playlist.Owner = *user
		}
		return m.dispatch(appstate.CreatePlaylist{Playlist: playlist})

	case promptRenamePlaylist:
		summary := models.PlaylistSummary{ID: m.renameTarget, Title: value}
		return m.dispatch(appstate.RenamePlaylist{Summary: summary})
	}

	return nil
}

// popToHome pops screens one at a time until the home screen shows.
func (m *Model) popToHome() tea.Cmd {
	m.nowPlaying = false
	var cmds []tea.Cmd
	for m.state.Browser.CanPop() {
		cmds = append(cmds, m.dispatch(appstate.NavigationPop{}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) seekBy(delta time.Duration) tea.Cmd {
	p := &m.state.Playback
	song := p.CurrentSong()
	if song == nil {
		return nil
	}
	position := p.Position() + delta
	if position < 0 {
		position = 0
	}
	if song.Duration > 0 && position > song.Duration {
		position = song.Duration
	}
	return m.dispatch(appstate.Seek{Position: position})
}

// activateCursor opens or plays whatever the cursor points at.
func (m *Model) activateCursor() tea.Cmd {
	r, ok := m.cursorRow()
	if !ok {
		return nil
	}

	switch r.kind {
	case rowPlaylist:
		return m.dispatch(appstate.ViewPlaylist(r.playlist.ID))

	case rowSong:
		if m.nowPlaying {
			return m.dispatch(appstate.Play{ID: r.song.ID})
		}
		// Load the whole visible list as the new queue, starting at
		// the activated song.
		var songs []models.SongDescription
		for _, vr := range m.visibleRows() {
			if vr.kind == rowSong {
				songs = append(songs, vr.song)
			}
		}
		return m.dispatch(appstate.Load{Songs: songs, CurrentID: r.song.ID})
	}
	return nil
}

// toggleSelect flips selection of the song under the cursor, entering
// selection mode for the view's context first when needed.
func (m *Model) toggleSelect() tea.Cmd {
	r, ok := m.cursorRow()
	if !ok || r.kind != rowSong {
		return nil
	}

	var cmds []tea.Cmd
	sel := &m.state.Selection
	if !sel.Active() || sel.Context() != m.selectionContext() {
		cmds = append(cmds, m.dispatch(appstate.EnableSelection{Context: m.selectionContext()}))
	}

	if sel.IsSelected(r.song.ID) {
		cmds = append(cmds, m.dispatch(appstate.Deselect{ID: r.song.ID}))
	} else {
		cmds = append(cmds, m.dispatch(appstate.Select{Song: r.song}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) pageSize() int {
	if m.height > 10 {
		return m.height - 8
	}
	return 10
}
