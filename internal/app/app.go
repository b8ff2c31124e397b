// Package app wires the state engine to the terminal UI. All user input,
// D-Bus commands and startup restores funnel through a single dispatch
// call on the update loop's goroutine, so the engine never sees
// concurrent actions.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/models"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/store"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// promptMode says what the text input at the bottom is collecting.
type promptMode int

const (
	promptNone promptMode = iota
	promptSearch
	promptNewPlaylist
	promptRenamePlaylist
)

// Options carries the dependencies the model needs.
type Options struct {
	Store    store.Interface
	Notifier notify.Notifier
	Mpris    *mpris.Adapter
	Settings appstate.UserSettings
	// InitialURI is an optional spotify: URI from the command line,
	// opened after restore.
	InitialURI string
}

// Model is the root application model.
type Model struct {
	state    *appstate.AppState
	store    store.Interface
	notifier notify.Notifier
	mpris    *mpris.Adapter
	resolver *keymap.Resolver
	theme    *styles.Theme

	input        textinput.Model
	prompt       promptMode
	renameTarget string
	searchQuery  string

	nowPlaying  bool
	helpVisible bool
	cursor      int
	status      string
	errMsg      string

	trackNotifID uint32
	ticking      bool

	width  int
	height int
}

// New builds the model and replays persisted state into the engine.
func New(opts Options) (Model, error) {
	input := textinput.New()
	input.CharLimit = 128

	m := Model{
		state:    appstate.New(),
		store:    opts.Store,
		notifier: opts.Notifier,
		mpris:    opts.Mpris,
		resolver: keymap.NewResolver(keymap.Bindings),
		theme:    styles.ByName(opts.Settings.Theme),
		input:    input,
	}

	if _, err := m.state.Update(appstate.Start{}); err != nil {
		return Model{}, err
	}
	if _, err := m.state.Update(appstate.ChangeSettings{Settings: opts.Settings}); err != nil {
		return Model{}, err
	}

	m.restore()

	if opts.InitialURI != "" {
		if action := appstate.OpenURI(opts.InitialURI); action != nil {
			if _, err := m.state.Update(action); err != nil {
				return Model{}, err
			}
		}
	}

	m.pushMprisStatus()
	return m, nil
}

// restore replays the cached session and queue snapshot. Failures here
// only cost the restored state, so they surface as status text.
func (m *Model) restore() {
	if session, err := m.store.GetSession(); err == nil && session != nil {
		_, _ = m.state.Update(appstate.SetLoginSuccess{
			User: models.UserRef{ID: session.UserID, DisplayName: session.DisplayName},
		})
	}

	snapshot, err := m.store.GetQueue()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if snapshot == nil || len(snapshot.Songs) == 0 {
		return
	}

	songs := snapshot.Restore()
	currentID := ""
	if snapshot.CurrentIndex >= 0 && snapshot.CurrentIndex < len(songs) {
		currentID = songs[snapshot.CurrentIndex].ID
	}
	_, _ = m.state.Update(appstate.Load{Songs: songs, CurrentID: currentID})
	// A restored queue should not start making noise.
	_, _ = m.state.Update(appstate.Pause{})
	_, _ = m.state.Update(appstate.SetRepeatMode{Mode: parseRepeatMode(snapshot.RepeatMode)})
}

func parseRepeatMode(s string) appstate.RepeatMode {
	switch s {
	case "song":
		return appstate.RepeatSong
	case "playlist":
		return appstate.RepeatPlaylist
	default:
		return appstate.RepeatNone
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.state.Playback.IsPlaying() {
		return tickCmd()
	}
	return nil
}

// State exposes the engine for tests.
func (m Model) State() *appstate.AppState {
	return m.state
}
