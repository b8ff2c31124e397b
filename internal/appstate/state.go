package appstate

import (
	"errors"
	"fmt"

	"github.com/llehouerou/ripple/internal/models"
)

// ErrHomeNotReady is returned when a cross-cutting handler must forward to
// the browser's home view and the browser was never initialized with one.
// It is the only failure Update can report; everything else that cannot
// apply is an empty event sequence, not an error.
var ErrHomeNotReady = errors.New("browser home view not ready")

// AppState is the composite application state: one instance of each
// substate plus the one-shot started flag. It exclusively owns its
// substates; the only code path that mutates them is Update.
type AppState struct {
	started bool

	Playback   PlaybackState
	Browser    BrowserState
	Selection  SelectionState
	LoggedUser LoginState
	Settings   SettingsState
}

// New returns the state every session begins with: all substates at their
// defaults, home screen visible, nothing started.
func New() *AppState {
	return &AppState{
		Playback: NewPlaybackState(),
		Browser:  NewBrowserState(),
		Settings: NewSettingsState(),
	}
}

// Started reports whether the Start action has been accepted.
func (s *AppState) Started() bool {
	return s.started
}

// Update applies one action and returns the resulting events in emission
// order. Callers must serialize Update calls; the method assumes exclusive
// access to the state for its full duration.
//
// An unrecognized action, like any inapplicable one, produces no events and
// no error.
func (s *AppState) Update(action AppAction) ([]AppEvent, error) {
	switch a := action.(type) {
	case Start:
		if s.started {
			return nil, nil
		}
		s.started = true
		return []AppEvent{Started{}}, nil

	// A few actions mutate nothing; they exist so every notification still
	// travels the one action-to-event path.
	case ShowNotification:
		return []AppEvent{NotificationShown{Content: a.Content}}, nil
	case ViewNowPlaying:
		return []AppEvent{NowPlayingShown{}}, nil
	case Raise:
		return []AppEvent{Raised{}}, nil

	// Cross-cutting actions touch two or more substates and are handled
	// here; the event order within each handler is a contract, not an
	// accident (see the package tests).
	case QueueSelection:
		s.Playback.Queue(s.Selection.Drain())
		return []AppEvent{
			SelectionModeChanged{Active: false},
			PlaylistChanged{},
		}, nil

	case DequeueSelection:
		s.Playback.Dequeue(models.SongIDs(s.Selection.Drain()))
		return []AppEvent{
			SelectionModeChanged{Active: false},
			PlaylistChanged{},
		}, nil

	case MoveUpSelection:
		return s.moveSelection(s.Playback.MoveUp), nil

	case MoveDownSelection:
		return s.moveSelection(s.Playback.MoveDown), nil

	case SaveSelection:
		home, ok := s.Browser.HomeState()
		if !ok {
			return nil, fmt.Errorf("save selection: %w", ErrHomeNotReady)
		}
		events := forwardAction[BrowserAction](home.UpdateWith, SaveTracks{Songs: s.Selection.Drain()})
		return append(events, SelectionModeChanged{Active: false}), nil

	case UnsaveSelection:
		home, ok := s.Browser.HomeState()
		if !ok {
			return nil, fmt.Errorf("unsave selection: %w", ErrHomeNotReady)
		}
		ids := models.SongIDs(s.Selection.Drain())
		events := forwardAction[BrowserAction](home.UpdateWith, RemoveSavedTracks{IDs: ids})
		return append(events, SelectionModeChanged{Active: false}), nil

	case EnableSelection:
		context := a.Context
		if active, changed := s.Selection.SetMode(&context); changed {
			return []AppEvent{SelectionModeChanged{Active: active}}, nil
		}
		return nil, nil

	case CancelSelection:
		if active, changed := s.Selection.SetMode(nil); changed {
			return []AppEvent{SelectionModeChanged{Active: active}}, nil
		}
		return nil, nil

	case CreatePlaylist:
		events := forwardAction[LoginAction](s.LoggedUser.UpdateWith, PrependUserPlaylist{
			Playlists: []models.PlaylistSummary{a.Playlist.Summary()},
		})
		events = append(events, forwardAction[BrowserAction](s.Browser.UpdateWith, PrependPlaylistsContent{
			Playlists: []models.PlaylistDescription{a.Playlist},
		})...)
		return append(events, PlaylistCreatedNotificationShown{ID: a.Playlist.ID}), nil

	case RenamePlaylist:
		events := forwardAction[LoginAction](s.LoggedUser.UpdateWith, UpdateUserPlaylist{Summary: a.Summary})
		return append(events, forwardAction[BrowserAction](s.Browser.UpdateWith, UpdatePlaylistName{Summary: a.Summary})...), nil

	// Everything substate-scoped is forwarded verbatim to its owner.
	case PlaybackAction:
		return forwardAction(s.Playback.UpdateWith, a), nil
	case BrowserAction:
		return forwardAction(s.Browser.UpdateWith, a), nil
	case SelectionAction:
		return forwardAction(s.Selection.UpdateWith, a), nil
	case LoginAction:
		return forwardAction(s.LoggedUser.UpdateWith, a), nil
	case SettingsAction:
		return forwardAction(s.Settings.UpdateWith, a), nil

	default:
		return nil, nil
	}
}

// moveSelection peeks the selection as a cursor and asks playback to move
// its first song. Only that first song is ever touched per dispatch;
// repeated dispatches move further items.
func (s *AppState) moveSelection(move func(string) bool) []AppEvent {
	selection := s.Selection.Peek()
	if len(selection) == 0 {
		return nil
	}
	if !move(selection[0].ID) {
		return nil
	}
	return []AppEvent{PlaylistChanged{}}
}
