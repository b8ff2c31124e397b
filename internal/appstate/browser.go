package appstate

import "github.com/llehouerou/ripple/internal/models"

// BrowserAction is the inner sum of browsing intents.
type BrowserAction interface {
	AppAction
	browserAction()
}

// NavigationPush pushes a screen onto the navigation stack. Pushing the
// screen already on top is a no-op.
type NavigationPush struct {
	Screen ScreenName
}

// NavigationPop pops the top screen. The bottom screen never pops.
type NavigationPop struct{}

// SetHomeContent replaces the home view's saved tracks and playlists.
type SetHomeContent struct {
	SavedTracks models.SongBatch
	Playlists   []models.PlaylistDescription
}

// SaveTracks adds songs to the home view's saved tracks.
type SaveTracks struct {
	Songs []models.SongDescription
}

// RemoveSavedTracks removes songs from the home view's saved tracks by id.
type RemoveSavedTracks struct {
	IDs []string
}

// PrependPlaylistsContent puts playlists at the front of the home view's
// playlist listing.
type PrependPlaylistsContent struct {
	Playlists []models.PlaylistDescription
}

// UpdatePlaylistName retitles a playlist in the home view's listing.
type UpdatePlaylistName struct {
	Summary models.PlaylistSummary
}

func (NavigationPush) appAction()          {}
func (NavigationPop) appAction()           {}
func (SetHomeContent) appAction()          {}
func (SaveTracks) appAction()              {}
func (RemoveSavedTracks) appAction()       {}
func (PrependPlaylistsContent) appAction() {}
func (UpdatePlaylistName) appAction()      {}

func (NavigationPush) browserAction()          {}
func (NavigationPop) browserAction()           {}
func (SetHomeContent) browserAction()          {}
func (SaveTracks) browserAction()              {}
func (RemoveSavedTracks) browserAction()       {}
func (PrependPlaylistsContent) browserAction() {}
func (UpdatePlaylistName) browserAction()      {}

// BrowserEvent is the inner sum of browsing change notifications.
type BrowserEvent interface {
	AppEvent
	browserEvent()
}

// NavigationPushed reports a screen was pushed and is now visible.
type NavigationPushed struct {
	Screen ScreenName
}

// NavigationPopped reports a pop; Screen is the screen revealed underneath.
type NavigationPopped struct {
	Screen ScreenName
}

// HomeVisible reports that a pop landed back on the home screen.
type HomeVisible struct{}

// SavedTracksUpdated reports a change to the home view's saved tracks.
type SavedTracksUpdated struct{}

// PlaylistsContentChanged reports a change to the home playlist listing.
type PlaylistsContentChanged struct{}

// PlaylistNameChanged reports a playlist retitle, carrying its id.
type PlaylistNameChanged struct {
	ID string
}

func (NavigationPushed) appEvent()        {}
func (NavigationPopped) appEvent()        {}
func (HomeVisible) appEvent()             {}
func (SavedTracksUpdated) appEvent()      {}
func (PlaylistsContentChanged) appEvent() {}
func (PlaylistNameChanged) appEvent()     {}

func (NavigationPushed) browserEvent()        {}
func (NavigationPopped) browserEvent()        {}
func (HomeVisible) browserEvent()             {}
func (SavedTracksUpdated) browserEvent()      {}
func (PlaylistsContentChanged) browserEvent() {}
func (PlaylistNameChanged) browserEvent()     {}

// HomeState is the content of the browser's home screen: the saved tracks
// set and the playlist listing. It satisfies the same update contract as
// the full browser so cross-cutting handlers can forward to it directly.
type HomeState struct {
	savedTracks []models.SongDescription
	playlists   []models.PlaylistDescription
}

// SavedTracks returns the saved tracks, newest first.
func (h *HomeState) SavedTracks() []models.SongDescription {
	out := make([]models.SongDescription, len(h.savedTracks))
	copy(out, h.savedTracks)
	return out
}

// Playlists returns the playlist listing.
func (h *HomeState) Playlists() []models.PlaylistDescription {
	out := make([]models.PlaylistDescription, len(h.playlists))
	copy(out, h.playlists)
	return out
}

// UpdateWith applies a content action to the home view. Navigation actions
// are not the home view's concern and produce no events.
func (h *HomeState) UpdateWith(action BrowserAction) []BrowserEvent {
	switch a := action.(type) {
	case SetHomeContent:
		h.savedTracks = append([]models.SongDescription(nil), a.SavedTracks.Songs...)
		h.playlists = append([]models.PlaylistDescription(nil), a.Playlists...)
		return []BrowserEvent{SavedTracksUpdated{}, PlaylistsContentChanged{}}
	case SaveTracks:
		if h.saveTracks(a.Songs) {
			return []BrowserEvent{SavedTracksUpdated{}}
		}
		return nil
	case RemoveSavedTracks:
		if h.removeSavedTracks(a.IDs) {
			return []BrowserEvent{SavedTracksUpdated{}}
		}
		return nil
	case PrependPlaylistsContent:
		if len(a.Playlists) == 0 {
			return nil
		}
		h.playlists = append(append([]models.PlaylistDescription(nil), a.Playlists...), h.playlists...)
		return []BrowserEvent{PlaylistsContentChanged{}}
	case UpdatePlaylistName:
		for i := range h.playlists {
			if h.playlists[i].ID == a.Summary.ID {
				h.playlists[i].Title = a.Summary.Title
				return []BrowserEvent{PlaylistNameChanged{ID: a.Summary.ID}}
			}
		}
		return nil
	default:
		return nil
	}
}

// saveTracks prepends songs not already saved. Reports whether the saved
// set changed.
func (h *HomeState) saveTracks(songs []models.SongDescription) bool {
	existing := make(map[string]struct{}, len(h.savedTracks))
	for _, s := range h.savedTracks {
		existing[s.ID] = struct{}{}
	}
	var added []models.SongDescription
	for _, s := range songs {
		if _, ok := existing[s.ID]; ok {
			continue
		}
		existing[s.ID] = struct{}{}
		added = append(added, s)
	}
	if len(added) == 0 {
		return false
	}
	h.savedTracks = append(added, h.savedTracks...)
	return true
}

// removeSavedTracks drops the given ids. Reports whether anything changed.
func (h *HomeState) removeSavedTracks(ids []string) bool {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := h.savedTracks[:0]
	changed := false
	for _, s := range h.savedTracks {
		if _, ok := drop[s.ID]; ok {
			changed = true
			continue
		}
		kept = append(kept, s)
	}
	h.savedTracks = kept
	return changed
}

// BrowserState is the browsing substate: a screen stack with the home
// screen at the bottom, plus the home screen's content.
//
// The zero value has no screens and no home content; NewBrowserState is the
// initialized form the application uses.
type BrowserState struct {
	stack []ScreenName
	home  *HomeState
}

// NewBrowserState returns a browser showing the home screen.
func NewBrowserState() BrowserState {
	return BrowserState{
		stack: []ScreenName{HomeScreen()},
		home:  &HomeState{},
	}
}

// HomeState returns the home view content, or ok == false when the browser
// was never initialized with a home screen.
func (b *BrowserState) HomeState() (*HomeState, bool) {
	if b.home == nil {
		return nil, false
	}
	return b.home, true
}

// CurrentScreen returns the visible screen. The zero-value browser reports
// the home screen name even though no stack exists yet.
func (b *BrowserState) CurrentScreen() ScreenName {
	if len(b.stack) == 0 {
		return HomeScreen()
	}
	return b.stack[len(b.stack)-1]
}

// Stack returns the navigation stack, bottom first.
func (b *BrowserState) Stack() []ScreenName {
	out := make([]ScreenName, len(b.stack))
	copy(out, b.stack)
	return out
}

// CanPop reports whether a pop would change the visible screen.
func (b *BrowserState) CanPop() bool {
	return len(b.stack) > 1
}

// UpdateWith applies a browser action. Navigation is handled here; content
// actions are delegated to the home view when it exists.
func (b *BrowserState) UpdateWith(action BrowserAction) []BrowserEvent {
	switch a := action.(type) {
	case NavigationPush:
		if len(b.stack) > 0 && b.CurrentScreen() == a.Screen {
			return nil
		}
		b.stack = append(b.stack, a.Screen)
		return []BrowserEvent{NavigationPushed{Screen: a.Screen}}
	case NavigationPop:
		if !b.CanPop() {
			return nil
		}
		b.stack = b.stack[:len(b.stack)-1]
		revealed := b.CurrentScreen()
		events := []BrowserEvent{NavigationPopped{Screen: revealed}}
		if revealed.Kind == ScreenHome {
			events = append(events, HomeVisible{})
		}
		return events
	default:
		if b.home == nil {
			return nil
		}
		return b.home.UpdateWith(action)
	}
}
