package appstate

import (
	"strings"

	"github.com/llehouerou/ripple/internal/models"
)

// AppAction is an intent value describing a requested state change. Actions
// carry only the data needed to perform the change, never references into
// live state. The sum is two-level: the cross-cutting variants below, plus
// one interface per substate (PlaybackAction, BrowserAction, ...) whose
// variants are AppActions as well.
type AppAction interface {
	appAction()
}

// Start marks the end of the startup sequence. Accepted exactly once.
type Start struct{}

// Raise asks the UI to bring itself to the foreground (MPRIS Raise).
type Raise struct{}

// ShowNotification requests a transient user-visible notification.
type ShowNotification struct {
	Content string
}

// ViewNowPlaying requests that the now-playing view be shown.
type ViewNowPlaying struct{}

// QueueSelection drains the current selection into the play queue.
type QueueSelection struct{}

// DequeueSelection drains the current selection and removes those tracks
// from the play queue.
type DequeueSelection struct{}

// MoveUpSelection moves the first selected track one position up in the
// play queue. Repeated dispatches are required to move further items.
type MoveUpSelection struct{}

// MoveDownSelection moves the first selected track one position down in the
// play queue.
type MoveDownSelection struct{}

// SaveSelection drains the current selection into the saved tracks of the
// home view.
type SaveSelection struct{}

// UnsaveSelection drains the current selection and removes those tracks
// from the saved tracks of the home view.
type UnsaveSelection struct{}

// EnableSelection enters selection mode for the given context.
type EnableSelection struct {
	Context SelectionContext
}

// CancelSelection leaves selection mode, discarding the buffer.
type CancelSelection struct{}

// CreatePlaylist adds a freshly created playlist to the session's listing
// and the browser's playlist content.
type CreatePlaylist struct {
	Playlist models.PlaylistDescription
}

// RenamePlaylist propagates a playlist title change to the session's
// listing and the browser.
type RenamePlaylist struct {
	Summary models.PlaylistSummary
}

func (Start) appAction()             {}
func (Raise) appAction()             {}
func (ShowNotification) appAction()  {}
func (ViewNowPlaying) appAction()    {}
func (QueueSelection) appAction()    {}
func (DequeueSelection) appAction()  {}
func (MoveUpSelection) appAction()   {}
func (MoveDownSelection) appAction() {}
func (SaveSelection) appAction()     {}
func (UnsaveSelection) appAction()   {}
func (EnableSelection) appAction()   {}
func (CancelSelection) appAction()   {}
func (CreatePlaylist) appAction()    {}
func (RenamePlaylist) appAction()    {}

const uriScheme = "spotify"

// OpenURI parses a spotify: URI into a navigation action. It returns nil
// for anything malformed; callers are expected to treat nil as "ignore".
//
// The entity segment may carry a run of leading slashes left behind by
// URI libraries that expand the empty path of scheme-only URIs
// (spotify:///album:id); the run is stripped and the remainder must be
// non-empty.
func OpenURI(uri string) AppAction {
	parts := strings.Split(uri, ":")
	if len(parts) != 3 || parts[0] != uriScheme {
		return nil
	}

	kind := strings.TrimLeft(parts[1], "/")
	id := parts[2]
	if kind == "" || id == "" {
		return nil
	}

	switch kind {
	case "album":
		return ViewAlbum(id)
	case "artist":
		return ViewArtist(id)
	case "playlist":
		return ViewPlaylist(id)
	case "user":
		return ViewUser(id)
	default:
		return nil
	}
}

// ViewAlbum builds the action navigating to an album's detail screen.
func ViewAlbum(id string) AppAction {
	return NavigationPush{Screen: AlbumDetailsScreen(id)}
}

// ViewArtist builds the action navigating to an artist's detail screen.
func ViewArtist(id string) AppAction {
	return NavigationPush{Screen: ArtistDetailsScreen(id)}
}

// ViewPlaylist builds the action navigating to a playlist's detail screen.
func ViewPlaylist(id string) AppAction {
	return NavigationPush{Screen: PlaylistDetailsScreen(id)}
}

// ViewUser builds the action navigating to a user's detail screen.
func ViewUser(id string) AppAction {
	return NavigationPush{Screen: UserDetailsScreen(id)}
}

// ViewSearch builds the action navigating to the search screen.
func ViewSearch() AppAction {
	return NavigationPush{Screen: SearchScreen()}
}
