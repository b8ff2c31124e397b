package appstate

import "github.com/llehouerou/ripple/internal/models"

// LoginAction is the inner sum of session intents.
type LoginAction interface {
	AppAction
	loginAction()
}

// SetLoginSuccess records the authenticated user.
type SetLoginSuccess struct {
	User models.UserRef
}

// Logout clears the session.
type Logout struct{}

// SetUserPlaylists replaces the user's playlist listing.
type SetUserPlaylists struct {
	Playlists []models.PlaylistSummary
}

// AppendUserPlaylists adds a following page to the playlist listing.
type AppendUserPlaylists struct {
	Playlists []models.PlaylistSummary
}

// PrependUserPlaylist puts playlists at the front of the listing.
type PrependUserPlaylist struct {
	Playlists []models.PlaylistSummary
}

// UpdateUserPlaylist retitles one playlist in the listing.
type UpdateUserPlaylist struct {
	Summary models.PlaylistSummary
}

func (SetLoginSuccess) appAction()     {}
func (Logout) appAction()              {}
func (SetUserPlaylists) appAction()    {}
func (AppendUserPlaylists) appAction() {}
func (PrependUserPlaylist) appAction() {}
func (UpdateUserPlaylist) appAction()  {}

func (SetLoginSuccess) loginAction()     {}
func (Logout) loginAction()              {}
func (SetUserPlaylists) loginAction()    {}
func (AppendUserPlaylists) loginAction() {}
func (PrependUserPlaylist) loginAction() {}
func (UpdateUserPlaylist) loginAction()  {}

// LoginEvent is the inner sum of session change notifications.
type LoginEvent interface {
	AppEvent
	loginEvent()
}

// LoginCompleted reports a successful login.
type LoginCompleted struct {
	User models.UserRef
}

// LogoutCompleted reports the session was cleared.
type LogoutCompleted struct{}

// UserPlaylistsChanged reports any change to the playlist listing.
type UserPlaylistsChanged struct{}

// UserPlaylistUpdated reports a retitle of one playlist, carrying its id.
type UserPlaylistUpdated struct {
	ID string
}

func (LoginCompleted) appEvent()       {}
func (LogoutCompleted) appEvent()      {}
func (UserPlaylistsChanged) appEvent() {}
func (UserPlaylistUpdated) appEvent()  {}

func (LoginCompleted) loginEvent()       {}
func (LogoutCompleted) loginEvent()      {}
func (UserPlaylistsChanged) loginEvent() {}
func (UserPlaylistUpdated) loginEvent()  {}

// LoginState is the session substate: the authenticated user and the
// listing of playlists they own.
type LoginState struct {
	user      *models.UserRef
	playlists []models.PlaylistSummary
}

// User returns the authenticated user, or nil before login.
func (l *LoginState) User() *models.UserRef {
	return l.user
}

// Playlists returns the user's playlist listing.
func (l *LoginState) Playlists() []models.PlaylistSummary {
	out := make([]models.PlaylistSummary, len(l.playlists))
	copy(out, l.playlists)
	return out
}

// UpdateWith applies a session action.
func (l *LoginState) UpdateWith(action LoginAction) []LoginEvent {
	switch a := action.(type) {
	case SetLoginSuccess:
		user := a.User
		l.user = &user
		return []LoginEvent{LoginCompleted{User: user}}
	case Logout:
		if l.user == nil {
			return nil
		}
		l.user = nil
		l.playlists = nil
		return []LoginEvent{LogoutCompleted{}}
	case SetUserPlaylists:
		l.playlists = append([]models.PlaylistSummary(nil), a.Playlists...)
		return []LoginEvent{UserPlaylistsChanged{}}
	case AppendUserPlaylists:
		if len(a.Playlists) == 0 {
			return nil
		}
		l.playlists = append(l.playlists, a.Playlists...)
		return []LoginEvent{UserPlaylistsChanged{}}
	case PrependUserPlaylist:
		if len(a.Playlists) == 0 {
			return nil
		}
		l.playlists = append(append([]models.PlaylistSummary(nil), a.Playlists...), l.playlists...)
		return []LoginEvent{UserPlaylistsChanged{}}
	case UpdateUserPlaylist:
		for i := range l.playlists {
			if l.playlists[i].ID == a.Summary.ID {
				l.playlists[i].Title = a.Summary.Title
				return []LoginEvent{UserPlaylistUpdated{ID: a.Summary.ID}}
			}
		}
		return nil
	default:
		return nil
	}
}
