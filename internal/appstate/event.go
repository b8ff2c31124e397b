package appstate

// AppEvent is a notification value describing a state change that already
// occurred. Events are the only legitimate signal that state changed;
// nothing else may be inferred from a dispatch. Like AppAction the sum is
// two-level: the cross-cutting variants below plus one interface per
// substate whose variants are AppEvents as well.
type AppEvent interface {
	appEvent()
}

// Started is emitted once, when the first Start action is accepted.
type Started struct{}

// Raised asks the view layer to bring the window to the foreground.
type Raised struct{}

// NotificationShown carries the text of a requested notification.
type NotificationShown struct {
	Content string
}

// PlaylistCreatedNotificationShown reports that a playlist was created and
// announced, carrying the new playlist's id.
type PlaylistCreatedNotificationShown struct {
	ID string
}

// NowPlayingShown reports that the now-playing view was requested.
type NowPlayingShown struct{}

func (Started) appEvent()                          {}
func (Raised) appEvent()                           {}
func (NotificationShown) appEvent()                {}
func (PlaylistCreatedNotificationShown) appEvent() {}
func (NowPlayingShown) appEvent()                  {}
