package store

// Interface defines the store contract for dependency injection and testing.
type Interface interface {
	SaveQueue(snapshot QueueSnapshot)
	GetQueue() (*QueueSnapshot, error)
	SaveSession(s Session) error
	GetSession() (*Session, error)
	ClearSession() error
	SaveSettings(s Settings) error
	GetSettings() (*Settings, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
