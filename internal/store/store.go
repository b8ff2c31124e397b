// Package store persists the pieces of application state that survive a
// restart: the cached login session, the user settings, and a snapshot of
// the play queue. The state core itself stays I/O-free; the app layer reads
// the store into actions at startup and writes on events.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "ripple"
	dbFileName   = "ripple.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the sqlite database. Queue saves are debounced: queue
// events arrive in bursts and only the last snapshot matters.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *QueueSnapshot
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// OpenInMemory opens a throwaway store, used by tests.
func OpenInMemory() (*Manager, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending snapshot
	if pending != nil {
		_ = saveQueue(m.db, *pending)
	}

	return m.db.Close()
}

// SaveQueue schedules a debounced write of the queue snapshot.
func (m *Manager) SaveQueue(snapshot QueueSnapshot) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &snapshot

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveQueue(m.db, *pending)
		}
	})
}

// SaveQueueNow writes the queue snapshot synchronously, used by tests and
// shutdown paths that cannot wait out the debounce.
func (m *Manager) SaveQueueNow(snapshot QueueSnapshot) error {
	m.saveMu.Lock()
	m.pending = nil
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	return saveQueue(m.db, snapshot)
}

func (m *Manager) GetQueue() (*QueueSnapshot, error) {
	return getQueue(m.db)
}

func (m *Manager) GetSession() (*Session, error) {
	return getSession(m.db)
}

func (m *Manager) SaveSession(s Session) error {
	return saveSession(m.db, s)
}

func (m *Manager) ClearSession() error {
	return clearSession(m.db)
}

func (m *Manager) GetSettings() (*Settings, error) {
	return getSettings(m.db)
}

func (m *Manager) SaveSettings(s Settings) error {
	return saveSettings(m.db, s)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
