package store

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/ripple/internal/appstate"
	dbutil "github.com/llehouerou/ripple/internal/db"
)

// Session is the cached authenticated user, kept so a restart can show the
// logged-in UI while the backend re-authenticates.
type Session struct {
	UserID      string
	DisplayName string
}

func getSession(db *sql.DB) (*Session, error) {
	row := db.QueryRow(`SELECT user_id, display_name FROM session WHERE id = 1`)

	var s Session
	var displayName sql.NullString
	err := row.Scan(&s.UserID, &displayName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}

	s.DisplayName = dbutil.NullStringValue(displayName)
	return &s, nil
}

func saveSession(db *sql.DB, s Session) error {
	_, err := db.Exec(`
		INSERT INTO session (id, user_id, display_name)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			display_name = excluded.display_name
	`, s.UserID, s.DisplayName)
	return err
}

func clearSession(db *sql.DB) error {
	_, err := db.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}

// Settings is the persisted form of the settings substate.
type Settings struct {
	AudioQuality  string
	Gapless       bool
	Normalization bool
	Theme         string
	Notifications bool
}

// SnapshotSettings converts user settings to their persisted form.
func SnapshotSettings(s appstate.UserSettings) Settings {
	return Settings{
		AudioQuality:  string(s.AudioQuality),
		Gapless:       s.Gapless,
		Normalization: s.Normalization,
		Theme:         s.Theme,
		Notifications: s.Notifications,
	}
}

// Restore converts persisted settings back into the substate's form.
func (s Settings) Restore() appstate.UserSettings {
	return appstate.UserSettings{
		AudioQuality:  appstate.AudioQuality(s.AudioQuality),
		Gapless:       s.Gapless,
		Normalization: s.Normalization,
		Theme:         s.Theme,
		Notifications: s.Notifications,
	}
}

func getSettings(db *sql.DB) (*Settings, error) {
	row := db.QueryRow(`
		SELECT audio_quality, gapless, normalization, theme, notifications
		FROM settings WHERE id = 1
	`)

	var s Settings
	err := row.Scan(&s.AudioQuality, &s.Gapless, &s.Normalization, &s.Theme, &s.Notifications)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved settings is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func saveSettings(db *sql.DB, s Settings) error {
	_, err := db.Exec(`
		INSERT INTO settings (id, audio_quality, gapless, normalization, theme, notifications)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			audio_quality = excluded.audio_quality,
			gapless = excluded.gapless,
			normalization = excluded.normalization,
			theme = excluded.theme,
			notifications = excluded.notifications
	`, s.AudioQuality, s.Gapless, s.Normalization, s.Theme, s.Notifications)
	return err
}
