package store

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/ripple/internal/db"
	"github.com/llehouerou/ripple/internal/models"
)

// QueueSong is one saved queue entry, cut down to what a restart needs to
// show the queue before the backend re-resolves the tracks.
type QueueSong struct {
	ID       string
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// QueueSnapshot is the persisted form of the play queue.
type QueueSnapshot struct {
	CurrentIndex int
	RepeatMode   string
	Shuffle      bool
	Songs        []QueueSong
}

// SnapshotSongs converts playback queue songs to their persisted form.
func SnapshotSongs(songs []models.SongDescription) []QueueSong {
	out := make([]QueueSong, len(songs))
	for i, s := range songs {
		out[i] = QueueSong{
			ID:       s.ID,
			Title:    s.Title,
			Artist:   s.ArtistLine(),
			Album:    s.Album.Name,
			Duration: s.Duration,
		}
	}
	return out
}

// Restore converts saved entries back into song descriptions.
func (q QueueSnapshot) Restore() []models.SongDescription {
	out := make([]models.SongDescription, len(q.Songs))
	for i, s := range q.Songs {
		song := models.SongDescription{
			ID:       s.ID,
			Title:    s.Title,
			Album:    models.AlbumRef{Name: s.Album},
			Duration: s.Duration,
		}
		if s.Artist != "" {
			song.Artists = []models.ArtistRef{{Name: s.Artist}}
		}
		out[i] = song
	}
	return out
}

func getQueue(db *sql.DB) (*QueueSnapshot, error) {
	var currentIndex int
	var repeatMode string
	var shuffle bool
	row := db.QueryRow(`SELECT current_index, repeat_mode, shuffle FROM queue_state WHERE id = 1`)
	err := row.Scan(&currentIndex, &repeatMode, &shuffle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved queue is valid on first run
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT song_id, title, artist, album, duration_ms
		FROM queue_songs
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []QueueSong
	for rows.Next() {
		var s QueueSong
		var artist, album sql.NullString
		var durationMs sql.NullInt64

		if err := rows.Scan(&s.ID, &s.Title, &artist, &album, &durationMs); err != nil {
			return nil, err
		}

		s.Artist = dbutil.NullStringValue(artist)
		s.Album = dbutil.NullStringValue(album)
		s.Duration = time.Duration(dbutil.NullInt64Value(durationMs)) * time.Millisecond
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &QueueSnapshot{
		CurrentIndex: currentIndex,
		RepeatMode:   repeatMode,
		Shuffle:      shuffle,
		Songs:        songs,
	}, nil
}

func saveQueue(sqlDB *sql.DB, snapshot QueueSnapshot) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		// Clear existing queue
		if _, err := tx.Exec(`DELETE FROM queue_songs`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO queue_state (id, current_index, repeat_mode, shuffle)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				repeat_mode = excluded.repeat_mode,
				shuffle = excluded.shuffle
		`, snapshot.CurrentIndex, snapshot.RepeatMode, snapshot.Shuffle)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO queue_songs (position, song_id, title, artist, album, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, s := range snapshot.Songs {
			_, err = stmt.Exec(i, s.ID, s.Title, s.Artist, s.Album, s.Duration.Milliseconds())
			if err != nil {
				return err
			}
		}
		return nil
	})
}
