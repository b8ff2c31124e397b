package mpris

import (
	"testing"
	"time"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/models"
)

func testSongs(n int) []models.SongDescription {
	songs := make([]models.SongDescription, 0, n)
	for i := 0; i < n; i++ {
		songs = append(songs, models.SongDescription{
			ID:       string(rune('a' + i)),
			Title:    "Song " + string(rune('A'+i)),
			Duration: 3 * time.Minute,
		})
	}
	return songs
}

func TestSnapshotStatusEmpty(t *testing.T) {
	state := appstate.NewPlaybackState()
	p := &state
	s := SnapshotStatus(p)

	if !s.QueueEmpty {
		t.Error("QueueEmpty = false for a fresh state")
	}
	if s.Song != nil {
		t.Errorf("Song = %v, want nil", s.Song)
	}
	if s.HasNext || s.HasPrevious {
		t.Error("empty queue should have neither next nor previous")
	}
}

func TestSnapshotStatusPlaying(t *testing.T) {
	state := appstate.NewPlaybackState()
	p := &state
	p.UpdateWith(appstate.Load{Songs: testSongs(3), CurrentID: "b"})

	s := SnapshotStatus(p)
	if !s.Playing {
		t.Error("Playing = false after Load")
	}
	if s.Song == nil || s.Song.ID != "b" {
		t.Errorf("Song = %v, want ID %q", s.Song, "b")
	}
	if !s.HasNext {
		t.Error("HasNext = false with a song after current")
	}
	if !s.HasPrevious {
		t.Error("HasPrevious = false with a song before current")
	}

	// Snapshot holds a copy, not a pointer into live state
	s.Song.Title = "mutated"
	if got := p.CurrentSong().Title; got == "mutated" {
		t.Error("snapshot song aliases live state")
	}
}

func TestSnapshotStatusRepeatWraps(t *testing.T) {
	state := appstate.NewPlaybackState()
	p := &state
	p.UpdateWith(appstate.Load{Songs: testSongs(2), CurrentID: "b"})

	if s := SnapshotStatus(p); s.HasNext {
		t.Error("HasNext = true at end of queue without repeat")
	}

	p.UpdateWith(appstate.SetRepeatMode{Mode: appstate.RepeatPlaylist})
	if s := SnapshotStatus(p); !s.HasNext {
		t.Error("HasNext = false at end of queue with playlist repeat")
	}
}
