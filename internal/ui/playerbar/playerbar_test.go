package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/models"
)

func TestNewStateEmpty(t *testing.T) {
	state := appstate.NewPlaybackState()
	p := &state
	s := NewState(p)
	if s.Title != "" {
		t.Errorf("Title = %q, want empty for stopped state", s.Title)
	}
	if out := Render(s, 80); out != "" {
		t.Errorf("Render of empty state = %q, want empty", out)
	}
}

func TestNewStateAndRender(t *testing.T) {
	state := appstate.NewPlaybackState()
	p := &state
	p.UpdateWith(appstate.Load{
		Songs: []models.SongDescription{{
			ID:       "s1",
			Title:    "Peg",
			Artists:  []models.ArtistRef{{ID: "a1", Name: "Steely Dan"}},
			Album:    models.AlbumRef{ID: "al1", Name: "Aja"},
			Duration: 3*time.Minute + 57*time.Second,
		}},
		CurrentID: "s1",
	})

	s := NewState(p)
	if !s.Playing {
		t.Error("Playing = false after Load")
	}
	if s.Artist != "Steely Dan" {
		t.Errorf("Artist = %q", s.Artist)
	}

	out := Render(s, 80)
	if !strings.Contains(out, "Peg") {
		t.Errorf("rendered bar missing title: %q", out)
	}
	if !strings.Contains(out, "3:57") {
		t.Errorf("rendered bar missing duration: %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61 * time.Second, "1:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRenderProgressBarNarrow(t *testing.T) {
	out := RenderProgressBar(30*time.Second, time.Minute, 10, true)
	if !strings.Contains(out, "0:30 / 1:00") {
		t.Errorf("narrow bar = %q, want times only", out)
	}
}

func TestModeFlags(t *testing.T) {
	s := State{RepeatMode: appstate.RepeatPlaylist, Shuffle: true}
	if got := modeFlags(s); got != "[rep:playlist] [shuf]" {
		t.Errorf("modeFlags = %q", got)
	}
	if got := modeFlags(State{}); got != "" {
		t.Errorf("modeFlags(zero) = %q, want empty", got)
	}
}
