// Package mpris exposes playback over the MPRIS D-Bus interface so
// desktop media controls can drive the player.
package mpris

import (
	"time"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/models"
)

// Status is a snapshot of playback for the D-Bus side. The server
// queries it from D-Bus goroutines, so the adapter keeps its own copy
// behind a mutex instead of reaching into live state.
type Status struct {
	Playing     bool
	Song        *models.SongDescription
	Position    time.Duration
	RepeatMode  appstate.RepeatMode
	Shuffle     bool
	HasNext     bool
	HasPrevious bool
	QueueEmpty  bool
}

// SnapshotStatus captures the current playback state.
func SnapshotStatus(p *appstate.PlaybackState) Status {
	s := Status{
		Playing:    p.IsPlaying(),
		Position:   p.Position(),
		RepeatMode: p.RepeatMode(),
		Shuffle:    p.Shuffle(),
		QueueEmpty: p.Len() == 0,
	}
	if song := p.CurrentSong(); song != nil {
		copied := *song
		s.Song = &copied
	}
	idx := p.CurrentIndex()
	s.HasPrevious = idx > 0
	s.HasNext = idx >= 0 && (idx < p.Len()-1 || p.RepeatMode() == appstate.RepeatPlaylist)
	return s
}
