//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/ripple/internal/appstate"
)

// Adapter connects the state engine to MPRIS over D-Bus. Commands
// arriving from D-Bus are turned into actions and handed to dispatch,
// which must be safe to call from any goroutine.
type Adapter struct {
	dispatch func(appstate.AppAction)
	server   *server.Server

	mu     sync.Mutex
	status Status
}

// New creates and starts a new MPRIS adapter.
func New(dispatch func(appstate.AppAction)) (*Adapter, error) {
	a := &Adapter{dispatch: dispatch}

	rootAdapter := &rootAdapter{adapter: a}
	playerAdapter := &playerAdapter{adapter: a}

	a.server = server.NewServer("ripple", rootAdapter, playerAdapter)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// SetStatus publishes a fresh playback snapshot for D-Bus queries.
func (a *Adapter) SetStatus(s Status) {
	a.mu.Lock()
	a.status = s
	a.mu.Unlock()
}

func (a *Adapter) snapshot() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	adapter *Adapter
}

func (r *rootAdapter) Raise() error {
	r.adapter.dispatch(appstate.Raise{})
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return true, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil // Track list interface not implemented
}

func (r *rootAdapter) Identity() (string, error) {
	return "Ripple", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"spotify"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	adapter *Adapter
}

func (p *playerAdapter) Next() error {
	p.adapter.dispatch(appstate.Next{})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.adapter.dispatch(appstate.Previous{})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.adapter.dispatch(appstate.Pause{})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.adapter.dispatch(appstate.TogglePlay{})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.adapter.dispatch(appstate.StopPlayback{})
	return nil
}

func (p *playerAdapter) Play() error {
	if !p.adapter.snapshot().Playing {
		p.adapter.dispatch(appstate.TogglePlay{})
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	position := p.adapter.snapshot().Position + time.Duration(offset)*time.Microsecond
	if position < 0 {
		position = 0
	}
	p.adapter.dispatch(appstate.Seek{Position: position})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.adapter.dispatch(appstate.Seek{Position: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(uri string) error {
	if action := appstate.OpenURI(uri); action != nil {
		p.adapter.dispatch(action)
	}
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.adapter.snapshot()
	switch {
	case s.Song == nil:
		return types.PlaybackStatusStopped, nil
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	song := p.adapter.snapshot().Song
	if song == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(song.ID)),
		Length:      types.Microseconds(song.Duration.Microseconds()),
		Title:       song.Title,
		Artist:      song.ArtistNames(),
		Album:       song.Album.Name,
		TrackNumber: song.TrackNumber,
	}
	if song.ArtURL != "" {
		meta.ArtUrl = song.ArtURL
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume control not exposed
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.adapter.snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.adapter.snapshot().HasNext, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.adapter.snapshot().HasPrevious, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return !p.adapter.snapshot().QueueEmpty, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	switch p.adapter.snapshot().RepeatMode {
	case appstate.RepeatSong:
		return types.LoopStatusTrack, nil
	case appstate.RepeatPlaylist:
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	switch status {
	case types.LoopStatusNone:
		p.adapter.dispatch(appstate.SetRepeatMode{Mode: appstate.RepeatNone})
	case types.LoopStatusTrack:
		p.adapter.dispatch(appstate.SetRepeatMode{Mode: appstate.RepeatSong})
	case types.LoopStatusPlaylist:
		p.adapter.dispatch(appstate.SetRepeatMode{Mode: appstate.RepeatPlaylist})
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.adapter.snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if shuffle != p.adapter.snapshot().Shuffle {
		p.adapter.dispatch(appstate.ToggleShuffle{})
	}
	return nil
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
