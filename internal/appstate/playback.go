package appstate

import (
	"math/rand/v2"
	"time"

	"github.com/llehouerou/ripple/internal/models"
)

// RepeatMode controls queue advancement at track boundaries.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatSong
	RepeatPlaylist
)

// String returns the mode's persistence/display name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatSong:
		return "song"
	case RepeatPlaylist:
		return "playlist"
	default:
		return "none"
	}
}

// PlaybackAction is the inner sum of playback intents.
type PlaybackAction interface {
	AppAction
	playbackAction()
}

// Load replaces the queue and starts playing the song with CurrentID (the
// first song when CurrentID is not in the batch).
type Load struct {
	Songs     []models.SongDescription
	CurrentID string
}

// Play resumes a paused track, or starts the track with ID when set.
type Play struct {
	ID string
}

// Pause suspends playback, keeping the current track.
type Pause struct{}

// TogglePlay flips between playing and paused.
type TogglePlay struct{}

// StopPlayback halts playback and forgets the current track.
type StopPlayback struct{}

// Next advances to the following track, honoring the repeat mode.
type Next struct{}

// Previous goes back to the preceding track, honoring the repeat mode.
type Previous struct{}

// Seek moves the playback position within the current track.
type Seek struct {
	Position time.Duration
}

// SetRepeatMode selects the repeat mode.
type SetRepeatMode struct {
	Mode RepeatMode
}

// ToggleShuffle flips shuffle, reordering the queue (and restoring the
// original order when turned off).
type ToggleShuffle struct{}

func (Load) appAction()          {}
func (Play) appAction()          {}
func (Pause) appAction()         {}
func (TogglePlay) appAction()    {}
func (StopPlayback) appAction()  {}
func (Next) appAction()          {}
func (Previous) appAction()      {}
func (Seek) appAction()          {}
func (SetRepeatMode) appAction() {}
func (ToggleShuffle) appAction() {}

func (Load) playbackAction()          {}
func (Play) playbackAction()          {}
func (Pause) playbackAction()         {}
func (TogglePlay) playbackAction()    {}
func (StopPlayback) playbackAction()  {}
func (Next) playbackAction()          {}
func (Previous) playbackAction()      {}
func (Seek) playbackAction()          {}
func (SetRepeatMode) playbackAction() {}
func (ToggleShuffle) playbackAction() {}

// PlaybackEvent is the inner sum of playback change notifications.
type PlaybackEvent interface {
	AppEvent
	playbackEvent()
}

// PlaybackResumed reports the current track started or resumed playing.
type PlaybackResumed struct{}

// PlaybackPaused reports playback was suspended.
type PlaybackPaused struct{}

// PlaybackStopped reports playback halted with no current track.
type PlaybackStopped struct{}

// TrackChanged reports a different track became current.
type TrackChanged struct {
	ID string
}

// TrackSeeked reports a position change within the current track.
type TrackSeeked struct {
	Position time.Duration
}

// RepeatModeChanged reports a repeat mode change.
type RepeatModeChanged struct {
	Mode RepeatMode
}

// ShuffleChanged reports shuffle being turned on or off.
type ShuffleChanged struct {
	Enabled bool
}

// PlaylistChanged reports any change to the queue's contents or order.
type PlaylistChanged struct{}

func (PlaybackResumed) appEvent()   {}
func (PlaybackPaused) appEvent()    {}
func (PlaybackStopped) appEvent()   {}
func (TrackChanged) appEvent()      {}
func (TrackSeeked) appEvent()       {}
func (RepeatModeChanged) appEvent() {}
func (ShuffleChanged) appEvent()    {}
func (PlaylistChanged) appEvent()   {}

func (PlaybackResumed) playbackEvent()   {}
func (PlaybackPaused) playbackEvent()    {}
func (PlaybackStopped) playbackEvent()   {}
func (TrackChanged) playbackEvent()      {}
func (TrackSeeked) playbackEvent()       {}
func (RepeatModeChanged) playbackEvent() {}
func (ShuffleChanged) playbackEvent()    {}
func (PlaylistChanged) playbackEvent()   {}

// PlaybackState is the playback substate: the play queue, the current
// track, and the transport flags the UI and MPRIS reflect. The actual audio
// transport lives outside the core; this is its source of truth.
type PlaybackState struct {
	songs        []models.SongDescription
	currentIndex int // -1 when nothing is current
	playing      bool
	position     time.Duration
	repeatMode   RepeatMode
	shuffle      bool
	unshuffled   []models.SongDescription // original order while shuffled
}

// NewPlaybackState returns an empty, stopped playback state.
func NewPlaybackState() PlaybackState {
	return PlaybackState{currentIndex: -1}
}

// Songs returns the queue in play order.
func (p *PlaybackState) Songs() []models.SongDescription {
	out := make([]models.SongDescription, len(p.songs))
	copy(out, p.songs)
	return out
}

// Len returns the queue length.
func (p *PlaybackState) Len() int {
	return len(p.songs)
}

// CurrentIndex returns the index of the current track, -1 when none.
func (p *PlaybackState) CurrentIndex() int {
	if p.currentIndex >= len(p.songs) {
		return -1
	}
	return p.currentIndex
}

// CurrentSong returns the current track, or nil when nothing is current.
func (p *PlaybackState) CurrentSong() *models.SongDescription {
	i := p.CurrentIndex()
	if i < 0 {
		return nil
	}
	song := p.songs[i]
	return &song
}

// IsPlaying reports whether a track is actively playing.
func (p *PlaybackState) IsPlaying() bool {
	return p.playing && p.CurrentIndex() >= 0
}

// Position returns the playback position within the current track.
func (p *PlaybackState) Position() time.Duration {
	return p.position
}

// RepeatMode returns the active repeat mode.
func (p *PlaybackState) RepeatMode() RepeatMode {
	return p.repeatMode
}

// Shuffle reports whether shuffle is on.
func (p *PlaybackState) Shuffle() bool {
	return p.shuffle
}

// Queue appends songs to the end of the queue, preserving their order.
func (p *PlaybackState) Queue(songs []models.SongDescription) {
	p.songs = append(p.songs, songs...)
	if p.shuffle {
		p.unshuffled = append(p.unshuffled, songs...)
	}
}

// Dequeue removes all songs with the given ids, keeping the current track's
// identity stable when it survives the removal.
func (p *PlaybackState) Dequeue(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	var currentID string
	if cur := p.CurrentSong(); cur != nil {
		currentID = cur.ID
	}

	kept := p.songs[:0]
	for _, s := range p.songs {
		if _, ok := drop[s.ID]; ok {
			continue
		}
		kept = append(kept, s)
	}
	p.songs = kept

	if p.shuffle {
		keptOrig := p.unshuffled[:0]
		for _, s := range p.unshuffled {
			if _, ok := drop[s.ID]; ok {
				continue
			}
			keptOrig = append(keptOrig, s)
		}
		p.unshuffled = keptOrig
	}

	p.currentIndex = p.indexOf(currentID)
	if p.currentIndex < 0 {
		p.playing = false
		p.position = 0
	}
}

// MoveUp swaps the song with the given id one position toward the front.
// Reports false when the id is absent or already first.
func (p *PlaybackState) MoveUp(id string) bool {
	i := p.indexOf(id)
	if i <= 0 {
		return false
	}
	p.swap(i, i-1)
	return true
}

// MoveDown swaps the song with the given id one position toward the back.
// Reports false when the id is absent or already last.
func (p *PlaybackState) MoveDown(id string) bool {
	i := p.indexOf(id)
	if i < 0 || i >= len(p.songs)-1 {
		return false
	}
	p.swap(i, i+1)
	return true
}

func (p *PlaybackState) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, s := range p.songs {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (p *PlaybackState) swap(i, j int) {
	p.songs[i], p.songs[j] = p.songs[j], p.songs[i]
	switch p.currentIndex {
	case i:
		p.currentIndex = j
	case j:
		p.currentIndex = i
	}
}

// UpdateWith applies a playback action.
func (p *PlaybackState) UpdateWith(action PlaybackAction) []PlaybackEvent {
	switch a := action.(type) {
	case Load:
		return p.load(a.Songs, a.CurrentID)
	case Play:
		return p.play(a.ID)
	case Pause:
		if !p.IsPlaying() {
			return nil
		}
		p.playing = false
		return []PlaybackEvent{PlaybackPaused{}}
	case TogglePlay:
		if p.IsPlaying() {
			return p.UpdateWith(Pause{})
		}
		return p.UpdateWith(Play{})
	case StopPlayback:
		if p.CurrentIndex() < 0 {
			return nil
		}
		p.playing = false
		p.currentIndex = -1
		p.position = 0
		return []PlaybackEvent{PlaybackStopped{}}
	case Next:
		return p.step(1)
	case Previous:
		return p.step(-1)
	case Seek:
		if p.CurrentIndex() < 0 {
			return nil
		}
		p.position = a.Position
		return []PlaybackEvent{TrackSeeked{Position: a.Position}}
	case SetRepeatMode:
		if p.repeatMode == a.Mode {
			return nil
		}
		p.repeatMode = a.Mode
		return []PlaybackEvent{RepeatModeChanged{Mode: a.Mode}}
	case ToggleShuffle:
		return p.toggleShuffle()
	default:
		return nil
	}
}

func (p *PlaybackState) load(songs []models.SongDescription, currentID string) []PlaybackEvent {
	p.songs = append([]models.SongDescription(nil), songs...)
	p.unshuffled = nil
	p.shuffle = false
	p.position = 0

	events := []PlaybackEvent{PlaylistChanged{}}
	if len(p.songs) == 0 {
		p.currentIndex = -1
		p.playing = false
		return events
	}

	p.currentIndex = p.indexOf(currentID)
	if p.currentIndex < 0 {
		p.currentIndex = 0
	}
	p.playing = true
	return append(events, TrackChanged{ID: p.songs[p.currentIndex].ID}, PlaybackResumed{})
}

func (p *PlaybackState) play(id string) []PlaybackEvent {
	if id != "" {
		i := p.indexOf(id)
		if i < 0 {
			return nil
		}
		changed := i != p.CurrentIndex()
		p.currentIndex = i
		p.position = 0
		p.playing = true
		if changed {
			return []PlaybackEvent{TrackChanged{ID: id}, PlaybackResumed{}}
		}
		return []PlaybackEvent{PlaybackResumed{}}
	}

	if p.playing || p.CurrentIndex() < 0 {
		return nil
	}
	p.playing = true
	return []PlaybackEvent{PlaybackResumed{}}
}

// step advances the current index by delta, honoring RepeatPlaylist at the
// queue boundaries. RepeatSong only affects automatic advancement in the
// transport, not explicit Next/Previous.
func (p *PlaybackState) step(delta int) []PlaybackEvent {
	cur := p.CurrentIndex()
	if cur < 0 || len(p.songs) == 0 {
		return nil
	}

	next := cur + delta
	if next < 0 || next >= len(p.songs) {
		if p.repeatMode != RepeatPlaylist {
			return nil
		}
		next = (next + len(p.songs)) % len(p.songs)
	}
	if next == cur {
		return nil
	}

	p.currentIndex = next
	p.position = 0
	return []PlaybackEvent{TrackChanged{ID: p.songs[next].ID}}
}

func (p *PlaybackState) toggleShuffle() []PlaybackEvent {
	var currentID string
	if cur := p.CurrentSong(); cur != nil {
		currentID = cur.ID
	}

	if p.shuffle {
		p.songs = p.unshuffled
		p.unshuffled = nil
		p.shuffle = false
	} else {
		p.unshuffled = append([]models.SongDescription(nil), p.songs...)
		rand.Shuffle(len(p.songs), func(i, j int) {
			p.songs[i], p.songs[j] = p.songs[j], p.songs[i]
		})
		p.shuffle = true
	}

	p.currentIndex = p.indexOf(currentID)
	return []PlaybackEvent{ShuffleChanged{Enabled: p.shuffle}, PlaylistChanged{}}
}
