package appstate

import "github.com/llehouerou/ripple/internal/models"

// SelectionContext describes what kind of items are being multi-selected.
// The active context gates which batch operations are meaningful: queue
// reordering only makes sense for a queue selection, unsave only for saved
// tracks, and so on. The UI decides the gating; the substate only records
// the context.
type SelectionContext int

const (
	SelectionContextDefault SelectionContext = iota
	SelectionContextQueue
	SelectionContextSavedTracks
	SelectionContextPlaylist
)

// SelectionAction is the inner sum of selection intents.
type SelectionAction interface {
	AppAction
	selectionAction()
}

// Select adds a song to the selection buffer. Ignored outside selection
// mode and for songs already selected.
type Select struct {
	Song models.SongDescription
}

// Deselect removes a song from the selection buffer by id.
type Deselect struct {
	ID string
}

// ClearSelection empties the buffer without leaving selection mode.
type ClearSelection struct{}

func (Select) appAction()         {}
func (Deselect) appAction()       {}
func (ClearSelection) appAction() {}

func (Select) selectionAction()         {}
func (Deselect) selectionAction()       {}
func (ClearSelection) selectionAction() {}

// SelectionEvent is the inner sum of selection change notifications.
type SelectionEvent interface {
	AppEvent
	selectionEvent()
}

// SelectionModeChanged reports entering or leaving selection mode.
type SelectionModeChanged struct {
	Active bool
}

// SelectionChanged reports a change to the selection buffer's contents.
type SelectionChanged struct{}

func (SelectionModeChanged) appEvent() {}
func (SelectionChanged) appEvent()     {}

func (SelectionModeChanged) selectionEvent() {}
func (SelectionChanged) selectionEvent()     {}

// SelectionState is the multi-selection substate: an on/off mode with a
// typed context and an ordered, id-deduplicated buffer of picked songs.
type SelectionState struct {
	active  bool
	context SelectionContext
	songs   []models.SongDescription
}

// Active reports whether selection mode is on.
func (s *SelectionState) Active() bool {
	return s.active
}

// Context returns the active selection context. Meaningless when inactive.
func (s *SelectionState) Context() SelectionContext {
	return s.context
}

// Count returns the number of selected songs.
func (s *SelectionState) Count() int {
	return len(s.songs)
}

// IsSelected reports whether the song with the given id is in the buffer.
func (s *SelectionState) IsSelected(id string) bool {
	for _, song := range s.songs {
		if song.ID == id {
			return true
		}
	}
	return false
}

// SetMode sets (non-nil context) or clears (nil) selection mode. The
// returned changed flag is false when the request is a no-op: enabling the
// context already active, or cancelling while inactive. Any actual
// transition empties the buffer.
func (s *SelectionState) SetMode(context *SelectionContext) (active, changed bool) {
	switch {
	case context != nil && s.active && s.context == *context:
		return s.active, false
	case context == nil && !s.active:
		return false, false
	}

	s.songs = nil
	if context == nil {
		s.active = false
		s.context = SelectionContextDefault
	} else {
		s.active = true
		s.context = *context
	}
	return s.active, true
}

// Drain returns the selected songs in pick order, empties the buffer and
// leaves selection mode.
func (s *SelectionState) Drain() []models.SongDescription {
	songs := s.songs
	s.songs = nil
	s.active = false
	s.context = SelectionContextDefault
	return songs
}

// Peek returns the selected songs in pick order without mutating anything.
// Callers treat the slice as a cursor: a fresh Peek starts over from the
// first picked song.
func (s *SelectionState) Peek() []models.SongDescription {
	out := make([]models.SongDescription, len(s.songs))
	copy(out, s.songs)
	return out
}

// UpdateWith applies a selection action.
func (s *SelectionState) UpdateWith(action SelectionAction) []SelectionEvent {
	switch a := action.(type) {
	case Select:
		if !s.active || s.IsSelected(a.Song.ID) {
			return nil
		}
		s.songs = append(s.songs, a.Song)
		return []SelectionEvent{SelectionChanged{}}
	case Deselect:
		for i, song := range s.songs {
			if song.ID == a.ID {
				s.songs = append(s.songs[:i], s.songs[i+1:]...)
				return []SelectionEvent{SelectionChanged{}}
			}
		}
		return nil
	case ClearSelection:
		if len(s.songs) == 0 {
			return nil
		}
		s.songs = nil
		return []SelectionEvent{SelectionChanged{}}
	default:
		return nil
	}
}
