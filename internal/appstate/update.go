// Package appstate is the state-management core of ripple: one composite
// state tree, mutated only by dispatching actions, with every mutation
// reported as an ordered sequence of events.
//
// Dispatch is synchronous and single-threaded. The caller owns
// serialization (the bubbletea update loop here) and holds exclusive access
// to the AppState for the duration of each Update call. The core performs no
// I/O and schedules no work; it is a plain reducer over in-memory state.
package appstate

// Updatable is the update contract every substate satisfies: apply one
// action, return the resulting events in emission order.
type Updatable[A, E any] interface {
	UpdateWith(action A) []E
}

var (
	_ Updatable[PlaybackAction, PlaybackEvent]   = (*PlaybackState)(nil)
	_ Updatable[BrowserAction, BrowserEvent]     = (*BrowserState)(nil)
	_ Updatable[BrowserAction, BrowserEvent]     = (*HomeState)(nil)
	_ Updatable[SelectionAction, SelectionEvent] = (*SelectionState)(nil)
	_ Updatable[LoginAction, LoginEvent]         = (*LoginState)(nil)
	_ Updatable[SettingsAction, SettingsEvent]   = (*SettingsState)(nil)
)

// forwardAction applies a substate update and lifts the substate's events
// into the unified AppEvent type. It performs no logic of its own beyond
// the type lifting; every cross-cutting handler that delegates to one or
// more substates goes through it.
func forwardAction[A any, E AppEvent](update func(A) []E, action A) []AppEvent {
	events := update(action)
	if len(events) == 0 {
		return nil
	}
	lifted := make([]AppEvent, len(events))
	for i, e := range events {
		lifted[i] = e
	}
	return lifted
}
