// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionHelp       Action = "help"
	ActionSearch     Action = "search"
	ActionNowPlaying Action = "now_playing"
	ActionGoHome     Action = "go_home"
	ActionGoBack     Action = "go_back"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionStop          Action = "stop"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionSelect    Action = "select" // enter - open/activate

	// Selection actions
	ActionToggleSelect     Action = "toggle_select"     // x - toggle selection on the cursor row
	ActionClearSelect      Action = "clear_select"      // esc - cancel selection mode
	ActionQueueSelection   Action = "queue_selection"   // a - append selection to the play queue
	ActionDequeueSelection Action = "dequeue_selection" // d - remove selection from the play queue
	ActionMoveItemUp       Action = "move_item_up"      // shift+k
	ActionMoveItemDown     Action = "move_item_down"    // shift+j
	ActionSaveSelection    Action = "save_selection"    // f - add selection to saved tracks
	ActionUnsaveSelection  Action = "unsave_selection"  // F

	// Playlist management actions
	ActionNewPlaylist    Action = "new_playlist" // n
	ActionRenamePlaylist Action = "rename"       // ctrl+r

	// Session actions
	ActionLogout Action = "logout" // ctrl+l
)
