package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigator", "selection", "playlist"
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionNowPlaying, []string{"p"}, "Now playing view", "global"},
	{ActionGoHome, []string{"f1"}, "Home view", "global"},
	{ActionGoBack, []string{"backspace"}, "Previous view", "global"},
	{ActionLogout, []string{"ctrl+l"}, "Log out", "global"},

	// Playback
	{ActionPlayPause, []string{"space"}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"pgup"}, "Previous track", "playback"},
	{ActionSeekBack, []string{"shift+left"}, "Seek -5s", "playback"},
	{ActionSeekForward, []string{"shift+right"}, "Seek +5s", "playback"},
	{ActionCycleRepeat, []string{"R"}, "Cycle repeat mode", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},

	// Navigator
	{ActionMoveLeft, []string{"h", "left"}, "Back", "navigator"},
	{ActionMoveRight, []string{"l", "right"}, "Open", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionJumpStart, []string{"g"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G"}, "Last item", "navigator"},
	{ActionPageUp, []string{"ctrl+u"}, "Page up", "navigator"},
	{ActionPageDown, []string{"ctrl+d"}, "Page down", "navigator"},
	{ActionSelect, []string{"enter"}, "Open/play", "navigator"},

	// Selection
	{ActionToggleSelect, []string{"x"}, "Toggle selection", "selection"},
	{ActionClearSelect, []string{"esc"}, "Cancel selection", "selection"},
	{ActionQueueSelection, []string{"a"}, "Add selection to queue", "selection"},
	{ActionDequeueSelection, []string{"d", "delete"}, "Remove selection from queue", "selection"},
	{ActionMoveItemUp, []string{"shift+k", "K"}, "Move selection up", "selection"},
	{ActionMoveItemDown, []string{"shift+j", "J"}, "Move selection down", "selection"},
	{ActionSaveSelection, []string{"f"}, "Save selected tracks", "selection"},
	{ActionUnsaveSelection, []string{"F"}, "Unsave selected tracks", "selection"},

	// Playlist management
	{ActionNewPlaylist, []string{"n"}, "New playlist", "playlist"},
	{ActionRenamePlaylist, []string{"ctrl+r"}, "Rename playlist", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
