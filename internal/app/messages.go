package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/appstate"
)

// ActionMsg carries an action from outside the update loop (MPRIS,
// startup) into the dispatch funnel.
type ActionMsg struct {
	Action appstate.AppAction
}

// TickMsg drives the playback position while a track is playing.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
