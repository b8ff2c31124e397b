package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/appstate"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/store"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// dispatch runs one action through the engine and applies the resulting
// event sequence in order.
func (m *Model) dispatch(action appstate.AppAction) tea.Cmd {
	events, err := m.state.Update(action)
	if err != nil {
		if errors.Is(err, appstate.ErrHomeNotReady) {
			m.status = "Home content is still loading"
		} else {
			m.errMsg = err.Error()
		}
		return nil
	}
	return m.applyEvents(events)
}

func (m *Model) applyEvents(events []appstate.AppEvent) tea.Cmd {
	var cmds []tea.Cmd

	for _, ev := range events {
		switch ev := ev.(type) {
		case appstate.NotificationShown:
			m.status = ev.Content
			m.notifyText(ev.Content)

		case appstate.PlaylistCreatedNotificationShown:
			m.status = "Your playlist has been created."
			m.notifyText(m.status)

		case appstate.TrackChanged:
			m.notifyTrack()
			m.saveQueue()

		case appstate.PlaylistChanged, appstate.RepeatModeChanged, appstate.ShuffleChanged:
			m.saveQueue()

		case appstate.PlaybackResumed:
			if !m.ticking {
				m.ticking = true
				cmds = append(cmds, tickCmd())
			}

		case appstate.SettingsChanged:
			if err := m.store.SaveSettings(store.SnapshotSettings(ev.Settings)); err != nil {
				m.errMsg = err.Error()
			}
			m.theme = styles.ByName(ev.Settings.Theme)

		case appstate.LoginCompleted:
			session := store.Session{UserID: ev.User.ID, DisplayName: ev.User.DisplayName}
			if err := m.store.SaveSession(session); err != nil {
				m.errMsg = err.Error()
			}

		case appstate.LogoutCompleted:
			if err := m.store.ClearSession(); err != nil {
				m.errMsg = err.Error()
			}
			m.status = "Logged out"

		case appstate.NowPlayingShown:
			m.nowPlaying = true
			if idx := m.state.Playback.CurrentIndex(); idx >= 0 {
				m.cursor = idx
			}

		case appstate.NavigationPushed, appstate.NavigationPopped:
			m.nowPlaying = false
			m.cursor = 0

		case appstate.SelectionModeChanged:
			if ev.Active {
				m.status = "Selection mode"
			} else {
				m.status = ""
			}
		}
	}

	m.pushMprisStatus()
	m.clampCursor()
	return tea.Batch(cmds...)
}

// saveQueue persists the current queue through the store's debounce.
func (m *Model) saveQueue() {
	p := &m.state.Playback
	m.store.SaveQueue(store.QueueSnapshot{
		CurrentIndex: p.CurrentIndex(),
		RepeatMode:   p.RepeatMode().String(),
		Shuffle:      p.Shuffle(),
		Songs:        store.SnapshotSongs(p.Songs()),
	})
}

func (m *Model) pushMprisStatus() {
	if m.mpris != nil {
		m.mpris.SetStatus(mpris.SnapshotStatus(&m.state.Playback))
	}
}

func (m *Model) notificationsEnabled() bool {
	return m.state.Settings.Settings().Notifications
}

func (m *Model) notifyText(text string) {
	if m.notifier == nil || !m.notificationsEnabled() {
		return
	}
	if _, err := m.notifier.Notify(notify.TextNotification(text)); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *Model) notifyTrack() {
	if m.notifier == nil || !m.notificationsEnabled() {
		return
	}
	song := m.state.Playback.CurrentSong()
	if song == nil {
		return
	}
	id, err := m.notifier.Notify(notify.TrackNotification(*song, m.trackNotifID))
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.trackNotifID = id
}
