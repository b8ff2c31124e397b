// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"

	"github.com/llehouerou/ripple/internal/models"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// TrackNotification builds the now-playing notification for a song.
// ReplacesID lets successive track changes reuse one notification slot.
func TrackNotification(song models.SongDescription, replacesID uint32) Notification {
	body := song.ArtistLine()
	if song.Album.Name != "" {
		if body != "" {
			body = fmt.Sprintf("%s - %s", body, song.Album.Name)
		} else {
			body = song.Album.Name
		}
	}
	return Notification{
		Title:      song.Title,
		Body:       body,
		Icon:       "media-playback-start",
		Timeout:    -1,
		ReplacesID: replacesID,
		Urgency:    UrgencyLow,
	}
}

// TextNotification builds a plain informational notification.
func TextNotification(text string) Notification {
	return Notification{
		Title:   "Ripple",
		Body:    text,
		Timeout: -1,
		Urgency: UrgencyNormal,
	}
}
