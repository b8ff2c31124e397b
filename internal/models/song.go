// Package models defines the data descriptions shared by the state core and
// the UI: songs, albums, playlists and their paging batches.
package models

import (
	"strings"
	"time"
)

// ArtistRef identifies an artist by id and display name.
type ArtistRef struct {
	ID   string
	Name string
}

// AlbumRef identifies the album a song belongs to.
type AlbumRef struct {
	ID   string
	Name string
}

// SongDescription describes a single playable track.
type SongDescription struct {
	ID          string
	TrackNumber int
	Title       string
	Artists     []ArtistRef
	Album       AlbumRef
	Duration    time.Duration
	ArtURL      string
	URI         string
}

// ArtistNames returns the display names of all artists.
func (s SongDescription) ArtistNames() []string {
	names := make([]string, len(s.Artists))
	for i, a := range s.Artists {
		names[i] = a.Name
	}
	return names
}

// ArtistLine joins all artist names for single-line display.
func (s SongDescription) ArtistLine() string {
	return strings.Join(s.ArtistNames(), ", ")
}

// SongIDs extracts the ids of a slice of songs, preserving order.
func SongIDs(songs []SongDescription) []string {
	ids := make([]string, len(songs))
	for i, s := range songs {
		ids[i] = s.ID
	}
	return ids
}
