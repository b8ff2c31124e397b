package models

import "time"

// AlbumDescription describes an album and its track listing.
type AlbumDescription struct {
	ID          string
	Title       string
	Artists     []ArtistRef
	ReleaseDate string
	ArtURL      string
	Songs       SongBatch
	IsLiked     bool
}

// Year returns the release year, or 0 if the release date is unknown.
func (a AlbumDescription) Year() int {
	if len(a.ReleaseDate) < 4 {
		return 0
	}
	t, err := time.Parse("2006", a.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return t.Year()
}

// ArtistDescription describes an artist page: name plus top releases.
type ArtistDescription struct {
	ID     string
	Name   string
	Albums []AlbumDescription
}
