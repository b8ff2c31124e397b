package models

// PlaylistDescription describes a playlist and a page of its tracks.
type PlaylistDescription struct {
	ID          string
	Title       string
	Description string
	ArtURL      string
	Songs       SongBatch
	Owner       UserRef
}

// Summary reduces a playlist description to the fields a rename touches.
func (p PlaylistDescription) Summary() PlaylistSummary {
	return PlaylistSummary{ID: p.ID, Title: p.Title}
}

// PlaylistSummary carries just enough of a playlist to update a listing.
type PlaylistSummary struct {
	ID    string
	Title string
}

// UserRef identifies a playlist owner.
type UserRef struct {
	ID          string
	DisplayName string
}
