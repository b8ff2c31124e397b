package models

// Batch describes the paging window of a remote listing.
type Batch struct {
	Offset    int
	BatchSize int
	Total     int
}

// NextOffset returns the offset of the following page, or -1 when the
// listing is exhausted.
func (b Batch) NextOffset() int {
	next := b.Offset + b.BatchSize
	if next >= b.Total {
		return -1
	}
	return next
}

// SongBatch is one page of songs within a larger listing.
type SongBatch struct {
	Songs []SongDescription
	Batch Batch
}

// EmptySongBatch returns a batch representing an unloaded listing.
func EmptySongBatch() SongBatch {
	return SongBatch{}
}

// Join appends a following page to this batch. The append is refused (ok ==
// false) unless other starts exactly where this batch ends.
func (s SongBatch) Join(other SongBatch) (SongBatch, bool) {
	if len(s.Songs) > 0 && other.Batch.Offset != s.Batch.Offset+len(s.Songs) {
		return s, false
	}
	songs := make([]SongDescription, 0, len(s.Songs)+len(other.Songs))
	songs = append(songs, s.Songs...)
	songs = append(songs, other.Songs...)
	return SongBatch{
		Songs: songs,
		Batch: Batch{
			Offset:    s.Batch.Offset,
			BatchSize: len(songs),
			Total:     other.Batch.Total,
		},
	}, true
}
