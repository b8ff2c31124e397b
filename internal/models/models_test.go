package models

import (
	"testing"
	"time"
)

func song(id, title string, artists ...string) SongDescription {
	refs := make([]ArtistRef, len(artists))
	for i, a := range artists {
		refs[i] = ArtistRef{ID: "artist:" + a, Name: a}
	}
	return SongDescription{
		ID:       id,
		Title:    title,
		Artists:  refs,
		Duration: 3 * time.Minute,
	}
}

func TestArtistLine(t *testing.T) {
	tests := []struct {
		name     string
		song     SongDescription
		expected string
	}{
		{"no artists", song("1", "t"), ""},
		{"single artist", song("1", "t", "Nina Simone"), "Nina Simone"},
		{"multiple artists", song("1", "t", "A", "B"), "A, B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.song.ArtistLine(); got != tt.expected {
				t.Errorf("ArtistLine() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSongIDs(t *testing.T) {
	songs := []SongDescription{song("a", "one"), song("b", "two")}
	ids := SongIDs(songs)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("SongIDs() = %v, want [a b]", ids)
	}
}

func TestBatchNextOffset(t *testing.T) {
	tests := []struct {
		name     string
		batch    Batch
		expected int
	}{
		{"more pages", Batch{Offset: 0, BatchSize: 50, Total: 120}, 50},
		{"last page", Batch{Offset: 100, BatchSize: 50, Total: 120}, -1},
		{"exact boundary", Batch{Offset: 50, BatchSize: 50, Total: 100}, -1},
		{"empty listing", Batch{}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.batch.NextOffset(); got != tt.expected {
				t.Errorf("NextOffset() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestSongBatchJoin(t *testing.T) {
	first := SongBatch{
		Songs: []SongDescription{song("a", "one"), song("b", "two")},
		Batch: Batch{Offset: 0, BatchSize: 2, Total: 4},
	}
	second := SongBatch{
		Songs: []SongDescription{song("c", "three")},
		Batch: Batch{Offset: 2, BatchSize: 1, Total: 4},
	}

	joined, ok := first.Join(second)
	if !ok {
		t.Fatal("Join() refused a contiguous batch")
	}
	if len(joined.Songs) != 3 {
		t.Fatalf("joined batch has %d songs, want 3", len(joined.Songs))
	}
	if joined.Batch.Total != 4 {
		t.Errorf("joined total = %d, want 4", joined.Batch.Total)
	}

	// Non-contiguous pages must be refused.
	gap := SongBatch{
		Songs: []SongDescription{song("x", "late")},
		Batch: Batch{Offset: 10, BatchSize: 1, Total: 4},
	}
	if _, ok := first.Join(gap); ok {
		t.Error("Join() accepted a non-contiguous batch")
	}
}

func TestAlbumYear(t *testing.T) {
	a := AlbumDescription{ReleaseDate: "1969-01-12"}
	if got := a.Year(); got != 1969 {
		t.Errorf("Year() = %d, want 1969", got)
	}
	if got := (AlbumDescription{}).Year(); got != 0 {
		t.Errorf("Year() on empty date = %d, want 0", got)
	}
}
