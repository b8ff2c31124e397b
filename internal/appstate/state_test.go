package appstate

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/llehouerou/ripple/internal/models"
)

func testSong(id, title string) models.SongDescription {
	return models.SongDescription{
		ID:       id,
		Title:    title,
		Artists:  []models.ArtistRef{{ID: "artist:1", Name: "Test Artist"}},
		Album:    models.AlbumRef{ID: "album:1", Name: "Test Album"},
		Duration: 3 * time.Minute,
	}
}

// dispatch applies an action and fails the test on an unexpected error.
func dispatch(t *testing.T, s *AppState, action AppAction) []AppEvent {
	t.Helper()
	events, err := s.Update(action)
	if err != nil {
		t.Fatalf("Update(%T) returned error: %v", action, err)
	}
	return events
}

// assertEvents compares an event sequence against the expected one, order
// included.
func assertEvents(t *testing.T, got []AppEvent, want ...AppEvent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events (%#v), want %d (%#v)", len(got), got, len(want), want)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("event[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

// selectSongs enters selection mode and picks the given songs.
func selectSongs(t *testing.T, s *AppState, context SelectionContext, songs ...models.SongDescription) {
	t.Helper()
	dispatch(t, s, EnableSelection{Context: context})
	for _, song := range songs {
		dispatch(t, s, Select{Song: song})
	}
	if s.Selection.Count() != len(songs) {
		t.Fatalf("selection holds %d songs after setup, want %d", s.Selection.Count(), len(songs))
	}
}

func TestStart_AcceptedOnce(t *testing.T) {
	s := New()

	assertEvents(t, dispatch(t, s, Start{}), Started{})
	if !s.Started() {
		t.Error("started flag not set after Start")
	}

	// Second Start is absorbed silently.
	assertEvents(t, dispatch(t, s, Start{}))
	if !s.Started() {
		t.Error("started flag lost after second Start")
	}
}

func TestPureNotifications(t *testing.T) {
	tests := []struct {
		name   string
		action AppAction
		event  AppEvent
	}{
		{"show notification", ShowNotification{Content: "x"}, NotificationShown{Content: "x"}},
		{"view now playing", ViewNowPlaying{}, NowPlayingShown{}},
		{"raise", Raise{}, Raised{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			before := *s
			assertEvents(t, dispatch(t, s, tt.action), tt.event)
			if !reflect.DeepEqual(before, *s) {
				t.Error("pure notification action mutated state")
			}
		})
	}
}

func TestQueueSelection(t *testing.T) {
	s := New()
	a, b := testSong("a", "First"), testSong("b", "Second")
	selectSongs(t, s, SelectionContextDefault, a, b)

	events := dispatch(t, s, QueueSelection{})
	assertEvents(t, events, SelectionModeChanged{Active: false}, PlaylistChanged{})

	if s.Selection.Count() != 0 {
		t.Errorf("selection holds %d songs after queueing, want 0", s.Selection.Count())
	}
	if s.Selection.Active() {
		t.Error("selection mode still active after queueing")
	}

	queued := s.Playback.Songs()
	if len(queued) != 2 || queued[0].ID != "a" || queued[1].ID != "b" {
		t.Errorf("queue = %v, want [a b] in original relative order", models.SongIDs(queued))
	}
}

func TestDequeueSelection(t *testing.T) {
	s := New()
	a, b, c := testSong("a", "First"), testSong("b", "Second"), testSong("c", "Third")
	dispatch(t, s, Load{Songs: []models.SongDescription{a, b, c}, CurrentID: "c"})

	selectSongs(t, s, SelectionContextQueue, a, b)
	events := dispatch(t, s, DequeueSelection{})
	assertEvents(t, events, SelectionModeChanged{Active: false}, PlaylistChanged{})

	if ids := models.SongIDs(s.Playback.Songs()); len(ids) != 1 || ids[0] != "c" {
		t.Errorf("queue after dequeue = %v, want [c]", ids)
	}
	if cur := s.Playback.CurrentSong(); cur == nil || cur.ID != "c" {
		t.Errorf("current song after dequeue = %v, want c", cur)
	}
}

func TestMoveUpSelection(t *testing.T) {
	s := New()
	a, b := testSong("a", "First"), testSong("b", "Second")
	dispatch(t, s, Load{Songs: []models.SongDescription{a, b}, CurrentID: "a"})
	selectSongs(t, s, SelectionContextQueue, b)

	assertEvents(t, dispatch(t, s, MoveUpSelection{}), PlaylistChanged{})
	if ids := models.SongIDs(s.Playback.Songs()); ids[0] != "b" || ids[1] != "a" {
		t.Errorf("queue after move up = %v, want [b a]", ids)
	}

	// b is now first: a second move up has nowhere to go.
	assertEvents(t, dispatch(t, s, MoveUpSelection{}))
}

func TestMoveUpSelection_EmptySelection(t *testing.T) {
	s := New()
	dispatch(t, s, Load{Songs: []models.SongDescription{testSong("a", "First")}, CurrentID: "a"})

	assertEvents(t, dispatch(t, s, MoveUpSelection{}))
}

func TestMoveSelection_TargetMissingFromQueue(t *testing.T) {
	s := New()
	dispatch(t, s, Load{Songs: []models.SongDescription{testSong("a", "First")}, CurrentID: "a"})
	selectSongs(t, s, SelectionContextQueue, testSong("ghost", "Not Queued"))

	assertEvents(t, dispatch(t, s, MoveUpSelection{}))
	assertEvents(t, dispatch(t, s, MoveDownSelection{}))
}

func TestMoveDownSelection_OnlyFirstItemMoves(t *testing.T) {
	s := New()
	a, b, c := testSong("a", "First"), testSong("b", "Second"), testSong("c", "Third")
	dispatch(t, s, Load{Songs: []models.SongDescription{a, b, c}, CurrentID: "a"})
	selectSongs(t, s, SelectionContextQueue, a, b)

	// Each dispatch peeks a fresh cursor and only touches its first song.
	assertEvents(t, dispatch(t, s, MoveDownSelection{}), PlaylistChanged{})
	if ids := models.SongIDs(s.Playback.Songs()); !reflect.DeepEqual(ids, []string{"b", "a", "c"}) {
		t.Errorf("queue = %v, want [b a c]", ids)
	}
	assertEvents(t, dispatch(t, s, MoveDownSelection{}), PlaylistChanged{})
	if ids := models.SongIDs(s.Playback.Songs()); !reflect.DeepEqual(ids, []string{"b", "c", "a"}) {
		t.Errorf("queue = %v, want [b c a]", ids)
	}
}

func TestSaveSelection(t *testing.T) {
	s := New()
	a, b := testSong("a", "First"), testSong("b", "Second")
	selectSongs(t, s, SelectionContextDefault, a, b)

	events := dispatch(t, s, SaveSelection{})
	assertEvents(t, events, SavedTracksUpdated{}, SelectionModeChanged{Active: false})

	home, ok := s.Browser.HomeState()
	if !ok {
		t.Fatal("home state missing after New()")
	}
	if saved := home.SavedTracks(); len(saved) != 2 {
		t.Errorf("saved tracks = %v, want 2 songs", models.SongIDs(saved))
	}
	if s.Selection.Active() || s.Selection.Count() != 0 {
		t.Error("selection not drained by save")
	}
}

func TestUnsaveSelection(t *testing.T) {
	s := New()
	a, b := testSong("a", "First"), testSong("b", "Second")
	home, _ := s.Browser.HomeState()
	home.UpdateWith(SaveTracks{Songs: []models.SongDescription{a, b}})

	selectSongs(t, s, SelectionContextSavedTracks, a)
	events := dispatch(t, s, UnsaveSelection{})
	assertEvents(t, events, SavedTracksUpdated{}, SelectionModeChanged{Active: false})

	if saved := home.SavedTracks(); len(saved) != 1 || saved[0].ID != "b" {
		t.Errorf("saved tracks = %v, want [b]", models.SongIDs(saved))
	}
}

func TestSaveSelection_HomeNotReady(t *testing.T) {
	// A zero-value AppState has no home view; the failure must surface as
	// a typed error, not a panic.
	s := &AppState{}
	_, err := s.Update(SaveSelection{})
	if !errors.Is(err, ErrHomeNotReady) {
		t.Errorf("Update(SaveSelection) error = %v, want ErrHomeNotReady", err)
	}
	_, err = s.Update(UnsaveSelection{})
	if !errors.Is(err, ErrHomeNotReady) {
		t.Errorf("Update(UnsaveSelection) error = %v, want ErrHomeNotReady", err)
	}
}

func TestEnableSelection_Transitions(t *testing.T) {
	s := New()

	assertEvents(t, dispatch(t, s, EnableSelection{Context: SelectionContextQueue}),
		SelectionModeChanged{Active: true})

	// Same context again: idempotent no-op.
	assertEvents(t, dispatch(t, s, EnableSelection{Context: SelectionContextQueue}))

	// Different context: one transition event, buffer starts fresh.
	dispatch(t, s, Select{Song: testSong("a", "First")})
	assertEvents(t, dispatch(t, s, EnableSelection{Context: SelectionContextPlaylist}),
		SelectionModeChanged{Active: true})
	if s.Selection.Count() != 0 {
		t.Error("context switch kept the previous buffer")
	}

	assertEvents(t, dispatch(t, s, CancelSelection{}), SelectionModeChanged{Active: false})

	// Cancel while inactive: no-op.
	assertEvents(t, dispatch(t, s, CancelSelection{}))
}

func TestCreatePlaylist(t *testing.T) {
	s := New()
	playlist := models.PlaylistDescription{
		ID:    "pl1",
		Title: "Morning Mix",
		Owner: models.UserRef{ID: "u1", DisplayName: "someone"},
	}

	events := dispatch(t, s, CreatePlaylist{Playlist: playlist})
	assertEvents(t, events,
		UserPlaylistsChanged{},
		PlaylistsContentChanged{},
		PlaylistCreatedNotificationShown{ID: "pl1"},
	)

	if pls := s.LoggedUser.Playlists(); len(pls) != 1 || pls[0].ID != "pl1" {
		t.Errorf("user playlists = %v, want [pl1]", pls)
	}
	home, _ := s.Browser.HomeState()
	if pls := home.Playlists(); len(pls) != 1 || pls[0].ID != "pl1" {
		t.Errorf("home playlists = %v, want [pl1]", pls)
	}
}

func TestCreatePlaylist_PrependsToExistingListing(t *testing.T) {
	s := New()
	dispatch(t, s, SetUserPlaylists{Playlists: []models.PlaylistSummary{{ID: "old", Title: "Old"}}})

	events := dispatch(t, s, CreatePlaylist{Playlist: models.PlaylistDescription{ID: "new", Title: "New"}})
	last := events[len(events)-1]
	if !reflect.DeepEqual(last, AppEvent(PlaylistCreatedNotificationShown{ID: "new"})) {
		t.Errorf("last event = %#v, want PlaylistCreatedNotificationShown{new}", last)
	}

	pls := s.LoggedUser.Playlists()
	if len(pls) != 2 || pls[0].ID != "new" || pls[1].ID != "old" {
		t.Errorf("user playlists = %v, want [new old]", pls)
	}
}

func TestRenamePlaylist(t *testing.T) {
	s := New()
	dispatch(t, s, CreatePlaylist{Playlist: models.PlaylistDescription{ID: "pl1", Title: "Before"}})

	events := dispatch(t, s, RenamePlaylist{Summary: models.PlaylistSummary{ID: "pl1", Title: "After"}})
	assertEvents(t, events, UserPlaylistUpdated{ID: "pl1"}, PlaylistNameChanged{ID: "pl1"})

	if pls := s.LoggedUser.Playlists(); pls[0].Title != "After" {
		t.Errorf("user playlist title = %q, want After", pls[0].Title)
	}
	home, _ := s.Browser.HomeState()
	if pls := home.Playlists(); pls[0].Title != "After" {
		t.Errorf("home playlist title = %q, want After", pls[0].Title)
	}
}

func TestRenamePlaylist_UnknownID(t *testing.T) {
	s := New()
	assertEvents(t, dispatch(t, s, RenamePlaylist{Summary: models.PlaylistSummary{ID: "nope", Title: "x"}}))
}

func TestSubstateForwarding(t *testing.T) {
	s := New()

	// Playback-scoped action reaches playback and its events lift unchanged.
	events := dispatch(t, s, Load{Songs: []models.SongDescription{testSong("a", "First")}, CurrentID: "a"})
	assertEvents(t, events, PlaylistChanged{}, TrackChanged{ID: "a"}, PlaybackResumed{})

	// Browser-scoped action reaches the browser.
	events = dispatch(t, s, NavigationPush{Screen: AlbumDetailsScreen("123")})
	assertEvents(t, events, NavigationPushed{Screen: AlbumDetailsScreen("123")})

	// Login-scoped action reaches the session.
	events = dispatch(t, s, SetLoginSuccess{User: models.UserRef{ID: "u1"}})
	assertEvents(t, events, LoginCompleted{User: models.UserRef{ID: "u1"}})

	// Settings-scoped action reaches settings.
	settings := DefaultSettings()
	settings.Gapless = false
	events = dispatch(t, s, ChangeSettings{Settings: settings})
	assertEvents(t, events, SettingsChanged{Settings: settings})
}

func TestUnrecognizedActionIsSilent(t *testing.T) {
	s := New()
	assertEvents(t, dispatch(t, s, nil))
}
