package appstate

// ScreenKind enumerates the browser's screen types.
type ScreenKind int

const (
	ScreenHome ScreenKind = iota
	ScreenAlbumDetails
	ScreenArtistDetails
	ScreenPlaylistDetails
	ScreenUserDetails
	ScreenSearch
)

// ScreenName identifies one screen in the browser's navigation stack.
// Detail screens carry the id of the entity they show. Values are
// comparable; two names are the same screen when kind and id match.
type ScreenName struct {
	Kind ScreenKind
	ID   string
}

func HomeScreen() ScreenName                   { return ScreenName{Kind: ScreenHome} }
func AlbumDetailsScreen(id string) ScreenName  { return ScreenName{Kind: ScreenAlbumDetails, ID: id} }
func ArtistDetailsScreen(id string) ScreenName { return ScreenName{Kind: ScreenArtistDetails, ID: id} }
func PlaylistDetailsScreen(id string) ScreenName {
	return ScreenName{Kind: ScreenPlaylistDetails, ID: id}
}
func UserDetailsScreen(id string) ScreenName { return ScreenName{Kind: ScreenUserDetails, ID: id} }
func SearchScreen() ScreenName               { return ScreenName{Kind: ScreenSearch} }

// String returns a short identifier for display and persistence.
func (s ScreenName) String() string {
	switch s.Kind {
	case ScreenHome:
		return "home"
	case ScreenAlbumDetails:
		return "album:" + s.ID
	case ScreenArtistDetails:
		return "artist:" + s.ID
	case ScreenPlaylistDetails:
		return "playlist:" + s.ID
	case ScreenUserDetails:
		return "user:" + s.ID
	case ScreenSearch:
		return "search"
	default:
		return "unknown"
	}
}
