package models

// Kind discriminates the entity types that can appear in a [ResultPage].
type Kind string

const (
	KindSong     Kind = "song"
	KindAlbum    Kind = "album"
	KindArtist   Kind = "artist"
	KindPlaylist Kind = "playlist"
)

// Item is implemented by every entity that can appear in a [ResultPage].
type Item interface {
	ItemKind() Kind
	ItemID() string
}

// Ref is a lightweight reference to another entity. ID may be empty when the
// upstream exposes a bare name with no browsable identity.
type Ref struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// WatchEndpoint is an opaque playback-start descriptor (play, shuffle or
// radio). It is never resolved at parse time; resolving it into a track list
// is a separate queue operation.
type WatchEndpoint struct {
	VideoID    string `json:"videoId,omitempty"`
	PlaylistID string `json:"playlistId,omitempty"`
	Params     string `json:"params,omitempty"`
}

// Song is a single playable track.
type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artists  []Ref  `json:"artists"`
	Album    *Ref   `json:"album,omitempty"`
	Duration int    `json:"duration,omitempty"` // seconds; 0 when the upstream omits it
	Thumb    string `json:"thumbnail"`
	Explicit bool   `json:"explicit"`
}

func (s Song) ItemKind() Kind { return KindSong }
func (s Song) ItemID() string { return s.ID }

// Album groups tracks behind a browse identifier. AudioPlaylistID is the
// opaque playback collection used to resolve its track list later.
type Album struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Artists         []Ref  `json:"artists"`
	Year            int    `json:"year,omitempty"` // 0 when unknown
	Thumb           string `json:"thumbnail"`
	Explicit        bool   `json:"explicit"`
	AudioPlaylistID string `json:"audioPlaylistId"`
}

func (a Album) ItemKind() Kind { return KindAlbum }
func (a Album) ItemID() string { return a.ID }

// Artist is a channel-backed performer. ID may be empty: some upstream
// renderer variants expose a display name with no browsable identity.
type Artist struct {
	ID      string         `json:"id,omitempty"`
	Name    string         `json:"name"`
	Thumb   string         `json:"thumbnail,omitempty"`
	Shuffle *WatchEndpoint `json:"shuffle,omitempty"`
	Radio   *WatchEndpoint `json:"radio,omitempty"`
}

func (a Artist) ItemKind() Kind { return KindArtist }
func (a Artist) ItemID() string { return a.ID }

// Playlist is a user- or editorially-curated collection. SongCount is the
// upstream's display string, not a parsed integer.
type Playlist struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Author    Ref            `json:"author"`
	SongCount string         `json:"songCount"`
	Thumb     string         `json:"thumbnail"`
	Play      *WatchEndpoint `json:"play,omitempty"`
	Shuffle   *WatchEndpoint `json:"shuffle,omitempty"`
	Radio     *WatchEndpoint `json:"radio,omitempty"`
}

func (p Playlist) ItemKind() Kind { return KindPlaylist }
func (p Playlist) ItemID() string { return p.ID }

// Continuation is an opaque, server-issued pagination cursor. The core never
// inspects its contents; it is round-tripped verbatim into the next request.
// The zero value means end of results.
type Continuation string

// IsZero reports whether the cursor marks the end of results.
func (c Continuation) IsZero() bool { return c == "" }

// ResultPage is one page of parsed entities. Items that could not be mapped
// to a known entity shape are dropped during parsing; Dropped counts them for
// telemetry only.
type ResultPage struct {
	Items        []Item       `json:"items"`
	Continuation Continuation `json:"continuation,omitempty"`
	Dropped      int          `json:"-"`
}

// Songs filters the page down to its [Song] items, preserving order.
func (p *ResultPage) Songs() []Song {
	var songs []Song
	for _, it := range p.Items {
		if s, ok := it.(Song); ok {
			songs = append(songs, s)
		}
	}
	return songs
}
