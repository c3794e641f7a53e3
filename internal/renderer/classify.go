package renderer

import (
	"strings"

	"github.com/desertthunder/innertune/internal/models"
)

// Renderer-kind tags. These strings are the upstream's only stable contract;
// everything above them (tabs, shelves, grids) is treated as opaque wrapping.
const (
	tagListItem     = "musicResponsiveListItemRenderer"
	tagTwoRow       = "musicTwoRowItemRenderer"
	tagPanelVideo   = "playlistPanelVideoRenderer"
	tagContinuation = "nextContinuationData"
)

// Upstream page-type markers used to classify browse references.
const (
	pageTypeArtist   = "MUSIC_PAGE_TYPE_ARTIST"
	pageTypeChannel  = "MUSIC_PAGE_TYPE_USER_CHANNEL"
	pageTypeAlbum    = "MUSIC_PAGE_TYPE_ALBUM"
	pageTypePlaylist = "MUSIC_PAGE_TYPE_PLAYLIST"
)

// Badge and menu icon tags. Matching is set-membership: ordering and count of
// badges/menu entries never matters.
const (
	badgeExplicit = "MUSIC_EXPLICIT_BADGE"
	iconShuffle   = "MUSIC_SHUFFLE"
	iconRadio     = "MIX"
)

// rule pairs a structural predicate with an entity builder. Rules are
// evaluated in order; the first matching rule owns the node. A build that
// returns false drops the node (a required field was missing).
type rule struct {
	kind  models.Kind
	match func(Node) bool
	build func(Node) (models.Item, bool)
}

// listItemRules classify a musicResponsiveListItemRenderer. The upstream
// carries no explicit type tag, so kind is inferred from structural markers:
// a watchable video id marks a song, a browse reference's page type marks
// albums, artists and playlists, and a play-button overlay with a playlist id
// marks playlists that expose no browse reference.
var listItemRules = []rule{
	{models.KindSong, isListSong, buildListSong},
	{models.KindAlbum, isListAlbum, buildListAlbum},
	{models.KindArtist, isListArtist, buildListArtist},
	{models.KindPlaylist, isListPlaylist, buildListPlaylist},
}

// twoRowRules classify a musicTwoRowItemRenderer, the grid-shaped sibling of
// the list item used on browse pages. Same markers, different field layout.
var twoRowRules = []rule{
	{models.KindSong, isTwoRowSong, buildTwoRowSong},
	{models.KindAlbum, isTwoRowAlbum, buildTwoRowAlbum},
	{models.KindArtist, isTwoRowArtist, buildTwoRowArtist},
	{models.KindPlaylist, isTwoRowPlaylist, buildTwoRowPlaylist},
}

// classify maps a collected node to an entity. ok is false when no rule
// matched or a required field was absent; the caller drops the node.
func classify(t Tagged) (models.Item, models.Kind, bool) {
	var rules []rule
	switch t.Tag {
	case tagListItem:
		rules = listItemRules
	case tagTwoRow:
		rules = twoRowRules
	case tagPanelVideo:
		if item, ok := buildPanelSong(t.Node); ok {
			return item, models.KindSong, true
		}
		return nil, models.KindSong, false
	default:
		return nil, "", false
	}

	for _, r := range rules {
		if r.match(t.Node) {
			item, ok := r.build(t.Node)
			return item, r.kind, ok
		}
	}
	return nil, "", false
}

// --- shared extraction helpers ---

func nodePageType(n Node) string {
	return n.StrAt("navigationEndpoint", "browseEndpoint",
		"browseEndpointContextSupportedConfigs", "browseEndpointContextMusicConfig", "pageType")
}

func nodeBrowseID(n Node) string {
	return n.StrAt("navigationEndpoint", "browseEndpoint", "browseId")
}

// listVideoID finds a song's video id in either of the two places the
// upstream puts it: playlistItemData, or the title run's watch endpoint.
func listVideoID(n Node) string {
	if id := n.StrAt("playlistItemData", "videoId"); id != "" {
		return id
	}
	title := columnRuns(n, 0)
	if len(title) > 0 {
		return title[0].VideoID
	}
	return ""
}

// thumbURL picks the largest thumbnail from the renderer's thumbnail block,
// whichever of the known layouts it uses.
func thumbURL(n Node) string {
	for _, path := range [][]string{
		{"thumbnail", "musicThumbnailRenderer", "thumbnail"},
		{"thumbnailRenderer", "musicThumbnailRenderer", "thumbnail"},
		{"thumbnail"},
	} {
		thumbs := n.At(path...).Arr("thumbnails")
		if len(thumbs) > 0 {
			return AsNode(thumbs[len(thumbs)-1]).Str("url")
		}
	}
	return ""
}

// hasBadge is a set-membership test over the unordered badge list.
func hasBadge(n Node, icon string, keys ...string) bool {
	for _, key := range append(keys, "badges", "subtitleBadges") {
		for _, bv := range n.Arr(key) {
			badge := AsNode(bv).At("musicInlineBadgeRenderer")
			if badge.StrAt("icon", "iconType") == icon {
				return true
			}
		}
	}
	return false
}

// menuWatch extracts the watch endpooint of the context-menu entry with the
// given icon tag. Absence means the action is unavailable, not an error.
func menuWatch(n Node, icon string) *models.WatchEndpoint {
	for _, iv := range n.At("menu", "menuRenderer").Arr("items") {
		entry := AsNode(iv).Obj("menuNavigationItemRenderer")
		if entry == nil || entry.StrAt("icon", "iconType") != icon {
			continue
		}
		if we := entry.At("navigationEndpoint", "watchPlaylistEndpoint"); we != nil {
			return &models.WatchEndpoint{
				PlaylistID: we.Str("playlistId"),
				Params:     we.Str("params"),
			}
		}
		if we := entry.At("navigationEndpoint", "watchEndpoint"); we != nil {
			return &models.WatchEndpoint{
				VideoID:    we.Str("videoId"),
				PlaylistID: we.Str("playlistId"),
				Params:     we.Str("params"),
			}
		}
	}
	return nil
}

// overlayWatch extracts the playback endpoint behind the thumbnail's
// play-button overlay.
func overlayWatch(n Node) *models.WatchEndpoint {
	for _, key := range []string{"overlay", "thumbnailOverlay"} {
		nav := n.At(key, "musicItemThumbnailOverlayRenderer", "content",
			"musicPlayButtonRenderer", "playNavigationEndpoint")
		if nav == nil {
			continue
		}
		if we := nav.Obj("watchPlaylistEndpoint"); we != nil {
			return &models.WatchEndpoint{PlaylistID: we.Str("playlistId"), Params: we.Str("params")}
		}
		if we := nav.Obj("watchEndpoint"); we != nil {
			return &models.WatchEndpoint{
				VideoID:    we.Str("videoId"),
				PlaylistID: we.Str("playlistId"),
				Params:     we.Str("params"),
			}
		}
	}
	return nil
}

// albumRef finds an album browse reference inside a metadata group.
func albumRef(group []Run) *models.Ref {
	for _, r := range group {
		if r.PageType == pageTypeAlbum || strings.HasPrefix(r.BrowseID, "MPRE") {
			return &models.Ref{ID: r.BrowseID, Name: r.Text}
		}
	}
	return nil
}

// trailingDuration parses the last group as a duration when it is one.
func trailingDuration(groups [][]Run) int {
	if len(groups) == 0 {
		return 0
	}
	last := groups[len(groups)-1]
	if len(last) != 1 {
		return 0
	}
	if sec, ok := ParseDuration(last[0].Text); ok {
		return sec
	}
	return 0
}

// trailingYear parses the last group as a release year when it is one.
func trailingYear(groups [][]Run) int {
	if len(groups) == 0 {
		return 0
	}
	last := groups[len(groups)-1]
	if len(last) != 1 {
		return 0
	}
	return parseYear(last[0].Text)
}

// --- musicResponsiveListItemRenderer ---

func isListSong(n Node) bool { return listVideoID(n) != "" }

func isListAlbum(n Node) bool { return nodePageType(n) == pageTypeAlbum }

func isListArtist(n Node) bool {
	switch nodePageType(n) {
	case pageTypeArtist, pageTypeChannel:
		return true
	}
	// Unbrowsable artists carry a bare "Artist" category label instead of a
	// navigation endpoint.
	second := columnRuns(n, 1)
	return len(second) > 0 && strings.TrimSpace(second[0].Text) == "Artist" && second[0].BrowseID == ""
}

func isListPlaylist(n Node) bool {
	if nodePageType(n) == pageTypePlaylist {
		return true
	}
	we := overlayWatch(n)
	return we != nil && we.PlaylistID != "" && we.VideoID == ""
}

func buildListSong(n Node) (models.Item, bool) {
	id := listVideoID(n)
	title := columnRuns(n, 0)
	thumb := thumbURL(n)
	if id == "" || len(title) == 0 || title[0].Text == "" || thumb == "" {
		return nil, false
	}

	groups := splitRuns(columnRuns(n, 1))
	if len(groups) == 0 {
		return nil, false
	}
	artists := artistRefs(groups[0])
	if len(artists) == 0 {
		return nil, false
	}

	song := models.Song{
		ID:       id,
		Title:    title[0].Text,
		Artists:  artists,
		Duration: trailingDuration(groups),
		Thumb:    thumb,
		Explicit: hasBadge(n, badgeExplicit),
	}
	if len(groups) >= 2 {
		song.Album = albumRef(groups[1])
	}
	return song, true
}

func buildListAlbum(n Node) (models.Item, bool) {
	id := nodeBrowseID(n)
	title := columnRuns(n, 0)
	thumb := thumbURL(n)
	play := overlayWatch(n)
	if id == "" || len(title) == 0 || title[0].Text == "" || thumb == "" {
		return nil, false
	}
	if play == nil || play.PlaylistID == "" {
		return nil, false
	}

	groups := splitRuns(columnRuns(n, 1))
	if len(groups) < 2 {
		return nil, false
	}

	return models.Album{
		ID:              id,
		Title:           title[0].Text,
		Artists:         artistRefs(groups[1]),
		Year:            trailingYear(groups),
		Thumb:           thumb,
		Explicit:        hasBadge(n, badgeExplicit),
		AudioPlaylistID: play.PlaylistID,
	}, true
}

func buildListArtist(n Node) (models.Item, bool) {
	title := columnRuns(n, 0)
	if len(title) == 0 || title[0].Text == "" {
		return nil, false
	}

	return models.Artist{
		ID:      nodeBrowseID(n),
		Name:    title[0].Text,
		Thumb:   thumbURL(n),
		Shuffle: menuWatch(n, iconShuffle),
		Radio:   menuWatch(n, iconRadio),
	}, true
}

func buildListPlaylist(n Node) (models.Item, bool) {
	id := strings.TrimPrefix(nodeBrowseID(n), "VL")
	play := overlayWatch(n)
	if id == "" && play != nil {
		id = play.PlaylistID
	}

	title := columnRuns(n, 0)
	thumb := thumbURL(n)
	if id == "" || len(title) == 0 || title[0].Text == "" || thumb == "" || play == nil {
		return nil, false
	}

	groups := splitRuns(columnRuns(n, 1))
	if len(groups) < 2 {
		return nil, false
	}
	author := groups[0][0]
	count := groups[len(groups)-1]
	if author.Text == "" || len(count) == 0 {
		return nil, false
	}

	return models.Playlist{
		ID:        id,
		Title:     title[0].Text,
		Author:    models.Ref{ID: author.BrowseID, Name: author.Text},
		SongCount: count[0].Text,
		Thumb:     thumb,
		Play:      play,
		Shuffle:   menuWatch(n, iconShuffle),
		Radio:     menuWatch(n, iconRadio),
	}, true
}

// --- musicTwoRowItemRenderer ---

func twoRowTitle(n Node) []Run    { return runsOf(n.Obj("title")) }
func twoRowSubtitle(n Node) []Run { return runsOf(n.Obj("subtitle")) }

func isTwoRowSong(n Node) bool {
	return n.StrAt("navigationEndpoint", "watchEndpoint", "videoId") != ""
}

func isTwoRowAlbum(n Node) bool { return nodePageType(n) == pageTypeAlbum }

func isTwoRowArtist(n Node) bool {
	switch nodePageType(n) {
	case pageTypeArtist, pageTypeChannel:
		return true
	}
	return false
}

func isTwoRowPlaylist(n Node) bool { return nodePageType(n) == pageTypePlaylist }

func buildTwoRowSong(n Node) (models.Item, bool) {
	id := n.StrAt("navigationEndpoint", "watchEndpoint", "videoId")
	title := twoRowTitle(n)
	thumb := thumbURL(n)
	if id == "" || len(title) == 0 || title[0].Text == "" || thumb == "" {
		return nil, false
	}

	groups := splitRuns(twoRowSubtitle(n))
	var artists []models.Ref
	if len(groups) > 0 {
		artists = artistRefs(groups[0])
	}
	if len(artists) == 0 {
		return nil, false
	}

	song := models.Song{
		ID:       id,
		Title:    title[0].Text,
		Artists:  artists,
		Duration: trailingDuration(groups),
		Thumb:    thumb,
		Explicit: hasBadge(n, badgeExplicit),
	}
	if len(groups) >= 2 {
		song.Album = albumRef(groups[1])
	}
	return song, true
}

func buildTwoRowAlbum(n Node) (models.Item, bool) {
	id := nodeBrowseID(n)
	title := twoRowTitle(n)
	thumb := thumbURL(n)
	play := overlayWatch(n)
	if id == "" || len(title) == 0 || title[0].Text == "" || thumb == "" {
		return nil, false
	}
	if play == nil || play.PlaylistID == "" {
		return nil, false
	}

	// Grid bylines on artist pages often omit the artist entirely, so the
	// list is allowed to come back empty here.
	groups := splitRuns(twoRowSubtitle(n))
	year := trailingYear(groups)
	var artists []models.Ref
	switch {
	case len(groups) >= 3:
		artists = artistRefs(groups[1])
	case len(groups) == 2 && year == 0:
		artists = artistRefs(groups[1])
	case len(groups) >= 1:
		if refs := artistRefs(groups[0]); len(refs) > 0 && refs[0].ID != "" {
			artists = refs
		}
	}

	return models.Album{
		ID:              id,
		Title:           title[0].Text,
		Artists:         artists,
		Year:            year,
		Thumb:           thumb,
		Explicit:        hasBadge(n, badgeExplicit),
		AudioPlaylistID: play.PlaylistID,
	}, true
}

func buildTwoRowArtist(n Node) (models.Item, bool) {
	title := twoRowTitle(n)
	if len(title) == 0 || title[0].Text == "" {
		return nil, false
	}

	return models.Artist{
		ID:      nodeBrowseID(n),
		Name:    title[0].Text,
		Thumb:   thumbURL(n),
		Shuffle: menuWatch(n, iconShuffle),
		Radio:   menuWatch(n, iconRadio),
	}, true
}

func buildTwoRowPlaylist(n Node) (models.Item, bool) {
	id := strings.TrimPrefix(nodeBrowseID(n), "VL")
	title := twoRowTitle(n)
	thumb := thumbURL(n)
	play := overlayWatch(n)
	if id == "" || len(title) == 0 || title[0].Text == "" || thumb == "" || play == nil {
		return nil, false
	}

	groups := splitRuns(twoRowSubtitle(n))
	if len(groups) == 0 {
		return nil, false
	}
	author := groups[0][0]
	count := groups[len(groups)-1]

	return models.Playlist{
		ID:        id,
		Title:     title[0].Text,
		Author:    models.Ref{ID: author.BrowseID, Name: author.Text},
		SongCount: count[0].Text,
		Thumb:     thumb,
		Play:      play,
		Shuffle:   menuWatch(n, iconShuffle),
		Radio:     menuWatch(n, iconRadio),
	}, true
}

// --- playlistPanelVideoRenderer (watch queue) ---

func buildPanelSong(n Node) (models.Item, bool) {
	id := n.Str("videoId")
	title := runsOf(n.Obj("title"))
	thumb := thumbURL(n)
	if id == "" || len(title) == 0 || title[0].Text == "" || thumb == "" {
		return nil, false
	}

	groups := splitRuns(runsOf(n.Obj("longBylineText")))
	if len(groups) == 0 {
		return nil, false
	}
	artists := artistRefs(groups[0])
	if len(artists) == 0 {
		return nil, false
	}

	song := models.Song{
		ID:       id,
		Title:    title[0].Text,
		Artists:  artists,
		Thumb:    thumb,
		Explicit: hasBadge(n, badgeExplicit),
	}
	if len(groups) >= 2 {
		song.Album = albumRef(groups[1])
	}
	if length := runsOf(n.Obj("lengthText")); len(length) > 0 {
		if sec, ok := ParseDuration(length[0].Text); ok {
			song.Duration = sec
		}
	}
	return song, true
}
