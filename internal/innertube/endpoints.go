package innertube

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/renderer"
	"github.com/desertthunder/innertune/internal/shared"
)

// Op identifies a logical upstream operation.
type Op string

const (
	// OpSearch queries the search surface, optionally filtered to one kind.
	OpSearch Op = "search"
	// OpBrowse resolves a channel/album/playlist/related page by browse id.
	OpBrowse Op = "browse"
	// OpNext resolves a watch queue for a video or playback collection.
	OpNext Op = "next"
)

// Endpoint is one catalog entry: the API path of the operation and the
// adapter entry point applied to its responses.
type Endpoint struct {
	Path  string
	Parse func(body []byte, logger *log.Logger) (*models.ResultPage, error)
}

// Catalog enumerates the supported logical operations. Adding a new upstream
// surface means adding one entry here plus, if the surface introduces a new
// renderer shape, one classification rule in the renderer package.
var Catalog = map[Op]Endpoint{
	OpSearch: {Path: "search", Parse: renderer.ParseBody},
	OpBrowse: {Path: "browse", Parse: renderer.ParseBody},
	OpNext:   {Path: "next", Parse: renderer.ParseBody},
}

// SearchFilter restricts search results to a single entity kind.
type SearchFilter string

const (
	FilterNone      SearchFilter = ""
	FilterSongs     SearchFilter = "songs"
	FilterAlbums    SearchFilter = "albums"
	FilterArtists   SearchFilter = "artists"
	FilterPlaylists SearchFilter = "playlists"
)

// filterParams maps each filter to the upstream's opaque params blob. The
// blobs are empirically stable; they are sent verbatim and never decoded.
var filterParams = map[SearchFilter]string{
	FilterSongs:     "EgWKAQIIAWoMEA4QChADEAQQCRAF",
	FilterAlbums:    "EgWKAQIYAWoMEA4QChADEAQQCRAF",
	FilterArtists:   "EgWKAQIgAWoMEA4QChADEAQQCRAF",
	FilterPlaylists: "EgWKAQIoAWoMEA4QChADEAQQCRAF",
}

// ParseSearchFilter validates a user-supplied filter name.
func ParseSearchFilter(s string) (SearchFilter, error) {
	f := SearchFilter(s)
	if f == FilterNone {
		return f, nil
	}
	if _, ok := filterParams[f]; !ok {
		return FilterNone, fmt.Errorf("%w: unknown search filter %q", shared.ErrInvalidFlag, s)
	}
	return f, nil
}
