package renderer

import (
	"strconv"
	"strings"

	"github.com/desertthunder/innertune/internal/models"
)

// Run is one fragment of styled text in a flexible column, optionally
// carrying a navigation reference.
type Run struct {
	Text       string
	BrowseID   string
	VideoID    string
	PageType   string
	PlaylistID string
}

// runsOf decodes a {"runs": [...]} text node into Runs.
func runsOf(text Node) []Run {
	raw := text.Arr("runs")
	if len(raw) == 0 {
		return nil
	}

	runs := make([]Run, 0, len(raw))
	for _, rv := range raw {
		rn := AsNode(rv)
		if rn == nil {
			continue
		}
		run := Run{Text: rn.Str("text")}
		if nav := rn.Obj("navigationEndpoint"); nav != nil {
			if be := nav.Obj("browseEndpoint"); be != nil {
				run.BrowseID = be.Str("browseId")
				run.PageType = be.StrAt("browseEndpointContextSupportedConfigs", "browseEndpointContextMusicConfig", "pageType")
			}
			if we := nav.Obj("watchEndpoint"); we != nil {
				run.VideoID = we.Str("videoId")
				run.PlaylistID = we.Str("playlistId")
			}
		}
		runs = append(runs, run)
	}
	return runs
}

// columnRuns returns the runs of flexible column idx of a
// musicResponsiveListItemRenderer, or nil when the column is absent.
func columnRuns(item Node, idx int) []Run {
	cols := item.Arr("flexColumns")
	if idx >= len(cols) {
		return nil
	}
	col := AsNode(cols[idx]).At("musicResponsiveListItemFlexColumnRenderer", "text")
	return runsOf(col)
}

// isSeparator reports whether a run is one of the literal separator fragments
// the upstream interleaves between metadata groups.
func isSeparator(r Run) bool {
	switch strings.TrimSpace(r.Text) {
	case "•", "·":
		return true
	}
	return false
}

// splitRuns splits a run sequence into groups on separator runs. The
// separators themselves are not part of any group.
func splitRuns(runs []Run) [][]Run {
	var groups [][]Run
	var cur []Run
	for _, r := range runs {
		if isSeparator(r) {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// artistRefs interprets a group as an artist list: every other run is a name,
// the runs in between are connector text such as "&" or ",".
func artistRefs(group []Run) []models.Ref {
	var refs []models.Ref
	for i := 0; i < len(group); i += 2 {
		r := group[i]
		if r.Text == "" {
			continue
		}
		refs = append(refs, models.Ref{ID: r.BrowseID, Name: r.Text})
	}
	return refs
}

// ParseDuration parses a display duration of the form [[H:]MM:]SS into total
// seconds.
func ParseDuration(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, false
	}

	total := 0
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, false
		}
		total = total*60 + v
	}
	return total, true
}

// parseYear extracts a four-digit release year, or 0.
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1000 {
		return 0
	}
	return y
}
