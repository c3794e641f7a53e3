package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/shared"
)

// Parse converts one raw response tree into a [models.ResultPage].
//
// It returns [shared.ErrSchemaMismatch] when the response carries none of the
// known top-level content sections; individual nodes that fail classification
// or lack a required field are dropped and counted, never surfaced as an
// error. A page may legitimately carry zero items and still have a
// continuation cursor.
func Parse(root Node, logger *log.Logger) (*models.ResultPage, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: empty response", shared.ErrSchemaMismatch)
	}
	if root.Obj("contents") == nil && root.Obj("continuationContents") == nil {
		return nil, fmt.Errorf("%w: response has no contents section", shared.ErrSchemaMismatch)
	}

	page := &models.ResultPage{}
	for _, tagged := range Collect(root, tagListItem, tagTwoRow, tagPanelVideo, tagContinuation) {
		if tagged.Tag == tagContinuation {
			// The cursor lives beside the item list, not inside it, and its
			// presence is independent of whether any items were found.
			if page.Continuation.IsZero() {
				if token := tagged.Node.Str("continuation"); token != "" {
					page.Continuation = models.Continuation(token)
				}
			}
			continue
		}

		item, kind, ok := classify(tagged)
		if !ok {
			page.Dropped++
			logger.Debug("dropped unmappable renderer node", "tag", tagged.Tag, "kind", kind)
			continue
		}
		page.Items = append(page.Items, item)
	}

	if page.Dropped > 0 {
		logger.Debug("page parsed with drops", "items", len(page.Items), "dropped", page.Dropped)
	}
	return page, nil
}

// ParseBody decodes a raw response body and parses it.
func ParseBody(body []byte, logger *log.Logger) (*models.ResultPage, error) {
	var root map[string]any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object: %v", shared.ErrSchemaMismatch, err)
	}
	return Parse(Node(root), logger)
}
