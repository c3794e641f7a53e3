package innertube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/session"
	"github.com/desertthunder/innertune/internal/shared"
)

// Client is the downstream-facing surface: one method per logical operation,
// each returning a typed page or a classified error.
type Client struct {
	builder   *Builder
	transport *Transport
	logger    *log.Logger
	maxPages  int
}

// Opts configures a Client.
type Opts struct {
	BaseURL    string
	Session    *session.Context
	HTTPClient *http.Client
	Logger     *log.Logger
	Timeout    time.Duration
	MaxRetries int
	RateLimit  float64
	// MaxPages bounds continuation-following in [Client.Pages]. The upstream
	// may hand out a cursor alongside zero items indefinitely; this guard
	// keeps that from turning into an infinite pagination loop.
	MaxPages int
}

// New creates a Client. Session is required; everything else has defaults.
func New(opts Opts) *Client {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 20
	}

	return &Client{
		builder: NewBuilder(opts.BaseURL, opts.Session),
		transport: NewTransport(opts.Session, TransportOpts{
			HTTPClient: opts.HTTPClient,
			Timeout:    opts.Timeout,
			MaxRetries: opts.MaxRetries,
			RateLimit:  opts.RateLimit,
			Logger:     opts.Logger,
		}),
		logger:   opts.Logger,
		maxPages: opts.MaxPages,
	}
}

func (c *Client) do(ctx context.Context, op Op, params map[string]any, cont models.Continuation) (*models.ResultPage, error) {
	ep, ok := Catalog[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	req, err := c.builder.Build(ctx, op, params, cont)
	if err != nil {
		return nil, err
	}

	body, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	page, err := ep.Parse(body, c.logger)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("page fetched", "op", op, "items", len(page.Items),
		"dropped", page.Dropped, "more", !page.Continuation.IsZero())
	return page, nil
}

// Search queries the search surface with an optional kind filter.
func (c *Client) Search(ctx context.Context, query string, filter SearchFilter) (*models.ResultPage, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", shared.ErrMissingArgument)
	}

	params := map[string]any{"query": query}
	if p, ok := filterParams[filter]; ok {
		params["params"] = p
	}
	return c.do(ctx, OpSearch, params, "")
}

// Browse resolves a browse page (channel, album, playlist, related content)
// by its opaque browse id and optional params blob.
func (c *Client) Browse(ctx context.Context, browseID, params string) (*models.ResultPage, error) {
	if browseID == "" {
		return nil, fmt.Errorf("%w: empty browse id", shared.ErrMissingArgument)
	}

	body := map[string]any{"browseId": browseID}
	if params != "" {
		body["params"] = params
	}
	return c.do(ctx, OpBrowse, body, "")
}

// Artist resolves an artist channel page.
func (c *Client) Artist(ctx context.Context, channelID string) (*models.ResultPage, error) {
	return c.Browse(ctx, channelID, "")
}

// Album resolves an album page and its track list.
func (c *Client) Album(ctx context.Context, browseID string) (*models.ResultPage, error) {
	return c.Browse(ctx, browseID, "")
}

// Related resolves the related-content shelf for a previously obtained
// related browse id.
func (c *Client) Related(ctx context.Context, browseID string) (*models.ResultPage, error) {
	return c.Browse(ctx, browseID, "")
}

// Queue resolves the watch queue for a video and/or playback collection.
func (c *Client) Queue(ctx context.Context, videoID, playlistID string) (*models.ResultPage, error) {
	if videoID == "" && playlistID == "" {
		return nil, fmt.Errorf("%w: queue needs a video or playlist id", shared.ErrMissingArgument)
	}

	params := map[string]any{}
	if videoID != "" {
		params["videoId"] = videoID
	}
	if playlistID != "" {
		params["playlistId"] = playlistID
	}
	return c.do(ctx, OpNext, params, "")
}

// Continue fetches the next page of a previous operation. The cursor is sent
// verbatim; no other logical parameters accompany it.
func (c *Client) Continue(ctx context.Context, op Op, cont models.Continuation) (*models.ResultPage, error) {
	if cont.IsZero() {
		return nil, fmt.Errorf("%w: empty continuation", shared.ErrMissingArgument)
	}
	return c.do(ctx, op, nil, cont)
}

// Pages visits first and every follow-up page until the cursor ends or visit
// returns false. Pagination is guarded two ways: a page-count bound and
// repeated-cursor detection, since the upstream's behavior when it hands out
// cursors forever is unspecified. Tripping a guard stops iteration cleanly.
func (c *Client) Pages(ctx context.Context, op Op, first *models.ResultPage, visit func(*models.ResultPage) bool) error {
	seen := make(map[models.Continuation]bool)
	page := first

	for n := 1; ; n++ {
		if !visit(page) || page.Continuation.IsZero() {
			return nil
		}
		if n >= c.maxPages {
			c.logger.Warn("page limit reached, stopping pagination", "pages", n)
			return nil
		}
		if seen[page.Continuation] {
			c.logger.Warn("upstream repeated a continuation cursor, stopping pagination")
			return nil
		}
		seen[page.Continuation] = true

		next, err := c.Continue(ctx, op, page.Continuation)
		if err != nil {
			return err
		}
		page = next
	}
}
