package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/session"
)

// DefaultBaseURL is the upstream origin the requests impersonate.
const DefaultBaseURL = "https://music.youtube.com"

const apiPrefix = "/youtubei/v1/"

// Builder turns a catalog operation plus the current session into a
// transport-ready request carrying the envelope the upstream's first-party
// client sends. Structural deviation here causes silent upstream rejection
// rather than a clean error, so the envelope shape is a correctness
// requirement.
type Builder struct {
	baseURL string
	session *session.Context
}

// NewBuilder creates a Builder against the given origin. An empty baseURL
// selects [DefaultBaseURL].
func NewBuilder(baseURL string, sess *session.Context) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Builder{baseURL: baseURL, session: sess}
}

// Build produces the outbound request for one operation. A continuation
// follow-up carries the cursor token verbatim and no other logical
// parameters; the upstream encodes all required state inside the cursor.
func (b *Builder) Build(ctx context.Context, op Op, params map[string]any, cont models.Continuation) (*http.Request, error) {
	ep, ok := Catalog[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	snap := b.session.Snapshot()

	envelope := map[string]any{
		"context": map[string]any{
			"client": map[string]any{
				"clientName":    snap.Client.Name,
				"clientVersion": snap.Client.Version,
				"hl":            snap.Locale.HL,
				"gl":            snap.Locale.GL,
				"visitorData":   snap.Visitor,
			},
			"user": map[string]any{},
		},
	}
	if !cont.IsZero() {
		envelope["continuation"] = string(cont)
	} else {
		for k, v := range params {
			envelope[k] = v
		}
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	apiURL := b.baseURL + apiPrefix + ep.Path + "?prettyPrint=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", b.baseURL)
	req.Header.Set("X-Origin", b.baseURL)
	if snap.Client.UserAgent != "" {
		req.Header.Set("User-Agent", snap.Client.UserAgent)
	}
	if snap.Visitor != "" {
		req.Header.Set("X-Goog-Visitor-Id", snap.Visitor)
	}
	if snap.Creds != nil {
		if err := snap.Creds.Apply(req); err != nil {
			return nil, fmt.Errorf("failed to apply credentials: %w", err)
		}
	}

	return req, nil
}
