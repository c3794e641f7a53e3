package innertube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/innertune/internal/session"
	"github.com/desertthunder/innertune/internal/shared"
	"golang.org/x/time/rate"
)

// Transport executes built requests with client-side pacing, a per-request
// timeout and a bounded retry policy. It knows nothing about payload
// semantics: a structurally valid response with zero results is a success,
// never a retry.
type Transport struct {
	client     *http.Client
	session    *session.Context
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
	logger     *log.Logger
}

// TransportOpts tunes the retry and pacing policy. Zero values select the
// defaults: 30s timeout, 2 retries, 500ms base backoff, 5 req/s pacing.
type TransportOpts struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
	RateLimit  float64
	Logger     *log.Logger
}

// NewTransport creates a Transport bound to the given session. The session is
// the only state the transport mutates: identity updates observed on fully
// received responses are folded back into it.
func NewTransport(sess *session.Context, opts TransportOpts) *Transport {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	} else if opts.MaxRetries == 0 {
		opts.MaxRetries = 2
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 500 * time.Millisecond
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	client.Timeout = opts.Timeout

	return &Transport{
		client:     client,
		session:    sess,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		maxRetries: opts.MaxRetries,
		backoff:    opts.Backoff,
		logger:     opts.Logger,
	}
}

// Do executes the request, retrying transient failures (network errors, 5xx,
// rate-limit signals) with exponential backoff up to the configured bound.
// Credential rejections surface immediately as [shared.ErrAuthRequired]. On
// success the response headers are folded into the session before the body is
// returned.
func (t *Transport) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	attempts := t.maxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := t.sleep(ctx, attempt); err != nil {
				return nil, err
			}
		}
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}

		attemptReq, err := cloneRequest(ctx, req)
		if err != nil {
			return nil, err
		}

		resp, err := t.client.Do(attemptReq)
		if err != nil {
			lastErr = err
			t.logger.Debug("request attempt failed", "attempt", attempt+1, "err", err)
			continue
		}

		body, err := t.consume(resp)
		if err == nil {
			return body, nil
		}
		if !retryable(resp.StatusCode) {
			return nil, err
		}
		lastErr = err
		t.logger.Debug("retryable upstream status", "attempt", attempt+1, "status", resp.StatusCode)
	}

	return nil, fmt.Errorf("%w: %d attempts exhausted: %v", shared.ErrAPIRequest, attempts, lastErr)
}

// consume reads and classifies one response. Identity updates are applied to
// the session only on a fully-received success, all-or-nothing.
func (t *Transport) consume(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: upstream returned status %d", shared.ErrAuthRequired, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", shared.ErrRateLimited, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}

	t.session.ApplyResponse(resp.Header)
	return body, nil
}

func (t *Transport) sleep(ctx context.Context, attempt int) error {
	delay := t.backoff << (attempt - 1)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// retryable reports whether a status is a transient failure worth another
// attempt. Auth rejections and other 4xx are deterministic and never retried.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// cloneRequest produces a fresh request with a rewound body for one attempt.
func cloneRequest(ctx context.Context, req *http.Request) (*http.Request, error) {
	clone := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		clone.Body = body
	}
	return clone, nil
}
