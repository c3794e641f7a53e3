package session

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/innertune/internal/shared"
	"golang.org/x/oauth2"
)

// Credentials attaches identity headers to an outbound request.
type Credentials interface {
	Apply(req *http.Request) error
}

// BrowserAuth authenticates requests with a browser cookie jar, signing each
// request the way the upstream's web client does: an Authorization header of
// the form "SAPISIDHASH <ts>_<sha1(ts + sapisid + origin)>".
type BrowserAuth struct {
	mu     sync.Mutex
	order  []string
	cookie map[string]string
	sapi   string
	origin string
	now    func() time.Time
}

// NewBrowserAuth parses a raw Cookie header value into a credential bundle.
// The cookie must contain a SAPISID (or __Secure-3PAPISID) entry.
func NewBrowserAuth(cookie, origin string) (*BrowserAuth, error) {
	b := &BrowserAuth{
		cookie: make(map[string]string),
		origin: origin,
		now:    time.Now,
	}
	for _, part := range strings.Split(cookie, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || name == "" {
			continue
		}
		b.order = append(b.order, name)
		b.cookie[name] = value
	}

	b.sapi = b.cookie["SAPISID"]
	if b.sapi == "" {
		b.sapi = b.cookie["__Secure-3PAPISID"]
	}
	if b.sapi == "" {
		return nil, fmt.Errorf("%w: cookie has no SAPISID", shared.ErrInvalidCredentials)
	}

	return b, nil
}

// Apply sets the Cookie, Authorization and X-Goog-AuthUser headers.
func (b *BrowserAuth) Apply(req *http.Request) error {
	b.mu.Lock()
	cookie := b.cookieHeader()
	sapi := b.sapi
	b.mu.Unlock()

	ts := b.now().Unix()
	payload := fmt.Sprintf("%d %s %s", ts, sapi, b.origin)
	digest := sha1.Sum([]byte(payload))

	req.Header.Set("Cookie", cookie)
	req.Header.Set("Authorization", fmt.Sprintf("SAPISIDHASH %d_%x", ts, digest))
	req.Header.Set("X-Goog-AuthUser", "0")
	return nil
}

// Rotate merges server-issued cookie replacements into the jar. New names are
// appended, existing names updated in place.
func (b *BrowserAuth) Rotate(pairs map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for name, value := range pairs {
		if _, ok := b.cookie[name]; !ok {
			b.order = append(b.order, name)
		}
		b.cookie[name] = value
	}
}

func (b *BrowserAuth) cookieHeader() string {
	parts := make([]string, 0, len(b.order))
	for _, name := range b.order {
		parts = append(parts, name+"="+b.cookie[name])
	}
	return strings.Join(parts, "; ")
}

// OAuthAuth authenticates requests with a bearer token from an
// [oauth2.TokenSource].
type OAuthAuth struct {
	src oauth2.TokenSource
}

// NewOAuthAuth wraps a token source. Pass a refreshing source (e.g. from
// [oauth2.Config.TokenSource]) to get transparent token renewal.
func NewOAuthAuth(src oauth2.TokenSource) *OAuthAuth {
	return &OAuthAuth{src: src}
}

// OAuthFromFile loads a persisted [oauth2.Token] from a JSON file.
func OAuthFromFile(path string) (*OAuthAuth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: malformed oauth token file: %v", shared.ErrInvalidCredentials, err)
	}

	return NewOAuthAuth(oauth2.StaticTokenSource(&token)), nil
}

// Apply sets the Authorization header from the token source.
func (o *OAuthAuth) Apply(req *http.Request) error {
	token, err := o.src.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidCredentials, err)
	}
	token.SetAuthHeader(req)
	return nil
}
