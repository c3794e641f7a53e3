// Package session holds per-process identity shared by every outbound
// request: locale, impersonated client descriptor, the anonymous visitor
// token, and optional credentials.
//
// The [Context] is the only mutable state in the client core. Request
// construction works off an immutable [Snapshot]; updates arrive through
// [Context.ApplyResponse] as a side effect of fully-received responses and
// are applied atomically.
package session

import (
	"net/http"
	"strings"
	"sync"
)

// Locale is the language/region pair echoed in every request envelope.
type Locale struct {
	HL string // language, e.g. "en"
	GL string // region, e.g. "US"
}

// Client describes the first-party client the requests impersonate.
type Client struct {
	Name      string
	Version   string
	UserAgent string
}

// Context is the process-wide session state. Safe for concurrent use.
type Context struct {
	mu      sync.RWMutex
	locale  Locale
	client  Client
	visitor string
	creds   Credentials
}

// Snapshot is an immutable copy of the session taken for a single request.
type Snapshot struct {
	Locale  Locale
	Client  Client
	Visitor string
	Creds   Credentials
}

// New creates a session Context with the given locale and client descriptor.
func New(locale Locale, client Client) *Context {
	return &Context{locale: locale, client: client}
}

// Snapshot returns a point-in-time copy of the session for one request.
func (c *Context) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Locale:  c.locale,
		Client:  c.client,
		Visitor: c.visitor,
		Creds:   c.creds,
	}
}

// Locale returns the current locale.
func (c *Context) Locale() Locale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// SetLocale replaces the locale used by subsequent requests.
func (c *Context) SetLocale(l Locale) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locale = l
}

// Visitor returns the current anonymous visitor token, if any.
func (c *Context) Visitor() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visitor
}

// SetVisitor replaces the anonymous visitor token.
func (c *Context) SetVisitor(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visitor = v
}

// SetCredentials attaches a credential bundle, or clears it when nil.
func (c *Context) SetCredentials(creds Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = creds
}

// Authenticated reports whether a credential bundle is attached.
func (c *Context) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds != nil
}

// rotator is implemented by credential bundles that accept server-issued
// cookie rotation.
type rotator interface {
	Rotate(pairs map[string]string)
}

// ApplyResponse folds server-issued identity updates from response headers
// back into the session: a new visitor token and rotated cookies. The whole
// update is applied under one lock so a concurrent Snapshot sees either all
// of it or none of it.
func (c *Context) ApplyResponse(h http.Header) {
	visitor := h.Get("X-Goog-Visitor-Id")
	rotated := cookiePairs(h.Values("Set-Cookie"))
	if visitor == "" && len(rotated) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if visitor != "" {
		c.visitor = visitor
	}
	if len(rotated) > 0 {
		if r, ok := c.creds.(rotator); ok {
			r.Rotate(rotated)
		}
	}
}

// cookiePairs extracts name=value pairs from Set-Cookie header values,
// ignoring attributes after the first semicolon.
func cookiePairs(setCookies []string) map[string]string {
	if len(setCookies) == 0 {
		return nil
	}
	pairs := make(map[string]string, len(setCookies))
	for _, sc := range setCookies {
		if i := strings.Index(sc, ";"); i >= 0 {
			sc = sc[:i]
		}
		name, value, ok := strings.Cut(strings.TrimSpace(sc), "=")
		if !ok || name == "" {
			continue
		}
		pairs[name] = value
	}
	return pairs
}
