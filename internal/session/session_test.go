package session

import (
	"net/http"
	"sync"
	"testing"
)

func newTestContext() *Context {
	return New(
		Locale{HL: "en", GL: "US"},
		Client{Name: "WEB_REMIX", Version: "1.0", UserAgent: "ua"},
	)
}

func TestSnapshot(t *testing.T) {
	t.Run("copies the current state", func(t *testing.T) {
		c := newTestContext()
		c.SetVisitor("vis-1")

		snap := c.Snapshot()
		if snap.Locale.HL != "en" || snap.Locale.GL != "US" {
			t.Errorf("locale = %+v", snap.Locale)
		}
		if snap.Client.Name != "WEB_REMIX" {
			t.Errorf("client = %+v", snap.Client)
		}
		if snap.Visitor != "vis-1" {
			t.Errorf("visitor = %q", snap.Visitor)
		}
		if snap.Creds != nil {
			t.Error("expected no credentials")
		}
	})

	t.Run("is not affected by later mutation", func(t *testing.T) {
		c := newTestContext()
		c.SetVisitor("before")

		snap := c.Snapshot()
		c.SetVisitor("after")
		c.SetLocale(Locale{HL: "de", GL: "DE"})

		if snap.Visitor != "before" || snap.Locale.HL != "en" {
			t.Errorf("snapshot mutated: %+v", snap)
		}
	})
}

func TestSettersAndAuthenticated(t *testing.T) {
	c := newTestContext()

	if c.Authenticated() {
		t.Error("fresh session should not be authenticated")
	}

	auth, err := NewBrowserAuth("SAPISID=abc", "https://music.youtube.com")
	if err != nil {
		t.Fatalf("failed to build auth: %v", err)
	}
	c.SetCredentials(auth)
	if !c.Authenticated() {
		t.Error("expected authenticated after SetCredentials")
	}

	c.SetCredentials(nil)
	if c.Authenticated() {
		t.Error("expected unauthenticated after clearing")
	}

	c.SetLocale(Locale{HL: "ja", GL: "JP"})
	if got := c.Locale(); got.HL != "ja" || got.GL != "JP" {
		t.Errorf("locale = %+v", got)
	}
}

func TestApplyResponse(t *testing.T) {
	t.Run("updates the visitor token", func(t *testing.T) {
		c := newTestContext()
		c.SetVisitor("old")

		h := http.Header{}
		h.Set("X-Goog-Visitor-Id", "new")
		c.ApplyResponse(h)

		if got := c.Visitor(); got != "new" {
			t.Errorf("visitor = %q, want new", got)
		}
	})

	t.Run("keeps the visitor when the header is absent", func(t *testing.T) {
		c := newTestContext()
		c.SetVisitor("keep")
		c.ApplyResponse(http.Header{})

		if got := c.Visitor(); got != "keep" {
			t.Errorf("visitor = %q, want keep", got)
		}
	})

	t.Run("rotates credentials from Set-Cookie", func(t *testing.T) {
		c := newTestContext()
		auth, err := NewBrowserAuth("SAPISID=abc; SID=one", "https://music.youtube.com")
		if err != nil {
			t.Fatalf("failed to build auth: %v", err)
		}
		c.SetCredentials(auth)

		h := http.Header{}
		h.Add("Set-Cookie", "SID=two; Path=/; Secure")
		c.ApplyResponse(h)

		req, _ := http.NewRequest(http.MethodPost, "https://music.youtube.com", nil)
		if err := auth.Apply(req); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if got := req.Header.Get("Cookie"); got != "SAPISID=abc; SID=two" {
			t.Errorf("Cookie = %q, want rotated SID", got)
		}
	})

	t.Run("safe under concurrent readers", func(t *testing.T) {
		c := newTestContext()
		h := http.Header{}
		h.Set("X-Goog-Visitor-Id", "v")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.ApplyResponse(h)
					_ = c.Snapshot()
				}
			}()
		}
		wg.Wait()
	})
}

func TestCookiePairs(t *testing.T) {
	pairs := cookiePairs([]string{
		"SID=abc; Path=/; HttpOnly",
		"__Secure-3PSID=xyz; Secure",
		"malformed",
		"",
	})

	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %v", pairs)
	}
	if pairs["SID"] != "abc" {
		t.Errorf("SID = %q", pairs["SID"])
	}
	if pairs["__Secure-3PSID"] != "xyz" {
		t.Errorf("__Secure-3PSID = %q", pairs["__Secure-3PSID"])
	}

	if got := cookiePairs(nil); got != nil {
		t.Errorf("expected nil for no headers, got %v", got)
	}
}
