package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/innertune/internal/innertube"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

// searchPageJSON is a minimal one-song search response in the upstream's shape.
const searchPageJSON = `{
	"contents": {"sectionListRenderer": {"contents": [{"musicShelfRenderer": {
		"contents": [{"musicResponsiveListItemRenderer": {
			"playlistItemData": {"videoId": "vid1"},
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Found Song"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Some Artist"}]}}}
			],
			"thumbnail": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [{"url": "https://img/1.jpg"}]}}}
		}}]
	}}]}}
}`

func testRunner(t *testing.T, handler http.HandlerFunc) (*Runner, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := shared.DefaultConfig()
	config.Cache.Path = ":memory:"
	sess := sessionFromConfig(config)
	output := &bytes.Buffer{}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Session: sess,
		Client: innertube.New(innertube.Opts{
			BaseURL:   srv.URL,
			Session:   sess,
			RateLimit: 10000,
		}),
		Logger: shared.NewLogger(&bytes.Buffer{}),
		Output: output,
	})
	return runner, output
}

func runCommand(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	root := &cli.Command{Name: "innertune", Commands: r.register()}
	return root.Run(context.Background(), append([]string{"innertune"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			sess := sessionFromConfig(config)
			client := clientFromConfig(config, sess, logger)

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Session: sess,
				Client:  client,
				Logger:  logger,
				Output:  output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.session != sess {
				t.Error("expected session to be set")
			}
			if runner.client != client {
				t.Error("expected client to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.session == nil {
				t.Error("expected a session built from the default config")
			}
			if runner.client == nil {
				t.Error("expected a client built from the default config")
			}
		})

		t.Run("session locale follows the config", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Locale.HL, config.Locale.GL = "ja", "JP"
			runner := NewRunner(RunnerOpts{Config: config})

			if got := runner.session.Locale(); got.HL != "ja" || got.GL != "JP" {
				t.Errorf("locale = %+v", got)
			}
		})
	})

	t.Run("register returns all commands", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		commands := runner.register()

		want := []string{"setup", "auth", "search", "browse", "queue", "cache", "tui"}
		if len(commands) != len(want) {
			t.Fatalf("expected %d commands, got %d", len(want), len(commands))
		}
		for i, name := range want {
			if commands[i].Name != name {
				t.Errorf("command %d = %q, want %q", i, commands[i].Name, name)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes compact JSON with trailing newline", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"k": "v"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "{\"k\":\"v\"}\n" {
				t.Errorf("output = %q", output.String())
			}
		})

		t.Run("writes indented JSON when pretty", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"k": "v"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !strings.Contains(output.String(), "  \"k\": \"v\"") {
				t.Errorf("output = %q", output.String())
			}
		})

		t.Run("handles marshal error", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
			if err := runner.writeJSON(make(chan int), false); err == nil {
				t.Error("expected an error for non-serializable data")
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: failWriter{}})
			if err := runner.writeJSON(map[string]string{"k": "v"}, false); err == nil {
				t.Error("expected an error from the failing writer")
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlainln("count: %d", 3); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "count: 3\n" {
			t.Errorf("output = %q", output.String())
		}

		bad := NewRunner(RunnerOpts{Output: failWriter{}})
		if err := bad.writePlain("x"); err == nil {
			t.Error("expected an error from the failing writer")
		}
	})
}

func TestSearchCommand(t *testing.T) {
	t.Run("prints a text listing", func(t *testing.T) {
		runner, output := testRunner(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, searchPageJSON)
		})

		if err := runCommand(t, runner, "search", "found song"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Some Artist - Found Song") {
			t.Errorf("output = %q", output.String())
		}
	})

	t.Run("emits JSON when asked", func(t *testing.T) {
		runner, output := testRunner(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, searchPageJSON)
		})

		if err := runCommand(t, runner, "search", "--json", "found song"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), `"vid1"`) {
			t.Errorf("output = %q", output.String())
		}
	})

	t.Run("missing query is an error", func(t *testing.T) {
		runner, _ := testRunner(t, func(w http.ResponseWriter, r *http.Request) {})
		err := runCommand(t, runner, "search")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Fatalf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("unknown filter is an error", func(t *testing.T) {
		runner, _ := testRunner(t, func(w http.ResponseWriter, r *http.Request) {})
		err := runCommand(t, runner, "search", "--filter", "videos", "q")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Fatalf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestBrowseCommands(t *testing.T) {
	t.Run("artist page renders", func(t *testing.T) {
		runner, output := testRunner(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/youtubei/v1/browse" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			fmt.Fprint(w, searchPageJSON)
		})

		if err := runCommand(t, runner, "browse", "artist", "UCx"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Found Song") {
			t.Errorf("output = %q", output.String())
		}
	})

	t.Run("missing id is an error", func(t *testing.T) {
		runner, _ := testRunner(t, func(w http.ResponseWriter, r *http.Request) {})
		err := runCommand(t, runner, "browse", "album")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Fatalf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestQueueCommand(t *testing.T) {
	t.Run("resolves by video id", func(t *testing.T) {
		runner, output := testRunner(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/youtubei/v1/next" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			fmt.Fprint(w, searchPageJSON)
		})

		if err := runCommand(t, runner, "queue", "--video", "vidX"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Queue") {
			t.Errorf("output = %q", output.String())
		}
	})

	t.Run("needs a video or playlist", func(t *testing.T) {
		runner, _ := testRunner(t, func(w http.ResponseWriter, r *http.Request) {})
		err := runCommand(t, runner, "queue")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Fatalf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestAuthStatusCommand(t *testing.T) {
	runner, output := testRunner(t, func(w http.ResponseWriter, r *http.Request) {})

	if err := runCommand(t, runner, "auth", "status"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output.String(), "Anonymous session") {
		t.Errorf("output = %q", output.String())
	}
}
