package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/innertune/internal/innertube"
	"github.com/desertthunder/innertune/internal/session"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

func secondsOrZero(s int) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s) * time.Second
}

// loadCredentials attaches on-disk credentials to the session, preferring
// browser cookies over an OAuth token when both are configured.
func loadCredentials(config *shared.Config, sess *session.Context) error {
	if path := config.Auth.BrowserFile; path != "" {
		if data, err := os.ReadFile(path); err == nil {
			creds, err := session.BrowserAuthFromCurl(data, innertube.DefaultBaseURL)
			if err != nil {
				return err
			}
			sess.SetCredentials(creds)
			return nil
		}
	}

	if path := config.Auth.OAuthFile; path != "" {
		if _, err := os.Stat(path); err == nil {
			creds, err := session.OAuthFromFile(path)
			if err != nil {
				return err
			}
			sess.SetCredentials(creds)
		}
	}
	return nil
}

func main() {
	logger := shared.NewLogger(nil)
	if os.Getenv("INNERTUNE_DEBUG") != "" {
		shared.SetLogLevel(logger, log.DebugLevel)
	}
	logger = shared.WithLogger(logger, "run", shared.GenerateID())

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	sess := sessionFromConfig(config)
	if err := loadCredentials(config, sess); err != nil {
		logger.Warn("failed to load credentials, continuing anonymously", "err", err)
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Session: sess,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "innertune",
		Usage:    "Search and browse YouTube Music from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrAuthRequired):
			logger.Fatalf("authentication required: run 'innertune auth import' first (%v)", err)
		case errors.Is(err, shared.ErrSchemaMismatch):
			logger.Fatalf("upstream response shape changed: %v", err)
		default:
			logger.Fatalf("application error: %v", err)
		}
	}
}
