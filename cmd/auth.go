package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/innertune/internal/innertube"
	"github.com/desertthunder/innertune/internal/session"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthImport validates a copied cURL command and saves it to the configured
// browser credential file. Subsequent runs pick it up automatically.
func (r *Runner) AuthImport(ctx context.Context, cmd *cli.Command) error {
	src := cmd.StringArg("file")
	if src == "" {
		return fmt.Errorf("%w: curl file path", shared.ErrMissingArgument)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read curl file: %w", err)
	}

	creds, err := session.BrowserAuthFromCurl(data, innertube.DefaultBaseURL)
	if err != nil {
		return err
	}

	dest := r.config.Auth.BrowserFile
	if dest == "" {
		dest = "browser_auth.txt"
	}
	if err := os.WriteFile(dest, data, 0600); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	r.session.SetCredentials(creds)
	r.logger.Info("browser credentials imported", "file", dest)
	r.writePlainln("✓ Credentials imported to %s", dest)
	return nil
}

// AuthStatus reports whether the session carries credentials.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.session.Authenticated() {
		r.writePlainln("Authenticated.")
	} else {
		r.writePlainln("Anonymous session. Run 'innertune auth import <curl-file>' to authenticate.")
	}

	if visitor := r.session.Visitor(); visitor != "" {
		r.writePlainln("Visitor token: %s", visitor)
	}
	return nil
}
