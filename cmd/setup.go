package main

import (
	"context"

	"github.com/desertthunder/innertune/internal/repositories"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates a config file from the embedded example and initializes the
// local cache schema.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		r.logger.Warn("config file not created", "err", err)
	} else {
		r.writePlainln("✓ Created %s", path)
	}

	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.Migrate(db); err != nil {
		return err
	}

	r.writePlainln("✓ Cache initialized at %s", r.config.Cache.Path)
	return nil
}
