package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/innertune/internal/innertube"
	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/desertthunder/innertune/internal/ui"
	"github.com/urfave/cli/v3"
)

// Tui searches and opens the interactive result browser; continuation pages
// are fetched on demand from inside the TUI.
func (r *Runner) Tui(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	filter, err := innertube.ParseSearchFilter(cmd.String("filter"))
	if err != nil {
		return err
	}

	page, err := r.client.Search(ctx, query, filter)
	if err != nil {
		return err
	}

	loader := func(ctx context.Context, cont models.Continuation) (*models.ResultPage, error) {
		return r.client.Continue(ctx, innertube.OpSearch, cont)
	}

	return ui.Run(ui.New(fmt.Sprintf("Results for %q", query), page, loader))
}
