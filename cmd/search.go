package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/innertune/internal/formatter"
	"github.com/desertthunder/innertune/internal/innertube"
	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/repositories"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries the search surface, optionally following continuations,
// exporting and caching the results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	filter, err := innertube.ParseSearchFilter(cmd.String("filter"))
	if err != nil {
		return err
	}

	r.logger.Info("searching", "query", query, "filter", string(filter))

	page, err := r.client.Search(ctx, query, filter)
	if err != nil {
		return err
	}

	pages := int(cmd.Int("pages"))
	merged := page
	if pages > 1 {
		merged = &models.ResultPage{}
		fetched := 0
		err = r.client.Pages(ctx, innertube.OpSearch, page, func(p *models.ResultPage) bool {
			merged.Items = append(merged.Items, p.Items...)
			merged.Dropped += p.Dropped
			merged.Continuation = p.Continuation
			fetched++
			return fetched < pages
		})
		if err != nil {
			return err
		}
	}

	if cmd.Bool("cache") {
		if err := r.cachePage(merged); err != nil {
			return err
		}
	}

	if base := cmd.String("export"); base != "" {
		path, err := formatter.WriteCSVExport(merged, base)
		if err != nil {
			return err
		}
		r.writePlainln("Exported songs to %s", path)
	}

	return r.printPage(merged, fmt.Sprintf("Results for %q", query), cmd.Bool("json"), cmd.Bool("pretty"))
}

// cachePage stores a page's songs in the local cache.
func (r *Runner) cachePage(page *models.ResultPage) error {
	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.Migrate(db); err != nil {
		return err
	}

	stored, err := repositories.NewSongRepository(db).UpsertPage(page)
	if err != nil {
		return fmt.Errorf("failed to cache songs: %w", err)
	}

	r.logger.Info("cached songs", "count", stored)
	return nil
}

// printPage renders a parsed page as JSON or a plain text listing.
func (r *Runner) printPage(page *models.ResultPage, title string, useJSON, pretty bool) error {
	if page.Dropped > 0 {
		r.logger.Debug("page had unmappable items", "dropped", page.Dropped)
	}

	if useJSON {
		return r.writeJSON(page, pretty)
	}

	if _, err := r.output.Write(formatter.ExportToText(page, title)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !page.Continuation.IsZero() {
		r.writePlainln("\nMore results available.")
	}
	return nil
}
