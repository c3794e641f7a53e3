package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

func (r *Runner) browse(ctx context.Context, cmd *cli.Command, what string,
	fetch func(context.Context, string) (*models.ResultPage, error)) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: %s id", shared.ErrMissingArgument, what)
	}

	r.logger.Info("browsing", "kind", what, "id", id)

	page, err := fetch(ctx, id)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s %s", what, id)
	return r.printPage(page, title, cmd.Bool("json"), cmd.Bool("pretty"))
}

// BrowseArtist fetches an artist channel page.
func (r *Runner) BrowseArtist(ctx context.Context, cmd *cli.Command) error {
	return r.browse(ctx, cmd, "artist", r.client.Artist)
}

// BrowseAlbum fetches an album page and its track list.
func (r *Runner) BrowseAlbum(ctx context.Context, cmd *cli.Command) error {
	return r.browse(ctx, cmd, "album", r.client.Album)
}

// BrowseRelated fetches related content for a browse id.
func (r *Runner) BrowseRelated(ctx context.Context, cmd *cli.Command) error {
	return r.browse(ctx, cmd, "related", r.client.Related)
}

// Queue resolves the watch queue for a video and/or playlist.
func (r *Runner) Queue(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.String("video")
	playlistID := cmd.String("playlist")
	if videoID == "" && playlistID == "" {
		return fmt.Errorf("%w: --video or --playlist", shared.ErrMissingArgument)
	}

	r.logger.Info("resolving queue", "video", videoID, "playlist", playlistID)

	page, err := r.client.Queue(ctx, videoID, playlistID)
	if err != nil {
		return err
	}

	return r.printPage(page, "Queue", cmd.Bool("json"), cmd.Bool("pretty"))
}
