package main

import (
	"context"

	"github.com/desertthunder/innertune/internal/repositories"
	"github.com/desertthunder/innertune/internal/shared"
	"github.com/urfave/cli/v3"
)

// CacheList lists cached songs, most recently cached first.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.Migrate(db); err != nil {
		return err
	}

	songs, err := repositories.NewSongRepository(db).List(int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if len(songs) == 0 {
		r.writePlainln("Cache is empty.")
		return nil
	}

	for i, cached := range songs {
		artist := ""
		if len(cached.Song.Artists) > 0 {
			artist = cached.Song.Artists[0].Name
		}
		r.writePlainln("%d. %s - %s [%s]", i+1, artist, cached.Song.Title,
			shared.FormatDuration(cached.Song.Duration))
	}
	return nil
}

// CacheStats reports the size of the local cache.
func (r *Runner) CacheStats(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.Migrate(db); err != nil {
		return err
	}

	count, err := repositories.NewSongRepository(db).Count()
	if err != nil {
		return err
	}

	r.writePlainln("Cached songs: %d", count)
	r.writePlainln("Database: %s", r.config.Cache.Path)
	return nil
}
