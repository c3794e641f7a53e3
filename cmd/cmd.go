// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// searchCommand queries the search surface.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search for songs, albums, artists and playlists",
		ArgsUsage: "<query>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "Restrict results to one kind (songs, albums, artists, playlists)",
			},
			&cli.IntFlag{
				Name:  "pages",
				Usage: "Follow continuations for up to N pages",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
			&cli.StringFlag{
				Name:    "export",
				Aliases: []string{"o"},
				Usage:   "Export songs to CSV at the given base path",
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "Store fetched songs in the local cache",
			},
		},
		Action: r.Search,
	}
}

// browseCommand resolves channel, album and related-content pages.
func browseCommand(r *Runner) *cli.Command {
	idArg := []cli.Argument{&cli.StringArg{Name: "id"}}
	outputFlags := []cli.Flag{
		configFlag(),
		&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
		&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
	}

	return &cli.Command{
		Name:  "browse",
		Usage: "Browse upstream pages by id",
		Commands: []*cli.Command{
			{
				Name:      "artist",
				Usage:     "Fetch an artist page",
				ArgsUsage: "<channel-id>",
				Arguments: idArg,
				Flags:     outputFlags,
				Action:    r.BrowseArtist,
			},
			{
				Name:      "album",
				Usage:     "Fetch an album page and its track list",
				ArgsUsage: "<browse-id>",
				Arguments: idArg,
				Flags:     outputFlags,
				Action:    r.BrowseAlbum,
			},
			{
				Name:      "related",
				Usage:     "Fetch related content for a browse id",
				ArgsUsage: "<browse-id>",
				Arguments: idArg,
				Flags:     outputFlags,
				Action:    r.BrowseRelated,
			},
		},
	}
}

// queueCommand resolves watch queues.
func queueCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "queue",
		Usage: "Resolve the watch queue for a video or playlist",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "video",
				Usage: "Video ID to resolve",
			},
			&cli.StringFlag{
				Name:  "playlist",
				Usage: "Playlist ID to resolve",
			},
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
			&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
		},
		Action: r.Queue,
	}
}

// cacheCommand inspects the local entity cache.
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect locally cached entities",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List cached songs, most recent first",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of songs to list",
						Value: 50,
					},
				},
				Action: r.CacheList,
			},
			{
				Name:   "stats",
				Usage:  "Show cache statistics",
				Flags:  []cli.Flag{configFlag()},
				Action: r.CacheStats,
			},
		},
	}
}

// authCommand manages browser credentials.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage upstream credentials",
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import browser credentials from a copied cURL command",
				ArgsUsage: "<curl-file>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "file"}},
				Flags:     []cli.Flag{configFlag()},
				Action:    r.AuthImport,
			},
			{
				Name:   "status",
				Usage:  "Show whether the session is authenticated",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthStatus,
			},
		},
	}
}

// setupCommand initializes config and the local cache.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml and initialize the local cache",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// tuiCommand launches the interactive result browser.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Browse search results interactively",
		ArgsUsage: "<query>",
		Arguments: []cli.Argument{&cli.StringArg{Name: "query"}},
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "Restrict results to one kind",
			},
		},
		Action: r.Tui,
	}
}
