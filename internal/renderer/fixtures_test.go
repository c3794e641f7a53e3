package renderer

// Fixture builders for renderer nodes, shaped the way the upstream serializes
// them. Each returns a fresh tree so tests can mutate fields freely.

func runFragment(text string) map[string]any {
	return map[string]any{"text": text}
}

func browseRunFragment(text, browseID, pageType string) map[string]any {
	return map[string]any{
		"text": text,
		"navigationEndpoint": map[string]any{
			"browseEndpoint": map[string]any{
				"browseId": browseID,
				"browseEndpointContextSupportedConfigs": map[string]any{
					"browseEndpointContextMusicConfig": map[string]any{"pageType": pageType},
				},
			},
		},
	}
}

func watchRunFragment(text, videoID string) map[string]any {
	return map[string]any{
		"text": text,
		"navigationEndpoint": map[string]any{
			"watchEndpoint": map[string]any{"videoId": videoID},
		},
	}
}

func separator() map[string]any { return runFragment(" • ") }

func flexColumn(runs ...map[string]any) map[string]any {
	fragments := make([]any, len(runs))
	for i, r := range runs {
		fragments[i] = r
	}
	return map[string]any{
		"musicResponsiveListItemFlexColumnRenderer": map[string]any{
			"text": map[string]any{"runs": fragments},
		},
	}
}

func thumbnailBlock(url string) map[string]any {
	return map[string]any{
		"musicThumbnailRenderer": map[string]any{
			"thumbnail": map[string]any{
				"thumbnails": []any{
					map[string]any{"url": url, "width": 60, "height": 60},
				},
			},
		},
	}
}

func explicitBadges() []any {
	return []any{
		map[string]any{
			"musicInlineBadgeRenderer": map[string]any{
				"icon": map[string]any{"iconType": "MUSIC_EXPLICIT_BADGE"},
			},
		},
	}
}

func menuBlock(entries ...map[string]any) map[string]any {
	items := make([]any, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return map[string]any{"menuRenderer": map[string]any{"items": items}}
}

func menuEntry(iconType, playlistID string) map[string]any {
	return map[string]any{
		"menuNavigationItemRenderer": map[string]any{
			"icon": map[string]any{"iconType": iconType},
			"navigationEndpoint": map[string]any{
				"watchPlaylistEndpoint": map[string]any{"playlistId": playlistID},
			},
		},
	}
}

func playOverlay(playlistID string) map[string]any {
	return map[string]any{
		"musicItemThumbnailOverlayRenderer": map[string]any{
			"content": map[string]any{
				"musicPlayButtonRenderer": map[string]any{
					"playNavigationEndpoint": map[string]any{
						"watchPlaylistEndpoint": map[string]any{"playlistId": playlistID},
					},
				},
			},
		},
	}
}

// songFixture is a search-result song row: video id, title column, then
// "Artist A & Artist B • Album X • 3:45".
func songFixture() Node {
	return Node{
		"playlistItemData": map[string]any{"videoId": "vid123"},
		"flexColumns": []any{
			flexColumn(watchRunFragment("Test Song", "vid123")),
			flexColumn(
				browseRunFragment("Artist A", "UCaaa", "MUSIC_PAGE_TYPE_ARTIST"),
				runFragment(" & "),
				browseRunFragment("Artist B", "UCbbb", "MUSIC_PAGE_TYPE_ARTIST"),
				separator(),
				browseRunFragment("Album X", "MPREb_x", "MUSIC_PAGE_TYPE_ALBUM"),
				separator(),
				runFragment("3:45"),
			),
		},
		"thumbnail": thumbnailBlock("https://img.example/song.jpg"),
		"badges":    explicitBadges(),
	}
}

// albumFixture is a filtered album search row: browse reference, then
// "Album • Artist A • 1987" with a play overlay.
func albumFixture() Node {
	return Node{
		"navigationEndpoint": map[string]any{
			"browseEndpoint": map[string]any{
				"browseId": "MPREb_album1",
				"browseEndpointContextSupportedConfigs": map[string]any{
					"browseEndpointContextMusicConfig": map[string]any{"pageType": "MUSIC_PAGE_TYPE_ALBUM"},
				},
			},
		},
		"flexColumns": []any{
			flexColumn(runFragment("Great Album")),
			flexColumn(
				runFragment("Album"),
				separator(),
				browseRunFragment("Artist A", "UCaaa", "MUSIC_PAGE_TYPE_ARTIST"),
				separator(),
				runFragment("1987"),
			),
		},
		"thumbnail": thumbnailBlock("https://img.example/album.jpg"),
		"overlay":   playOverlay("OLAK5uy_abc"),
	}
}

// artistFixture is an artist search row.
func artistFixture() Node {
	return Node{
		"navigationEndpoint": map[string]any{
			"browseEndpoint": map[string]any{
				"browseId": "UCartist1",
				"browseEndpointContextSupportedConfigs": map[string]any{
					"browseEndpointContextMusicConfig": map[string]any{"pageType": "MUSIC_PAGE_TYPE_ARTIST"},
				},
			},
		},
		"flexColumns": []any{
			flexColumn(runFragment("Some Artist")),
			flexColumn(runFragment("Artist"), separator(), runFragment("1.2M subscribers")),
		},
		"thumbnail": thumbnailBlock("https://img.example/artist.jpg"),
		"menu": menuBlock(
			menuEntry("MUSIC_SHUFFLE", "RDAOshuffle"),
			menuEntry("MIX", "RDEMradio"),
		),
	}
}

// playlistFixture is a playlist row identified only by its play-button
// overlay; the author run carries no browse reference.
func playlistFixture() Node {
	return Node{
		"flexColumns": []any{
			flexColumn(runFragment("Chill Mix")),
			flexColumn(
				runFragment("Some Curator"),
				separator(),
				runFragment("23 songs"),
			),
		},
		"thumbnail": thumbnailBlock("https://img.example/playlist.jpg"),
		"overlay":   playOverlay("PLxyz123"),
	}
}

// panelFixture is one watch-queue entry.
func panelFixture() Node {
	return Node{
		"videoId": "vid999",
		"title":   map[string]any{"runs": []any{runFragment("Queued Song")}},
		"longBylineText": map[string]any{"runs": []any{
			browseRunFragment("Artist A", "UCaaa", "MUSIC_PAGE_TYPE_ARTIST"),
			separator(),
			browseRunFragment("Album X", "MPREb_x", "MUSIC_PAGE_TYPE_ALBUM"),
		}},
		"lengthText": map[string]any{"runs": []any{runFragment("4:20")}},
		"thumbnail": map[string]any{
			"thumbnails": []any{map[string]any{"url": "https://img.example/panel.jpg"}},
		},
	}
}

// twoRowAlbumFixture is a browse-grid album card.
func twoRowAlbumFixture() Node {
	return Node{
		"navigationEndpoint": map[string]any{
			"browseEndpoint": map[string]any{
				"browseId": "MPREb_grid",
				"browseEndpointContextSupportedConfigs": map[string]any{
					"browseEndpointContextMusicConfig": map[string]any{"pageType": "MUSIC_PAGE_TYPE_ALBUM"},
				},
			},
		},
		"title":            map[string]any{"runs": []any{runFragment("Grid Album")}},
		"subtitle":         map[string]any{"runs": []any{runFragment("Album"), separator(), runFragment("2021")}},
		"thumbnailRenderer": thumbnailBlock("https://img.example/grid.jpg"),
		"thumbnailOverlay": playOverlay("OLAK5uy_grid"),
	}
}

// wrap embeds item nodes in a shelf inside the usual tab/section wrapping,
// optionally alongside a continuation cursor.
func wrapPage(cont string, items ...Node) Node {
	contents := make([]any, len(items))
	for i, n := range items {
		contents[i] = map[string]any{"musicResponsiveListItemRenderer": map[string]any(n)}
	}

	shelf := map[string]any{"contents": contents}
	if cont != "" {
		shelf["continuations"] = []any{
			map[string]any{"nextContinuationData": map[string]any{"continuation": cont}},
		}
	}

	return Node{
		"contents": map[string]any{
			"tabbedSearchResultsRenderer": map[string]any{
				"tabs": []any{
					map[string]any{
						"tabRenderer": map[string]any{
							"content": map[string]any{
								"sectionListRenderer": map[string]any{
									"contents": []any{
										map[string]any{"musicShelfRenderer": shelf},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
