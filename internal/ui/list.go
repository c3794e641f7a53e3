package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/shared"
)

var _ list.Item = entityItem{}

// entityItem wraps any parsed entity to implement [list.Item].
type entityItem struct {
	item models.Item
}

func names(refs []models.Ref) string {
	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		parts = append(parts, r.Name)
	}
	return strings.Join(parts, ", ")
}

func (e entityItem) FilterValue() string { return e.Title() }

func (e entityItem) Title() string {
	switch v := e.item.(type) {
	case models.Song:
		return v.Title
	case models.Album:
		return v.Title
	case models.Artist:
		return v.Name
	case models.Playlist:
		return v.Title
	}
	return e.item.ItemID()
}

func (e entityItem) Description() string {
	switch v := e.item.(type) {
	case models.Song:
		desc := names(v.Artists)
		if v.Album != nil {
			desc = fmt.Sprintf("%s • %s", desc, v.Album.Name)
		}
		if v.Duration > 0 {
			desc = fmt.Sprintf("%s • %s", desc, shared.FormatDuration(v.Duration))
		}
		return desc
	case models.Album:
		desc := "Album"
		if len(v.Artists) > 0 {
			desc = fmt.Sprintf("Album • %s", names(v.Artists))
		}
		if v.Year > 0 {
			desc = fmt.Sprintf("%s • %d", desc, v.Year)
		}
		return desc
	case models.Artist:
		return "Artist"
	case models.Playlist:
		return fmt.Sprintf("Playlist • %s • %s", v.Author.Name, v.SongCount)
	}
	return string(e.item.ItemKind())
}

func toListItems(items []models.Item) []list.Item {
	wrapped := make([]list.Item, len(items))
	for i, it := range items {
		wrapped[i] = entityItem{item: it}
	}
	return wrapped
}
