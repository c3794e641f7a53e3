// package formatter renders parsed result pages to export formats (CSV,
// Markdown, plain text) for consumption outside the client.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/innertune/internal/models"
	"github.com/desertthunder/innertune/internal/shared"
)

func artistNames(refs []models.Ref) string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}

// ExportToCSV renders the songs of a page as CSV with columns:
// ID, Title, Artists, Album, Duration, Explicit.
func ExportToCSV(page *models.ResultPage) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artists", "Album", "Duration", "Explicit"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range page.Songs() {
		album := ""
		if song.Album != nil {
			album = song.Album.Name
		}
		record := []string{
			song.ID,
			song.Title,
			artistNames(song.Artists),
			album,
			strconv.Itoa(song.Duration),
			strconv.FormatBool(song.Explicit),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders a full page, all entity kinds included, as a
// Markdown listing under the given title.
func ExportToMarkdown(page *models.ResultPage, title string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Items**: %d\n\n", len(page.Items)))

	for i, item := range page.Items {
		switch v := item.(type) {
		case models.Song:
			line := fmt.Sprintf("%d. %s - %s [%s]", i+1, artistNames(v.Artists), v.Title, shared.FormatDuration(v.Duration))
			if v.Album != nil {
				line += fmt.Sprintf(" (%s)", v.Album.Name)
			}
			buf.WriteString(line + "\n")
		case models.Album:
			line := fmt.Sprintf("%d. [Album] %s - %s", i+1, artistNames(v.Artists), v.Title)
			if v.Year > 0 {
				line += fmt.Sprintf(" (%d)", v.Year)
			}
			buf.WriteString(line + "\n")
		case models.Artist:
			buf.WriteString(fmt.Sprintf("%d. [Artist] %s\n", i+1, v.Name))
		case models.Playlist:
			buf.WriteString(fmt.Sprintf("%d. [Playlist] %s by %s (%s)\n", i+1, v.Title, v.Author.Name, v.SongCount))
		}
	}

	if !page.Continuation.IsZero() {
		buf.WriteString("\n_More results available._\n")
	}

	return buf.Bytes()
}

// ExportToText renders a page as a plain text listing.
func ExportToText(page *models.ResultPage, title string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Items: %d\n\n", len(page.Items)))

	for i, item := range page.Items {
		switch v := item.(type) {
		case models.Song:
			buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, artistNames(v.Artists), v.Title))
		case models.Album:
			buf.WriteString(fmt.Sprintf("%d. %s - %s (album)\n", i+1, artistNames(v.Artists), v.Title))
		case models.Artist:
			buf.WriteString(fmt.Sprintf("%d. %s (artist)\n", i+1, v.Name))
		case models.Playlist:
			buf.WriteString(fmt.Sprintf("%d. %s (playlist, %s)\n", i+1, v.Title, v.SongCount))
		}
	}

	return buf.Bytes()
}

// WriteCSVExport writes a page's songs to {base}.csv, defaulting the base
// name to "results".
func WriteCSVExport(page *models.ResultPage, base string) (string, error) {
	if base == "" {
		base = "results"
	}

	data, err := ExportToCSV(page)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	path := base + ".csv"
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}
