package formatter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/innertune/internal/models"
	th "github.com/desertthunder/innertune/internal/testing"
)

func testPage() *models.ResultPage {
	return &models.ResultPage{
		Items: []models.Item{
			models.Song{
				ID:       "vid1",
				Title:    "Test Song",
				Artists:  []models.Ref{{Name: "Artist A"}, {Name: "Artist B"}},
				Album:    &models.Ref{ID: "MPREb_x", Name: "Album X"},
				Duration: 225,
				Thumb:    "https://img.example/1.jpg",
				Explicit: true,
			},
			models.Album{
				ID:      "MPREb_y",
				Title:   "Some Album",
				Artists: []models.Ref{{Name: "Artist C"}},
				Year:    1987,
			},
			models.Artist{ID: "UCx", Name: "Solo Artist"},
			models.Playlist{
				ID:        "PLabc",
				Title:     "Mixtape",
				Author:    models.Ref{Name: "Curator"},
				SongCount: "23 songs",
			},
		},
		Continuation: "more",
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(testPage())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected header plus one song row, got %d rows", len(records))
	}
	if records[0][0] != "ID" || records[0][5] != "Explicit" {
		t.Errorf("header = %v", records[0])
	}

	row := records[1]
	if row[0] != "vid1" || row[1] != "Test Song" {
		t.Errorf("row = %v", row)
	}
	if row[2] != "Artist A, Artist B" {
		t.Errorf("artists = %q", row[2])
	}
	if row[3] != "Album X" || row[4] != "225" || row[5] != "true" {
		t.Errorf("row = %v", row)
	}
}

func TestExportToMarkdown(t *testing.T) {
	out := string(ExportToMarkdown(testPage(), "Search Results"))

	for _, want := range []string{
		"# Search Results",
		"**Items**: 4",
		"Artist A, Artist B - Test Song [3:45] (Album X)",
		"[Album] Artist C - Some Album (1987)",
		"[Artist] Solo Artist",
		"[Playlist] Mixtape by Curator (23 songs)",
		"_More results available._",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestExportToText(t *testing.T) {
	out := string(ExportToText(testPage(), "Results"))

	for _, want := range []string{
		"Results\n",
		"Items: 4",
		"1. Artist A, Artist B - Test Song",
		"2. Artist C - Some Album (album)",
		"3. Solo Artist (artist)",
		"4. Mixtape (playlist, 23 songs)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestWriteCSVExport(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "export")

	path, err := WriteCSVExport(testPage(), base)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != base+".csv" {
		t.Errorf("path = %q", path)
	}
	th.AssertFileExists(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "Test Song") {
		t.Error("export missing song data")
	}
}
