package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/innertune/internal/models"
)

// Migrate creates the cache schema if it does not exist.
func Migrate(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS songs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			artists TEXT NOT NULL,
			album_id TEXT,
			album_name TEXT,
			duration INTEGER NOT NULL DEFAULT 0,
			thumbnail TEXT NOT NULL,
			explicit INTEGER NOT NULL DEFAULT 0,
			cached_at TIMESTAMP NOT NULL
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create songs table: %w", err)
	}
	return nil
}

// CachedSong pairs a parsed song with the time it was cached.
type CachedSong struct {
	Song     models.Song
	CachedAt time.Time
}

// SongRepository caches parsed songs in SQLite.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a SongRepository with the given database connection.
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Upsert inserts or replaces a song by its upstream identifier. Replacing is
// safe because identifiers are stable: a re-parse of the same id is the same
// entity, possibly with fresher metadata.
func (r *SongRepository) Upsert(song models.Song) error {
	if song.ID == "" {
		return fmt.Errorf("song has no identifier")
	}

	artists, err := json.Marshal(song.Artists)
	if err != nil {
		return fmt.Errorf("failed to encode artists: %w", err)
	}

	var albumID, albumName string
	if song.Album != nil {
		albumID, albumName = song.Album.ID, song.Album.Name
	}

	query := `
		INSERT OR REPLACE INTO songs (id, title, artists, album_id, album_name, duration, thumbnail, explicit, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		song.ID, song.Title, string(artists), albumID, albumName,
		song.Duration, song.Thumb, song.Explicit, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert song: %w", err)
	}
	return nil
}

// UpsertPage caches every song in a parsed page, returning the count stored.
func (r *SongRepository) UpsertPage(page *models.ResultPage) (int, error) {
	stored := 0
	for _, song := range page.Songs() {
		if err := r.Upsert(song); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

// Get retrieves a cached song by upstream identifier.
func (r *SongRepository) Get(id string) (*CachedSong, error) {
	query := `
		SELECT id, title, artists, album_id, album_name, duration, thumbnail, explicit, cached_at
		FROM songs WHERE id = ?
	`
	return r.scanOne(r.db.QueryRow(query, id))
}

// List retrieves up to limit cached songs, most recently cached first.
func (r *SongRepository) List(limit int) ([]CachedSong, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, title, artists, album_id, album_name, duration, thumbnail, explicit, cached_at
		FROM songs ORDER BY cached_at DESC LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	defer rows.Close()

	var songs []CachedSong
	for rows.Next() {
		cached, err := scanSong(rows.Scan)
		if err != nil {
			return nil, err
		}
		songs = append(songs, *cached)
	}
	return songs, rows.Err()
}

// Count returns the number of cached songs.
func (r *SongRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM songs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}

func (r *SongRepository) scanOne(row *sql.Row) (*CachedSong, error) {
	cached, err := scanSong(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("song not cached: %w", err)
	}
	return cached, err
}

func scanSong(scan func(...any) error) (*CachedSong, error) {
	var (
		cached   CachedSong
		artists  string
		albumID  sql.NullString
		albumNm  sql.NullString
		explicit int
	)

	err := scan(&cached.Song.ID, &cached.Song.Title, &artists, &albumID, &albumNm,
		&cached.Song.Duration, &cached.Song.Thumb, &explicit, &cached.CachedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(artists), &cached.Song.Artists); err != nil {
		return nil, fmt.Errorf("failed to decode artists: %w", err)
	}
	if albumID.String != "" || albumNm.String != "" {
		cached.Song.Album = &models.Ref{ID: albumID.String, Name: albumNm.String}
	}
	cached.Song.Explicit = explicit != 0

	return &cached, nil
}
