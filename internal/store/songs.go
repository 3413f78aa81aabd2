package store

import (
	"database/sql"
	"fmt"

	"github.com/soundvault/soundvault/internal/domain"
)

// ErrNotFound is returned when a row does not exist. Services translate it
// into their own not-found errors.
var ErrNotFound = sql.ErrNoRows

func (db *DB) CreateSong(song *domain.Song) error {
	query := `INSERT INTO songs (
		id, title, artist, album, duration, file_path, album_cover,
		release_date, album_description, lyrics, created_at, updated_at
	) VALUES (
		:id, :title, :artist, :album, :duration, :file_path, :album_cover,
		:release_date, :album_description, :lyrics, :created_at, :updated_at
	)`

	if _, err := db.NamedExec(query, song); err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	return nil
}

func (db *DB) GetSongByID(id string) (*domain.Song, error) {
	var song domain.Song
	if err := db.Get(&song, `SELECT * FROM songs WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &song, nil
}

func (db *DB) ListSongs() ([]*domain.Song, error) {
	var songs []*domain.Song
	if err := db.Select(&songs, `SELECT * FROM songs ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	return songs, nil
}

func (db *DB) UpdateSong(song *domain.Song) error {
	query := `UPDATE songs SET
		title = :title, artist = :artist, album = :album, duration = :duration,
		file_path = :file_path, album_cover = :album_cover, release_date = :release_date,
		album_description = :album_description, lyrics = :lyrics, updated_at = :updated_at
	WHERE id = :id`

	result, err := db.NamedExec(query, song)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) DeleteSong(id string) error {
	result, err := db.Exec(`DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
