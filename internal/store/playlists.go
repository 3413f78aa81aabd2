package store

import (
	"fmt"

	"github.com/soundvault/soundvault/internal/domain"
)

func (db *DB) CreatePlaylist(playlist *domain.Playlist) error {
	query := `INSERT INTO playlists (
		id, name, description, cover_image, song_ids, created_at, updated_at
	) VALUES (
		:id, :name, :description, :cover_image, :song_ids, :created_at, :updated_at
	)`

	if _, err := db.NamedExec(query, playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

func (db *DB) GetPlaylistByID(id string) (*domain.Playlist, error) {
	var playlist domain.Playlist
	if err := db.Get(&playlist, `SELECT * FROM playlists WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (db *DB) ListPlaylists() ([]*domain.Playlist, error) {
	var playlists []*domain.Playlist
	if err := db.Select(&playlists, `SELECT * FROM playlists ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

func (db *DB) UpdatePlaylist(playlist *domain.Playlist) error {
	query := `UPDATE playlists SET
		name = :name, description = :description, cover_image = :cover_image,
		song_ids = :song_ids, updated_at = :updated_at
	WHERE id = :id`

	result, err := db.NamedExec(query, playlist)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
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

func (db *DB) DeletePlaylist(id string) error {
	result, err := db.Exec(`DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
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
