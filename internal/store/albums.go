package store

import (
	"fmt"

	"github.com/soundvault/soundvault/internal/domain"
)

func (db *DB) CreateAlbum(album *domain.Album) error {
	query := `INSERT INTO albums (
		id, name, artist, description, cover_image, release_date, song_ids,
		created_at, updated_at
	) VALUES (
		:id, :name, :artist, :description, :cover_image, :release_date, :song_ids,
		:created_at, :updated_at
	)`

	if _, err := db.NamedExec(query, album); err != nil {
		return fmt.Errorf("failed to create album: %w", err)
	}
	return nil
}

func (db *DB) GetAlbumByID(id string) (*domain.Album, error) {
	var album domain.Album
	if err := db.Get(&album, `SELECT * FROM albums WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &album, nil
}

func (db *DB) ListAlbums() ([]*domain.Album, error) {
	var albums []*domain.Album
	if err := db.Select(&albums, `SELECT * FROM albums ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

func (db *DB) UpdateAlbum(album *domain.Album) error {
	query := `UPDATE albums SET
		name = :name, artist = :artist, description = :description,
		cover_image = :cover_image, release_date = :release_date,
		song_ids = :song_ids, updated_at = :updated_at
	WHERE id = :id`

	result, err := db.NamedExec(query, album)
	if err != nil {
		return fmt.Errorf("failed to update album: %w", err)
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

func (db *DB) DeleteAlbum(id string) error {
	result, err := db.Exec(`DELETE FROM albums WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
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
