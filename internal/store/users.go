package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/soundvault/soundvault/internal/domain"
)

// IsUniqueViolation reports whether err is a UNIQUE constraint failure,
// which the auth service maps to a conflict.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (db *DB) CreateUser(user *domain.User) error {
	query := `INSERT INTO users (
		id, username, email, password_hash, favorite_song_ids, created_at, updated_at
	) VALUES (
		:id, :username, :email, :password_hash, :favorite_song_ids, :created_at, :updated_at
	)`

	if _, err := db.NamedExec(query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (db *DB) GetUserByID(id string) (*domain.User, error) {
	var user domain.User
	if err := db.Get(&user, `SELECT * FROM users WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := db.Get(&user, `SELECT * FROM users WHERE email = ?`, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) GetUserByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := db.Get(&user, `SELECT * FROM users WHERE username = ?`, username); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) UpdateUserFavorites(userID string, favoriteSongIDs domain.StringSlice) error {
	result, err := db.Exec(
		`UPDATE users SET favorite_song_ids = ?, updated_at = ? WHERE id = ?`,
		favoriteSongIDs, time.Now().UTC(), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update favorites: %w", err)
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
