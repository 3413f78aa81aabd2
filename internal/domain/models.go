package domain

import "time"

// Song is one track in the library. FilePath and AlbumCover are serving
// paths under /uploads, not filesystem paths.
type Song struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Artist           string    `json:"artist" db:"artist"`
	Album            string    `json:"album" db:"album"`
	Duration         int       `json:"duration" db:"duration"` // whole seconds
	FilePath         string    `json:"filePath" db:"file_path"`
	AlbumCover       string    `json:"albumCover,omitempty" db:"album_cover"`
	ReleaseDate      string    `json:"releaseDate,omitempty" db:"release_date"`
	AlbumDescription string    `json:"albumDescription,omitempty" db:"album_description"`
	Lyrics           string    `json:"lyrics,omitempty" db:"lyrics"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// Playlist is a named ordered collection of song ids.
type Playlist struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description,omitempty" db:"description"`
	CoverImage  string      `json:"coverImage,omitempty" db:"cover_image"`
	SongIDs     StringSlice `json:"songIds" db:"song_ids"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// Album is a playlist that additionally carries an artist and release date.
type Album struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Artist      string      `json:"artist" db:"artist"`
	Description string      `json:"description,omitempty" db:"description"`
	CoverImage  string      `json:"coverImage,omitempty" db:"cover_image"`
	ReleaseDate string      `json:"releaseDate,omitempty" db:"release_date"`
	SongIDs     StringSlice `json:"songIds" db:"song_ids"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// User is an account. PasswordHash never leaves the server.
type User struct {
	ID              string      `json:"id" db:"id"`
	Username        string      `json:"username" db:"username"`
	Email           string      `json:"email" db:"email"`
	PasswordHash    string      `json:"-" db:"password_hash"`
	FavoriteSongIDs StringSlice `json:"favoriteSongIds" db:"favorite_song_ids"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}

// PublicUser is the subset of User safe to return from auth endpoints.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the API-safe view of a user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
