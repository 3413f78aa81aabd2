// Package dto holds the request payloads accepted by the API and their
// validation rules.
package dto

import "github.com/soundvault/soundvault/internal/domain"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRequired("username", r.Username)...)
	errs = append(errs, validateEmail(r.Email)...)
	errs = append(errs, validatePassword(r.Password)...)
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRequired("email", r.Email)...)
	errs = append(errs, validateRequired("password", r.Password)...)
	return errs
}

type PlaylistRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CoverImage  string             `json:"coverImage"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

func (r *PlaylistRequest) Validate() []ValidationError {
	return validateRequired("name", r.Name)
}

// PlaylistUpdateRequest uses pointers so omitted fields are left alone.
type PlaylistUpdateRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	CoverImage  *string            `json:"coverImage"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

func (r *PlaylistUpdateRequest) Validate() []ValidationError {
	if r.Name != nil {
		return validateRequired("name", *r.Name)
	}
	return nil
}

type AlbumRequest struct {
	Name        string             `json:"name"`
	Artist      string             `json:"artist"`
	Description string             `json:"description"`
	CoverImage  string             `json:"coverImage"`
	ReleaseDate string             `json:"releaseDate"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

func (r *AlbumRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRequired("name", r.Name)...)
	errs = append(errs, validateRequired("artist", r.Artist)...)
	errs = append(errs, validateReleaseDate(r.ReleaseDate)...)
	return errs
}

// AlbumUpdateRequest uses pointers so omitted fields are left alone.
type AlbumUpdateRequest struct {
	Name        *string            `json:"name"`
	Artist      *string            `json:"artist"`
	Description *string            `json:"description"`
	CoverImage  *string            `json:"coverImage"`
	ReleaseDate *string            `json:"releaseDate"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

func (r *AlbumUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	if r.Name != nil {
		errs = append(errs, validateRequired("name", *r.Name)...)
	}
	if r.Artist != nil {
		errs = append(errs, validateRequired("artist", *r.Artist)...)
	}
	if r.ReleaseDate != nil {
		errs = append(errs, validateReleaseDate(*r.ReleaseDate)...)
	}
	return errs
}

type FavoritesRequest struct {
	FavoriteSongIDs domain.StringSlice `json:"favoriteSongIds"`
}
