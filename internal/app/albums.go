package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/domain"
	"github.com/soundvault/soundvault/internal/logger"
	"github.com/soundvault/soundvault/internal/store"
)

// AlbumInput carries the writable album fields.
type AlbumInput struct {
	Name        string             `json:"name"`
	Artist      string             `json:"artist"`
	Description string             `json:"description"`
	CoverImage  string             `json:"coverImage"`
	ReleaseDate string             `json:"releaseDate"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

// AlbumUpdate carries the mutable album fields. Nil means "leave as is",
// so a body that omits a field never blanks it.
type AlbumUpdate struct {
	Name        *string            `json:"name"`
	Artist      *string            `json:"artist"`
	Description *string            `json:"description"`
	CoverImage  *string            `json:"coverImage"`
	ReleaseDate *string            `json:"releaseDate"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

type AlbumService interface {
	Create(input AlbumInput) (*domain.Album, error)
	Get(id string) (*domain.Album, error)
	List() ([]*domain.Album, error)
	Update(id string, update AlbumUpdate) (*domain.Album, error)
	Delete(id string) error
	AddSong(id, songID string) (*domain.Album, error)
	RemoveSong(id, songID string) (*domain.Album, error)
}

type albumService struct {
	db     *store.DB
	logger *logger.Logger
}

func NewAlbumService(db *store.DB, log *logger.Logger) AlbumService {
	return &albumService{db: db, logger: log.WithComponent("albums")}
}

func (s *albumService) Create(input AlbumInput) (*domain.Album, error) {
	if input.Name == "" {
		return nil, apperr.Validation("album name is required")
	}
	if input.Artist == "" {
		return nil, apperr.Validation("album artist is required")
	}

	now := time.Now().UTC()
	album := &domain.Album{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Artist:      input.Artist,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		ReleaseDate: input.ReleaseDate,
		SongIDs:     input.SongIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if album.SongIDs == nil {
		album.SongIDs = domain.StringSlice{}
	}

	if err := s.db.CreateAlbum(album); err != nil {
		return nil, apperr.Internal("failed to create album", err)
	}

	s.logger.Info("album created", "id", album.ID, "name", album.Name, "artist", album.Artist)
	return album, nil
}

func (s *albumService) Get(id string) (*domain.Album, error) {
	album, err := s.load(id)
	if err != nil {
		return nil, err
	}
	s.fillCover(album)
	return album, nil
}

// load fetches the stored row as-is. Mutations go through load, never
// Get, so the derived cover stays out of the database.
func (s *albumService) load(id string) (*domain.Album, error) {
	album, err := s.db.GetAlbumByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("album")
		}
		return nil, apperr.Internal("failed to load album", err)
	}
	return album, nil
}

func (s *albumService) List() ([]*domain.Album, error) {
	albums, err := s.db.ListAlbums()
	if err != nil {
		return nil, apperr.Internal("failed to list albums", err)
	}
	for _, a := range albums {
		s.fillCover(a)
	}
	return albums, nil
}

func (s *albumService) Update(id string, update AlbumUpdate) (*domain.Album, error) {
	album, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		album.Name = *update.Name
	}
	if update.Artist != nil {
		album.Artist = *update.Artist
	}
	if update.Description != nil {
		album.Description = *update.Description
	}
	if update.CoverImage != nil {
		album.CoverImage = *update.CoverImage
	}
	if update.ReleaseDate != nil {
		album.ReleaseDate = *update.ReleaseDate
	}
	if update.SongIDs != nil {
		album.SongIDs = update.SongIDs
	}

	return s.save(album)
}

func (s *albumService) Delete(id string) error {
	if err := s.db.DeleteAlbum(id); err != nil {
		if err == store.ErrNotFound {
			return apperr.NotFound("album")
		}
		return apperr.Internal("failed to delete album", err)
	}
	return nil
}

// AddSong appends songID unless it is already a member.
func (s *albumService) AddSong(id, songID string) (*domain.Album, error) {
	album, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if album.SongIDs.Contains(songID) {
		s.fillCover(album)
		return album, nil
	}
	if _, err := s.db.GetSongByID(songID); err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("song")
		}
		return nil, apperr.Internal("failed to load song", err)
	}

	album.SongIDs = append(album.SongIDs, songID)
	return s.save(album)
}

// RemoveSong drops songID from the membership list. Removing a non-member
// is a no-op.
func (s *albumService) RemoveSong(id, songID string) (*domain.Album, error) {
	album, err := s.load(id)
	if err != nil {
		return nil, err
	}
	album.SongIDs = album.SongIDs.Without(songID)
	return s.save(album)
}

func (s *albumService) save(album *domain.Album) (*domain.Album, error) {
	album.UpdatedAt = time.Now().UTC()
	if err := s.db.UpdateAlbum(album); err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("album")
		}
		return nil, apperr.Internal("failed to update album", err)
	}
	// Derive the cover only after the row is written so it is never stored.
	s.fillCover(album)
	return album, nil
}

func (s *albumService) fillCover(album *domain.Album) {
	if album.CoverImage != "" || len(album.SongIDs) == 0 {
		return
	}
	album.CoverImage = firstSongCover(s.db, album.SongIDs)
}
