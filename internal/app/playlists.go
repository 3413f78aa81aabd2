package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/domain"
	"github.com/soundvault/soundvault/internal/logger"
	"github.com/soundvault/soundvault/internal/store"
)

// PlaylistInput carries the writable playlist fields.
type PlaylistInput struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CoverImage  string             `json:"coverImage"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

// PlaylistUpdate carries the mutable playlist fields. Nil means "leave
// as is", so a body that omits a field never blanks it.
type PlaylistUpdate struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	CoverImage  *string            `json:"coverImage"`
	SongIDs     domain.StringSlice `json:"songIds"`
}

type PlaylistService interface {
	Create(input PlaylistInput) (*domain.Playlist, error)
	Get(id string) (*domain.Playlist, error)
	List() ([]*domain.Playlist, error)
	Update(id string, update PlaylistUpdate) (*domain.Playlist, error)
	Delete(id string) error
	AddSong(id, songID string) (*domain.Playlist, error)
	RemoveSong(id, songID string) (*domain.Playlist, error)
}

type playlistService struct {
	db     *store.DB
	logger *logger.Logger
}

func NewPlaylistService(db *store.DB, log *logger.Logger) PlaylistService {
	return &playlistService{db: db, logger: log.WithComponent("playlists")}
}

func (s *playlistService) Create(input PlaylistInput) (*domain.Playlist, error) {
	if input.Name == "" {
		return nil, apperr.Validation("playlist name is required")
	}

	now := time.Now().UTC()
	playlist := &domain.Playlist{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		SongIDs:     input.SongIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if playlist.SongIDs == nil {
		playlist.SongIDs = domain.StringSlice{}
	}

	if err := s.db.CreatePlaylist(playlist); err != nil {
		return nil, apperr.Internal("failed to create playlist", err)
	}

	s.logger.Info("playlist created", "id", playlist.ID, "name", playlist.Name)
	return playlist, nil
}

func (s *playlistService) Get(id string) (*domain.Playlist, error) {
	playlist, err := s.load(id)
	if err != nil {
		return nil, err
	}
	s.fillCover(playlist)
	return playlist, nil
}

// load fetches the stored row as-is. Mutations go through load, never
// Get, so the derived cover stays out of the database.
func (s *playlistService) load(id string) (*domain.Playlist, error) {
	playlist, err := s.db.GetPlaylistByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("playlist")
		}
		return nil, apperr.Internal("failed to load playlist", err)
	}
	return playlist, nil
}

func (s *playlistService) List() ([]*domain.Playlist, error) {
	playlists, err := s.db.ListPlaylists()
	if err != nil {
		return nil, apperr.Internal("failed to list playlists", err)
	}
	for _, p := range playlists {
		s.fillCover(p)
	}
	return playlists, nil
}

func (s *playlistService) Update(id string, update PlaylistUpdate) (*domain.Playlist, error) {
	playlist, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		playlist.Name = *update.Name
	}
	if update.Description != nil {
		playlist.Description = *update.Description
	}
	if update.CoverImage != nil {
		playlist.CoverImage = *update.CoverImage
	}
	if update.SongIDs != nil {
		playlist.SongIDs = update.SongIDs
	}

	return s.save(playlist)
}

func (s *playlistService) Delete(id string) error {
	if err := s.db.DeletePlaylist(id); err != nil {
		if err == store.ErrNotFound {
			return apperr.NotFound("playlist")
		}
		return apperr.Internal("failed to delete playlist", err)
	}
	return nil
}

// AddSong appends songID unless it is already a member.
func (s *playlistService) AddSong(id, songID string) (*domain.Playlist, error) {
	playlist, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if playlist.SongIDs.Contains(songID) {
		s.fillCover(playlist)
		return playlist, nil
	}
	if _, err := s.db.GetSongByID(songID); err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("song")
		}
		return nil, apperr.Internal("failed to load song", err)
	}

	playlist.SongIDs = append(playlist.SongIDs, songID)
	return s.save(playlist)
}

// RemoveSong drops songID from the membership list. Removing a non-member
// is a no-op.
func (s *playlistService) RemoveSong(id, songID string) (*domain.Playlist, error) {
	playlist, err := s.load(id)
	if err != nil {
		return nil, err
	}
	playlist.SongIDs = playlist.SongIDs.Without(songID)
	return s.save(playlist)
}

func (s *playlistService) save(playlist *domain.Playlist) (*domain.Playlist, error) {
	playlist.UpdatedAt = time.Now().UTC()
	if err := s.db.UpdatePlaylist(playlist); err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("playlist")
		}
		return nil, apperr.Internal("failed to update playlist", err)
	}
	// Derive the cover only after the row is written so it is never stored.
	s.fillCover(playlist)
	return playlist, nil
}

// fillCover computes the effective cover: the explicit one if set, else
// the cover of the first member song that has one. Never persisted.
func (s *playlistService) fillCover(playlist *domain.Playlist) {
	if playlist.CoverImage != "" || len(playlist.SongIDs) == 0 {
		return
	}
	playlist.CoverImage = firstSongCover(s.db, playlist.SongIDs)
}

func firstSongCover(db *store.DB, songIDs domain.StringSlice) string {
	song, err := db.GetSongByID(songIDs[0])
	if err != nil {
		return ""
	}
	return song.AlbumCover
}
