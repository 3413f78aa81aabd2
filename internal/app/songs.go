// Package app holds the services behind the HTTP handlers: ingestion,
// collection management and account handling.
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/artwork"
	"github.com/soundvault/soundvault/internal/config"
	"github.com/soundvault/soundvault/internal/constants"
	"github.com/soundvault/soundvault/internal/domain"
	"github.com/soundvault/soundvault/internal/logger"
	"github.com/soundvault/soundvault/internal/metadata"
	"github.com/soundvault/soundvault/internal/storage"
	"github.com/soundvault/soundvault/internal/store"
	"github.com/soundvault/soundvault/internal/tagging"
)

// Upload is an incoming audio file from a multipart request.
type Upload struct {
	File         io.Reader
	OriginalName string
	Size         int64
}

// SongUpdate carries the mutable song fields. Nil means "leave as is".
// ReleaseDate is deliberately absent: it comes from the file's own tags
// and cannot be patched.
type SongUpdate struct {
	Title            *string `json:"title"`
	Artist           *string `json:"artist"`
	Album            *string `json:"album"`
	AlbumDescription *string `json:"albumDescription"`
	Lyrics           *string `json:"lyrics"`
}

type SongService interface {
	Upload(upload Upload) (*domain.Song, error)
	Get(id string) (*domain.Song, error)
	List() ([]*domain.Song, error)
	Update(id string, update SongUpdate) (*domain.Song, error)
	Delete(id string) error
}

type songService struct {
	db     *store.DB
	covers *artwork.Store
	config *config.Config
	logger *logger.Logger
}

func NewSongService(db *store.DB, covers *artwork.Store, cfg *config.Config, log *logger.Logger) SongService {
	return &songService{
		db:     db,
		covers: covers,
		config: cfg,
		logger: log.WithComponent("songs"),
	}
}

func (s *songService) Upload(upload Upload) (*domain.Song, error) {
	if upload.OriginalName == "" {
		return nil, apperr.Validation("no audio file provided")
	}
	if !metadata.IsValidAudioFile(upload.OriginalName) {
		return nil, apperr.Validation(fmt.Sprintf("unsupported audio format: %s", filepath.Ext(upload.OriginalName)))
	}
	if upload.Size > constants.MaxAudioFileSize {
		return nil, apperr.Validation("file exceeds the 50MB size limit")
	}

	if err := storage.EnsureDir(s.config.AudioDir()); err != nil {
		return nil, apperr.Internal("failed to prepare audio directory", err)
	}

	// Browsers may send a full client-side path; keep only a clean base name
	// since it doubles as the fallback title.
	originalName := storage.Sanitize(filepath.Base(upload.OriginalName))

	id := uuid.New().String()
	fileName := id + strings.ToLower(filepath.Ext(upload.OriginalName))
	audioPath := filepath.Join(s.config.AudioDir(), fileName)

	data, err := io.ReadAll(io.LimitReader(upload.File, constants.MaxAudioFileSize+1))
	if err != nil {
		return nil, apperr.Internal("failed to read uploaded file", err)
	}
	if int64(len(data)) > constants.MaxAudioFileSize {
		return nil, apperr.Validation("file exceeds the 50MB size limit")
	}
	if err := storage.WriteFile(audioPath, data); err != nil {
		return nil, apperr.Internal("failed to store uploaded file", err)
	}

	md := metadata.Extract(audioPath, originalName)

	coverPath := ""
	if md.Cover != nil {
		coverPath, err = s.covers.Save(md.Cover.Data, md.Cover.MIMEType)
		if err != nil {
			// A song without art is still a song.
			s.logger.Warn("failed to persist cover art", "file", originalName, "error", err)
			coverPath = ""
		}
	}

	now := time.Now().UTC()
	song := &domain.Song{
		ID:         id,
		Title:      md.Title,
		Artist:     md.Artist,
		Album:      md.Album,
		Duration:   md.Duration,
		FilePath:   constants.AudioPathPrefix + fileName,
		AlbumCover: coverPath,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if md.Year > 0 {
		song.ReleaseDate = fmt.Sprintf("%d", md.Year)
	}

	if err := s.db.CreateSong(song); err != nil {
		_ = storage.RemoveFile(audioPath)
		if coverPath != "" {
			_ = s.covers.Remove(coverPath)
		}
		return nil, apperr.Internal("failed to save song", err)
	}

	s.logger.WithSong(song.ID, song.Title).Info("song ingested",
		"artist", song.Artist, "duration", song.Duration)
	return song, nil
}

func (s *songService) Get(id string) (*domain.Song, error) {
	song, err := s.db.GetSongByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("song")
		}
		return nil, apperr.Internal("failed to load song", err)
	}
	return song, nil
}

func (s *songService) List() ([]*domain.Song, error) {
	songs, err := s.db.ListSongs()
	if err != nil {
		return nil, apperr.Internal("failed to list songs", err)
	}
	return songs, nil
}

func (s *songService) Update(id string, update SongUpdate) (*domain.Song, error) {
	song, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		song.Title = *update.Title
	}
	if update.Artist != nil {
		song.Artist = *update.Artist
	}
	if update.Album != nil {
		song.Album = *update.Album
	}
	if update.AlbumDescription != nil {
		song.AlbumDescription = *update.AlbumDescription
	}
	if update.Lyrics != nil {
		song.Lyrics = *update.Lyrics
	}
	song.UpdatedAt = time.Now().UTC()

	if err := s.db.UpdateSong(song); err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("song")
		}
		return nil, apperr.Internal("failed to update song", err)
	}

	// Keep the audio file's own tags in sync with the record.
	s.writeBack(song)

	return song, nil
}

func (s *songService) Delete(id string) error {
	song, err := s.Get(id)
	if err != nil {
		return err
	}

	audioName, ok := strings.CutPrefix(song.FilePath, constants.AudioPathPrefix)
	if ok && audioName != "" {
		audioPath := filepath.Join(s.config.AudioDir(), filepath.Base(audioName))
		if err := storage.RemoveFile(audioPath); err != nil {
			return apperr.Internal("failed to remove audio file", err)
		}
	}
	if song.AlbumCover != "" {
		if err := s.covers.Remove(song.AlbumCover); err != nil {
			return apperr.Internal("failed to remove cover art", err)
		}
	}

	if err := s.db.DeleteSong(id); err != nil {
		if err == store.ErrNotFound {
			return apperr.NotFound("song")
		}
		return apperr.Internal("failed to delete song", err)
	}

	s.logger.WithSong(song.ID, song.Title).Info("song deleted")
	return nil
}

// writeBack re-embeds the record's tag data into the stored audio file.
// Failures are logged, never surfaced: the database row is the source of
// truth and the file is best effort.
func (s *songService) writeBack(song *domain.Song) {
	name, ok := strings.CutPrefix(song.FilePath, constants.AudioPathPrefix)
	if !ok || name == "" {
		return
	}
	audioPath := filepath.Join(s.config.AudioDir(), filepath.Base(name))

	cover := s.covers.Read(song.AlbumCover)
	if err := tagging.Apply(audioPath, song, cover); err != nil {
		s.logger.WithSong(song.ID, song.Title).Warn("tag writeback failed", "error", err)
	}
}
