package app

import (
	"path/filepath"
	"testing"

	"github.com/soundvault/soundvault/internal/artwork"
	"github.com/soundvault/soundvault/internal/auth"
	"github.com/soundvault/soundvault/internal/config"
	"github.com/soundvault/soundvault/internal/logger"
	"github.com/soundvault/soundvault/internal/store"
)

type testEnv struct {
	db        *store.DB
	cfg       *config.Config
	covers    *artwork.Store
	songs     SongService
	playlists PlaylistService
	albums    AlbumService
	users     UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Port:      "0",
		DBPath:    filepath.Join(dir, "test.db"),
		UploadDir: filepath.Join(dir, "uploads"),
		JWTSecret: "test-secret",
	}

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := logger.Default()
	covers := artwork.NewStore(cfg.CoversDir())
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	return &testEnv{
		db:        db,
		cfg:       cfg,
		covers:    covers,
		songs:     NewSongService(db, covers, cfg, log),
		playlists: NewPlaylistService(db, log),
		albums:    NewAlbumService(db, log),
		users:     NewUserService(db, tokens, log),
	}
}
