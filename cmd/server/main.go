package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/soundvault/soundvault/internal/app"
	"github.com/soundvault/soundvault/internal/artwork"
	"github.com/soundvault/soundvault/internal/auth"
	"github.com/soundvault/soundvault/internal/config"
	"github.com/soundvault/soundvault/internal/constants"
	httpapp "github.com/soundvault/soundvault/internal/http"
	"github.com/soundvault/soundvault/internal/logger"
	"github.com/soundvault/soundvault/internal/storage"
	"github.com/soundvault/soundvault/internal/store"
)

func main() {
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	// Initialize DB
	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to init DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Upload directories must exist before the first request
	for _, dir := range []string{cfg.AudioDir(), cfg.CoversDir()} {
		if err := storage.EnsureDir(dir); err != nil {
			appLogger.Error("Failed to create upload directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	// Initialize Services
	covers := artwork.NewStore(cfg.CoversDir())
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	songs := app.NewSongService(db, covers, cfg, appLogger)
	playlists := app.NewPlaylistService(db, appLogger)
	albums := app.NewAlbumService(db, appLogger)
	users := app.NewUserService(db, tokens, appLogger)

	// Initialize Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Routes
	h := httpapp.NewHandler(songs, playlists, albums, users, tokens, cfg)
	h.RegisterRoutes(r)

	// Start Server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  constants.ReadTimeout,
		WriteTimeout: constants.WriteTimeout,
		IdleTimeout:  constants.IdleTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
