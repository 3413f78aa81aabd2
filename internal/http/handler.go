// Package httpapp wires the services to the chi router and translates
// service errors into the API's error envelope.
package httpapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soundvault/soundvault/internal/app"
	"github.com/soundvault/soundvault/internal/auth"
	"github.com/soundvault/soundvault/internal/config"
	"github.com/soundvault/soundvault/internal/logger"
)

type Handler struct {
	Songs     app.SongService
	Playlists app.PlaylistService
	Albums    app.AlbumService
	Users     app.UserService
	Tokens    *auth.TokenManager
	Config    *config.Config
	Logger    *logger.Logger
}

func NewHandler(songs app.SongService, playlists app.PlaylistService, albums app.AlbumService, users app.UserService, tokens *auth.TokenManager, cfg *config.Config) *Handler {
	return &Handler{
		Songs:     songs,
		Playlists: playlists,
		Albums:    albums,
		Users:     users,
		Tokens:    tokens,
		Config:    cfg,
		Logger:    logger.Default().WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Get("/songs", h.ListSongs)
		r.Get("/songs/{id}", h.GetSong)

		r.Get("/playlists", h.ListPlaylists)
		r.Get("/playlists/{id}", h.GetPlaylist)

		r.Get("/albums", h.ListAlbums)
		r.Get("/albums/{id}", h.GetAlbum)

		// Everything that writes requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)

			r.Post("/songs/upload", h.UploadSong)
			r.Patch("/songs/{id}", h.UpdateSong)
			r.Delete("/songs/{id}", h.DeleteSong)

			r.Post("/playlists", h.CreatePlaylist)
			r.Put("/playlists/{id}", h.UpdatePlaylist)
			r.Delete("/playlists/{id}", h.DeletePlaylist)
			r.Post("/playlists/{id}/songs/{songId}", h.AddSongToPlaylist)
			r.Delete("/playlists/{id}/songs/{songId}", h.RemoveSongFromPlaylist)

			r.Post("/albums", h.CreateAlbum)
			r.Put("/albums/{id}", h.UpdateAlbum)
			r.Delete("/albums/{id}", h.DeleteAlbum)
			r.Post("/albums/{id}/songs/{songId}", h.AddSongToAlbum)
			r.Delete("/albums/{id}/songs/{songId}", h.RemoveSongFromAlbum)

			r.Get("/users/me", h.CurrentUser)
			r.Put("/users/favorites", h.UpdateFavorites)
		})
	})

	// Uploaded audio and cover art.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.Config.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)
}
