package httpapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soundvault/soundvault/internal/app"
	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/http/dto"
)

func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.Playlists.List()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, playlists)
}

func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.Playlists.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, playlist)
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaylistRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondError(w, apperr.Validation(dto.ToResponse(errs)))
		return
	}

	playlist, err := h.Playlists.Create(app.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		SongIDs:     req.SongIDs,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, playlist)
}

func (h *Handler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaylistUpdateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondError(w, apperr.Validation(dto.ToResponse(errs)))
		return
	}

	playlist, err := h.Playlists.Update(chi.URLParam(r, "id"), app.PlaylistUpdate{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		SongIDs:     req.SongIDs,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, playlist)
}

func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := h.Playlists.Delete(chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "playlist deleted"})
}

func (h *Handler) AddSongToPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.Playlists.AddSong(chi.URLParam(r, "id"), chi.URLParam(r, "songId"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, playlist)
}

func (h *Handler) RemoveSongFromPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.Playlists.RemoveSong(chi.URLParam(r, "id"), chi.URLParam(r, "songId"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, playlist)
}

func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.Albums.List()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, albums)
}

func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.Albums.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, album)
}

func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req dto.AlbumRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondError(w, apperr.Validation(dto.ToResponse(errs)))
		return
	}

	album, err := h.Albums.Create(app.AlbumInput{
		Name:        req.Name,
		Artist:      req.Artist,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		ReleaseDate: req.ReleaseDate,
		SongIDs:     req.SongIDs,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, album)
}

func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	var req dto.AlbumUpdateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondError(w, apperr.Validation(dto.ToResponse(errs)))
		return
	}

	album, err := h.Albums.Update(chi.URLParam(r, "id"), app.AlbumUpdate{
		Name:        req.Name,
		Artist:      req.Artist,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		ReleaseDate: req.ReleaseDate,
		SongIDs:     req.SongIDs,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, album)
}

func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	if err := h.Albums.Delete(chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "album deleted"})
}

func (h *Handler) AddSongToAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.Albums.AddSong(chi.URLParam(r, "id"), chi.URLParam(r, "songId"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, album)
}

func (h *Handler) RemoveSongFromAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.Albums.RemoveSong(chi.URLParam(r, "id"), chi.URLParam(r, "songId"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, album)
}
