package httpapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soundvault/soundvault/internal/app"
	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/constants"
)

func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.Songs.List()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, songs)
}

func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) {
	song, err := h.Songs.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, song)
}

func (h *Handler) UploadSong(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxAudioFileSize+1024*1024)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.respondError(w, apperr.Validation("invalid multipart request"))
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		h.respondError(w, apperr.Validation("no audio file provided"))
		return
	}
	defer file.Close()

	song, err := h.Songs.Upload(app.Upload{
		File:         file,
		OriginalName: header.Filename,
		Size:         header.Size,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, song)
}

func (h *Handler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	var update app.SongUpdate
	if err := h.decodeJSON(r, &update); err != nil {
		h.respondError(w, err)
		return
	}

	song, err := h.Songs.Update(chi.URLParam(r, "id"), update)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, song)
}

func (h *Handler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := h.Songs.Delete(chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "song deleted"})
}
