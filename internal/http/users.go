package httpapp

import (
	"net/http"

	"github.com/soundvault/soundvault/internal/app"
	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/http/dto"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondError(w, apperr.Validation(dto.ToResponse(errs)))
		return
	}

	session, err := h.Users.Register(app.Credentials{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, session)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondError(w, apperr.Validation(dto.ToResponse(errs)))
		return
	}

	session, err := h.Users.Login(app.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, session)
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Get(userID(r.Context()))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

func (h *Handler) UpdateFavorites(w http.ResponseWriter, r *http.Request) {
	var req dto.FavoritesRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.Users.UpdateFavorites(userID(r.Context()), req.FavoriteSongIDs)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}
