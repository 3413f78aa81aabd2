package httpapp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/soundvault/soundvault/internal/apperr"
)

type errorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Detail     string `json:"detail,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("failed to encode response", "error", err)
	}
}

// respondError maps any error onto the envelope the client expects.
// Unrecognized errors become opaque 500s so internals stay internal.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	if appErr.StatusCode >= 500 {
		h.Logger.Error("request failed", "error", err)
	}
	body := errorBody{
		Message:    appErr.Message,
		StatusCode: appErr.StatusCode,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	// Underlying causes are only exposed in dev mode.
	if h.Config.DevMode && appErr.Err != nil {
		body.Detail = appErr.Err.Error()
	}
	h.respondJSON(w, appErr.StatusCode, errorEnvelope{Error: body})
}

func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid request body")
	}
	return nil
}
