package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"authentication", Authentication(""), http.StatusUnauthorized},
		{"authorization", Authorization(""), http.StatusForbidden},
		{"not found", NotFound("Song"), http.StatusNotFound},
		{"conflict", Conflict("duplicate"), http.StatusConflict},
		{"internal", Internal("", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, tt.err.StatusCode)
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("Playlist")
	if err.Message != "Playlist not found" {
		t.Errorf("Expected 'Playlist not found', got %q", err.Message)
	}
}

func TestFrom(t *testing.T) {
	// An *Error passes through unchanged
	orig := NotFound("Song")
	if got := From(fmt.Errorf("context: %w", orig)); got != orig {
		t.Errorf("Expected wrapped app error to pass through, got %v", got)
	}

	// Anything else becomes internal
	plain := errors.New("boom")
	got := From(plain)
	if got.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected 500 for plain error, got %d", got.StatusCode)
	}
	if !errors.Is(got, plain) {
		t.Error("Expected cause to be preserved")
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFound(fmt.Errorf("wrap: %w", NotFound("Album"))) {
		t.Error("Expected IsNotFound to see through wrapping")
	}
	if IsNotFound(Conflict("dup")) {
		t.Error("Expected IsNotFound to be false for conflict")
	}
	if !IsConflict(Conflict("dup")) {
		t.Error("Expected IsConflict to be true for conflict")
	}
}
