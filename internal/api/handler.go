// Package api provides HTTP handlers for the game API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mirrorlake/guesswho/internal/game"
)

// maxRequestBodySize caps request bodies (64KB); game requests are tiny.
const maxRequestBodySize = 64 << 10

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a bounded JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}

// serviceError maps game service sentinels onto HTTP statuses. Oracle
// failures never reach here; the service absorbs them.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, game.ErrCharacterNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrGameFinished):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrEmptyQuestion),
		errors.Is(err, game.ErrInvalidResponse),
		errors.Is(err, game.ErrNoPendingQuestion),
		errors.Is(err, game.ErrAICharacterNotSet),
		errors.Is(err, game.ErrHumanCharacterNotSet),
		errors.Is(err, game.ErrInvalidUpdate):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
