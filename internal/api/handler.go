// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quisqueya-quiz/backend/internal/domain/quizsession"
	"github.com/quisqueya-quiz/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	svc    *service.QuizService
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.QuizService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes an error message as a JSON body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (after
// writing a 400) if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// handleServiceError maps known service errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, quizsession.ErrNoQuestions):
		respondError(w, http.StatusUnprocessableEntity, "no questions available for this selection")
	case errors.Is(err, quizsession.ErrSessionComplete):
		respondError(w, http.StatusConflict, "session already complete")
	case errors.Is(err, quizsession.ErrSessionInProgress):
		respondError(w, http.StatusConflict, "session still in progress")
	default:
		h.logger.Error("service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
