// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every endpoint onto the mux using method-based
// patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Question bank
	mux.HandleFunc("GET /themes", h.listThemes)
	mux.HandleFunc("GET /levels", h.listLevels)

	// Quiz sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/complete", h.completeSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.abandonSession)

	// Scores
	mux.HandleFunc("GET /leaderboard", h.leaderboard)
	mux.HandleFunc("GET /players/{name}/stats", h.playerStats)
	mux.HandleFunc("GET /scores/export", h.exportScores)
}
