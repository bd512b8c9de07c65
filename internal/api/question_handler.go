package api

import "net/http"

// ── Response types ──────────────────────────────────────────────────────────

type TagListResponse struct {
	Tags []string `json:"tags"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /themes
func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TagListResponse{Tags: h.svc.Themes()})
}

// GET /levels
func (h *Handler) listLevels(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TagListResponse{Tags: h.svc.Levels()})
}
