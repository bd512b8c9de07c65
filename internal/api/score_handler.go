package api

import (
	"net/http"
	"strconv"

	"github.com/quisqueya-quiz/backend/internal/store"
)

// ── Response types ──────────────────────────────────────────────────────────

type LeaderboardResponse struct {
	Theme   string              `json:"theme,omitempty"`
	Entries []store.ScoreRecord `json:"entries"`
}

type PlayerStatsResponse struct {
	Player         string  `json:"player"`
	Plays          int     `json:"plays"`
	BestScore      int     `json:"best_score"`
	BestPercentage float64 `json:"best_percentage"`
	MeanPercentage float64 `json:"mean_percentage"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /leaderboard?theme=&n=
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	n := 10
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	theme := r.URL.Query().Get("theme")

	entries, err := h.svc.Leaderboard(n, theme)
	if h.handleServiceError(w, err) {
		return
	}
	if entries == nil {
		entries = []store.ScoreRecord{}
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Theme: theme, Entries: entries})
}

// GET /players/{name}/stats
func (h *Handler) playerStats(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	stats, err := h.svc.PlayerStats(name)
	if h.handleServiceError(w, err) {
		return
	}
	if stats.Plays == 0 {
		respondError(w, http.StatusNotFound, "no recorded plays for this player")
		return
	}

	respondJSON(w, http.StatusOK, PlayerStatsResponse{
		Player:         name,
		Plays:          stats.Plays,
		BestScore:      stats.BestScore,
		BestPercentage: stats.BestPercentage,
		MeanPercentage: stats.MeanPercentage,
	})
}

// GET /scores/export
func (h *Handler) exportScores(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ExportScores()
	if h.handleServiceError(w, err) {
		return
	}
	if records == nil {
		records = []store.ScoreRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
