package api

import (
	"net/http"
	"time"

	"github.com/quisqueya-quiz/backend/internal/domain/quizsession"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Player string   `json:"player"`
	Count  *int     `json:"count,omitempty"`
	Themes []string `json:"themes,omitempty"`
}

type SessionQuestion struct {
	Number  int      `json:"number"`
	Theme   string   `json:"theme"`
	Level   string   `json:"level"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type SessionStateResponse struct {
	ID              string           `json:"id"`
	Player          string           `json:"player"`
	TotalQuestions  int              `json:"total_questions"`
	QuestionNumber  int              `json:"question_number"`
	Complete        bool             `json:"complete"`
	CurrentQuestion *SessionQuestion `json:"current_question,omitempty"`
}

type SubmitAnswerRequest struct {
	Chosen         *int    `json:"chosen,omitempty"`
	TimedOut       bool    `json:"timed_out"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

type SubmitAnswerResponse struct {
	Correct       bool             `json:"correct"`
	CorrectAnswer string           `json:"correct_answer"`
	Complete      bool             `json:"complete"`
	NextQuestion  *SessionQuestion `json:"next_question,omitempty"`
}

type ReviewEntry struct {
	Number         int     `json:"number"`
	Text           string  `json:"text"`
	ChosenText     string  `json:"chosen_text"`
	CorrectText    string  `json:"correct_text"`
	Correct        bool    `json:"correct"`
	TimedOut       bool    `json:"timed_out"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

type CompleteSessionResponse struct {
	SessionID       string        `json:"session_id"`
	Player          string        `json:"player"`
	Theme           string        `json:"theme"`
	Level           string        `json:"level"`
	TotalQuestions  int           `json:"total_questions"`
	Correct         int           `json:"correct"`
	Wrong           int           `json:"wrong"`
	TimedOut        int           `json:"timed_out"`
	Score           int           `json:"score"`
	Percentage      float64       `json:"percentage"`
	DurationSeconds int           `json:"duration_seconds"`
	FinishedAt      time.Time     `json:"finished_at"`
	Review          []ReviewEntry `json:"review"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

func sessionState(s *quizsession.Session) SessionStateResponse {
	resp := SessionStateResponse{
		ID:             s.ID(),
		Player:         s.Player(),
		TotalQuestions: s.TotalQuestions(),
		QuestionNumber: s.QuestionNumber(),
		Complete:       s.IsComplete(),
	}
	if q, ok := s.CurrentQuestion(); ok {
		resp.CurrentQuestion = &SessionQuestion{
			Number:  s.QuestionNumber(),
			Theme:   q.Theme,
			Level:   q.Level,
			Text:    q.Text,
			Options: q.Options,
		}
	}
	return resp
}

// POST /sessions
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	count := 0
	if req.Count != nil {
		count = *req.Count
	}

	session, err := h.svc.StartSession(req.Player, count, req.Themes)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, sessionState(session))
}

// GET /sessions/{sessionID}
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Session(r.PathValue("sessionID"))
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, sessionState(session))
}

// POST /sessions/{sessionID}/answers
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.svc.SubmitAnswer(r.PathValue("sessionID"), req.Chosen, req.TimedOut, req.ElapsedSeconds)
	if h.handleServiceError(w, err) {
		return
	}

	history := session.History()
	last := history[len(history)-1]

	resp := SubmitAnswerResponse{
		Correct:       last.Correct,
		CorrectAnswer: last.CorrectText(),
		Complete:      session.IsComplete(),
	}
	if q, ok := session.CurrentQuestion(); ok {
		resp.NextQuestion = &SessionQuestion{
			Number:  session.QuestionNumber(),
			Theme:   q.Theme,
			Level:   q.Level,
			Text:    q.Text,
			Options: q.Options,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// POST /sessions/{sessionID}/complete
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	summary, history, err := h.svc.CompleteSession(r.PathValue("sessionID"))
	if h.handleServiceError(w, err) {
		return
	}

	review := make([]ReviewEntry, len(history))
	for i, a := range history {
		review[i] = ReviewEntry{
			Number:         a.Number,
			Text:           a.Question.Text,
			ChosenText:     a.ChosenText(),
			CorrectText:    a.CorrectText(),
			Correct:        a.Correct,
			TimedOut:       a.TimedOut,
			ElapsedSeconds: a.ElapsedSeconds,
		}
	}

	respondJSON(w, http.StatusOK, CompleteSessionResponse{
		SessionID:       summary.SessionID,
		Player:          summary.Player,
		Theme:           summary.Theme,
		Level:           summary.Level,
		TotalQuestions:  summary.TotalQuestions,
		Correct:         summary.Correct,
		Wrong:           summary.WrongAnswers(),
		TimedOut:        summary.TimedOut,
		Score:           summary.Score,
		Percentage:      summary.Percentage,
		DurationSeconds: summary.DurationSeconds,
		FinishedAt:      summary.FinishedAt,
		Review:          review,
	})
}

// DELETE /sessions/{sessionID}
func (h *Handler) abandonSession(w http.ResponseWriter, r *http.Request) {
	h.svc.AbandonSession(r.PathValue("sessionID"))
	w.WriteHeader(http.StatusNoContent)
}
