package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/quisqueya-quiz/backend/internal/domain/questionbank"
	"github.com/quisqueya-quiz/backend/internal/domain/quizsession"
	"github.com/quisqueya-quiz/backend/internal/store"
	"github.com/quisqueya-quiz/backend/internal/worker"
)

// ErrSessionNotFound is returned when an answer or completion references a
// session id that was never started, already completed, or abandoned.
var ErrSessionNotFound = errors.New("quiz session not found")

// QuizService wires the question bank, the engine, and the score store
// behind one presentation-facing surface. Sessions live in memory until
// they are completed (persisted) or abandoned (discarded).
type QuizService struct {
	bank   *questionbank.Bank
	scores *store.Store
	queue  *worker.Queue
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*quizsession.Session
}

func NewQuizService(bank *questionbank.Bank, scores *store.Store, logger *slog.Logger) *QuizService {
	return &QuizService{
		bank:     bank,
		scores:   scores,
		queue:    worker.NewQueue(8),
		logger:   logger,
		sessions: make(map[string]*quizsession.Session),
	}
}

// Close drains the persistence queue.
func (s *QuizService) Close() {
	s.queue.Close()
}

func (s *QuizService) Themes() []string { return s.bank.ListThemes() }
func (s *QuizService) Levels() []string { return s.bank.ListLevels() }

// StartSession samples questions for the player and registers a new
// session. An empty pool surfaces quizsession.ErrNoQuestions: a
// recoverable "no quiz possible" condition, not a crash.
func (s *QuizService) StartSession(player string, count int, themes []string) (*quizsession.Session, error) {
	questions := s.bank.Sample(count, themes)
	session, err := quizsession.New(questions, player)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()

	s.logger.Info("session started",
		"session", session.ID(),
		"player", player,
		"questions", session.TotalQuestions(),
		"themes", themes,
	)
	return session, nil
}

// Session returns a registered in-progress session.
func (s *QuizService) Session(sessionID string) (*quizsession.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SubmitAnswer records one answer on the identified session.
func (s *QuizService) SubmitAnswer(sessionID string, chosen *int, timedOut bool, elapsedSeconds float64) (*quizsession.Session, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.SubmitAnswer(chosen, timedOut, elapsedSeconds); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession finalizes the session, persists its summary through the
// single-writer queue, and drops it from the registry. A persistence
// failure still returns the computed summary so the caller can show the
// result without losing it.
func (s *QuizService) CompleteSession(sessionID string) (quizsession.Summary, []quizsession.AnsweredQuestion, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return quizsession.Summary{}, nil, err
	}

	summary, err := session.Finalize()
	if err != nil {
		return quizsession.Summary{}, nil, err
	}
	history := session.History()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	record := store.RecordFromSummary(summary)
	if err := s.queue.Do(func() error { return s.scores.AppendScore(record) }); err != nil {
		s.logger.Error("failed to persist score", "session", sessionID, "error", err)
		return summary, history, fmt.Errorf("persist score: %w", err)
	}

	s.logger.Info("session completed",
		"session", sessionID,
		"player", summary.Player,
		"score", summary.Score,
		"percentage", summary.Percentage,
	)
	return summary, history, nil
}

// AbandonSession discards an in-progress session without persisting
// anything. Unknown ids are ignored: abandoning twice is harmless.
func (s *QuizService) AbandonSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *QuizService) Leaderboard(n int, theme string) ([]store.ScoreRecord, error) {
	return s.scores.TopN(n, theme)
}

func (s *QuizService) ScoreThemes() ([]string, error) {
	return s.scores.ThemesSeen()
}

func (s *QuizService) PlayerStats(name string) (store.PlayerStats, error) {
	return s.scores.PlayerStats(name)
}

func (s *QuizService) PlayerOccurrenceCount(name string) (int, error) {
	return s.scores.PlayerOccurrenceCount(name)
}

// ExportScores returns the full score log in play order.
func (s *QuizService) ExportScores() ([]store.ScoreRecord, error) {
	return s.scores.All()
}
