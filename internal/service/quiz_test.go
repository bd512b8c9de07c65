package service

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/quisqueya-quiz/backend/internal/domain/questionbank"
	"github.com/quisqueya-quiz/backend/internal/domain/quizsession"
	"github.com/quisqueya-quiz/backend/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBank() *questionbank.Bank {
	return questionbank.New([]questionbank.Question{
		{ID: 1, Theme: "history", Level: "easy", Text: "Q1", Options: []string{"a", "b"}, CorrectOption: 0},
		{ID: 2, Theme: "history", Level: "easy", Text: "Q2", Options: []string{"a", "b"}, CorrectOption: 1},
		{ID: 3, Theme: "geography", Level: "hard", Text: "Q3", Options: []string{"a", "b"}, CorrectOption: 0},
	})
}

func newService(t *testing.T, bank *questionbank.Bank) *QuizService {
	t.Helper()
	backend, err := store.NewJSONFile(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("NewJSONFile: %v", err)
	}
	svc := NewQuizService(bank, store.New(backend), discardLogger())
	t.Cleanup(svc.Close)
	return svc
}

func intPtr(v int) *int { return &v }

func TestStartSessionEmptyBank(t *testing.T) {
	svc := newService(t, questionbank.New(nil))
	if _, err := svc.StartSession("Ana", 5, nil); !errors.Is(err, quizsession.ErrNoQuestions) {
		t.Fatalf("StartSession on empty bank = %v, want ErrNoQuestions", err)
	}
}

func TestStartSessionDefaultCount(t *testing.T) {
	svc := newService(t, testBank())

	// Callers that never set a count (the HTTP handler, the demo seeder)
	// pass zero and get the default sample size.
	session, err := svc.StartSession("Ana", 0, nil)
	if err != nil {
		t.Fatalf("StartSession with zero count: %v", err)
	}
	if session.TotalQuestions() != 3 {
		t.Errorf("session has %d questions, want full 3-question bank", session.TotalQuestions())
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := newService(t, testBank())

	session, err := svc.StartSession("Ana", 3, nil)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if got, err := svc.Session(session.ID()); err != nil || got != session {
		t.Fatalf("Session(%q) = %v, %v", session.ID(), got, err)
	}

	for !session.IsComplete() {
		q, _ := session.CurrentQuestion()
		if _, err := svc.SubmitAnswer(session.ID(), intPtr(q.CorrectOption), false, 2.0); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	summary, history, err := svc.CompleteSession(session.ID())
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if summary.Score != 3 || summary.Percentage != 100.0 {
		t.Errorf("summary = score %d, %.1f%%, want 3, 100.0%%", summary.Score, summary.Percentage)
	}
	if len(history) != 3 {
		t.Errorf("history length = %d, want 3", len(history))
	}

	// Completed session is gone from the registry.
	if _, err := svc.Session(session.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Session after completion = %v, want ErrSessionNotFound", err)
	}

	// The score reached the store.
	records, err := svc.ExportScores()
	if err != nil {
		t.Fatalf("ExportScores: %v", err)
	}
	if len(records) != 1 || records[0].PlayerName != "Ana" || records[0].TotalScore != 3 {
		t.Errorf("persisted records = %+v, want one Ana record with score 3", records)
	}
}

func TestCompleteSessionBeforeEnd(t *testing.T) {
	svc := newService(t, testBank())
	session, err := svc.StartSession("Ana", 3, nil)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, _, err := svc.CompleteSession(session.ID()); !errors.Is(err, quizsession.ErrSessionInProgress) {
		t.Fatalf("CompleteSession mid-quiz = %v, want ErrSessionInProgress", err)
	}
	// Still registered after a refused completion.
	if _, err := svc.Session(session.ID()); err != nil {
		t.Errorf("session evicted after refused completion: %v", err)
	}
}

func TestSubmitAnswerUnknownSession(t *testing.T) {
	svc := newService(t, testBank())
	if _, err := svc.SubmitAnswer("nope", intPtr(0), false, 1.0); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("SubmitAnswer unknown = %v, want ErrSessionNotFound", err)
	}
}

func TestAbandonSession(t *testing.T) {
	svc := newService(t, testBank())
	session, err := svc.StartSession("Ana", 2, nil)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	svc.AbandonSession(session.ID())
	if _, err := svc.Session(session.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Session after abandon = %v, want ErrSessionNotFound", err)
	}
	// Abandoning twice is a no-op.
	svc.AbandonSession(session.ID())

	records, err := svc.ExportScores()
	if err != nil {
		t.Fatalf("ExportScores: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("abandoned session persisted %d records, want 0", len(records))
	}
}

func TestThemedSession(t *testing.T) {
	svc := newService(t, testBank())
	session, err := svc.StartSession("Ana", 10, []string{"geography"})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.TotalQuestions() != 1 {
		t.Fatalf("themed session has %d questions, want 1", session.TotalQuestions())
	}
	q, _ := session.CurrentQuestion()
	if q.Theme != "geography" {
		t.Errorf("question theme = %q, want geography", q.Theme)
	}
}

func TestLeaderboardAndStatsPassThrough(t *testing.T) {
	svc := newService(t, testBank())

	for i := 0; i < 2; i++ {
		session, err := svc.StartSession("Ana", 1, []string{"history"})
		if err != nil {
			t.Fatalf("StartSession: %v", err)
		}
		q, _ := session.CurrentQuestion()
		if _, err := svc.SubmitAnswer(session.ID(), intPtr(q.CorrectOption), false, 1.0); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if _, _, err := svc.CompleteSession(session.ID()); err != nil {
			t.Fatalf("CompleteSession: %v", err)
		}
	}

	top, err := svc.Leaderboard(5, "")
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("leaderboard has %d entries, want 2", len(top))
	}

	stats, err := svc.PlayerStats("ana")
	if err != nil {
		t.Fatalf("PlayerStats: %v", err)
	}
	if stats.Plays != 2 || stats.BestScore != 1 {
		t.Errorf("stats = %+v, want 2 plays with best score 1", stats)
	}

	count, err := svc.PlayerOccurrenceCount("ANA")
	if err != nil {
		t.Fatalf("PlayerOccurrenceCount: %v", err)
	}
	if count != 2 {
		t.Errorf("occurrence count = %d, want 2", count)
	}
}
