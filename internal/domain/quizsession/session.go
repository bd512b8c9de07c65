package quizsession

import (
	"time"

	"github.com/quisqueya-quiz/backend/internal/domain/questionbank"
	"github.com/quisqueya-quiz/backend/internal/id"
)

// Session drives one quiz attempt over a fixed ordered question set. It
// owns no clock beyond the start/end timestamps and no timer: the
// presentation layer decides when a question has timed out and reports it
// through SubmitAnswer.
type Session struct {
	sessionID string
	player    string
	questions []questionbank.Question

	current  int
	score    int
	correct  int
	// incorrect counts every non-correct answer, timeouts included, so
	// correct+incorrect always equals the number of questions answered.
	incorrect int
	timedOut  int
	history   []AnsweredQuestion

	startedAt time.Time
	now       func() time.Time
	summary   *Summary
}

// New creates a session for the given player over the sampled questions.
// An empty question set returns ErrNoQuestions.
func New(questions []questionbank.Question, player string) (*Session, error) {
	return NewWithClock(questions, player, time.Now)
}

// NewWithClock allows deterministic timestamps in tests.
func NewWithClock(questions []questionbank.Question, player string, now func() time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		sessionID: id.SessionID(player),
		player:    player,
		questions: questions,
		startedAt: now(),
		now:       now,
	}, nil
}

func (s *Session) ID() string     { return s.sessionID }
func (s *Session) Player() string { return s.player }

// CurrentQuestion returns the question awaiting an answer, or false once
// the session has advanced past the last question.
func (s *Session) CurrentQuestion() (questionbank.Question, bool) {
	if s.current >= len(s.questions) {
		return questionbank.Question{}, false
	}
	return s.questions[s.current], true
}

// QuestionNumber is the 1-based number of the current question.
func (s *Session) QuestionNumber() int { return s.current + 1 }

func (s *Session) TotalQuestions() int { return len(s.questions) }

// IsComplete reports whether every question has been answered.
func (s *Session) IsComplete() bool { return s.current >= len(s.questions) }

// History returns the ordered record of answered questions so far.
func (s *Session) History() []AnsweredQuestion { return s.history }

// SubmitAnswer records the outcome of the current question and advances.
// An answer is correct only when it did not time out, a choice was made,
// and the choice matches the correct option. Calling after the session is
// complete is a precondition violation and returns ErrSessionComplete.
func (s *Session) SubmitAnswer(chosen *int, timedOut bool, elapsedSeconds float64) error {
	question, ok := s.CurrentQuestion()
	if !ok {
		return ErrSessionComplete
	}

	correct := false
	if !timedOut && chosen != nil {
		correct = question.IsCorrect(*chosen)
	}

	if correct {
		s.correct++
		s.score++
	} else {
		s.incorrect++
		if timedOut {
			s.timedOut++
		}
	}

	s.history = append(s.history, AnsweredQuestion{
		Number:         s.QuestionNumber(),
		Question:       question,
		Chosen:         chosen,
		Correct:        correct,
		TimedOut:       timedOut,
		ElapsedSeconds: elapsedSeconds,
	})
	s.current++
	return nil
}

// Finalize computes the immutable summary once the session is complete.
// The first call captures the end timestamp; repeated calls return the
// same snapshot. Calling before completion returns ErrSessionInProgress.
func (s *Session) Finalize() (Summary, error) {
	if !s.IsComplete() {
		return Summary{}, ErrSessionInProgress
	}
	if s.summary != nil {
		return *s.summary, nil
	}

	finishedAt := s.now()
	total := len(s.questions)
	s.summary = &Summary{
		SessionID:       s.sessionID,
		Player:          s.player,
		StartedAt:       s.startedAt,
		FinishedAt:      finishedAt,
		Theme:           collapseTag(s.questions, func(q questionbank.Question) string { return q.Theme }),
		Level:           collapseTag(s.questions, func(q questionbank.Question) string { return q.Level }),
		TotalQuestions:  total,
		Correct:         s.correct,
		Incorrect:       s.incorrect,
		TimedOut:        s.timedOut,
		Score:           s.score,
		Percentage:      percentage(s.correct, total),
		DurationSeconds: int(finishedAt.Sub(s.startedAt).Seconds()),
	}
	return *s.summary, nil
}

// collapseTag reduces a per-question tag to the shared value, or the mixed
// sentinel when the set spans more than one.
func collapseTag(questions []questionbank.Question, tag func(questionbank.Question) string) string {
	first := tag(questions[0])
	for _, q := range questions[1:] {
		if tag(q) != first {
			return MixedLabel
		}
	}
	return first
}
