package quizsession

import "github.com/quisqueya-quiz/backend/internal/domain/questionbank"

// AnsweredQuestion pairs a question with the outcome of one attempt.
// Appended to the session history exactly once and never mutated.
type AnsweredQuestion struct {
	Number         int // 1-based position within the session
	Question       questionbank.Question
	Chosen         *int // nil when no choice was made
	Correct        bool
	TimedOut       bool
	ElapsedSeconds float64
}

// ChosenText returns the display text of the chosen option, or a
// placeholder describing why there is none.
func (a AnsweredQuestion) ChosenText() string {
	if a.TimedOut {
		return "Time expired - no answer"
	}
	if a.Chosen == nil {
		return "No answer"
	}
	if *a.Chosen >= 0 && *a.Chosen < len(a.Question.Options) {
		return a.Question.Options[*a.Chosen]
	}
	return "Invalid answer"
}

// CorrectText returns the display text of the correct option.
func (a AnsweredQuestion) CorrectText() string {
	if a.Question.CorrectOption >= 0 && a.Question.CorrectOption < len(a.Question.Options) {
		return a.Question.Options[a.Question.CorrectOption]
	}
	return "Unknown"
}
