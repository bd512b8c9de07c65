package quizsession

import (
	"math"
	"time"
)

// MixedLabel is the sentinel theme/level of a session whose questions span
// more than one tag.
const MixedLabel = "mixed"

// Summary is the immutable end-of-session snapshot handed to the score
// store. Incorrect includes timed-out answers; presentation layers that
// want disjoint buckets should use WrongAnswers alongside TimedOut.
type Summary struct {
	SessionID       string
	Player          string
	StartedAt       time.Time
	FinishedAt      time.Time
	Theme           string
	Level           string
	TotalQuestions  int
	Correct         int
	Incorrect       int
	TimedOut        int
	Score           int
	Percentage      float64
	DurationSeconds int
}

// WrongAnswers is the count of explicit wrong choices, excluding timeouts.
func (s Summary) WrongAnswers() int {
	return s.Incorrect - s.TimedOut
}

// percentage is the share of correct answers in 0..100, rounded to one
// decimal; 0.0 for an empty set.
func percentage(correct, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}
