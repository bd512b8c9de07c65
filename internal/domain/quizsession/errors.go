package quizsession

import "errors"

var (
	// ErrNoQuestions is returned when a session is constructed over an
	// empty question set. Recoverable: the caller should tell the player
	// no quiz is possible for the chosen filters.
	ErrNoQuestions = errors.New("no questions available for session")
	// ErrSessionComplete is returned when an answer arrives after the last
	// question has been answered. This signals a caller bug.
	ErrSessionComplete = errors.New("session already complete")
	// ErrSessionInProgress is returned when Finalize is called before all
	// questions have been answered.
	ErrSessionInProgress = errors.New("session still in progress")
)
