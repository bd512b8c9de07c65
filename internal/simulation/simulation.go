// simulation/simulation.go
package simulation

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/quisqueya-quiz/backend/internal/service"
)

// Player names used for demo runs.
var demoPlayers = []string{"Ana", "Jean", "Marie", "Tiga", "Lovelie"}

// Run drives full quiz sessions through the service with randomized
// answers, seeding the score log with believable data. Each session picks
// a random player and a random theme (or the whole bank).
func Run(svc *service.QuizService, logger *slog.Logger, sessionCount int) error {
	themes := svc.Themes()

	for i := 0; i < sessionCount; i++ {
		player := demoPlayers[rand.Intn(len(demoPlayers))]

		var selection []string
		if len(themes) > 0 && rand.Intn(2) == 0 {
			selection = []string{themes[rand.Intn(len(themes))]}
		}

		if err := playSession(svc, player, selection); err != nil {
			return fmt.Errorf("demo session %d: %w", i+1, err)
		}
	}

	logger.Info("demo sessions recorded", "count", sessionCount)
	return nil
}

func playSession(svc *service.QuizService, player string, themes []string) error {
	session, err := svc.StartSession(player, 0, themes)
	if err != nil {
		return err
	}

	for !session.IsComplete() {
		q, _ := session.CurrentQuestion()
		elapsed := 1 + rand.Float64()*10

		// Roughly one in eight answers times out; the rest guess an
		// option, biased toward the correct one.
		switch {
		case rand.Intn(8) == 0:
			err = session.SubmitAnswer(nil, true, elapsed)
		case rand.Intn(3) > 0:
			chosen := q.CorrectOption
			err = session.SubmitAnswer(&chosen, false, elapsed)
		default:
			chosen := rand.Intn(len(q.Options))
			err = session.SubmitAnswer(&chosen, false, elapsed)
		}
		if err != nil {
			return err
		}
	}

	_, _, err = svc.CompleteSession(session.ID())
	return err
}
