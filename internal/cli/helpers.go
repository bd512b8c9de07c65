package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/quisqueya-quiz/backend/internal/infrastructure/config"
	"github.com/quisqueya-quiz/backend/internal/service"
	"github.com/quisqueya-quiz/backend/internal/store"
)

// buildService assembles the question bank, score store, and quiz service
// from the configuration. The returned cleanup closes the persistence
// queue and any open database handle.
func buildService(cfg config.Config, logger *slog.Logger) (*service.QuizService, func(), error) {
	bank := store.LoadBank(logger, cfg.QuestionsDir, cfg.QuestionsFile)

	var backend store.Backend
	var closeBackend func()

	switch cfg.ScoreBackend {
	case "json":
		jf, err := store.NewJSONFile(cfg.ScoresPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open score log: %w", err)
		}
		backend = jf
	case "sqlite":
		db, err := store.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open score database: %w", err)
		}
		backend = db
		closeBackend = func() { db.Close() }
	case "memory":
		backend = store.NewMemory()
	default:
		return nil, nil, fmt.Errorf("unknown score backend %q", cfg.ScoreBackend)
	}

	svc := service.NewQuizService(bank, store.New(backend), logger)
	cleanup := func() {
		svc.Close()
		if closeBackend != nil {
			closeBackend()
		}
	}
	return svc, cleanup, nil
}

// terminalLogger logs warnings and errors as text on stderr, keeping
// stdout free for quiz output.
func terminalLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}
