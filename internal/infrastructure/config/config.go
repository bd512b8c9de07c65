package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable of the application. All values have
// desktop-friendly defaults so the binary runs with no environment at all.
type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	QuestionsDir  string
	QuestionsFile string

	ScoresPath   string
	ScoreBackend string
	SQLitePath   string

	QuestionSeconds int
	MaxQuestions    int
}

// Load reads an optional .env file and resolves the configuration from
// the environment, falling back to defaults.
func Load(logger *slog.Logger) Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	return Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", "localhost:8080"),
		ShutdownTimeout: getenvDuration(logger, "SHUTDOWN_TIMEOUT", 5*time.Second),
		QuestionsDir:    getenvDefault("QUESTIONS_DIR", "questions"),
		QuestionsFile:   getenvDefault("QUESTIONS_FILE", "questions.json"),
		ScoresPath:      getenvDefault("SCORES_PATH", "scores.json"),
		ScoreBackend:    getenvDefault("SCORE_BACKEND", "json"),
		SQLitePath:      getenvDefault("SQLITE_PATH", "quisqueya.db"),
		QuestionSeconds: getenvInt(logger, "QUESTION_SECONDS", 20),
		MaxQuestions:    getenvInt(logger, "MAX_QUESTIONS", 10),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(logger *slog.Logger, key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getenvInt(logger *slog.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logger.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
