package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/quisqueya-quiz/backend/internal/domain/questionbank"
)

// questionRecord is the on-disk form of a question. Pointer fields
// distinguish a missing key from a zero value so partially specified
// records can be rejected individually.
type questionRecord struct {
	ID           *int     `json:"id"`
	Theme        *string  `json:"theme"`
	Level        *string  `json:"level"`
	Text         *string  `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correctIndex"`
}

func (r questionRecord) validate() (questionbank.Question, bool) {
	if r.ID == nil || r.Theme == nil || r.Level == nil || r.Text == nil || r.CorrectIndex == nil {
		return questionbank.Question{}, false
	}
	if len(r.Options) == 0 || *r.CorrectIndex < 0 || *r.CorrectIndex >= len(r.Options) {
		return questionbank.Question{}, false
	}
	return questionbank.Question{
		ID:            *r.ID,
		Theme:         *r.Theme,
		Level:         *r.Level,
		Text:          *r.Text,
		Options:       r.Options,
		CorrectOption: *r.CorrectIndex,
	}, true
}

// LoadBank reads every *.json file under dir, or falls back to the single
// flat file at fallback when dir does not exist. Missing sources yield an
// empty bank; the caller decides whether zero questions is fatal.
func LoadBank(logger *slog.Logger, dir, fallback string) *questionbank.Bank {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			logger.Warn("failed to scan question directory", "dir", dir, "error", err)
			return questionbank.New(nil)
		}
		sort.Strings(paths)
		return questionbank.New(LoadQuestionFiles(logger, paths...))
	}
	if _, err := os.Stat(fallback); err == nil {
		return questionbank.New(LoadQuestionFiles(logger, fallback))
	}
	return questionbank.New(nil)
}

// LoadQuestionFiles reads question records from the given JSON files.
// A record that fails to decode, misses a required field, or carries an
// out-of-range correct index is skipped with a warning; loading continues.
func LoadQuestionFiles(logger *slog.Logger, paths ...string) []questionbank.Question {
	var questions []questionbank.Question
	for _, path := range paths {
		questions = append(questions, loadQuestionFile(logger, path)...)
	}
	return questions
}

func loadQuestionFile(logger *slog.Logger, path string) []questionbank.Question {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("cannot read question file", "path", path, "error", err)
		return nil
	}

	// Decode element by element so one malformed record does not sink
	// the whole file.
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("question file is not a JSON array", "path", path, "error", err)
		return nil
	}

	var questions []questionbank.Question
	for i, element := range raw {
		var record questionRecord
		if err := json.Unmarshal(element, &record); err != nil {
			logger.Warn("skipping malformed question record", "path", path, "index", i, "error", err)
			continue
		}
		question, ok := record.validate()
		if !ok {
			logger.Warn("skipping invalid question record", "path", path, "index", i)
			continue
		}
		questions = append(questions, question)
	}
	return questions
}
