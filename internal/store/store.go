// internal/store/store.go
package store

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/quisqueya-quiz/backend/internal/domain/quizsession"
)

// ScoreRecord is the persisted form of a session summary, one entry per
// finished quiz in play order. Timestamps serialize as RFC 3339.
type ScoreRecord struct {
	SessionID       string    `json:"sessionId"`
	PlayerName      string    `json:"playerName"`
	Timestamp       time.Time `json:"timestamp"`
	Theme           string    `json:"theme"`
	Level           string    `json:"level"`
	QuestionCount   int       `json:"questionCount"`
	CorrectCount    int       `json:"correctCount"`
	IncorrectCount  int       `json:"incorrectCount"`
	TimedOutCount   int       `json:"timedOutCount"`
	TotalScore      int       `json:"totalScore"`
	Percentage      float64   `json:"percentage"`
	DurationSeconds int       `json:"durationSeconds"`
}

// RecordFromSummary converts an engine summary into its wire form.
func RecordFromSummary(s quizsession.Summary) ScoreRecord {
	return ScoreRecord{
		SessionID:       s.SessionID,
		PlayerName:      s.Player,
		Timestamp:       s.FinishedAt,
		Theme:           s.Theme,
		Level:           s.Level,
		QuestionCount:   s.TotalQuestions,
		CorrectCount:    s.Correct,
		IncorrectCount:  s.Incorrect,
		TimedOutCount:   s.TimedOut,
		TotalScore:      s.Score,
		Percentage:      s.Percentage,
		DurationSeconds: s.DurationSeconds,
	}
}

// PlayerStats aggregates a player's recorded sessions. The zero value
// (Plays == 0) is the "no plays" sentinel.
type PlayerStats struct {
	Plays          int
	BestScore      int
	BestPercentage float64
	MeanPercentage float64
}

// Backend persists the ordered score log. Append must leave the log in
// insertion order and never expose a partially written state.
type Backend interface {
	Append(record ScoreRecord) error
	All() ([]ScoreRecord, error)
}

// Store answers leaderboard and player queries over a Backend.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// AppendScore adds one record to the durable log.
func (s *Store) AppendScore(record ScoreRecord) error {
	if err := s.backend.Append(record); err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return nil
}

// All returns every stored record in play order.
func (s *Store) All() ([]ScoreRecord, error) {
	return s.backend.All()
}

// TopN returns up to n records, optionally filtered to one theme, ordered
// by score descending, then percentage descending, then timestamp
// ascending so earlier plays win ties.
func (s *Store) TopN(n int, theme string) ([]ScoreRecord, error) {
	records, err := s.backend.All()
	if err != nil {
		return nil, err
	}

	if theme != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.Theme == theme {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].TotalScore != records[j].TotalScore {
			return records[i].TotalScore > records[j].TotalScore
		}
		if records[i].Percentage != records[j].Percentage {
			return records[i].Percentage > records[j].Percentage
		}
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	if len(records) > n {
		records = records[:n]
	}
	return records, nil
}

// ThemesSeen returns the distinct theme values across stored records,
// sorted.
func (s *Store) ThemesSeen() ([]string, error) {
	records, err := s.backend.All()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.Theme != "" {
			seen[r.Theme] = struct{}{}
		}
	}
	themes := make([]string, 0, len(seen))
	for t := range seen {
		themes = append(themes, t)
	}
	sort.Strings(themes)
	return themes, nil
}

// PlayerOccurrenceCount counts records whose player name matches,
// case-insensitively.
func (s *Store) PlayerOccurrenceCount(name string) (int, error) {
	records, err := s.backend.All()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, r := range records {
		if strings.EqualFold(r.PlayerName, name) {
			count++
		}
	}
	return count, nil
}

// PlayerStats aggregates the case-insensitive match set for a player name.
func (s *Store) PlayerStats(name string) (PlayerStats, error) {
	records, err := s.backend.All()
	if err != nil {
		return PlayerStats{}, err
	}

	var stats PlayerStats
	var sumPercentage float64
	for _, r := range records {
		if !strings.EqualFold(r.PlayerName, name) {
			continue
		}
		stats.Plays++
		sumPercentage += r.Percentage
		if r.TotalScore > stats.BestScore || stats.Plays == 1 {
			stats.BestScore = r.TotalScore
			stats.BestPercentage = r.Percentage
		}
	}
	if stats.Plays == 0 {
		return PlayerStats{}, nil
	}
	stats.MeanPercentage = round1(sumPercentage / float64(stats.Plays))
	return stats, nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
