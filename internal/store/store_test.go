package store_test

import (
	"testing"
	"time"

	"github.com/quisqueya-quiz/backend/internal/store"
)

func record(player, theme string, score int, percentage float64, ts time.Time) store.ScoreRecord {
	return store.ScoreRecord{
		SessionID:     player + "-x",
		PlayerName:    player,
		Timestamp:     ts,
		Theme:         theme,
		Level:         "facile",
		QuestionCount: 10,
		CorrectCount:  score,
		TotalScore:    score,
		Percentage:    percentage,
	}
}

func seededStore(t *testing.T, records ...store.ScoreRecord) *store.Store {
	t.Helper()
	backend := store.NewMemory()
	for _, r := range records {
		if err := backend.Append(r); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	return store.New(backend)
}

func TestTopN_Ordering(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := seededStore(t,
		record("Ana", "Histoire", 5, 50.0, base),
		record("Bob", "Histoire", 8, 80.0, base.Add(time.Hour)),
		record("Cleo", "Histoire", 8, 80.0, base.Add(-time.Hour)), // earlier play wins tie
		record("Dan", "Histoire", 8, 90.0, base.Add(2*time.Hour)),
	)

	top, err := s.TopN(3, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 records, got %d", len(top))
	}
	if top[0].PlayerName != "Dan" {
		t.Errorf("expected Dan first (higher percentage), got %s", top[0].PlayerName)
	}
	if top[1].PlayerName != "Cleo" {
		t.Errorf("expected Cleo second (earlier timestamp tie-break), got %s", top[1].PlayerName)
	}
	if top[2].PlayerName != "Bob" {
		t.Errorf("expected Bob third, got %s", top[2].PlayerName)
	}
}

func TestTopN_ThemeFilter(t *testing.T) {
	base := time.Now()
	s := seededStore(t,
		record("Ana", "Histoire", 5, 50.0, base),
		record("Bob", "Culture", 9, 90.0, base),
	)

	top, err := s.TopN(10, "Histoire")
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].PlayerName != "Ana" {
		t.Fatalf("expected only Ana for theme Histoire, got %+v", top)
	}
}

func TestThemesSeen(t *testing.T) {
	base := time.Now()
	s := seededStore(t,
		record("Ana", "Histoire", 5, 50.0, base),
		record("Bob", "Culture", 9, 90.0, base),
		record("Cleo", "Histoire", 3, 30.0, base),
	)

	themes, err := s.ThemesSeen()
	if err != nil {
		t.Fatal(err)
	}
	if len(themes) != 2 || themes[0] != "Culture" || themes[1] != "Histoire" {
		t.Errorf("expected sorted distinct themes, got %v", themes)
	}
}

func TestPlayerOccurrenceCount_CaseInsensitive(t *testing.T) {
	base := time.Now()
	s := seededStore(t,
		record("Ana", "Histoire", 5, 50.0, base),
		record("ANA", "Culture", 3, 30.0, base),
		record("Bob", "Histoire", 2, 20.0, base),
	)

	count, err := s.PlayerOccurrenceCount("ana")
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 occurrences, got %d", count)
	}
}

func TestPlayerStats(t *testing.T) {
	base := time.Now()
	s := seededStore(t,
		record("Ana", "Histoire", 5, 50.0, base),
		record("ana", "Culture", 8, 80.0, base),
		record("Ana", "Histoire", 2, 20.0, base),
	)

	stats, err := s.PlayerStats("Ana")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Plays != 3 {
		t.Errorf("expected 3 plays, got %d", stats.Plays)
	}
	if stats.BestScore != 8 || stats.BestPercentage != 80.0 {
		t.Errorf("expected best 8/80.0, got %d/%v", stats.BestScore, stats.BestPercentage)
	}
	if stats.MeanPercentage != 50.0 {
		t.Errorf("expected mean percentage 50.0, got %v", stats.MeanPercentage)
	}
}

func TestPlayerStats_NoPlays(t *testing.T) {
	s := seededStore(t)

	stats, err := s.PlayerStats("ghost")
	if err != nil {
		t.Fatal(err)
	}
	if stats != (store.PlayerStats{}) {
		t.Errorf("expected zero-value stats for unknown player, got %+v", stats)
	}
}
