// internal/store/sqlite.go
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    player_name TEXT NOT NULL,
    timestamp TEXT NOT NULL,
    theme TEXT NOT NULL,
    level TEXT NOT NULL,
    question_count INTEGER NOT NULL,
    correct_count INTEGER NOT NULL,
    incorrect_count INTEGER NOT NULL,
    timed_out_count INTEGER NOT NULL,
    total_score INTEGER NOT NULL,
    percentage REAL NOT NULL,
    duration_seconds INTEGER NOT NULL
);
`

// SQLite is a score-log Backend on a local sqlite file. Same semantics as
// the JSON file: append-only, insertion order preserved via rowid.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Append(record ScoreRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO scores (session_id, player_name, timestamp, theme, level,
		 question_count, correct_count, incorrect_count, timed_out_count,
		 total_score, percentage, duration_seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.SessionID, record.PlayerName,
		record.Timestamp.UTC().Format(time.RFC3339Nano),
		record.Theme, record.Level,
		record.QuestionCount, record.CorrectCount, record.IncorrectCount,
		record.TimedOutCount, record.TotalScore, record.Percentage,
		record.DurationSeconds,
	)
	return err
}

func (s *SQLite) All() ([]ScoreRecord, error) {
	rows, err := s.db.Query(
		`SELECT session_id, player_name, timestamp, theme, level,
		 question_count, correct_count, incorrect_count, timed_out_count,
		 total_score, percentage, duration_seconds
		 FROM scores ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var timestamp string
		if err := rows.Scan(
			&r.SessionID, &r.PlayerName, &timestamp, &r.Theme, &r.Level,
			&r.QuestionCount, &r.CorrectCount, &r.IncorrectCount,
			&r.TimedOutCount, &r.TotalScore, &r.Percentage, &r.DurationSeconds,
		); err != nil {
			return nil, err
		}
		r.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("parse score timestamp: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
