package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONFile persists the score log as a single JSON array, rewritten whole
// on every append: marshal to a temporary file, then atomically replace, so
// a crash mid-write never leaves a truncated log visible. Single-process,
// single-writer usage is assumed; concurrent writers must be serialized by
// the caller.
type JSONFile struct {
	path string
}

// NewJSONFile opens (and if needed creates) the score log at path.
func NewJSONFile(path string) (*JSONFile, error) {
	f := &JSONFile{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := f.write(nil); err != nil {
			return nil, fmt.Errorf("create score log: %w", err)
		}
	}
	return f, nil
}

// All loads the full log. A missing or unreadable file is an empty log,
// not an error: callers must handle the zero-score case anyway.
func (f *JSONFile) All() ([]ScoreRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, nil
	}
	var records []ScoreRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// Append rewrites the whole log with the new record at the end. If the
// file was deleted since the last read, the log is recreated with just
// this record.
func (f *JSONFile) Append(record ScoreRecord) error {
	records, _ := f.All()
	records = append(records, record)
	if err := f.write(records); err != nil {
		return fmt.Errorf("write score log: %w", err)
	}
	return nil
}

func (f *JSONFile) write(records []ScoreRecord) error {
	if records == nil {
		records = []ScoreRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
