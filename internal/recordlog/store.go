// Package recordlog persists finalized survey records. It is a consumer of
// the form's submitted event; the form itself never touches storage.
package recordlog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"unirate/internal/core"
	"unirate/pkg/schema"
)

// Store appends finalized survey records to a YAML log file. Writes go to a
// temp file first and are renamed into place, so a crash mid-write leaves
// the previous log intact.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path. The file and its
// parent directory are created on first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append adds one record to the end of the log.
func (s *Store) Append(record schema.Record) error {
	records, err := s.Records()
	if err != nil {
		return err
	}
	records = append(records, record)

	data, err := yaml.Marshal(records)
	if err != nil {
		return &core.RecordLogError{Operation: "append", Message: "marshal records", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &core.RecordLogError{Operation: "append", Message: "create log directory", Err: err}
	}

	tempPath := fmt.Sprintf("%s.tmp", s.path)
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return &core.RecordLogError{Operation: "append", Message: "write temp file", Err: err}
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return &core.RecordLogError{Operation: "append", Message: "swap log file", Err: err}
	}

	return nil
}

// Records reads the full log. A missing file is an empty log.
func (s *Store) Records() ([]schema.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []schema.Record{}, nil
		}
		return nil, &core.RecordLogError{Operation: "read", Message: "read log file", Err: err}
	}

	var records []schema.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, &core.RecordLogError{Operation: "read", Message: "parse log file", Err: err}
	}

	return records, nil
}

// Subscriber adapts the store to the form's submitted event. Persistence
// failures are logged, not returned: the record was validly emitted and the
// form has already moved on.
func (s *Store) Subscriber(logger core.Logger) func(schema.Record) {
	return func(record schema.Record) {
		if err := s.Append(record); err != nil {
			logger.Error("failed to persist submitted record", "id", record.UniqueID, "error", err)
		}
	}
}
