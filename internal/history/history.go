// Package history keeps an append-only record of completed generation runs.
// Recording is bookkeeping only: a failed append never aborts a run.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// fileName is the log file inside the cache directory.
const fileName = "history.jsonl"

// Record describes one completed generation run.
type Record struct {
	RunID         uuid.UUID `json:"run_id"`
	Timestamp     time.Time `json:"timestamp"`
	Model         string    `json:"model"`
	OutputPath    string    `json:"output_path"`
	PromptChars   int       `json:"prompt_chars"`
	ResponseChars int       `json:"response_chars"`
}

// Log is a JSON-lines file of run records.
type Log struct {
	path string
}

// Open returns the run log stored under dir.
func Open(dir string) *Log {
	return &Log{path: filepath.Join(dir, fileName)}
}

// Append writes one record as a single JSON line.
func (l *Log) Append(record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append history record: %w", err)
	}
	return nil
}

// Records returns all recorded runs in append order. A missing log reads as
// empty. Unparseable lines are skipped rather than failing the whole read.
func (l *Log) Records() ([]Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var record Record
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history log: %w", err)
	}
	return records, nil
}
