// Package audit is the append-only JSONL sink for resolution and stage
// events. One Append is one atomic line write under the sink's own lock.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record is one audit event. Stage/Outcome are set for pipeline transition
// events; Input/Output/Confidence for completed resolutions.
type Record struct {
	ID         string  `json:"id"`
	Timestamp  string  `json:"timestamp"`
	RequestID  string  `json:"request_id,omitempty"`
	SessionID  string  `json:"session_id"`
	Stage      string  `json:"stage,omitempty"`
	Outcome    string  `json:"outcome,omitempty"`
	Input      string  `json:"input,omitempty"`
	Output     string  `json:"output,omitempty"`
	SourceLang string  `json:"source_lang,omitempty"`
	TargetLang string  `json:"target_lang,omitempty"`
	Source     string  `json:"source,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Sink appends records to a JSONL file. Safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	file    *os.File
	path    string
	entropy *rand.Rand
}

func NewSink(path string) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Sink{
		file:    f,
		path:    path,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// Append writes one record as a single line. The record id and timestamp
// are filled in when empty.
func (s *Sink) Append(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
	}
	if record.Timestamp == "" {
		record.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal audit record: %w", err)
	}

	if _, err := s.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}

// Read returns up to limit most recent records, optionally filtered by
// session id (empty matches all). Malformed lines are skipped.
func (s *Sink) Read(limit int, sessionID string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		if sessionID != "" && rec.SessionID != sessionID {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}
