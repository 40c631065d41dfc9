package core

import (
	"context"
	"sync"

	"github.com/agenthands/ulimi/internal/audit"
	"github.com/agenthands/ulimi/internal/core/model"
)

type mockTermStore struct {
	value string
	ok    bool
	err   error
	calls int
}

func (m *mockTermStore) ExactMatch(_ context.Context, _ string) (string, bool, error) {
	m.calls++
	return m.value, m.ok, m.err
}

type storedPair struct {
	input, output, sessionID string
	metadata                 map[string]string
}

type mockCache struct {
	matches  []model.SimilarityMatch
	findErr  error
	storeErr error

	findCalls int
	stored    []storedPair
}

func (m *mockCache) FindSimilar(_ context.Context, _, _, _ string, _ int) ([]model.SimilarityMatch, error) {
	m.findCalls++
	return m.matches, m.findErr
}

func (m *mockCache) Store(_ context.Context, inputText, outputText, _, _, sessionID string, metadata map[string]string) (string, error) {
	if m.storeErr != nil {
		return "", m.storeErr
	}
	m.stored = append(m.stored, storedPair{inputText, outputText, sessionID, metadata})
	return "trans_mock", nil
}

type mockProvider struct {
	out   string
	ok    bool
	calls int
}

func (m *mockProvider) Translate(_ context.Context, _, _, _ string) (string, bool) {
	m.calls++
	return m.out, m.ok
}

type mockSink struct {
	mu      sync.Mutex
	records []audit.Record
	err     error
}

func (m *mockSink) Append(record audit.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockSink) stages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, r := range m.records {
		if r.Stage != "" {
			out = append(out, r.Stage+":"+r.Outcome)
		}
	}
	return out
}
