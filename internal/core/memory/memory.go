// Package memory is the semantic similarity cache over past translations.
package memory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/ulimi/internal/core/model"
	"github.com/agenthands/ulimi/internal/driver"
	"github.com/agenthands/ulimi/internal/llm"
)

// Memory stores (input -> output) translation pairs in the vector index,
// embedding the input text only. A secondary session-note collection keeps
// lightweight "input → output" transcripts per session; it is
// eventually-consistent with the primary and never consulted by FindSimilar.
type Memory struct {
	Driver   driver.VectorDriver
	Embedder llm.EmbedderClient
}

func New(d driver.VectorDriver, embedder llm.EmbedderClient) *Memory {
	return &Memory{Driver: d, Embedder: embedder}
}

// Store persists one translation and its session transcript entry, returning
// the new record id.
func (m *Memory) Store(ctx context.Context, inputText, outputText, sourceLang, targetLang, sessionID string, metadata map[string]string) (string, error) {
	if m.Embedder == nil {
		return "", fmt.Errorf("no embedder configured")
	}

	recordID := "trans_" + uuid.New().String()[:8]

	props := map[string]string{
		"input":       inputText,
		"output":      outputText,
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"session_id":  sessionID,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range metadata {
		props[k] = v
	}

	vec, err := m.Embedder.Embed(ctx, inputText)
	if err != nil {
		return "", fmt.Errorf("embed input: %w", err)
	}

	if err := m.Driver.AddDocument(ctx, driver.TranslationCollection, recordID, inputText, vec, props); err != nil {
		return "", fmt.Errorf("store translation: %w", err)
	}

	// Transcript append is best effort; the primary record already exists.
	noteID := fmt.Sprintf("session_%s_%s", sessionID, uuid.New().String()[:4])
	noteProps := map[string]string{
		"type":       "translation",
		"session_id": sessionID,
		"timestamp":  props["timestamp"],
	}
	note := fmt.Sprintf("%s → %s", inputText, outputText)
	if err := m.Driver.AddDocument(ctx, driver.SessionNoteCollection, noteID, note, nil, noteProps); err != nil {
		log.Printf("Warning: failed to append session note for %s: %v", sessionID, err)
	}

	return recordID, nil
}

// FindSimilar returns past translations ranked by similarity, most similar
// first. The index accepts only one equality filter per query: target_lang
// is pushed down when supplied (taking priority over session_id), and the
// remaining filter is applied client-side against the candidates, so dual
// filters can return fewer than limit matches even when more exist.
func (m *Memory) FindSimilar(ctx context.Context, queryText, targetLang, sessionID string, limit int) ([]model.SimilarityMatch, error) {
	if m.Embedder == nil {
		return nil, fmt.Errorf("no embedder configured")
	}
	if limit <= 0 {
		limit = 3
	}

	vec, err := m.Embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	filterKey, filterValue := "", ""
	if targetLang != "" {
		filterKey, filterValue = "target_lang", targetLang
	} else if sessionID != "" {
		filterKey, filterValue = "session_id", sessionID
	}

	hits, err := m.Driver.Query(ctx, driver.TranslationCollection, vec, filterKey, filterValue, limit)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}

	var matches []model.SimilarityMatch
	for _, h := range hits {
		if targetLang != "" && h.Props["target_lang"] != targetLang {
			continue
		}
		if sessionID != "" && h.Props["session_id"] != sessionID {
			continue
		}

		matches = append(matches, model.SimilarityMatch{
			Record:     recordFromHit(h),
			Similarity: 1 - h.Distance,
		})
		if len(matches) >= limit {
			break
		}
	}

	return matches, nil
}

// SessionContext returns recent transcript entries for a session.
func (m *Memory) SessionContext(ctx context.Context, sessionID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	hits, err := m.Driver.FindWhere(ctx, driver.SessionNoteCollection, "session_id", sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("session context: %w", err)
	}

	notes := make([]string, 0, len(hits))
	for _, h := range hits {
		notes = append(notes, h.Text)
	}
	return notes, nil
}

// ClearSession removes all stored records and transcripts for a session.
func (m *Memory) ClearSession(ctx context.Context, sessionID string) error {
	if _, err := m.Driver.DeleteWhere(ctx, driver.TranslationCollection, "session_id", sessionID); err != nil {
		return fmt.Errorf("clear translations: %w", err)
	}
	if _, err := m.Driver.DeleteWhere(ctx, driver.SessionNoteCollection, "session_id", sessionID); err != nil {
		return fmt.Errorf("clear session notes: %w", err)
	}
	return nil
}

type Stats struct {
	TranslationCount int64 `json:"translation_count"`
	SessionNoteCount int64 `json:"session_note_count"`
}

func (m *Memory) GetStats(ctx context.Context) (Stats, error) {
	translations, err := m.Driver.Count(ctx, driver.TranslationCollection)
	if err != nil {
		return Stats{}, err
	}
	notes, err := m.Driver.Count(ctx, driver.SessionNoteCollection)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TranslationCount: translations, SessionNoteCount: notes}, nil
}

// LoadDatasetCSV bulk-loads (source_text, target_text) rows under the
// dataset_load session. Rows with an empty side are skipped. Returns the
// number of rows stored.
func (m *Memory) LoadDatasetCSV(ctx context.Context, path string, maxRows int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	sourceCol, targetCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "source_text":
			sourceCol = i
		case "target_text":
			targetCol = i
		}
	}
	if sourceCol == -1 || targetCol == -1 {
		return 0, fmt.Errorf("dataset missing source_text/target_text columns")
	}

	loaded, row := 0, 0
	for {
		if maxRows > 0 && loaded >= maxRows {
			break
		}

		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return loaded, fmt.Errorf("read row %d: %w", row, err)
		}
		row++

		source := strings.TrimSpace(rec[sourceCol])
		target := strings.TrimSpace(rec[targetCol])
		if source == "" || target == "" {
			continue
		}

		_, err = m.Store(ctx, source, target, "en", "zu", "dataset_load", map[string]string{
			"source": "dataset_csv",
			"row_id": strconv.Itoa(row),
		})
		if err != nil {
			return loaded, fmt.Errorf("store row %d: %w", row, err)
		}
		loaded++

		if loaded%1000 == 0 {
			log.Printf("Loaded %d sentences...", loaded)
		}
	}

	return loaded, nil
}

func recordFromHit(h driver.Hit) model.MemoryRecord {
	ts, _ := time.Parse(time.RFC3339, h.Props["timestamp"])
	rec := model.MemoryRecord{
		ID:         h.ID,
		InputText:  h.Props["input"],
		OutputText: h.Props["output"],
		SourceLang: h.Props["source_lang"],
		TargetLang: h.Props["target_lang"],
		SessionID:  h.Props["session_id"],
		Timestamp:  ts,
	}
	if rec.InputText == "" {
		rec.InputText = h.Text
	}
	return rec
}
