package model

import "time"

// MemoryRecord is one stored (input -> output) translation pair. InputText
// is the field embedded for similarity search; OutputText lives only in the
// record's properties and is never embedded.
type MemoryRecord struct {
	ID         string            `json:"id"`
	InputText  string            `json:"input"`
	OutputText string            `json:"output"`
	SourceLang string            `json:"source_lang"`
	TargetLang string            `json:"target_lang"`
	SessionID  string            `json:"session_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SimilarityMatch is a transient query result, never persisted.
type SimilarityMatch struct {
	Record     MemoryRecord `json:"record"`
	Similarity float64      `json:"similarity"` // 1 - distance, in [0,1]
}
