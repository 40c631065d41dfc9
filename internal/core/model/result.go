package model

// SourceType identifies which pipeline stage produced a translation.
type SourceType string

const (
	SourceDictionary SourceType = "dictionary"
	SourceMemory     SourceType = "memory"
	SourceAPI        SourceType = "api"
	SourceNone       SourceType = "none"
)

// Quality is the tier assigned by the quality scorer.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
	QualityError  Quality = "error"
)

// QualityAssessment is produced fresh for every resolved output.
type QualityAssessment struct {
	Quality    Quality    `json:"quality"`
	Score      float64    `json:"score"`
	Warnings   []string   `json:"warnings,omitempty"`
	SourceType SourceType `json:"source_type"`
}

// ResolutionResult is the structured outcome of one resolve call, consumed
// by the HTTP layer and the audit sink.
type ResolutionResult struct {
	Translation string     `json:"translation"`
	SourceType  SourceType `json:"source"`
	Quality     Quality    `json:"quality"`
	Confidence  float64    `json:"confidence"`
	SessionID   string     `json:"session_id"`
	Warnings    []string   `json:"warnings,omitempty"`
}
