package core

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/agenthands/ulimi/internal/audit"
	"github.com/agenthands/ulimi/internal/core/model"
	"github.com/agenthands/ulimi/internal/core/quality"
	"github.com/agenthands/ulimi/internal/core/validate"
)

// Pipeline stages, in resolution order.
const (
	StageValidating          = "validating"
	StageDictionaryLookup    = "dictionary_lookup"
	StageMemoryLookup        = "memory_lookup"
	StageProviderFallback    = "provider_fallback"
	StagePassthroughFallback = "passthrough_fallback"
)

// TermStore is the exact-match dictionary capability.
type TermStore interface {
	ExactMatch(ctx context.Context, text string) (string, bool, error)
}

// SimilarityCache is the semantic memory capability.
type SimilarityCache interface {
	FindSimilar(ctx context.Context, queryText, targetLang, sessionID string, limit int) ([]model.SimilarityMatch, error)
	Store(ctx context.Context, inputText, outputText, sourceLang, targetLang, sessionID string, metadata map[string]string) (string, error)
}

// TranslationProvider is the external best-effort translation capability.
type TranslationProvider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, bool)
}

// AuditSink receives one record per stage transition and per resolution.
type AuditSink interface {
	Append(record audit.Record) error
}

// ValidationError is the terminal error for rejected input; no lookup stage
// has run when it is returned.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("input validation failed: %s", strings.Join(e.Errors, "; "))
}

// Request is one translation resolution request.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
	UseCache   bool
}

// Resolver runs the priority-ordered pipeline for one session:
// validation, dictionary, similarity memory, provider, passthrough.
// Every capability is a concrete implementation; absent ones are null
// objects so no stage probes for capabilities at runtime.
type Resolver struct {
	Validator *validate.Validator
	Terms     TermStore
	Memory    SimilarityCache
	Provider  TranslationProvider
	Audit     AuditSink

	SessionID string

	// SimilarityThreshold is the strict acceptance bound for memory hits;
	// a match at exactly this value is a miss.
	SimilarityThreshold float64
	SearchLimit         int

	requestCount atomic.Int64
}

func NewResolver(sessionID string, terms TermStore, cache SimilarityCache, prov TranslationProvider, sink AuditSink, threshold float64, searchLimit int) *Resolver {
	if sessionID == "" {
		sessionID = "session_" + uuid.New().String()[:8]
	}
	if terms == nil {
		terms = nopTermStore{}
	}
	if cache == nil {
		cache = nopCache{}
	}
	if prov == nil {
		prov = nopProvider{}
	}
	if sink == nil {
		sink = nopSink{}
	}
	if threshold == 0 {
		threshold = 0.7
	}
	if searchLimit <= 0 {
		searchLimit = 3
	}

	return &Resolver{
		Validator:           validate.NewValidator(),
		Terms:               terms,
		Memory:              cache,
		Provider:            prov,
		Audit:               sink,
		SessionID:           sessionID,
		SimilarityThreshold: threshold,
		SearchLimit:         searchLimit,
	}
}

// RequestCount reports completed resolutions for this resolver. Exposed for
// reporting only; the pipeline never consults it.
func (r *Resolver) RequestCount() int64 {
	return r.requestCount.Load()
}

// Resolve runs the pipeline. Stage dependencies that fail are demoted to
// misses so a terminal result is always reached; the only error returned is
// a ValidationError for rejected input.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*model.ResolutionResult, error) {
	requestID := uuid.New().String()[:8]

	validation := r.Validator.Validate(req.Text, req.TargetLang)
	if !validation.IsValid {
		r.logStage(requestID, StageValidating, "rejected")
		return nil, &ValidationError{Errors: validation.Errors, Warnings: validation.Warnings}
	}
	r.logStage(requestID, StageValidating, "passed")

	text := validation.SanitizedText

	if result := r.dictionaryLookup(ctx, requestID, text, validation.Warnings); result != nil {
		return r.finish(requestID, req, result), nil
	}

	if req.UseCache {
		if result := r.memoryLookup(ctx, requestID, text, req.TargetLang, validation.Warnings); result != nil {
			return r.finish(requestID, req, result), nil
		}
	}

	if result := r.providerFallback(ctx, requestID, text, req.SourceLang, req.TargetLang, validation.Warnings); result != nil {
		return r.finish(requestID, req, result), nil
	}

	r.logStage(requestID, StagePassthroughFallback, "hit")
	qa := quality.Assess(text, text, model.SourceNone)
	return r.finish(requestID, req, &model.ResolutionResult{
		Translation: text,
		SourceType:  model.SourceNone,
		Quality:     qa.Quality,
		Confidence:  qa.Score,
		SessionID:   r.SessionID,
		Warnings:    append(validation.Warnings, qa.Warnings...),
	}), nil
}

func (r *Resolver) dictionaryLookup(ctx context.Context, requestID, text string, inputWarnings []string) *model.ResolutionResult {
	value, ok, err := r.Terms.ExactMatch(ctx, text)
	if err != nil {
		log.Printf("Warning: dictionary lookup failed: %v", err)
		r.logStage(requestID, StageDictionaryLookup, "failure")
		return nil
	}
	if !ok {
		r.logStage(requestID, StageDictionaryLookup, "miss")
		return nil
	}

	r.logStage(requestID, StageDictionaryLookup, "hit")
	qa := quality.Assess(text, value, model.SourceDictionary)
	return &model.ResolutionResult{
		Translation: value,
		SourceType:  model.SourceDictionary,
		Quality:     qa.Quality,
		Confidence:  qa.Score,
		SessionID:   r.SessionID,
		Warnings:    append(inputWarnings, qa.Warnings...),
	}
}

func (r *Resolver) memoryLookup(ctx context.Context, requestID, text, targetLang string, inputWarnings []string) *model.ResolutionResult {
	matches, err := r.Memory.FindSimilar(ctx, text, targetLang, "", r.SearchLimit)
	if err != nil {
		log.Printf("Warning: memory lookup failed: %v", err)
		r.logStage(requestID, StageMemoryLookup, "failure")
		return nil
	}
	if len(matches) == 0 {
		r.logStage(requestID, StageMemoryLookup, "miss")
		return nil
	}

	best := matches[0]
	if best.Similarity <= r.SimilarityThreshold {
		r.logStage(requestID, StageMemoryLookup, "below_threshold")
		return nil
	}

	r.logStage(requestID, StageMemoryLookup, "hit")
	qa := quality.Assess(text, best.Record.OutputText, model.SourceMemory)
	return &model.ResolutionResult{
		Translation: best.Record.OutputText,
		SourceType:  model.SourceMemory,
		Quality:     qa.Quality,
		Confidence:  best.Similarity, // the similarity itself, not the generic score
		SessionID:   r.SessionID,
		Warnings:    append(inputWarnings, qa.Warnings...),
	}
}

func (r *Resolver) providerFallback(ctx context.Context, requestID, text, sourceLang, targetLang string, inputWarnings []string) *model.ResolutionResult {
	out, ok := r.Provider.Translate(ctx, text, sourceLang, targetLang)
	if !ok {
		r.logStage(requestID, StageProviderFallback, "miss")
		return nil
	}
	if strings.EqualFold(out, text) {
		// The provider echoing the input means it gave up, not a result.
		r.logStage(requestID, StageProviderFallback, "untranslated")
		return nil
	}

	r.logStage(requestID, StageProviderFallback, "hit")

	if _, err := r.Memory.Store(ctx, text, out, sourceLang, targetLang, r.SessionID, map[string]string{"source": "api"}); err != nil {
		log.Printf("Warning: failed to store provider result in memory: %v", err)
	}

	qa := quality.Assess(text, out, model.SourceAPI)
	return &model.ResolutionResult{
		Translation: out,
		SourceType:  model.SourceAPI,
		Quality:     qa.Quality,
		Confidence:  qa.Score,
		SessionID:   r.SessionID,
		Warnings:    append(inputWarnings, qa.Warnings...),
	}
}

func (r *Resolver) finish(requestID string, req Request, result *model.ResolutionResult) *model.ResolutionResult {
	r.requestCount.Add(1)

	err := r.Audit.Append(audit.Record{
		RequestID:  requestID,
		SessionID:  r.SessionID,
		Input:      req.Text,
		Output:     result.Translation,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Source:     string(result.SourceType),
		Confidence: result.Confidence,
	})
	if err != nil {
		log.Printf("Warning: failed to append resolution audit record: %v", err)
	}

	return result
}

func (r *Resolver) logStage(requestID, stage, outcome string) {
	err := r.Audit.Append(audit.Record{
		RequestID: requestID,
		SessionID: r.SessionID,
		Stage:     stage,
		Outcome:   outcome,
	})
	if err != nil {
		log.Printf("Warning: failed to append stage audit record: %v", err)
	}
}

// Null objects for absent capabilities; every miss, never an error.

type nopTermStore struct{}

func (nopTermStore) ExactMatch(ctx context.Context, text string) (string, bool, error) {
	return "", false, nil
}

type nopCache struct{}

func (nopCache) FindSimilar(ctx context.Context, queryText, targetLang, sessionID string, limit int) ([]model.SimilarityMatch, error) {
	return nil, nil
}

func (nopCache) Store(ctx context.Context, inputText, outputText, sourceLang, targetLang, sessionID string, metadata map[string]string) (string, error) {
	return "", nil
}

type nopProvider struct{}

func (nopProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, bool) {
	return "", false
}

type nopSink struct{}

func (nopSink) Append(record audit.Record) error { return nil }
