package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ulimi/internal/core/model"
)

func newTestResolver(terms *mockTermStore, cache *mockCache, prov *mockProvider, sink *mockSink) *Resolver {
	var (
		t TermStore
		c SimilarityCache
		p TranslationProvider
		s AuditSink
	)
	if terms != nil {
		t = terms
	}
	if cache != nil {
		c = cache
	}
	if prov != nil {
		p = prov
	}
	if sink != nil {
		s = sink
	}
	return NewResolver("test-session", t, c, p, s, 0, 0)
}

func request(text string) Request {
	return Request{Text: text, SourceLang: "en", TargetLang: "zu", UseCache: true}
}

func TestResolve_ValidationFailureRunsNoStages(t *testing.T) {
	terms := &mockTermStore{}
	cache := &mockCache{}
	prov := &mockProvider{}
	r := newTestResolver(terms, cache, prov, nil)

	_, err := r.Resolve(context.Background(), request(""))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Errors)

	assert.Zero(t, terms.calls)
	assert.Zero(t, cache.findCalls)
	assert.Zero(t, prov.calls)
	assert.Zero(t, r.RequestCount())
}

func TestResolve_UnsupportedLanguage(t *testing.T) {
	r := newTestResolver(nil, nil, nil, nil)

	_, err := r.Resolve(context.Background(), Request{Text: "hello", SourceLang: "en", TargetLang: "xx"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors[0], "Unsupported language")
}

func TestResolve_DictionaryHit(t *testing.T) {
	terms := &mockTermStore{value: "inkuthazakwenza", ok: true}
	cache := &mockCache{}
	prov := &mockProvider{}
	r := newTestResolver(terms, cache, prov, nil)

	result, err := r.Resolve(context.Background(), request("workshop"))
	require.NoError(t, err)
	assert.Equal(t, "inkuthazakwenza", result.Translation)
	assert.Equal(t, model.SourceDictionary, result.SourceType)
	assert.Equal(t, model.QualityHigh, result.Quality)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "test-session", result.SessionID)

	// later stages never run
	assert.Zero(t, cache.findCalls)
	assert.Zero(t, prov.calls)
}

func TestResolve_MemoryHitAboveThreshold(t *testing.T) {
	cache := &mockCache{matches: []model.SimilarityMatch{{
		Record:     model.MemoryRecord{ID: "t1", InputText: "hello", OutputText: "sawubona"},
		Similarity: 0.85,
	}}}
	prov := &mockProvider{}
	r := newTestResolver(nil, cache, prov, nil)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "sawubona", result.Translation)
	assert.Equal(t, model.SourceMemory, result.SourceType)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Zero(t, prov.calls)
}

func TestResolve_MemoryThresholdIsStrict(t *testing.T) {
	// exactly at the threshold is a miss
	cache := &mockCache{matches: []model.SimilarityMatch{{
		Record:     model.MemoryRecord{OutputText: "sawubona"},
		Similarity: 0.7,
	}}}
	r := newTestResolver(nil, cache, nil, nil)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.SourceNone, result.SourceType)

	// just above passes
	cache.matches[0].Similarity = 0.71
	result, err = r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.SourceMemory, result.SourceType)
	assert.Equal(t, 0.71, result.Confidence)
}

func TestResolve_UseCacheFalseSkipsMemory(t *testing.T) {
	cache := &mockCache{matches: []model.SimilarityMatch{{
		Record:     model.MemoryRecord{OutputText: "sawubona"},
		Similarity: 0.99,
	}}}
	r := newTestResolver(nil, cache, nil, nil)

	req := request("hello")
	req.UseCache = false
	result, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, cache.findCalls)
	assert.Equal(t, model.SourceNone, result.SourceType)
}

func TestResolve_ProviderHitIsStoredInMemory(t *testing.T) {
	cache := &mockCache{}
	prov := &mockProvider{out: "sawubona", ok: true}
	r := newTestResolver(nil, cache, prov, nil)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "sawubona", result.Translation)
	assert.Equal(t, model.SourceAPI, result.SourceType)
	assert.Equal(t, model.QualityMedium, result.Quality)
	assert.Equal(t, 0.8, result.Confidence)

	require.Len(t, cache.stored, 1)
	assert.Equal(t, "hello", cache.stored[0].input)
	assert.Equal(t, "sawubona", cache.stored[0].output)
	assert.Equal(t, "test-session", cache.stored[0].sessionID)
	assert.Equal(t, "api", cache.stored[0].metadata["source"])
}

func TestResolve_ProviderEchoFallsThrough(t *testing.T) {
	cache := &mockCache{}
	prov := &mockProvider{out: "Hello", ok: true}
	r := newTestResolver(nil, cache, prov, nil)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.SourceNone, result.SourceType)
	assert.Equal(t, "hello", result.Translation)
	assert.Empty(t, cache.stored)
}

func TestResolve_MemoryStoreFailureDoesNotFailResolution(t *testing.T) {
	cache := &mockCache{storeErr: fmt.Errorf("index down")}
	prov := &mockProvider{out: "sawubona", ok: true}
	r := newTestResolver(nil, cache, prov, nil)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.SourceAPI, result.SourceType)
	assert.Equal(t, "sawubona", result.Translation)
}

func TestResolve_Passthrough(t *testing.T) {
	r := newTestResolver(nil, nil, nil, nil)

	result, err := r.Resolve(context.Background(), request("untranslatable phrase"))
	require.NoError(t, err)
	assert.Equal(t, "untranslatable phrase", result.Translation)
	assert.Equal(t, model.SourceNone, result.SourceType)
	assert.Equal(t, model.QualityMedium, result.Quality)
}

func TestResolve_MemoryFailureDemotedToMiss(t *testing.T) {
	cache := &mockCache{findErr: fmt.Errorf("connection refused")}
	prov := &mockProvider{out: "sawubona", ok: true}
	r := newTestResolver(nil, cache, prov, nil)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.SourceAPI, result.SourceType)
}

func TestResolve_DictionaryFailureDemotedToMiss(t *testing.T) {
	terms := &mockTermStore{err: fmt.Errorf("db locked")}
	r := newTestResolver(terms, nil, nil, nil)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, model.SourceNone, result.SourceType)
}

func TestResolve_RequestCount(t *testing.T) {
	r := newTestResolver(nil, nil, nil, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Resolve(ctx, request("hello"))
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), r.RequestCount())

	// rejected input does not count as a completed resolution
	_, err := r.Resolve(ctx, request(""))
	require.Error(t, err)
	assert.Equal(t, int64(3), r.RequestCount())
}

func TestResolve_AuditTrail(t *testing.T) {
	sink := &mockSink{}
	terms := &mockTermStore{value: "inkuthazakwenza", ok: true}
	r := newTestResolver(terms, nil, nil, sink)

	_, err := r.Resolve(context.Background(), request("workshop"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		StageValidating + ":passed",
		StageDictionaryLookup + ":hit",
	}, sink.stages())

	// plus one resolution record with no stage
	last := sink.records[len(sink.records)-1]
	assert.Empty(t, last.Stage)
	assert.Equal(t, "workshop", last.Input)
	assert.Equal(t, "inkuthazakwenza", last.Output)
	assert.Equal(t, string(model.SourceDictionary), last.Source)
}

func TestResolve_AuditFailureDoesNotFailResolution(t *testing.T) {
	sink := &mockSink{err: fmt.Errorf("disk full")}
	r := newTestResolver(nil, nil, nil, sink)

	result, err := r.Resolve(context.Background(), request("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Translation)
}

func TestNewResolver_GeneratesSessionID(t *testing.T) {
	r := NewResolver("", nil, nil, nil, nil, 0, 0)
	assert.Contains(t, r.SessionID, "session_")
	assert.Equal(t, 0.7, r.SimilarityThreshold)
	assert.Equal(t, 3, r.SearchLimit)
}
