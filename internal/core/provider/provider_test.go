package provider

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	response    string
	err         error
	lastPrompt  string
	delay       time.Duration
	generations int
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.generations++
	f.lastPrompt = prompt
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestTranslate_JSONResponse(t *testing.T) {
	llm := &fakeLLM{response: `{"translation": "sawubona"}`}
	a := NewAdapter(llm, 0, 0, "")

	got, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.True(t, ok)
	assert.Equal(t, "sawubona", got)
	assert.Contains(t, llm.lastPrompt, "hello")
	assert.Contains(t, llm.lastPrompt, `"zu"`)
}

func TestTranslate_JSONWrappedInMarkdown(t *testing.T) {
	llm := &fakeLLM{response: "```json\n{\"translation\": \"sawubona\"}\n```"}
	a := NewAdapter(llm, 0, 0, "")

	got, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.True(t, ok)
	assert.Equal(t, "sawubona", got)
}

func TestTranslate_PlainTextFallback(t *testing.T) {
	llm := &fakeLLM{response: "  sawubona  "}
	a := NewAdapter(llm, 0, 0, "")

	got, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.True(t, ok)
	assert.Equal(t, "sawubona", got)
}

func TestTranslate_ErrorIsMiss(t *testing.T) {
	llm := &fakeLLM{err: fmt.Errorf("connection refused")}
	a := NewAdapter(llm, 0, 0, "")

	got, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestTranslate_EmptyResponseIsMiss(t *testing.T) {
	llm := &fakeLLM{response: "   "}
	a := NewAdapter(llm, 0, 0, "")

	_, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.False(t, ok)
}

func TestTranslate_NilClientIsMiss(t *testing.T) {
	a := NewAdapter(nil, 0, 0, "")

	_, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.False(t, ok)
}

func TestTranslate_TruncatesLongInput(t *testing.T) {
	llm := &fakeLLM{response: "sawubona"}
	a := NewAdapter(llm, 0, 100, "")

	long := strings.Repeat("a", 500)
	_, ok := a.Translate(context.Background(), long, "en", "zu")
	assert.True(t, ok)
	assert.NotContains(t, llm.lastPrompt, strings.Repeat("a", 101))
	assert.Contains(t, llm.lastPrompt, strings.Repeat("a", 100))
}

func TestTranslate_TimeoutIsMiss(t *testing.T) {
	llm := &fakeLLM{response: "sawubona", delay: 200 * time.Millisecond}
	a := NewAdapter(llm, 20*time.Millisecond, 0, "")

	_, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.False(t, ok)
}

func TestTranslate_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	llm := &fakeLLM{err: fmt.Errorf("down")}
	a := NewAdapter(llm, 0, 0, "")

	for i := 0; i < 3; i++ {
		_, ok := a.Translate(context.Background(), "hello", "en", "zu")
		assert.False(t, ok)
	}
	before := llm.generations

	// breaker is open now: calls short-circuit without reaching the client
	_, ok := a.Translate(context.Background(), "hello", "en", "zu")
	assert.False(t, ok)
	assert.Equal(t, before, llm.generations)
}

func TestParseTranslation(t *testing.T) {
	cases := map[string]string{
		`{"translation": "yebo"}`:              "yebo",
		`Here you go: {"translation": "yebo"}`: "yebo",
		`yebo`:                                 "yebo",
		`{"translation": ""}`:                  "",
		``:                                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, parseTranslation(in), "input %q", in)
	}
}

func TestNewAdapter_Defaults(t *testing.T) {
	a := NewAdapter(nil, 0, 0, "")
	require.NotNil(t, a)
	assert.Equal(t, 10*time.Second, a.Timeout)
	assert.Equal(t, 1000, a.MaxInputChars)
	assert.NotEmpty(t, a.Prompt)
}
