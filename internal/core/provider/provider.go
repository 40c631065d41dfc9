// Package provider adapts an external LLM into the best-effort translation
// fallback stage. Every failure mode is reported as a miss, never an error.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"

	"github.com/agenthands/ulimi/internal/llm"
)

const defaultPrompt = `Translate the following text from %s into the language with ISO 639-1 code "%s".
Respond with ONLY a JSON object of the form {"translation": "..."} and no other text.

Text: %s`

// Adapter bounds input length, applies a per-call timeout, self-throttles
// every 5th call, and trips a circuit breaker when the provider flaps.
type Adapter struct {
	LLM           llm.LLMClient
	Timeout       time.Duration
	MaxInputChars int
	Prompt        string

	breaker   *gobreaker.CircuitBreaker
	callCount atomic.Int64
}

func NewAdapter(client llm.LLMClient, timeout time.Duration, maxInputChars int, prompt string) *Adapter {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if maxInputChars == 0 {
		maxInputChars = 1000
	}
	if prompt == "" {
		prompt = defaultPrompt
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "translation-provider",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &Adapter{
		LLM:           client,
		Timeout:       timeout,
		MaxInputChars: maxInputChars,
		Prompt:        prompt,
		breaker:       breaker,
	}
}

// Translate calls the provider and returns (text, true) on a genuine result
// or ("", false) on any failure, timeout, or open breaker.
func (a *Adapter) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, bool) {
	if a.LLM == nil {
		return "", false
	}

	count := a.callCount.Add(1)
	if count%5 == 0 {
		time.Sleep(time.Second)
	}

	if len(text) > a.MaxInputChars {
		text = text[:a.MaxInputChars]
	}

	prompt := fmt.Sprintf(a.Prompt, langName(sourceLang), targetLang, text)

	result, err := a.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, a.Timeout)
		defer cancel()
		return a.LLM.Generate(callCtx, prompt)
	})
	if err != nil {
		log.Printf("Warning: provider call failed: %v", err)
		return "", false
	}

	response, _ := result.(string)
	translation := parseTranslation(response)
	if translation == "" {
		return "", false
	}
	return translation, true
}

type translationPayload struct {
	Translation string `json:"translation"`
}

// parseTranslation extracts the translation from the provider response.
// Models wrap JSON in markdown or prose, so scan for the outermost braces;
// a response with no JSON object at all is taken as plain text.
func parseTranslation(response string) string {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")

	if start != -1 && end > start {
		var payload translationPayload
		if err := json.Unmarshal([]byte(response[start:end+1]), &payload); err == nil {
			return strings.TrimSpace(payload.Translation)
		}
	}

	return strings.TrimSpace(response)
}

func langName(code string) string {
	if code == "" || code == "en" {
		return "English"
	}
	return fmt.Sprintf("the language with ISO 639-1 code %q", code)
}
