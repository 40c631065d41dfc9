package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_EmptyInput(t *testing.T) {
	v := NewValidator()

	for _, text := range []string{"", "   ", "\t\n"} {
		result := v.Validate(text, "zu")
		assert.False(t, result.IsValid)
		assert.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0], "empty")
	}
}

func TestValidate_UnsupportedLanguage(t *testing.T) {
	v := NewValidator()

	result := v.Validate("hello", "fr")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "Unsupported language: 'fr'")
	// Error lists the supported codes
	assert.Contains(t, result.Errors[0], "zu")
	assert.Contains(t, result.Errors[0], "xh")
}

func TestValidate_SupportedLanguages(t *testing.T) {
	v := NewValidator()

	for _, lang := range []string{"zu", "en", "af", "xh", "nso", "st", "ts", "ss", "ve", "tn", "nr"} {
		result := v.Validate("hello world", lang)
		assert.True(t, result.IsValid, "language %s should be supported", lang)
	}
}

func TestValidate_TruncatesLongText(t *testing.T) {
	v := NewValidator()

	long := strings.Repeat("word ", 2000) // 10000 chars
	result := v.Validate(long, "zu")

	assert.True(t, result.IsValid)
	assert.LessOrEqual(t, len(result.SanitizedText), v.MaxLength)
	assert.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "truncated")
	assert.Equal(t, true, result.Metadata["truncated"])
}

func TestValidate_Sanitizes(t *testing.T) {
	v := NewValidator()

	result := v.Validate("hello   <b>world</b>\x01 there", "zu")
	assert.True(t, result.IsValid)
	assert.Equal(t, "hello world there", result.SanitizedText)
	assert.Equal(t, true, result.Metadata["was_sanitized"])
}

func TestValidate_Injection(t *testing.T) {
	v := NewValidator()

	cases := []string{
		"<script>alert(1)</script>",
		"run eval(document.cookie) now",
		"click javascript:void(0)",
		"img onerror= hack",
	}
	for _, text := range cases {
		result := v.Validate(text, "zu")
		assert.False(t, result.IsValid, "input %q should be rejected", text)
		assert.Contains(t, result.Errors[0], "dangerous content")
	}
}

func TestValidate_InjectionTerminatesValidation(t *testing.T) {
	v := NewValidator()

	// Dangerous content with heuristics that would otherwise warn. The
	// injection check terminates the whole pipeline.
	result := v.Validate("eval(xxxxxxxx)!!!!!!", "zu")
	assert.False(t, result.IsValid)
	assert.Empty(t, result.Warnings)
}

func TestValidate_HeuristicsWarnButPass(t *testing.T) {
	v := NewValidator()

	cases := map[string]string{
		"aaaaaaa everywhere":          "Repeated characters",
		"see https://example.com now": "URLs",
		"what!!!!!! why??????":        "punctuation",
		"bcdfg hjklm npqrs tvwxz brr": "gibberish",
		"strengths brrrrn":            "letter sequence",
	}

	for text, fragment := range cases {
		result := v.Validate(text, "zu")
		assert.True(t, result.IsValid, "input %q must remain valid", text)

		found := false
		for _, w := range result.Warnings {
			if strings.Contains(w, fragment) {
				found = true
			}
		}
		assert.True(t, found, "input %q should warn about %q, got %v", text, fragment, result.Warnings)
	}
}

func TestValidate_MixedCasing(t *testing.T) {
	v := NewValidator()

	result := v.Validate("tHe qUick bRown fOx jUmps", "zu")
	assert.True(t, result.IsValid)
	assert.Contains(t, result.Warnings, "Unusual capitalization patterns")

	// Normal casing does not warn
	result = v.Validate("The quick brown fox jumps over", "zu")
	for _, w := range result.Warnings {
		assert.NotContains(t, w, "capitalization")
	}
}

func TestValidate_CleanInputHasNoWarnings(t *testing.T) {
	v := NewValidator()

	result := v.Validate("registration and tea", "zu")
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "registration and tea", result.SanitizedText)
}

func TestLongestRun(t *testing.T) {
	assert.Equal(t, 0, longestRun(""))
	assert.Equal(t, 1, longestRun("abc"))
	assert.Equal(t, 3, longestRun("abccc"))
	assert.Equal(t, 5, longestRun("aaaaab"))
}
