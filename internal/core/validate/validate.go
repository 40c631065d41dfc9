package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

type Result struct {
	IsValid       bool
	SanitizedText string
	Warnings      []string
	Errors        []string
	Metadata      map[string]interface{}
}

type Validator struct {
	MaxLength          int
	MinLength          int
	SupportedLanguages map[string]bool
}

func NewValidator() *Validator {
	return &Validator{
		MaxLength: 5000,
		MinLength: 1,
		SupportedLanguages: map[string]bool{
			"zu": true, "en": true, "af": true, "xh": true, "nso": true,
			"st": true, "ts": true, "ss": true, "ve": true, "tn": true, "nr": true,
		},
	}
}

var (
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	controlRe     = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
	urlRe         = regexp.MustCompile(`https?://|www\.`)
	vowelRe       = regexp.MustCompile(`[aeiouy]`)
	consonantRunRe = regexp.MustCompile(`[b-df-hj-np-tv-z]{5,}`)
	vowelRunRe    = regexp.MustCompile(`[aeiou]{4,}`)

	injectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script.*?>.*?</script>`),
		regexp.MustCompile(`(?i)eval\(.*\)`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)onload\s*=`),
		regexp.MustCompile(`(?i)onerror\s*=`),
	}
)

// Validate runs the input pipeline, short-circuiting on the first failure.
// Heuristic checks only append warnings and never invalidate.
func (v *Validator) Validate(text, targetLang string) Result {
	result := Result{
		IsValid:       true,
		SanitizedText: text,
		Metadata: map[string]interface{}{
			"original_length": len(text),
			"target_lang":     targetLang,
		},
	}

	v.checkNotEmpty(text, &result)
	if result.IsValid {
		v.checkLanguage(targetLang, &result)
	}
	if result.IsValid {
		v.checkLength(text, &result)
	}
	if result.IsValid {
		v.sanitize(&result)
	}
	if result.IsValid {
		v.checkInjection(&result)
	}
	if result.IsValid {
		v.checkSuspiciousPatterns(&result)
	}
	if result.IsValid {
		v.checkGibberish(&result)
	}

	return result
}

func (v *Validator) checkNotEmpty(text string, result *Result) {
	if strings.TrimSpace(text) == "" {
		result.IsValid = false
		result.Errors = append(result.Errors, "Text cannot be empty or whitespace only")
	}
}

func (v *Validator) checkLanguage(targetLang string, result *Result) {
	if !v.SupportedLanguages[targetLang] {
		langs := make([]string, 0, len(v.SupportedLanguages))
		for l := range v.SupportedLanguages {
			langs = append(langs, l)
		}
		sort.Strings(langs)
		result.IsValid = false
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Unsupported language: '%s'. Supported: %s", targetLang, strings.Join(langs, ", ")))
	}
}

func (v *Validator) checkLength(text string, result *Result) {
	length := len(text)
	if length < v.MinLength {
		result.IsValid = false
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Text too short (%d chars). Minimum: %d", length, v.MinLength))
	}

	if length > v.MaxLength {
		result.SanitizedText = text[:v.MaxLength]
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Text truncated from %d to %d characters", length, v.MaxLength))
		result.Metadata["truncated"] = true
		result.Metadata["truncated_from"] = length
	}
}

func (v *Validator) sanitize(result *Result) {
	text := result.SanitizedText

	text = htmlTagRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	text = controlRe.ReplaceAllString(text, "")
	text = strings.ToValidUTF8(text, "")

	if text != result.SanitizedText {
		result.Metadata["was_sanitized"] = true
	}
	result.SanitizedText = text
}

func (v *Validator) checkInjection(result *Result) {
	for _, re := range injectionRes {
		if re.MatchString(result.SanitizedText) {
			result.IsValid = false
			result.Errors = append(result.Errors, "Potentially dangerous content detected")
			break
		}
	}
}

func (v *Validator) checkSuspiciousPatterns(result *Result) {
	text := result.SanitizedText

	if longestRun(text) >= 5 {
		result.Warnings = append(result.Warnings, "Repeated characters detected - may be gibberish")
	}

	if urlRe.MatchString(text) {
		result.Warnings = append(result.Warnings, "Text contains URLs")
	}

	if strings.Count(text, "!") > 5 || strings.Count(text, "?") > 5 {
		result.Warnings = append(result.Warnings, "Excessive punctuation")
	}
}

func (v *Validator) checkGibberish(result *Result) {
	text := strings.ToLower(result.SanitizedText)
	words := strings.Fields(text)

	if len(words) == 0 {
		return
	}

	// Vowel ratio across the first five words.
	sample := words
	if len(sample) > 5 {
		sample = sample[:5]
	}
	vowelCount := 0
	for _, word := range sample {
		if vowelRe.MatchString(word) {
			vowelCount++
		}
	}
	if float64(vowelCount)/float64(len(sample)) < 0.3 {
		result.Warnings = append(result.Warnings, "Text may be gibberish (few vowels detected)")
	}

	if longestRun(text) >= 4 {
		result.Warnings = append(result.Warnings, "Repeated character patterns detected")
	}

	if consonantRunRe.MatchString(text) || vowelRunRe.MatchString(text) {
		result.Warnings = append(result.Warnings, "Unusual letter sequence detected")
	}

	v.checkMixedCasing(result)
}

func (v *Validator) checkMixedCasing(result *Result) {
	text := result.SanitizedText
	if text == strings.ToLower(text) || text == strings.ToUpper(text) || isTitleCased(text) {
		return
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	mixed := 0
	for _, w := range words {
		if len(w) > 2 && w != strings.ToLower(w) && w != strings.ToUpper(w) {
			mixed++
		}
	}
	if float64(mixed)/float64(len(words)) > 0.5 {
		result.Warnings = append(result.Warnings, "Unusual capitalization patterns")
	}
}

// longestRun returns the length of the longest run of one repeated rune.
// RE2 has no backreferences, so this replaces a (.)\1{n,} pattern.
func longestRun(s string) int {
	var prev rune
	run, longest := 0, 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func isTitleCased(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		if unicode.IsLetter(runes[0]) && !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if unicode.IsLetter(r) && unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}
