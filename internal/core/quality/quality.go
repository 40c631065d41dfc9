// Package quality scores resolved translations. Assess is pure and never
// mutates stored records.
package quality

import (
	"fmt"
	"strings"

	"github.com/agenthands/ulimi/internal/core/model"
)

var placeholders = []string{"[UNK]", "[MASK]", "???", "<...>", "##"}

// Assess applies the scoring rules in order: empty output, untranslated API
// echo, length ratio, dictionary override, placeholder markers.
func Assess(sourceText, candidateText string, sourceType model.SourceType) model.QualityAssessment {
	if candidateText == "" {
		return model.QualityAssessment{
			Quality:    model.QualityError,
			Warnings:   []string{"No translation produced"},
			SourceType: sourceType,
		}
	}

	assessment := model.QualityAssessment{
		Quality:    model.QualityMedium,
		Score:      0.8,
		SourceType: sourceType,
	}

	if sourceType == model.SourceAPI && strings.EqualFold(candidateText, sourceText) {
		assessment.Quality = model.QualityLow
		assessment.Score = 0.2
		assessment.Warnings = append(assessment.Warnings, "API returned same text - possibly gibberish input")
		return assessment
	}

	if len(sourceText) > 0 {
		ratio := float64(len(candidateText)) / float64(len(sourceText))
		if ratio < 0.3 {
			assessment.Quality = model.QualityLow
			assessment.Score = 0.3
			assessment.Warnings = append(assessment.Warnings, fmt.Sprintf("Translation too short (ratio: %.2f)", ratio))
		} else if ratio > 3.0 {
			assessment.Quality = model.QualityLow
			assessment.Score = 0.4
			assessment.Warnings = append(assessment.Warnings, fmt.Sprintf("Translation too long (ratio: %.2f)", ratio))
		}
	}

	if sourceType == model.SourceDictionary {
		assessment.Quality = model.QualityHigh
		assessment.Score = 0.95
	}

	for _, ph := range placeholders {
		if strings.Contains(candidateText, ph) {
			assessment.Quality = model.QualityLow
			assessment.Score = 0.5
			assessment.Warnings = append(assessment.Warnings, "Contains untranslated markers")
			break
		}
	}

	return assessment
}
