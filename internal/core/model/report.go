package model

import "math"

// Verdict labels shared by both endpoints.
const (
	StatusHigh   = "High (Likely Plagiarism)"
	StatusMedium = "Medium (Needs Further Review)"
	StatusLow    = "Low (Likely Original)"
)

// OracleResult is the semantic oracle's answer for one text pair. Score is
// in [0, 1]; Rationale is always populated, also on failure.
type OracleResult struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// MatchRecord reports one source paragraph matching a document paragraph.
// Scores are percentages rounded to two decimals. Immutable once built.
type MatchRecord struct {
	Source          string   `json:"source"`
	SourceParagraph int      `json:"source_paragraph"`
	Similarity      float64  `json:"similarity"`
	MatchedText     string   `json:"matched_text"`
	OllamaScore     *float64 `json:"ollama_score,omitempty"`
	OllamaRationale string   `json:"ollama_rationale,omitempty"`
}

type ParagraphReport struct {
	Paragraph int           `json:"paragraph"`
	Excerpt   string        `json:"excerpt"`
	Matches   []MatchRecord `json:"matches"`
}

type DocumentReport struct {
	OverallScore       float64           `json:"overall_score"`
	OverallOllamaScore *float64          `json:"overall_ollama_score,omitempty"`
	Status             string            `json:"status"`
	Details            string            `json:"details"`
	TotalParagraphs    int               `json:"total_paragraphs"`
	Results            []ParagraphReport `json:"results"`
	OllamaEnabled      bool              `json:"ollama_enabled"`
}

// PairReport is the whole-document variant's response shape.
type PairReport struct {
	SimilarityScore float64 `json:"similarity_score"`
	Status          string  `json:"status"`
	Details         string  `json:"details"`
}

// Percent converts a [0, 1] score to a percentage rounded to two decimals.
func Percent(score float64) float64 {
	return math.Round(score*10000) / 100
}

// Excerpt truncates text to max runes, appending an ellipsis marker when
// anything was cut.
func Excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
