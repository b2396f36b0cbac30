// Package segment splits raw document text into paragraph units, the
// granularity at which similarity is scored.
package segment

import (
	"regexp"
	"strings"
	"unicode"
)

var blankLine = regexp.MustCompile(`\n[ \t]*\n+`)

// Abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]struct{}{
	// English
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "etc": {}, "vs": {}, "fig": {}, "no": {}, "dept": {},
	"inc": {}, "ltd": {}, "co": {}, "approx": {}, "est": {},
	// Indonesian
	"yth": {}, "bpk": {}, "sdr": {}, "dsb": {}, "dst": {}, "dll": {},
	"tgl": {}, "hal": {}, "jl": {}, "tn": {}, "ny": {},
}

type Segmenter struct{}

func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Split breaks text into paragraphs. Blank lines are the primary boundary;
// when the text has none, single line breaks are used instead. Candidates
// with fewer than minSentences complete sentences are merged into the
// preceding paragraph so stray fragments do not become units of their own.
func (s *Segmenter) Split(text string, minSentences int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	parts := blankLine.Split(text, -1)
	if len(parts) == 1 {
		parts = strings.Split(text, "\n")
	}

	var candidates []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			candidates = append(candidates, part)
		}
	}

	var paragraphs []string
	var buffer string
	for _, cand := range candidates {
		if s.CountSentences(cand) < minSentences && buffer != "" {
			buffer += " " + cand
			continue
		}
		if buffer != "" {
			paragraphs = append(paragraphs, buffer)
		}
		buffer = cand
	}
	if buffer != "" {
		paragraphs = append(paragraphs, buffer)
	}

	return paragraphs
}

// CountSentences counts terminated sentences. Periods after known
// abbreviations or single-letter initials do not terminate; a trailing
// fragment without end punctuation contributes nothing.
func (s *Segmenter) CountSentences(text string) int {
	runes := []rune(text)
	count := 0
	wordStart := -1

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if wordStart == -1 {
				wordStart = i
			}
			continue
		}

		if r == '.' || r == '!' || r == '?' {
			terminator := true
			if r == '.' && wordStart != -1 {
				word := strings.ToLower(string(runes[wordStart:i]))
				if _, abbr := abbreviations[word]; abbr || len(word) == 1 {
					terminator = false
				}
			}
			if terminator {
				count++
				// Swallow the rest of a "..." or "?!" run.
				for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
					i++
				}
			}
		}
		wordStart = -1
	}

	return count
}
