// Package textnorm prepares raw text for lexical comparison: lowercase,
// punctuation stripped, stop words removed.
package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type Normalizer struct {
	stopwords    map[string]struct{}
	minTokenLen  int
	tokenPattern *regexp.Regexp
}

// NewNormalizer builds a normalizer for the given stop-word languages.
// Tokens shorter than minTokenLen runes are dropped; 0 disables the filter.
func NewNormalizer(languages []string, minTokenLen int) *Normalizer {
	if len(languages) == 0 {
		languages = []string{"english", "indonesian"}
	}
	return &Normalizer{
		stopwords:    stopwordSet(languages),
		minTokenLen:  minTokenLen,
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`),
	}
}

// Tokens lowercases the text, strips punctuation and returns the surviving
// word tokens. Empty input yields nil.
func (n *Normalizer) Tokens(text string) []string {
	raw := n.tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		if n.minTokenLen > 0 && utf8.RuneCountInString(tok) < n.minTokenLen {
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Normalize returns the token stream rejoined with single spaces, or ""
// when nothing survives.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.Tokens(text), " ")
}
