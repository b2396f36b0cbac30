// Package similarity computes a bounded lexical similarity score for a
// pair of texts using TF-IDF weighted cosine similarity. The vector space
// is local to each pair: the corpus is exactly the two texts being
// compared, never a shared index.
package similarity

import (
	"math"
	"sort"

	"github.com/veritext/veritext/internal/core/textnorm"
)

type Scorer struct {
	norm *textnorm.Normalizer
}

func NewScorer(norm *textnorm.Normalizer) *Scorer {
	return &Scorer{norm: norm}
}

// Score returns the cosine similarity of the TF-IDF vectors of a and b,
// clamped to [0, 1]. It is total: degenerate input maps to 0, never an
// error.
func (s *Scorer) Score(a, b string) float64 {
	tokensA := s.norm.Tokens(a)
	tokensB := s.norm.Tokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	// Document frequency over the 2-document corpus.
	df := make(map[string]int)
	for _, tokens := range [][]string{tokensA, tokensB} {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	// Smoothed IDF, N = 2.
	idf := make([]float64, len(terms))
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
		idf[i] = math.Log(3.0/(1.0+float64(df[term]))) + 1.0
	}

	vecA := vectorize(tokensA, index, idf)
	vecB := vectorize(tokensB, index, idf)

	var dot float64
	for i := range vecA {
		dot += vecA[i] * vecB[i]
	}

	if math.IsNaN(dot) || dot < 0 {
		return 0
	}
	return math.Min(dot, 1)
}

// vectorize builds the L2-normalized TF-IDF vector for one side of the pair.
func vectorize(tokens []string, index map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(idf))
	for _, tok := range tokens {
		vec[index[tok]]++
	}

	total := float64(len(tokens))
	var norm float64
	for i := range vec {
		vec[i] = vec[i] / total * idf[i]
		norm += vec[i] * vec[i]
	}

	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
