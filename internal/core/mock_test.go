package core

import (
	"context"

	"github.com/veritext/veritext/internal/llm"
)

// stubScorer returns canned scores keyed by the pair's prefixes, so tests
// can pin exact similarity values without reverse-engineering TF-IDF math.
type stubScorer struct {
	scores       map[[2]string]float64
	defaultScore float64
}

func key(a, b string) [2]string {
	const n = 20
	ka, kb := a, b
	if len(ka) > n {
		ka = ka[:n]
	}
	if len(kb) > n {
		kb = kb[:n]
	}
	return [2]string{ka, kb}
}

func (s *stubScorer) Score(a, b string) float64 {
	if v, ok := s.scores[key(a, b)]; ok {
		return v
	}
	return s.defaultScore
}

type mockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}

type stubSource struct {
	client llm.Client
}

func (s *stubSource) Client() llm.Client { return s.client }
