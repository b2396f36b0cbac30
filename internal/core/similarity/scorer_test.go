package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veritext/veritext/internal/core/textnorm"
)

func newScorer() *Scorer {
	return NewScorer(textnorm.NewNormalizer([]string{"english", "indonesian"}, 3))
}

func TestScoreIdenticalTexts(t *testing.T) {
	s := newScorer()

	text := "The quick brown fox jumps over the lazy dog"
	assert.InDelta(t, 1.0, s.Score(text, text), 1e-9)
}

func TestScoreEmptyInput(t *testing.T) {
	s := newScorer()

	assert.Equal(t, 0.0, s.Score("some meaningful text here", ""))
	assert.Equal(t, 0.0, s.Score("", ""))
	// Whitespace and pure punctuation normalize to nothing.
	assert.Equal(t, 0.0, s.Score("meaningful words", "... !!! ,,,"))
}

func TestScoreSymmetry(t *testing.T) {
	s := newScorer()

	a := "Plagiarism detection compares documents against sources"
	b := "Document comparison finds plagiarism in candidate texts"
	assert.Equal(t, s.Score(a, b), s.Score(b, a))
}

func TestScoreBounded(t *testing.T) {
	s := newScorer()

	pairs := [][2]string{
		{"completely unrelated words appear", "totally different tokens everywhere"},
		{"partial overlap between sentences", "partial overlap within phrases"},
		{"repeated repeated repeated words", "repeated words"},
		{"short", "short"},
	}
	for _, p := range pairs {
		score := s.Score(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScoreDisjointVocabulary(t *testing.T) {
	s := newScorer()

	score := s.Score("alpha beta gamma delta", "epsilon zeta theta kappa")
	assert.Equal(t, 0.0, score)
}

func TestScorePartialOverlapOrdering(t *testing.T) {
	s := newScorer()

	base := "students submit essays about climate change impacts"
	near := "students submit essays about climate change effects"
	far := "satellites orbit planets while measuring gravity fields"

	assert.Greater(t, s.Score(base, near), s.Score(base, far))
}

func TestScoreNormalizationInsensitive(t *testing.T) {
	s := newScorer()

	score := s.Score(
		"The Quick Brown Fox, Jumps: Over the Lazy Dog!",
		"the quick brown fox jumps over the lazy dog",
	)
	assert.InDelta(t, 1.0, score, 1e-9)
}
