package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLowercasesAndStripsPunctuation(t *testing.T) {
	n := NewNormalizer(nil, 0)

	out := n.Normalize("Hello, World! Programming... (really)")
	assert.Equal(t, "hello world programming really", out)
}

func TestNormalizeRemovesStopwords(t *testing.T) {
	n := NewNormalizer([]string{"english"}, 0)

	out := n.Normalize("The quick brown fox jumps over the lazy dog")
	assert.Equal(t, "quick brown fox jumps lazy dog", out)
}

func TestNormalizeRemovesIndonesianStopwords(t *testing.T) {
	n := NewNormalizer([]string{"indonesian"}, 0)

	out := n.Normalize("teks ini adalah contoh dokumen yang dibandingkan")
	assert.Equal(t, "teks contoh dokumen dibandingkan", out)
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := NewNormalizer(nil, 0)

	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   \n\t  "))
	assert.Equal(t, "", n.Normalize("!!! ... ???"))
	assert.Nil(t, n.Tokens(""))
}

func TestShortTokenFilter(t *testing.T) {
	n := NewNormalizer([]string{"english"}, 3)

	out := n.Normalize("ab cd programming xy language")
	assert.Equal(t, "programming language", out)
}

func TestTokensKeepsNumbers(t *testing.T) {
	n := NewNormalizer([]string{"english"}, 0)

	assert.Equal(t, []string{"chapter", "42", "covers", "recursion"},
		n.Tokens("Chapter 42 covers recursion."))
}
