package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := New()
	require.NoError(t, err)
	return n
}

func TestNormalizer_Tokens(t *testing.T) {
	n := newNormalizer(t)

	t.Run("lowercases and lemmatizes", func(t *testing.T) {
		tokens := n.Tokens("Built APIs using Python")
		assert.Contains(t, tokens, "build")
		assert.Contains(t, tokens, "python")
	})

	t.Run("strips surrounding punctuation", func(t *testing.T) {
		tokens := n.Tokens("python, docker. (git)")
		assert.Contains(t, tokens, "python")
		assert.Contains(t, tokens, "docker")
		assert.Contains(t, tokens, "git")
	})

	t.Run("drops tokens with interior symbols", func(t *testing.T) {
		tokens := n.Tokens("react.js python3")
		assert.Empty(t, tokens)
	})

	t.Run("trailing symbols trim to the letter prefix", func(t *testing.T) {
		tokens := n.Tokens("c++")
		assert.Equal(t, []string{"c"}, tokens)
	})

	t.Run("drops stopwords", func(t *testing.T) {
		tokens := n.Tokens("the quick fox and a dog")
		assert.NotContains(t, tokens, "the")
		assert.NotContains(t, tokens, "and")
		assert.NotContains(t, tokens, "a")
		assert.Contains(t, tokens, "fox")
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		assert.Empty(t, n.Tokens(""))
		assert.Empty(t, n.Tokens("   \n\t  "))
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		text := "Developed and optimized backend services with Python, Docker and SQL."
		first := n.Tokens(text)
		second := n.Tokens(text)
		assert.Equal(t, first, second)
	})
}

func TestNormalizer_TokenSet(t *testing.T) {
	n := newNormalizer(t)

	set := n.TokenSet("python python docker")
	assert.True(t, set["python"])
	assert.True(t, set["docker"])
	assert.Len(t, set, 2)
}
