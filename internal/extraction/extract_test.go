package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/nlp"
	"github.com/jonathan/resume-evaluator/internal/taxonomy"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	normalizer, err := nlp.New()
	require.NoError(t, err)
	return New(normalizer)
}

func TestExtractor_Extract(t *testing.T) {
	e := newExtractor(t)
	skills := taxonomy.TechSkills()

	t.Run("matches canonical term directly", func(t *testing.T) {
		found := e.Extract("experienced python developer", skills)
		assert.True(t, found["python"])
		assert.Len(t, found, 1)
	})

	t.Run("alias resolves to canonical term", func(t *testing.T) {
		found := e.Extract("frontend work in reactjs", skills)
		assert.True(t, found["react"])
		assert.False(t, found["reactjs"])
	})

	t.Run("node resolves to nodejs", func(t *testing.T) {
		found := e.Extract("backend services on node", skills)
		assert.True(t, found["nodejs"])
	})

	t.Run("no substring matching", func(t *testing.T) {
		found := e.Extract("worked at gitman industries", skills)
		assert.False(t, found["git"])
	})

	t.Run("empty text yields empty set", func(t *testing.T) {
		assert.Empty(t, e.Extract("", skills))
	})

	t.Run("action verbs lemmatize before matching", func(t *testing.T) {
		found := e.Extract("designed and implemented pipelines", taxonomy.ActionVerbs())
		assert.True(t, found["design"])
		assert.True(t, found["implement"])
	})
}
