package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjects(t *testing.T) {
	t.Run("empty section scores zero with all JD skills missing", func(t *testing.T) {
		result := Projects(set(), set(), set("python"))
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, []string{"python"}, result.Missing)
	})

	t.Run("empty JD set awards base and action bonus only", func(t *testing.T) {
		result := Projects(set("python"), set("build"), set())
		assert.Equal(t, 5, result.Score)
		assert.Equal(t, 100.0, result.MatchPercentage)
	})

	t.Run("full overlap with actions reaches the maximum", func(t *testing.T) {
		// 3 base + 2 action + round(1.0 * 10) = 15.
		result := Projects(set("python"), set("build"), set("python"))
		assert.Equal(t, ProjectsMaxScore, result.Score)
	})

	t.Run("no relevance bonus on zero overlap", func(t *testing.T) {
		// 3 base + 2 action + 0 usage = 5, unlike experience scoring.
		result := Projects(set(), set("build"), set("python"))
		assert.Equal(t, 5, result.Score)
	})

	t.Run("partial overlap scales the usage score", func(t *testing.T) {
		// 3 base + 2 action + round(0.5 * 10) = 10.
		result := Projects(set("python"), set("build"), set("python", "java"))
		assert.Equal(t, 10, result.Score)
	})
}
