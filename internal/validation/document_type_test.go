package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentType(t *testing.T) {
	t.Run("plausible resume passes", func(t *testing.T) {
		text := "skills\npython, docker\nexperience\nbuilt backend services for three years"
		assert.Empty(t, DocumentType(text))
	})

	t.Run("offer letter phrase rejects", func(t *testing.T) {
		text := "We are pleased to offer you the position of software engineer. " +
			"Your date of joining is next month."
		msg := DocumentType(text)
		assert.Equal(t, "Invalid Document Type. Looks like an offer letter or contract.", msg)
	})

	t.Run("offer letter check is case-insensitive", func(t *testing.T) {
		text := strings.Repeat("x ", 40) + "EMPLOYMENT CONTRACT"
		assert.Equal(t, "Invalid Document Type. Looks like an offer letter or contract.", DocumentType(text))
	})

	t.Run("short content rejects", func(t *testing.T) {
		msg := DocumentType("skills\npython")
		assert.Equal(t, "Invalid Document. Content too short to be a resume.", msg)
	})

	t.Run("offer letter wording wins over length", func(t *testing.T) {
		assert.Equal(t,
			"Invalid Document Type. Looks like an offer letter or contract.",
			DocumentType("salary breakdown"))
	})

	t.Run("whitespace padding does not satisfy the minimum", func(t *testing.T) {
		text := "python" + strings.Repeat(" ", 100)
		assert.Equal(t, "Invalid Document. Content too short to be a resume.", DocumentType(text))
	})
}
