package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyIntent(t *testing.T) {
	t.Run("ordinary job description passes", func(t *testing.T) {
		assert.Empty(t, SafetyIntent("We are hiring a backend engineer to build APIs with Python."))
	})

	t.Run("illegal phrase rejects regardless of context", func(t *testing.T) {
		msg := SafetyIntent("Candidates with money laundering experience preferred")
		assert.Equal(t, "Safety Violation: Illegal or harmful content detected.", msg)
	})

	t.Run("illegal phrase check is case-insensitive", func(t *testing.T) {
		msg := SafetyIntent("We want you to Hack Bank systems")
		assert.Equal(t, "Safety Violation: Illegal or harmful content detected.", msg)
	})

	t.Run("risky word with professional context passes", func(t *testing.T) {
		assert.Empty(t, SafetyIntent("Looking for a killer developer to join our team"))
		assert.Empty(t, SafetyIntent("We need a rockstar engineer"))
		assert.Empty(t, SafetyIntent("Seeking a ninja coder with a killer feature mindset"))
	})

	t.Run("risky word without professional context rejects", func(t *testing.T) {
		msg := SafetyIntent("We need a killer to join us")
		assert.Equal(t, "Safety Violation: Ambiguous or harmful use of 'killer'.", msg)
	})

	t.Run("risky word at end of text rejects", func(t *testing.T) {
		msg := SafetyIntent("Our team is looking for a ninja")
		assert.Equal(t, "Safety Violation: Ambiguous or harmful use of 'ninja'.", msg)
	})

	t.Run("word boundary prevents partial matches", func(t *testing.T) {
		assert.Empty(t, SafetyIntent("We hire rockstars and painkillers are irrelevant here, engineer roles only"))
	})

	t.Run("first bad occurrence wins when a safe one precedes it", func(t *testing.T) {
		msg := SafetyIntent("A killer developer is fine but a killer is not")
		assert.Equal(t, "Safety Violation: Ambiguous or harmful use of 'killer'.", msg)
	})

	t.Run("empty input passes", func(t *testing.T) {
		assert.Empty(t, SafetyIntent(""))
	})
}
