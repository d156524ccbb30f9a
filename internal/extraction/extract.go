// Package extraction scans normalized tokens against a taxonomy and returns
// the canonical terms found in a text.
package extraction

import (
	"github.com/jonathan/resume-evaluator/internal/nlp"
	"github.com/jonathan/resume-evaluator/internal/taxonomy"
)

// Extractor matches taxonomy aliases against normalized tokens.
type Extractor struct {
	normalizer *nlp.Normalizer
}

// New creates an Extractor using the given normalizer.
func New(normalizer *nlp.Normalizer) *Extractor {
	return &Extractor{normalizer: normalizer}
}

// Extract returns the set of canonical terms whose alias set intersects the
// normalized tokens of text. A single alias hit is sufficient; there is no
// minimum frequency. Empty text yields an empty set.
func (e *Extractor) Extract(text string, tax taxonomy.Taxonomy) map[string]bool {
	found := make(map[string]bool)
	tokens := e.normalizer.TokenSet(text)
	if len(tokens) == 0 {
		return found
	}

	for canonical, aliases := range tax {
		for _, alias := range aliases {
			if tokens[alias] {
				found[canonical] = true
				break
			}
		}
	}

	return found
}
