// Package nlp provides deterministic text normalization for keyword extraction.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Normalizer turns raw text into normalized tokens: lowercase, lemmatized,
// alphabetic, non-stopword. The lemmatizer dictionary and the stopword list
// are fixed at build time, so identical input always yields identical tokens.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// New creates a Normalizer backed by the English lemmatizer dictionary.
func New() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemmatizer dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// Tokens normalizes text into its token sequence. Words are lowercased,
// stripped of surrounding punctuation, lemmatized, and dropped when they are
// stopwords or contain any non-alphabetic character. Output order follows
// input order; consumers treat the result as a set.
func (n *Normalizer) Tokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))

	for _, field := range fields {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if word == "" || !isAlphabetic(word) {
			continue
		}
		lemma := n.lemmatizer.Lemma(word)
		if _, stop := stopwords[lemma]; stop {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		tokens = append(tokens, lemma)
	}

	return tokens
}

// TokenSet normalizes text and returns its tokens as a membership set.
func (n *Normalizer) TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range n.Tokens(text) {
		set[token] = true
	}
	return set
}

// isAlphabetic reports whether every rune in s is a letter. Tokens like
// "react.js" or "c++" keep interior symbols after trimming and are rejected.
func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
