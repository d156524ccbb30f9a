// Package scoring implements the three category sub-scorers and final score
// aggregation for resume evaluation.
package scoring

import (
	"math"
	"sort"
)

// Result is a single category sub-score. Score is clamped to the category
// maximum; Matched and Missing together always cover the JD skill set.
type Result struct {
	Score           int      `json:"score"`
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	MatchPercentage float64  `json:"match_percentage"`
}

// roundHalfUp rounds to the nearest integer. Ties round away from zero, which
// for the non-negative ratios used here means half-up; this is the documented
// rounding mode for all boundary scores.
func roundHalfUp(v float64) int {
	return int(math.Round(v))
}

// roundPercentage converts a [0,1] ratio to a percentage with 2 decimals.
func roundPercentage(ratio float64) float64 {
	return math.Round(ratio*100*100) / 100
}

// sortedKeys returns the set's members sorted alphabetically. The result is
// never nil so it marshals as an empty JSON array.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// intersect returns the members of a that are also in b.
func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for key := range a {
		if b[key] {
			out[key] = true
		}
	}
	return out
}

// subtract returns the members of a that are not in b.
func subtract(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for key := range a {
		if !b[key] {
			out[key] = true
		}
	}
	return out
}
