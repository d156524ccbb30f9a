// Package taxonomy defines the fixed alias tables used for skill and
// action-verb extraction.
package taxonomy

import (
	"fmt"
	"strings"
)

// Taxonomy maps a canonical term to the ordered surface aliases that resolve
// to it. Aliases match as exact tokens, never as substrings.
type Taxonomy map[string][]string

// techSkills and actionVerbs are constructed once and shared by every
// evaluation. They are read-only; callers must never mutate them.
var techSkills = Taxonomy{
	"react":   {"react", "reactjs", "react.js"},
	"nodejs":  {"node", "nodejs"},
	"python":  {"python"},
	"java":    {"java"},
	"sql":     {"sql"},
	"docker":  {"docker"},
	"aws":     {"aws"},
	"fastapi": {"fastapi"},
	"git":     {"git"},
}

var actionVerbs = Taxonomy{
	"develop":     {"develop"},
	"execute":     {"execute"},
	"optimize":    {"optimize"},
	"collaborate": {"collaborate"},
	"enhance":     {"enhance"},
	"build":       {"build"},
	"implement":   {"implement"},
	"design":      {"design"},
	"integrate":   {"integrate"},
}

// TechSkills returns the shared technical-skill taxonomy.
func TechSkills() Taxonomy {
	return techSkills
}

// ActionVerbs returns the shared action-verb taxonomy.
func ActionVerbs() Taxonomy {
	return actionVerbs
}

// Validate checks the taxonomy for configuration errors: blank canonical
// terms, canonical terms with no aliases, and blank aliases. A malformed
// taxonomy must fail at process start, never per request.
func (t Taxonomy) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("taxonomy is empty")
	}
	for canonical, aliases := range t {
		if strings.TrimSpace(canonical) == "" {
			return fmt.Errorf("taxonomy contains a blank canonical term")
		}
		if len(aliases) == 0 {
			return fmt.Errorf("canonical term %q has no aliases", canonical)
		}
		for _, alias := range aliases {
			if strings.TrimSpace(alias) == "" {
				return fmt.Errorf("canonical term %q has a blank alias", canonical)
			}
		}
	}
	return nil
}
