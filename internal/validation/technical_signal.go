package validation

import (
	"strings"

	"github.com/jonathan/resume-evaluator/internal/taxonomy"
)

// generalTechnicalTerms indicate a technical role even when no specific skill
// from the taxonomy is named.
var generalTechnicalTerms = []string{
	"software", "developer", "engineer", "devops", "architect",
	"frontend", "backend", "fullstack", "mobile", "web",
	"app", "application", "system", "database", "cloud",
	"api", "server", "code", "programming", "coding",
	"technical", "technology", "data", "algorithm",
	"security", "network", "framework", "library", "tool",
}

// TechnicalSignal checks that job description text carries some technical
// signal: any skill alias from the taxonomy or any general technical term.
// Unlike the extractors this check is substring-based, not token-exact.
func TechnicalSignal(text string, skills taxonomy.Taxonomy) string {
	lower := strings.ToLower(text)

	for _, aliases := range skills {
		for _, alias := range aliases {
			if strings.Contains(lower, alias) {
				return ""
			}
		}
	}

	for _, term := range generalTechnicalTerms {
		if strings.Contains(lower, term) {
			return ""
		}
	}

	return "Invalid Job Description. No technical keywords or relevant terms found."
}
