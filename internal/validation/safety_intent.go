package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// illegalPhrases trigger immediate rejection regardless of context.
var illegalPhrases = []string{
	"steal money",
	"hack bank",
	"credit card theft",
	"evade taxes",
	"money laundering",
	"sell drugs",
	"harmful software",
	"malware distribution",
}

// lookaheadWindow is how far past a risky word the context check reads.
const lookaheadWindow = 30

// allowedContext matches a lookahead window that starts with whitespace
// followed by a professional-context noun. "killer developer" and "killer
// feature" resolve as metaphorical modifiers; "hiring a killer" does not.
var allowedContext = regexp.MustCompile(
	`^\s+(developer|coder|programmer|engineer|manager|architect|designer|skill|feature|app|code|software)`)

// riskyWordRule is one entry of the ordered ambiguity rule list. Rules are
// applied in declaration order and occurrences within a rule in text order;
// the first occurrence that fails the context check wins.
type riskyWordRule struct {
	word    string
	pattern *regexp.Regexp
}

var riskyWordRules = buildRiskyWordRules("killer", "ninja", "rockstar", "pirate")

func buildRiskyWordRules(words ...string) []riskyWordRule {
	rules := make([]riskyWordRule, 0, len(words))
	for _, word := range words {
		rules = append(rules, riskyWordRule{
			word:    word,
			pattern: regexp.MustCompile(`\b` + word + `\b`),
		})
	}
	return rules
}

// SafetyIntent screens job description text for explicit illegal intent and
// for risky identity-style wording. Ambiguous phrasing is rejected rather
// than interpreted.
func SafetyIntent(text string) string {
	lower := strings.ToLower(text)

	for _, phrase := range illegalPhrases {
		if strings.Contains(lower, phrase) {
			return "Safety Violation: Illegal or harmful content detected."
		}
	}

	for _, rule := range riskyWordRules {
		for _, loc := range rule.pattern.FindAllStringIndex(lower, -1) {
			end := loc[1] + lookaheadWindow
			if end > len(lower) {
				end = len(lower)
			}
			if allowedContext.MatchString(lower[loc[1]:end]) {
				continue
			}
			return fmt.Sprintf("Safety Violation: Ambiguous or harmful use of '%s'.", rule.word)
		}
	}

	return ""
}
