package evaluator

import "fmt"

// Suggestions builds the ordered improvement hints for a final score and the
// skills missing from every section. The opener depends on the score band;
// one line follows per missing skill, in sorted order.
func Suggestions(finalScore int, missingSkills []string) []string {
	suggestions := make([]string, 0, len(missingSkills)+1)

	switch {
	case finalScore < 50:
		suggestions = append(suggestions, "Strengthen alignment with the job description by focusing on core required skills.")
	case finalScore < 70:
		suggestions = append(suggestions, "Good profile overall. Adding the missing skills can improve your match.")
	default:
		suggestions = append(suggestions, "Strong match for the role. Minor improvements can further strengthen your profile.")
	}

	for _, skill := range missingSkills {
		suggestions = append(suggestions, fmt.Sprintf("Consider adding experience or projects demonstrating %s.", skill))
	}

	return suggestions
}
