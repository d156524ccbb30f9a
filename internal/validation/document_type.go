// Package validation implements the pre-scoring content gates. Each validator
// returns a human-readable violation message, or an empty string when the
// input passes; validators never panic or error for well-formed input.
package validation

import "strings"

// minResumeLength is the minimum trimmed length for a plausible resume.
const minResumeLength = 50

// offerLetterPhrases signal offer letters or contracts rather than resumes.
var offerLetterPhrases = []string{
	"we are pleased to offer",
	"date of joining",
	"salary breakdown",
	"acceptance of offer",
	"employment contract",
	"probation period",
}

// DocumentType checks that resume text plausibly is a resume. It rejects
// offer-letter or contract wording first, then content too short to evaluate.
func DocumentType(text string) string {
	lower := strings.ToLower(text)

	for _, phrase := range offerLetterPhrases {
		if strings.Contains(lower, phrase) {
			return "Invalid Document Type. Looks like an offer letter or contract."
		}
	}

	if len(strings.TrimSpace(text)) < minResumeLength {
		return "Invalid Document. Content too short to be a resume."
	}

	return ""
}
