package scoring

// Match level tiers derived from the total score.
const (
	MatchLevelLow    = "Low"
	MatchLevelMedium = "Medium"
	MatchLevelHigh   = "High"
)

// Final is the aggregate of the three category scores.
type Final struct {
	Score             int
	MatchLevel        string
	MissingEverywhere []string
}

// Aggregate sums the three sub-scores capped at 100, derives the match tier,
// and computes the JD skills absent from the skills, experience, and projects
// sections simultaneously. Sub-score bounds are the scorers' responsibility;
// no re-validation happens here.
func Aggregate(skills, experience, projects Result, jdSkills, resumeSkills, experienceSkills, projectSkills map[string]bool) Final {
	total := skills.Score + experience.Score + projects.Score
	if total > 100 {
		total = 100
	}

	missingEverywhere := make(map[string]bool)
	for skill := range jdSkills {
		if !resumeSkills[skill] && !experienceSkills[skill] && !projectSkills[skill] {
			missingEverywhere[skill] = true
		}
	}

	level := MatchLevelLow
	switch {
	case total >= 80:
		level = MatchLevelHigh
	case total >= 50:
		level = MatchLevelMedium
	}

	return Final{
		Score:             total,
		MatchLevel:        level,
		MissingEverywhere: sortedKeys(missingEverywhere),
	}
}
