package scoring

// SkillsMaxScore is the weight of the skills section in the final score.
const SkillsMaxScore = 60

// Skills scores the resume skills section against the JD skill set. An empty
// JD skill set awards the full score; an empty resume skill set scores zero
// with every JD skill missing.
func Skills(resumeSkills, jdSkills map[string]bool) Result {
	if len(jdSkills) == 0 {
		return Result{
			Score:           SkillsMaxScore,
			Matched:         []string{},
			Missing:         []string{},
			MatchPercentage: 100,
		}
	}

	if len(resumeSkills) == 0 {
		return Result{
			Score:           0,
			Matched:         []string{},
			Missing:         sortedKeys(jdSkills),
			MatchPercentage: 0,
		}
	}

	matched := intersect(resumeSkills, jdSkills)
	missing := subtract(jdSkills, resumeSkills)
	ratio := float64(len(matched)) / float64(len(jdSkills))

	return Result{
		Score:           roundHalfUp(ratio * SkillsMaxScore),
		Matched:         sortedKeys(matched),
		Missing:         sortedKeys(missing),
		MatchPercentage: roundPercentage(ratio),
	}
}
