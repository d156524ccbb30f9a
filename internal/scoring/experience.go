package scoring

// Experience scoring constants. The base score rewards having an experience
// section at all; the action bonus rewards demonstrated action verbs; the
// relevance bonus rewards action verbs even when no JD skill overlaps.
const (
	ExperienceMaxScore       = 25
	experienceBaseScore      = 5
	experienceActionBonus    = 3
	experienceRelevanceBonus = 2
)

// Experience scores the resume experience section against the JD skill set.
func Experience(experienceSkills, experienceActions, jdSkills map[string]bool) Result {
	if len(experienceSkills) == 0 && len(experienceActions) == 0 {
		return Result{
			Score:           0,
			Matched:         []string{},
			Missing:         sortedKeys(jdSkills),
			MatchPercentage: 0,
		}
	}

	actionBonus := 0
	if len(experienceActions) > 0 {
		actionBonus = experienceActionBonus
	}

	if len(jdSkills) == 0 {
		return Result{
			Score:           min(experienceBaseScore+actionBonus, ExperienceMaxScore),
			Matched:         []string{},
			Missing:         []string{},
			MatchPercentage: 100,
		}
	}

	matched := intersect(experienceSkills, jdSkills)
	missing := subtract(jdSkills, matched)
	ratio := float64(len(matched)) / float64(len(jdSkills))

	relevanceBonus := 0
	if ratio == 0 && len(experienceActions) > 0 {
		relevanceBonus = experienceRelevanceBonus
	}

	usageScore := roundHalfUp(ratio * float64(ExperienceMaxScore-experienceBaseScore-actionBonus))
	score := experienceBaseScore + actionBonus + relevanceBonus + usageScore

	return Result{
		Score:           min(score, ExperienceMaxScore),
		Matched:         sortedKeys(matched),
		Missing:         sortedKeys(missing),
		MatchPercentage: roundPercentage(ratio),
	}
}
