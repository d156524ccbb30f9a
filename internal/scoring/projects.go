package scoring

// Projects scoring constants. Same structure as experience scoring but
// without the zero-ratio relevance bonus.
const (
	ProjectsMaxScore    = 15
	projectsBaseScore   = 3
	projectsActionBonus = 2
)

// Projects scores the resume projects section against the JD skill set.
func Projects(projectSkills, projectActions, jdSkills map[string]bool) Result {
	if len(projectSkills) == 0 && len(projectActions) == 0 {
		return Result{
			Score:           0,
			Matched:         []string{},
			Missing:         sortedKeys(jdSkills),
			MatchPercentage: 0,
		}
	}

	actionBonus := 0
	if len(projectActions) > 0 {
		actionBonus = projectsActionBonus
	}

	if len(jdSkills) == 0 {
		return Result{
			Score:           min(projectsBaseScore+actionBonus, ProjectsMaxScore),
			Matched:         []string{},
			Missing:         []string{},
			MatchPercentage: 100,
		}
	}

	matched := intersect(projectSkills, jdSkills)
	missing := subtract(jdSkills, matched)
	ratio := float64(len(matched)) / float64(len(jdSkills))

	usageScore := roundHalfUp(ratio * float64(ProjectsMaxScore-projectsBaseScore-actionBonus))
	score := projectsBaseScore + actionBonus + usageScore

	return Result{
		Score:           min(score, ProjectsMaxScore),
		Matched:         sortedKeys(matched),
		Missing:         sortedKeys(missing),
		MatchPercentage: roundPercentage(ratio),
	}
}
