// Package evaluator wires the resume evaluation pipeline end to end:
// validators, section splitting, extraction, scoring, and aggregation.
package evaluator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-evaluator/internal/extraction"
	"github.com/jonathan/resume-evaluator/internal/nlp"
	"github.com/jonathan/resume-evaluator/internal/scoring"
	"github.com/jonathan/resume-evaluator/internal/sections"
	"github.com/jonathan/resume-evaluator/internal/taxonomy"
	"github.com/jonathan/resume-evaluator/internal/validation"
)

// Match levels reported for validator rejections. Successful evaluations use
// the Low/Medium/High tiers from the scoring package instead.
const (
	MatchLevelSafetyViolation = "Safety Violation"
	MatchLevelInvalidJD       = "Invalid Job Description"
	MatchLevelInvalidDocument = "Invalid Document Type"
)

// ScoreBreakdown carries the three category sub-scores.
type ScoreBreakdown struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Projects   int `json:"projects"`
}

// FinalResult is the evaluation response contract.
type FinalResult struct {
	FinalScore     int            `json:"final_score"`
	MatchLevel     string         `json:"match_level"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	MatchedSkills  []string       `json:"matched_skills"`
	MissingSkills  []string       `json:"missing_skills"`
	Suggestions    []string       `json:"suggestions"`
}

// IsRejection reports whether the result is a validator rejection rather than
// a scored evaluation.
func (r *FinalResult) IsRejection() bool {
	switch r.MatchLevel {
	case MatchLevelSafetyViolation, MatchLevelInvalidJD, MatchLevelInvalidDocument:
		return true
	}
	return false
}

// Evaluator scores resumes against job descriptions. It is safe for
// concurrent use: the taxonomies are read-only and every evaluation builds
// its own intermediate state.
type Evaluator struct {
	extractor *extraction.Extractor
	skills    taxonomy.Taxonomy
	actions   taxonomy.Taxonomy
}

// New builds an evaluator with the process-wide taxonomies.
func New() (*Evaluator, error) {
	return NewWithTaxonomies(taxonomy.TechSkills(), taxonomy.ActionVerbs())
}

// NewWithTaxonomies builds an evaluator with substitute taxonomies, which
// keeps the pipeline testable. A malformed taxonomy is a configuration error
// surfaced here, before any evaluation runs.
func NewWithTaxonomies(skills, actions taxonomy.Taxonomy) (*Evaluator, error) {
	if err := skills.Validate(); err != nil {
		return nil, fmt.Errorf("skills taxonomy: %w", err)
	}
	if err := actions.Validate(); err != nil {
		return nil, fmt.Errorf("actions taxonomy: %w", err)
	}

	normalizer, err := nlp.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build normalizer: %w", err)
	}

	return &Evaluator{
		extractor: extraction.New(normalizer),
		skills:    skills,
		actions:   actions,
	}, nil
}

// Evaluate scores resumeText against jdText. Validators run first, in fixed
// order, and the first violation short-circuits into a terminal result.
// Scoring itself is total: it never errors, whatever the inputs.
func (e *Evaluator) Evaluate(ctx context.Context, jdText, resumeText string) *FinalResult {
	if msg := validation.SafetyIntent(jdText); msg != "" {
		return rejection(MatchLevelSafetyViolation, msg)
	}
	if msg := validation.TechnicalSignal(jdText, e.skills); msg != "" {
		return rejection(MatchLevelInvalidJD, msg)
	}
	if msg := validation.DocumentType(resumeText); msg != "" {
		return rejection(MatchLevelInvalidDocument, msg)
	}

	split := sections.Split(resumeText)

	var (
		jdSkills          map[string]bool
		resumeSkills      map[string]bool
		experienceSkills  map[string]bool
		experienceActions map[string]bool
		projectSkills     map[string]bool
		projectActions    map[string]bool
	)

	// Extraction is pure and CPU-bound, so the four texts fan out safely.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		jdSkills = e.extractor.Extract(jdText, e.skills)
		return nil
	})
	g.Go(func() error {
		resumeSkills = e.extractor.Extract(split.Skills, e.skills)
		return nil
	})
	g.Go(func() error {
		experienceSkills = e.extractor.Extract(split.Experience, e.skills)
		experienceActions = e.extractor.Extract(split.Experience, e.actions)
		return nil
	})
	g.Go(func() error {
		projectSkills = e.extractor.Extract(split.Projects, e.skills)
		projectActions = e.extractor.Extract(split.Projects, e.actions)
		return nil
	})
	_ = g.Wait()

	skillsResult := scoring.Skills(resumeSkills, jdSkills)
	experienceResult := scoring.Experience(experienceSkills, experienceActions, jdSkills)
	projectsResult := scoring.Projects(projectSkills, projectActions, jdSkills)

	final := scoring.Aggregate(skillsResult, experienceResult, projectsResult,
		jdSkills, resumeSkills, experienceSkills, projectSkills)

	return &FinalResult{
		FinalScore: final.Score,
		MatchLevel: final.MatchLevel,
		ScoreBreakdown: ScoreBreakdown{
			Skills:     skillsResult.Score,
			Experience: experienceResult.Score,
			Projects:   projectsResult.Score,
		},
		MatchedSkills: skillsResult.Matched,
		MissingSkills: final.MissingEverywhere,
		Suggestions:   Suggestions(final.Score, final.MissingEverywhere),
	}
}

// rejection builds the terminal result for a validator violation: zero score,
// zeroed breakdown, and the violation message as the single suggestion.
func rejection(level, message string) *FinalResult {
	return &FinalResult{
		FinalScore:    0,
		MatchLevel:    level,
		MatchedSkills: []string{},
		MissingSkills: []string{},
		Suggestions:   []string{message},
	}
}
