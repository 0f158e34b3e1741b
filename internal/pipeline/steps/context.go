package steps

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// RunContext is the run-scoped state shared by the stages. The inputs are written once
// before the first stage; each stage then fills exactly one result field.
type RunContext struct {
	RunID     string         `json:"run_id"`
	RawText   string         `json:"-"`
	Language  types.Language `json:"language"`
	TargetJob string         `json:"target_job,omitempty"`
	Now       time.Time      `json:"-"`

	Parsed     *types.ParsedResume         `json:"-"`
	Profile    *types.ProfessionalProfile  `json:"-"`
	Skills     *types.SkillAssessment      `json:"-"`
	Experience *types.ExperienceAssessment `json:"-"`
	Education  *types.EducationAssessment  `json:"-"`
	Overall    *types.OverallAssessment    `json:"-"`
}

// Has reports whether the named stage has stored its result.
func (rc *RunContext) Has(step string) bool {
	switch step {
	case StepParse:
		return rc.Parsed != nil
	case StepProfile:
		return rc.Profile != nil
	case StepSkills:
		return rc.Skills != nil
	case StepExperience:
		return rc.Experience != nil
	case StepEducation:
		return rc.Education != nil
	case StepHighlights:
		return rc.Overall != nil
	default:
		return false
	}
}
