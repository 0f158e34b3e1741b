// Package steps provides the stage definitions, dependency validation, and stage executors
// for the résumé analysis pipeline.
package steps

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/orchestrator"
)

// Stage identifiers, in execution order
const (
	StepParse      = "parse"
	StepProfile    = "profile"
	StepSkills     = "skills"
	StepExperience = "experience"
	StepEducation  = "education"
	StepHighlights = "highlights"
)

// StepDefinition defines metadata for a pipeline stage
type StepDefinition struct {
	Name         string
	Title        string
	Description  string
	Dependencies []string
}

// StepRegistry holds all stage definitions in execution order
var StepRegistry = []StepDefinition{
	{
		Name:         StepParse,
		Title:        "Parse Resume Content",
		Description:  "Extract personal info, education, experience, projects and skills",
		Dependencies: []string{},
	},
	{
		Name:         StepProfile,
		Title:        "Build Professional Profile",
		Description:  "Derive roles, summary, AI tag, latest education and interests",
		Dependencies: []string{StepParse},
	},
	{
		Name:         StepSkills,
		Title:        "Assess Skills",
		Description:  "Surface technical and soft skills",
		Dependencies: []string{StepParse},
	},
	{
		Name:         StepExperience,
		Title:        "Assess Experience",
		Description:  "Classify industries, career progression and key achievements",
		Dependencies: []string{StepParse},
	},
	{
		Name:         StepEducation,
		Title:        "Assess Education",
		Description:  "Collect institutions, degrees and majors",
		Dependencies: []string{StepParse},
	},
	{
		Name:         StepHighlights,
		Title:        "Summarize Highlights",
		Description:  "Compose positive highlights from every prior stage",
		Dependencies: []string{StepProfile, StepSkills, StepExperience, StepEducation},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependencies for %s: %v", e.Step, e.MissingDependencies)
}

// Lookup returns the definition of a stage.
func Lookup(name string) (StepDefinition, bool) {
	for _, def := range StepRegistry {
		if def.Name == name {
			return def, true
		}
	}
	return StepDefinition{}, false
}

// Specs returns the orchestrator step specs in execution order.
func Specs() []orchestrator.StepSpec {
	specs := make([]orchestrator.StepSpec, 0, len(StepRegistry))
	for _, def := range StepRegistry {
		specs = append(specs, orchestrator.StepSpec{
			ID:          def.Name,
			Title:       def.Title,
			Description: def.Description,
		})
	}
	return specs
}

// ValidateDependencies checks that every stage the named stage depends on has stored its result
func ValidateDependencies(rc *RunContext, stepName string) error {
	def, ok := Lookup(stepName)
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !rc.Has(dep) {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}
