package steps

import (
	"context"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/orchestrator"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/profile"
)

// Executor is a stage executor bound to the typed run context
type Executor = orchestrator.Executor[*RunContext]

// Stages holds the collaborators shared by every stage executor
type Stages struct {
	Parser  *parsing.Parser
	Lexicon *lexicon.Lexicon
	Hook    InferenceHook
}

// NewStages creates the stage set. A nil hook runs without artificial latency.
func NewStages(parser *parsing.Parser, lex *lexicon.Lexicon, hook InferenceHook) *Stages {
	if hook == nil {
		hook = NoDelay
	}
	return &Stages{Parser: parser, Lexicon: lex, Hook: hook}
}

// Executors returns one executor per stage, in StepRegistry order.
func (s *Stages) Executors() []Executor {
	return []Executor{
		s.stage(s.parse),
		s.stage(s.profile),
		s.stage(s.skills),
		s.stage(s.experience),
		s.stage(s.education),
		s.stage(s.highlights),
	}
}

// stage wraps a stage body with the inference hook and dependency validation.
func (s *Stages) stage(body func(rc *RunContext) any) Executor {
	return func(ctx context.Context, step *orchestrator.Step, pc orchestrator.PipelineContext[*RunContext]) (any, error) {
		if err := s.Hook(ctx, step.ID); err != nil {
			return nil, err
		}
		rc := pc.Metadata
		if err := ValidateDependencies(rc, step.ID); err != nil {
			return nil, err
		}
		return body(rc), nil
	}
}

func (s *Stages) parse(rc *RunContext) any {
	rc.Parsed = s.Parser.Parse(rc.RawText, rc.Language)
	return rc.Parsed
}

func (s *Stages) profile(rc *RunContext) any {
	p := profile.Build(profile.Input{
		RawText:  rc.RawText,
		Parsed:   rc.Parsed,
		Language: rc.Language,
		Now:      rc.Now,
	}, s.Lexicon)
	rc.Profile = &p
	return rc.Profile
}

func (s *Stages) skills(rc *RunContext) any {
	a := AssessSkills(rc.Parsed)
	rc.Skills = &a
	return rc.Skills
}

func (s *Stages) experience(rc *RunContext) any {
	a := AssessExperience(rc.Parsed, rc.Language, s.Lexicon)
	rc.Experience = &a
	return rc.Experience
}

func (s *Stages) education(rc *RunContext) any {
	a := AssessEducation(rc.Parsed)
	rc.Education = &a
	return rc.Education
}

func (s *Stages) highlights(rc *RunContext) any {
	o := Summarize(rc, s.Lexicon)
	rc.Overall = &o
	return rc.Overall
}
