package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalysisRequest is the input contract of one analysis run
type AnalysisRequest struct {
	Text      string `json:"text" validate:"required"`
	TargetJob string `json:"target_job,omitempty" validate:"omitempty,max=500"`
}

// Validate validates the AnalysisRequest using the validator.
func (r *AnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SkillAssessment is the stage-2 output
type SkillAssessment struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
}

// ExperienceAssessment is the stage-3 output
type ExperienceAssessment struct {
	Industries        []string    `json:"industries"`
	CareerProgression Progression `json:"career_progression"`
	KeyAchievements   []string    `json:"key_achievements"`
}

// EducationAssessment is the stage-4 output
type EducationAssessment struct {
	Institutions  []string `json:"institutions"`
	Degrees       []string `json:"degrees"`
	Majors        []string `json:"majors"`
	HighestDegree string   `json:"highest_degree,omitempty"`
}

// OverallAssessment is the stage-5 output. Highlights are always positive.
type OverallAssessment struct {
	Highlights    []string `json:"highlights"`
	TargetJob     string   `json:"target_job,omitempty"`
	MatchedSkills []string `json:"matched_skills,omitempty"`
}

// ResumeAnalysisResult is the terminal output of one analysis run
type ResumeAnalysisResult struct {
	ProfessionalProfile  ProfessionalProfile  `json:"professional_profile"`
	SkillAssessment      SkillAssessment      `json:"skill_assessment"`
	ExperienceAssessment ExperienceAssessment `json:"experience_assessment"`
	EducationAssessment  EducationAssessment  `json:"education_assessment"`
	OverallAssessment    OverallAssessment    `json:"overall_assessment"`
	Language             Language             `json:"language"`
}
