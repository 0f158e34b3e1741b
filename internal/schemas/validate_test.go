package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func validResult() types.ResumeAnalysisResult {
	return types.ResumeAnalysisResult{
		ProfessionalProfile: types.ProfessionalProfile{
			Name:              "Zhang Wei",
			TitleRoles:        []string{"前端开发工程师"},
			Affiliation:       "",
			Email:             "zhang@example.com",
			Description:       "前端开发工程师，拥有5年工作经验。",
			AITag:             types.AITagDeveloper,
			LatestEducation:   "未注明教育背景",
			YearsOfExperience: 5,
			Industry:          "科技",
			ResearchInterests: []string{"React", "TypeScript"},
		},
		SkillAssessment: types.SkillAssessment{
			TechnicalSkills: []string{"React", "TypeScript"},
			SoftSkills:      []string{},
		},
		ExperienceAssessment: types.ExperienceAssessment{
			Industries:        []string{"科技"},
			CareerProgression: types.ProgressionStable,
			KeyAchievements:   []string{},
		},
		EducationAssessment: types.EducationAssessment{
			Institutions: []string{},
			Degrees:      []string{},
			Majors:       []string{},
		},
		OverallAssessment: types.OverallAssessment{
			Highlights: []string{"掌握2项专业技术技能"},
		},
		Language: types.LanguageChinese,
	}
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "person.json", `{"name": "Zhang Wei"}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing field", content: `{"age": 30}`},
		{name: "wrong type", content: `{"name": 42}`},
	}

	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, dir, "doc.json", tt.content)
			err := ValidateJSON(schemaPath, jsonPath)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "person.json", `{"name": "x"}`)

	err := ValidateJSON(filepath.Join(dir, "missing.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "person.schema.json", personSchema)
	jsonPath := writeFile(t, dir, "malformed.json", "{ invalid json }")

	assert.Error(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}

func TestValidateResult_Valid(t *testing.T) {
	assert.NoError(t, ValidateResult(validResult()))
}

func TestValidateResult_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.ResumeAnalysisResult)
		field  string
	}{
		{
			name:   "unknown ai tag",
			mutate: func(r *types.ResumeAnalysisResult) { r.ProfessionalProfile.AITag = "astronaut" },
			field:  "professional_profile.ai_tag",
		},
		{
			name: "too many title roles",
			mutate: func(r *types.ResumeAnalysisResult) {
				r.ProfessionalProfile.TitleRoles = []string{"a", "b", "c", "d"}
			},
			field: "professional_profile.title_roles",
		},
		{
			name:   "null highlights",
			mutate: func(r *types.ResumeAnalysisResult) { r.OverallAssessment.Highlights = nil },
			field:  "overall_assessment.highlights",
		},
		{
			name:   "unknown language",
			mutate: func(r *types.ResumeAnalysisResult) { r.Language = "fr" },
			field:  "language",
		},
		{
			name: "duplicate institutions",
			mutate: func(r *types.ResumeAnalysisResult) {
				r.EducationAssessment.Institutions = []string{"MIT", "MIT"}
			},
			field: "education_assessment.institutions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validResult()
			tt.mutate(&result)

			err := ValidateResult(result)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateResultJSON_Malformed(t *testing.T) {
	assert.Error(t, ValidateResultJSON([]byte("{not json")))
}
