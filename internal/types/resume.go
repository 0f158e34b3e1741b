// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Language identifies the analysis track selected for a run.
type Language string

const (
	// LanguageChinese is the CJK track.
	LanguageChinese Language = "zh"
	// LanguageEnglish is the Latin track.
	LanguageEnglish Language = "en"
)

// IsChinese reports whether l is the CJK track.
func (l Language) IsChinese() bool {
	return l == LanguageChinese
}

// Proficiency is the self-assessed level attached to a skill category
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Skill category names produced by the extractor
const (
	SkillCategoryTechnical = "Technical Skills"
	SkillCategorySoft      = "Soft Skills"
)

// ParsedResume is the stage-0 output: every entity extracted from the raw text.
// It is read-only once produced.
type ParsedResume struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Projects       []Project        `json:"projects"`
	Skills         []Skill          `json:"skills"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
	Language       Language         `json:"language"`
}

// PersonalInfo holds contact details. Only Name is always present (possibly empty).
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Education represents one education record found near an education keyword
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Major          string `json:"major,omitempty"`
	GraduationYear int    `json:"graduation_year,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// WorkExperience represents one employment period.
// StartDate and EndDate are kept as written ("2019.3", "2021", "至今", "Present").
type WorkExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Description  []string `json:"description"`
	Achievements []string `json:"achievements"`
}

// Project represents a project stub found under a project heading
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

// Skill groups skill items under a category
type Skill struct {
	Category    string      `json:"category"`
	Items       []string    `json:"items"`
	Proficiency Proficiency `json:"proficiency"`
}

// SkillItems returns the items of the first skill group with the given category.
func (r *ParsedResume) SkillItems(category string) []string {
	if r == nil {
		return nil
	}
	for _, s := range r.Skills {
		if s.Category == category {
			return s.Items
		}
	}
	return nil
}
