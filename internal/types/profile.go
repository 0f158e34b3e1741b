package types

// AITag is the professional archetype assigned to a candidate
type AITag string

const (
	AITagDeveloper    AITag = "developer"
	AITagResearcher   AITag = "researcher"
	AITagFounder      AITag = "founder"
	AITagTeacher      AITag = "teacher"
	AITagDesigner     AITag = "designer"
	AITagCreator      AITag = "creator"
	AITagPractitioner AITag = "practitioner"
)

// Progression is the career trend across work experience records
type Progression string

const (
	ProgressionAscending Progression = "ascending"
	ProgressionStable    Progression = "stable"
	// ProgressionLateral is a valid classification that the current ladder logic never produces.
	ProgressionLateral Progression = "lateral"
)

// ProfessionalProfile is the stage-1 output
type ProfessionalProfile struct {
	Name              string   `json:"name"`
	TitleRoles        []string `json:"title_roles"`
	Affiliation       string   `json:"affiliation"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	GitHub            string   `json:"github,omitempty"`
	Website           string   `json:"website,omitempty"`
	LinkedIn          string   `json:"linkedin,omitempty"`
	Twitter           string   `json:"twitter,omitempty"`
	PhotoURL          string   `json:"photo_url,omitempty"`
	Description       string   `json:"description"`
	AITag             AITag    `json:"ai_tag"`
	LatestEducation   string   `json:"latest_education"`
	YearsOfExperience int      `json:"years_of_experience"`
	Industry          string   `json:"industry"`
	ResearchInterests []string `json:"research_interests"`
}
