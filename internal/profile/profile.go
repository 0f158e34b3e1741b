// Package profile derives the professional profile from a parsed résumé.
package profile

import (
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxResearchInterests bounds the interests listed on a profile.
const MaxResearchInterests = 3

// Input is everything the profile is derived from
type Input struct {
	RawText  string
	Parsed   *types.ParsedResume
	Language types.Language
	Now      time.Time
}

// Build derives the profile. It never fails; missing evidence yields defaults.
func Build(in Input, lex *lexicon.Lexicon) types.ProfessionalProfile {
	parsed := in.Parsed
	lang := in.Language
	techSkills := parsed.SkillItems(types.SkillCategoryTechnical)

	roles := TitleRoles(parsed.WorkExperience, lang, lex)
	if len(roles) == 0 {
		roles = []string{InferRole(techSkills, lang, lex)}
	}

	years := experience.YearsOfExperience(in.RawText, parsed.WorkExperience, lex, in.Now)
	industry := experience.ClassifyIndustry(experience.ProfileText(parsed.WorkExperience, techSkills), lex)
	company := recentCompany(parsed.WorkExperience, lex)

	affiliation := company
	if affiliation == "" && len(parsed.Education) > 0 {
		affiliation = parsed.Education[0].Institution
	}

	description := Describe(descriptionInput{
		Role:         roles[len(roles)-1],
		Company:      company,
		Years:        years,
		TechSkills:   techSkills,
		ProjectCount: len(parsed.Projects),
	}, lang, lex)

	info := parsed.PersonalInfo
	return types.ProfessionalProfile{
		Name:              info.Name,
		TitleRoles:        roles,
		Affiliation:       affiliation,
		Email:             info.Email,
		Phone:             info.Phone,
		GitHub:            info.GitHub,
		Website:           info.Website,
		LinkedIn:          info.LinkedIn,
		Twitter:           info.Twitter,
		Description:       description,
		AITag:             ClassifyAITag(TagText(in.RawText, parsed), lex),
		LatestEducation:   LatestEducation(parsed.Education, lang),
		YearsOfExperience: years,
		Industry:          lex.IndustryName(industry, lang),
		ResearchInterests: ResearchInterests(techSkills, parsed.Projects),
	}
}

// recentCompany returns the company of the latest-starting record that is not a placeholder.
func recentCompany(records []types.WorkExperience, lex *lexicon.Lexicon) string {
	sorted := byStart(records)
	for i := len(sorted) - 1; i >= 0; i-- {
		c := sorted[i].Company
		if c != "" && c != lex.Placeholders.Company.EN && c != lex.Placeholders.Company.ZH {
			return c
		}
	}
	return ""
}

// ResearchInterests takes technical skills, then project names and technologies,
// and keeps the first MaxResearchInterests distinct entries.
func ResearchInterests(techSkills []string, projects []types.Project) []string {
	candidates := append([]string{}, techSkills...)
	for _, p := range projects {
		candidates = append(candidates, p.Name)
		candidates = append(candidates, p.Technologies...)
	}

	interests := []string{}
	seen := make(map[string]bool)
	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		interests = append(interests, strings.TrimSpace(c))
		if len(interests) == MaxResearchInterests {
			break
		}
	}
	return interests
}
