package steps

import (
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/experience"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	maxTechnicalSkills  = 8
	maxSoftSkills       = 6
	maxKeyAchievements  = 5
	minAchievementRunes = 11
)

// AssessSkills surfaces the leading technical and soft skills unchanged.
func AssessSkills(parsed *types.ParsedResume) types.SkillAssessment {
	return types.SkillAssessment{
		TechnicalSkills: head(parsed.SkillItems(types.SkillCategoryTechnical), maxTechnicalSkills),
		SoftSkills:      head(parsed.SkillItems(types.SkillCategorySoft), maxSoftSkills),
	}
}

// AssessExperience classifies each record's industry, the overall progression, and picks
// the first non-trivial description and achievement lines.
func AssessExperience(parsed *types.ParsedResume, lang types.Language, lex *lexicon.Lexicon) types.ExperienceAssessment {
	industries := []string{}
	var achievements []string
	for _, rec := range parsed.WorkExperience {
		industry := experience.ClassifyIndustry(experience.RecordText(rec), lex)
		industries = appendUnique(industries, lex.IndustryName(industry, lang))

		lines := append(append([]string{}, rec.Description...), rec.Achievements...)
		for _, line := range lines {
			if utf8.RuneCountInString(line) >= minAchievementRunes {
				achievements = appendUnique(achievements, line)
			}
		}
	}

	return types.ExperienceAssessment{
		Industries:        industries,
		CareerProgression: experience.CareerProgression(parsed.WorkExperience, lex),
		KeyAchievements:   head(achievements, maxKeyAchievements),
	}
}

// AssessEducation collects the distinct institutions, degrees and majors.
func AssessEducation(parsed *types.ParsedResume) types.EducationAssessment {
	a := types.EducationAssessment{
		Institutions: []string{},
		Degrees:      []string{},
		Majors:       []string{},
	}
	for _, edu := range parsed.Education {
		a.Institutions = appendUnique(a.Institutions, edu.Institution)
		a.Degrees = appendUnique(a.Degrees, edu.Degree)
		a.Majors = appendUnique(a.Majors, edu.Major)
	}
	a.HighestDegree = HighestDegree(a.Degrees)
	return a
}

// head returns at most n leading items, never nil.
func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}

func appendUnique(list []string, s string) []string {
	if s == "" {
		return list
	}
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
