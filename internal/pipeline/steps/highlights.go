package steps

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxHighlights bounds the overall assessment
const MaxHighlights = 6

// highlightTemplates holds the positive sentence of each highlight, in inclusion order
type highlightTemplates struct {
	skills       string
	industry     string
	ascending    string
	degree       string
	achievements string
	soft         string
	years        string
	listSep      string
}

var (
	zhHighlights = highlightTemplates{
		skills:       "掌握%d项专业技术技能",
		industry:     "拥有%s行业从业经验",
		ascending:    "职业发展呈上升趋势",
		degree:       "具备%s学历背景",
		achievements: "取得%d项突出工作成果",
		soft:         "具备%s等综合素质",
		years:        "拥有%d年相关工作经验",
		listSep:      "、",
	}

	enHighlights = highlightTemplates{
		skills:       "Proficient in %d technical skills",
		industry:     "Industry experience in %s",
		ascending:    "Demonstrates steady upward career growth",
		degree:       "Holds a %s degree",
		achievements: "Delivered %d notable achievements",
		soft:         "Strong %s skills",
		years:        "%d years of professional experience",
		listSep:      ", ",
	}
)

// Summarize builds the overall assessment from the committed stage results.
// Sentences are positive and included in a fixed order up to MaxHighlights.
func Summarize(rc *RunContext, lex *lexicon.Lexicon) types.OverallAssessment {
	t := enHighlights
	if rc.Language.IsChinese() {
		t = zhHighlights
	}

	var highlights []string
	if n := len(rc.Skills.TechnicalSkills); n > 0 {
		highlights = append(highlights, fmt.Sprintf(t.skills, n))
	}
	if len(rc.Experience.Industries) > 0 {
		highlights = append(highlights, fmt.Sprintf(t.industry, strings.Join(rc.Experience.Industries, t.listSep)))
	}
	if rc.Experience.CareerProgression == types.ProgressionAscending {
		highlights = append(highlights, t.ascending)
	}
	if rc.Education.HighestDegree != "" {
		highlights = append(highlights, fmt.Sprintf(t.degree, rc.Education.HighestDegree))
	}
	if n := len(rc.Experience.KeyAchievements); n > 0 {
		highlights = append(highlights, fmt.Sprintf(t.achievements, n))
	}
	if len(rc.Skills.SoftSkills) > 0 {
		highlights = append(highlights, fmt.Sprintf(t.soft, strings.Join(head(rc.Skills.SoftSkills, 3), t.listSep)))
	}
	if rc.Profile.YearsOfExperience > 0 {
		highlights = append(highlights, fmt.Sprintf(t.years, rc.Profile.YearsOfExperience))
	}

	return types.OverallAssessment{
		Highlights:    head(highlights, MaxHighlights),
		TargetJob:     strings.TrimSpace(rc.TargetJob),
		MatchedSkills: MatchedSkills(rc.Parsed.SkillItems(types.SkillCategoryTechnical), rc.TargetJob),
	}
}

// MatchedSkills returns the technical skills named in the target job text.
func MatchedSkills(skills []string, targetJob string) []string {
	if strings.TrimSpace(targetJob) == "" {
		return nil
	}
	var matched []string
	for _, skill := range skills {
		if lexicon.NewTerm(skill).Match(targetJob) {
			matched = append(matched, skill)
		}
	}
	return matched
}
