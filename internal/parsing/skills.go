package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ExtractSkills matches the technical vocabulary, the Chinese term dictionary and the
// soft-skill phrases. Each non-empty category is reported at intermediate proficiency.
func (p *Parser) ExtractSkills(text string, lang types.Language) []types.Skill {
	skills := []types.Skill{}

	technical := lexicon.Matched(p.lex.TechMatchers(), text)
	for _, tl := range p.lex.ChineseTechTerms {
		if strings.Contains(text, tl.Term) {
			technical = append(technical, tl.Label)
		}
	}
	if technical = NormalizeSkills(technical); len(technical) > 0 {
		skills = append(skills, types.Skill{
			Category:    types.SkillCategoryTechnical,
			Items:       technical,
			Proficiency: types.ProficiencyIntermediate,
		})
	}

	var soft []string
	for _, set := range p.lex.SoftSkills {
		if lexicon.AnyMatch(set.Terms(), text) {
			soft = appendUnique(soft, localizedLabel(set, lang))
		}
	}
	if len(soft) > 0 {
		skills = append(skills, types.Skill{
			Category:    types.SkillCategorySoft,
			Items:       soft,
			Proficiency: types.ProficiencyIntermediate,
		})
	}
	return skills
}

// ExtractCertifications returns the labels of every certification mentioned.
func (p *Parser) ExtractCertifications(text string) []string {
	return matchedLabels(p.lex.Certifications, text)
}

// ExtractLanguages returns the spoken languages mentioned.
func (p *Parser) ExtractLanguages(text string) []string {
	return matchedLabels(p.lex.SpokenLanguages, text)
}

func matchedLabels(sets []lexicon.LabeledSet, text string) []string {
	out := []string{}
	for _, set := range sets {
		if lexicon.AnyMatch(set.Terms(), text) {
			out = appendUnique(out, set.Label)
		}
	}
	return out
}

func localizedLabel(set lexicon.LabeledSet, lang types.Language) string {
	if lang.IsChinese() && set.LabelZh != "" {
		return set.LabelZh
	}
	return set.Label
}
