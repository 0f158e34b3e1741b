package profile

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ClassifyAITag scores each tag family by distinct keyword hits. The weighted family's
// score is multiplied before comparison. A strong developer title or a weighted score at
// or above the threshold short-circuits to the weighted tag. Otherwise the highest score
// wins, ties go to the earlier family, and a zero score yields the default tag.
func ClassifyAITag(text string, lex *lexicon.Lexicon) types.AITag {
	rules := lex.AITagRules
	lower := strings.ToLower(text)

	if lexicon.AnyMatch(lex.StrongTitles(), lower) {
		return rules.WeightedTag
	}

	scores := Scores(lower, lex)
	if scores[rules.WeightedTag] >= rules.Threshold {
		return rules.WeightedTag
	}

	best, bestScore := rules.DefaultTag, 0
	for _, family := range lex.AITags {
		if s := scores[family.Tag]; s > bestScore {
			best, bestScore = family.Tag, s
		}
	}
	return best
}

// Scores returns the weighted score of every tag family.
func Scores(text string, lex *lexicon.Lexicon) map[types.AITag]int {
	scores := make(map[types.AITag]int, len(lex.AITags))
	for _, family := range lex.AITags {
		score := lexicon.CountMatches(family.Terms(), text)
		if family.Tag == lex.AITagRules.WeightedTag {
			score *= lex.AITagRules.Weight
		}
		scores[family.Tag] = score
	}
	return scores
}

// TagText joins the raw text with every extracted string that can evidence a tag.
func TagText(raw string, parsed *types.ParsedResume) string {
	parts := []string{raw}
	for _, rec := range parsed.WorkExperience {
		parts = append(parts, rec.Position, rec.Company)
		parts = append(parts, rec.Description...)
		parts = append(parts, rec.Achievements...)
	}
	for _, proj := range parsed.Projects {
		parts = append(parts, proj.Name, proj.Description)
		parts = append(parts, proj.Technologies...)
	}
	for _, skill := range parsed.Skills {
		parts = append(parts, skill.Items...)
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}
