package experience

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ClassifyIndustry returns the first industry, in table order, with any keyword in text.
// Text without a hit falls back to the lexicon's default industry.
func ClassifyIndustry(text string, lex *lexicon.Lexicon) string {
	lower := strings.ToLower(text)
	for _, ind := range lex.Industries {
		if lexicon.AnyMatch(ind.Terms(), lower) {
			return ind.Name
		}
	}
	return lex.DefaultIndustry
}

// RecordText joins the fields of one record for classification.
func RecordText(rec types.WorkExperience) string {
	parts := []string{rec.Company, rec.Position}
	parts = append(parts, rec.Description...)
	parts = append(parts, rec.Achievements...)
	return strings.Join(parts, " ")
}

// ProfileText joins every record together with the skill items.
func ProfileText(records []types.WorkExperience, skills []string) string {
	parts := make([]string, 0, len(records)+len(skills))
	for _, rec := range records {
		parts = append(parts, RecordText(rec))
	}
	parts = append(parts, skills...)
	return strings.Join(parts, " ")
}
