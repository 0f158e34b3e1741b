package experience

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxComputedYears caps the span computed from date ranges.
const MaxComputedYears = 15

// YearsOfExperience prefers a duration stated in the text over the span of the records.
// The span runs from the earliest start to the latest end in whole years, capped at
// MaxComputedYears. No records means zero.
func YearsOfExperience(text string, records []types.WorkExperience, lex *lexicon.Lexicon, now time.Time) int {
	if years, ok := parsing.StatedYears(text); ok {
		return years
	}

	periods := Periods(records, lex, now)
	if len(periods) == 0 {
		return 0
	}

	earliest := periods[0].Start
	latest := periods[0].End
	for _, p := range periods[1:] {
		if latest.Before(p.End) {
			latest = p.End
		}
	}

	months := latest.Months() - earliest.Months()
	if months <= 0 {
		return 0
	}
	return min(months/12, MaxComputedYears)
}
