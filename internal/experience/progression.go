package experience

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// CareerProgression reports ascending when any seniority ladder shows a strictly rising
// rank across records ordered by start year. Fewer than two records is always stable.
func CareerProgression(records []types.WorkExperience, lex *lexicon.Lexicon) types.Progression {
	if len(records) < 2 {
		return types.ProgressionStable
	}

	sorted := make([]types.WorkExperience, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return startYear(sorted[i].StartDate) < startYear(sorted[j].StartDate)
	})

	for _, ladder := range lex.LadderTerms() {
		if rises(sorted, ladder) {
			return types.ProgressionAscending
		}
	}
	return types.ProgressionStable
}

// rises reports whether consecutive ranked positions ever step up the ladder.
// Positions matching no rung are skipped.
func rises(records []types.WorkExperience, ladder []lexicon.Term) bool {
	prev := 0
	for _, rec := range records {
		rank := LadderRank(rec.Position, ladder)
		if rank == 0 {
			continue
		}
		if prev != 0 && rank > prev {
			return true
		}
		prev = rank
	}
	return false
}

// LadderRank is one plus the index of the highest rung found in position, or 0.
func LadderRank(position string, ladder []lexicon.Term) int {
	rank := 0
	for i, rung := range ladder {
		if rung.Match(position) {
			rank = i + 1
		}
	}
	return rank
}
