package steps

import (
	"strings"
)

// degreeRank maps degree keywords to numeric ranks for comparison
var degreeRank = []struct {
	keyword string
	rank    int
}{
	{"associate", 1},
	{"大专", 1},
	{"专科", 1},
	{"bachelor", 2},
	{"b.s", 2},
	{"本科", 2},
	{"学士", 2},
	{"master", 3},
	{"mba", 3},
	{"m.s", 3},
	{"硕士", 3},
	{"研究生", 3},
	{"phd", 4},
	{"ph.d", 4},
	{"doctor", 4},
	{"博士", 4},
}

// DegreeRank returns the rank of the highest degree keyword in degree, or 0.
func DegreeRank(degree string) int {
	lower := strings.ToLower(degree)
	best := 0
	for _, d := range degreeRank {
		if d.rank > best && strings.Contains(lower, d.keyword) {
			best = d.rank
		}
	}
	return best
}

// HighestDegree returns the highest-ranked degree, keeping the first on ties.
// Unranked degrees are only chosen when nothing ranks.
func HighestDegree(degrees []string) string {
	best, bestRank := "", -1
	for _, d := range degrees {
		if r := DegreeRank(d); r > bestRank {
			best, bestRank = d, r
		}
	}
	return best
}
