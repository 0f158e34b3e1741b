package profile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxTitleRoles bounds the roles listed on a profile.
const MaxTitleRoles = 3

const genericRole = "Software Engineer"

// TranslateRole maps a role through the bilingual dictionary into the target language.
// Unknown roles are returned unchanged.
func TranslateRole(role string, lang types.Language, lex *lexicon.Lexicon) string {
	trimmed := strings.TrimSpace(role)
	for _, pair := range lex.Roles {
		if strings.EqualFold(trimmed, pair.EN) || trimmed == pair.ZH {
			if lang.IsChinese() {
				return pair.ZH
			}
			return pair.EN
		}
	}
	return trimmed
}

// TitleRoles lists the distinct translated positions in chronological order and keeps
// the most recent MaxTitleRoles, most recent last.
func TitleRoles(records []types.WorkExperience, lang types.Language, lex *lexicon.Lexicon) []string {
	sorted := byStart(records)
	var roles []string
	seen := make(map[string]bool)
	for _, rec := range sorted {
		role := TranslateRole(rec.Position, lang, lex)
		if role == "" || seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	if len(roles) > MaxTitleRoles {
		roles = roles[len(roles)-MaxTitleRoles:]
	}
	return roles
}

// InferRole guesses a single role from technical skills when there is no work history.
// Buckets are checked web3, full stack, frontend, backend, then the generic role.
func InferRole(techSkills []string, lang types.Language, lex *lexicon.Lexicon) string {
	text := strings.ToLower(strings.Join(techSkills, "\n"))
	frontend := lexicon.AnyMatch(lex.BucketTerms("frontend"), text)
	backend := lexicon.AnyMatch(lex.BucketTerms("backend"), text)

	role := genericRole
	switch {
	case lexicon.AnyMatch(lex.BucketTerms("web3"), text):
		role = "Web3 Developer"
	case frontend && backend:
		role = "Full Stack Developer"
	case frontend:
		role = "Frontend Developer"
	case backend:
		role = "Backend Developer"
	}
	return TranslateRole(role, lang, lex)
}

// byStart returns a copy of records stably ordered by start year.
func byStart(records []types.WorkExperience) []types.WorkExperience {
	sorted := make([]types.WorkExperience, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return leadingYear(sorted[i].StartDate) < leadingYear(sorted[j].StartDate)
	})
	return sorted
}

func leadingYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
