package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const educationWindowRadius = 2

var (
	latinDegreePattern   = regexp.MustCompile(`(?i)\b(Ph\.?D|Doctorate|MBA|Bachelor(?:'s)?(?: of (?:Science|Arts|Engineering))?|Master(?:'s)?(?: of (?:Science|Arts|Engineering|Business Administration))?|B\.S|M\.S|B\.Sc|M\.Sc)\b`)
	chineseDegreePattern = regexp.MustCompile(`博士|硕士|学士|本科|研究生|大专|专科`)

	latinInstitutionPattern   = regexp.MustCompile(`\b((?:[A-Z][A-Za-z&.'-]* ){0,5}(?:University|College|Institute|School)(?: of(?: [A-Z][A-Za-z&.'-]*)+)?)`)
	chineseInstitutionPattern = regexp.MustCompile(`\p{Han}{2,15}?(?:大学|学院)`)

	latinMajorPattern      = regexp.MustCompile(`(?:[Mm]ajor(?:ed)?\s*(?:in|:)\s*|\bin\s+)([A-Z][A-Za-z]+(?: [A-Z][A-Za-z]+){0,3})`)
	labeledMajorPattern    = regexp.MustCompile(`专业\s*[:：]\s*(\p{Han}{2,15})`)
	chineseMajorPattern    = regexp.MustCompile(`(\p{Han}{2,15})专业`)
	gpaPattern             = regexp.MustCompile(`(?i)(?:GPA|绩点)\s*[:：]?\s*(\d(?:\.\d{1,2})?(?:\s*/\s*\d(?:\.\d{1,2})?)?)`)
	graduationYearPattern  = regexp.MustCompile(`\b(20\d{2})\b`)
	institutionLeadMarkers = []string{"于", "：", ":"}
)

// ExtractEducation builds one record per education keyword line, looking two lines
// either side for a degree, institution, major, GPA and graduation year.
// Overlapping windows can yield the same record more than once.
func (p *Parser) ExtractEducation(text string) []types.Education {
	lines := splitLines(text)
	records := []types.Education{}

	for i, line := range lines {
		if !lexicon.AnyMatch(p.lex.EducationTerms(), line) {
			continue
		}
		lo := max(0, i-educationWindowRadius)
		hi := min(len(lines), i+educationWindowRadius+1)
		window := strings.Join(lines[lo:hi], "\n")

		edu := types.Education{
			Institution: extractInstitution(window),
			Degree:      extractDegree(window),
		}
		if edu.Institution == "" && edu.Degree == "" {
			continue
		}
		edu.Major = extractMajor(window)
		edu.GraduationYear = latestYear(window)
		if m := gpaPattern.FindStringSubmatch(window); m != nil {
			edu.GPA = strings.ReplaceAll(m[1], " ", "")
		}
		records = append(records, edu)
	}
	return records
}

// extractDegree returns whichever Latin or Chinese degree term appears first.
func extractDegree(window string) string {
	latin := latinDegreePattern.FindStringIndex(window)
	han := chineseDegreePattern.FindStringIndex(window)
	switch {
	case latin == nil && han == nil:
		return ""
	case han == nil || (latin != nil && latin[0] < han[0]):
		return window[latin[0]:latin[1]]
	default:
		return window[han[0]:han[1]]
	}
}

func extractInstitution(window string) string {
	latin := latinInstitutionPattern.FindStringSubmatchIndex(window)
	han := chineseInstitutionPattern.FindStringIndex(window)
	switch {
	case latin == nil && han == nil:
		return ""
	case han == nil || (latin != nil && latin[2] < han[0]):
		return strings.TrimSpace(window[latin[2]:latin[3]])
	default:
		return trimLeadIn(window[han[0]:han[1]], institutionLeadMarkers...)
	}
}

func extractMajor(window string) string {
	if m := labeledMajorPattern.FindStringSubmatch(window); m != nil {
		return m[1]
	}
	if m := chineseMajorPattern.FindStringSubmatch(window); m != nil {
		return trimLeadIn(m[1], "大学", "学院", "于")
	}
	for _, line := range strings.Split(window, "\n") {
		if latinDegreePattern.MatchString(line) {
			if m := latinMajorPattern.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
	}
	return ""
}

// latestYear returns the largest 20xx year in the window, or 0. An enrollment
// range such as "2016 - 2020" therefore reports its end year.
func latestYear(window string) int {
	best := 0
	for _, m := range graduationYearPattern.FindAllStringSubmatch(window, -1) {
		if year, err := strconv.Atoi(m[1]); err == nil && year > best {
			best = year
		}
	}
	return best
}
