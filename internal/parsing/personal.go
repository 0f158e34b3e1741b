package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	nameScanLines     = 5
	locationScanLines = 10
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Chinese mobile numbers are tried before North American groupings.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+86[-\s]?)?1[3-9]\d{9}\b`),
		regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`),
	}

	latinNamePattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z ]{1,19}$`)
	headingNamePattern = regexp.MustCompile(`^#{1,6}\s*(.+)$`)

	linkedInPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9_-]+)`)
	gitHubPattern   = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9_-]+)`)
	twitterPattern  = regexp.MustCompile(`(?i)(?:^|[^a-z0-9.])(?:twitter|x)\.com/([A-Za-z0-9_]+)`)

	urlPattern           = regexp.MustCompile(`https?://[^\s，,。；;)）"'<>]+`)
	labeledSitePattern   = regexp.MustCompile(`(?i)(?:portfolio|website|blog|个人网站|博客|主页)\s*[:：]\s*((?:https?://)?[A-Za-z0-9.-]+\.[A-Za-z]{2,}(?:/[^\s，,。；;]*)?)`)
	excludedSiteMarkers  = []string{"github.com", "linkedin.com", "twitter.com", "x.com"}
	cityStatePattern     = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*),\s*([A-Z]{2})\b`)
	cityRegionPattern    = regexp.MustCompile(`\b([A-Z][a-z]+),\s*([A-Z][a-z]+)\b`)
	leadingDigitPattern  = regexp.MustCompile(`^\d`)
	trailingPunctPattern = regexp.MustCompile(`[.,;:!?]+$`)
)

// ExtractPersonalInfo pulls contact details out of the text. Missing fields stay empty.
func (p *Parser) ExtractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{
		Name:     p.extractName(text),
		Email:    emailPattern.FindString(text),
		Phone:    extractPhone(text),
		Location: p.extractLocation(text),
		Website:  extractWebsite(text),
	}
	if m := linkedInPattern.FindStringSubmatch(text); m != nil {
		info.LinkedIn = "https://linkedin.com/in/" + m[1]
	}
	if m := gitHubPattern.FindStringSubmatch(text); m != nil {
		info.GitHub = "https://github.com/" + m[1]
	}
	if m := twitterPattern.FindStringSubmatch(text); m != nil {
		info.Twitter = "https://twitter.com/" + m[1]
	}
	return info
}

func extractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractName scans the first lines of the document for something shaped like a name.
func (p *Parser) extractName(text string) string {
	lines := nonBlankLines(text)
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		if p.skipNameLine(line) {
			continue
		}
		if name, ok := nameFromLine(line); ok {
			return name
		}
	}
	return ""
}

func (p *Parser) skipNameLine(line string) bool {
	if strings.Contains(line, "@") || leadingDigitPattern.MatchString(line) {
		return true
	}
	if lexicon.AnyMatch(p.lex.HeaderTerms(), line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, marker := range p.lex.DurationMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func nameFromLine(line string) (string, bool) {
	if m := headingNamePattern.FindStringSubmatch(line); m != nil {
		rest := strings.TrimSpace(m[1])
		if n := runeLen(rest); n >= 2 && n <= 10 {
			return rest, true
		}
		return "", false
	}
	han := hanCount(line)
	if han >= 2 && han <= 4 && float64(han)/float64(runeLen(line)) > 0.5 {
		return line, true
	}
	if latinNamePattern.MatchString(line) && len(strings.Fields(line)) <= 3 {
		return strings.TrimSpace(line), true
	}
	return "", false
}

func extractWebsite(text string) string {
	for _, u := range urlPattern.FindAllString(text, -1) {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "@") || containsAny(lower, excludedSiteMarkers...) {
			continue
		}
		return trailingPunctPattern.ReplaceAllString(u, "")
	}
	if m := labeledSitePattern.FindStringSubmatch(text); m != nil {
		site := trailingPunctPattern.ReplaceAllString(m[1], "")
		if strings.Contains(site, "@") {
			return ""
		}
		if !strings.HasPrefix(strings.ToLower(site), "http") {
			site = "https://" + site
		}
		return site
	}
	return ""
}

// extractLocation looks for "City, ST" and "City, Region" pairs in the contact block,
// then falls back to the earliest known city anywhere in the text.
func (p *Parser) extractLocation(text string) string {
	lines := nonBlankLines(text)
	if len(lines) > locationScanLines {
		lines = lines[:locationScanLines]
	}
	header := strings.Join(lines, "\n")
	if m := cityStatePattern.FindString(header); m != "" {
		return m
	}
	if m := cityRegionPattern.FindString(header); m != "" {
		return m
	}

	best, bestAt := "", -1
	for _, city := range p.lex.Cities {
		if at := strings.Index(text, city); at >= 0 && (bestAt < 0 || at < bestAt) {
			best, bestAt = city, at
		}
	}
	return best
}
