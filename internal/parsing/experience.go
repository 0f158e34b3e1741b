package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	minStatedYears      = 1
	maxStatedYears      = 20
	minStartYear        = 1990
	experienceRadius    = 500
	maxDescriptionLines = 5
	minDescriptionRunes = 6
)

var chineseNumerals = map[string]int{
	"一": 1, "二": 2, "三": 3, "四": 4, "五": 5,
	"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

var (
	chineseDurationPattern = regexp.MustCompile(`(?:^|[^\d])([一二三四五六七八九十]|\d{1,2})\s*年(?:以上|多)?(?:的)?([^\n，,。；;：:]{0,12}?)经验`)
	latinDurationPattern   = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*years?\s+of\s+([A-Za-z /-]{0,40}?)\s*experience`)
)

const (
	datePart    = `(\d{4})(?:\s*[./年]\s*(\d{1,2})\s*月?|-(0[1-9]|1[0-2])\b|年)?`
	presentPart = `(至今|现在|目前|[Pp]resent|[Nn]ow|[Cc]urrent)`
)

// dateRangePatterns share one group layout: 1-3 start, 4-6 end, 7 ongoing token, 8 bare 至今.
var dateRangePatterns = []*regexp.Regexp{
	dateRange(`\b`, `[~～]`),
	dateRange(`\b`, `(?:-|–|—|至|到)`),
	dateRange(`工作时间\s*[:：]\s*`, `(?:~|～|-|–|—|至|到)`),
	dateRange(`(?m)^\s*时间\s*[:：]\s*`, `(?:~|～|-|–|—|至|到)`),
}

func dateRange(prefix, sep string) *regexp.Regexp {
	return regexp.MustCompile(prefix + datePart + `\s*(?:` + sep + `\s*(?:` + datePart + `|` + presentPart + `)|(至今))`)
}

var (
	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[\p{Han}A-Za-z0-9（）()&]{2,30}?(?:股份有限公司|有限责任公司|有限公司|集团|公司|工作室)`),
		regexp.MustCompile(`\b[A-Z][A-Za-z0-9&.-]*(?: [A-Z][A-Za-z0-9&.-]*){0,4} (?:Inc\.?|LLC|Ltd\.?|Corp\.?|Corporation|Company|Technologies|Group|Labs)`),
	}

	headingPattern = regexp.MustCompile(`(?m)^#{1,6}[ \t]*(.+?)[ \t]*$`)

	positionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[\p{Han}A-Za-z0-9]{0,10}?(?:工程师|开发者|架构师|经理|总监|设计师|分析师|科学家|专员|主管|负责人|实习生|顾问|讲师|教师|研究员|创始人)`),
		regexp.MustCompile(`\b(?:[A-Z][A-Za-z+#.]* ){0,3}(?:Engineer|Developer|Architect|Manager|Designer|Analyst|Scientist|Consultant|Intern|Director|Lead|CTO|CEO)\b`),
	}

	achievementPattern  = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*%|提升|提高|增长|降低|减少|优化|获得|improv|increas|reduc|launch|achiev|award|saved`)
	sectionHeadingWords = []string{"经历", "经验", "教育", "技能", "项目", "简介", "评价", "联系", "experience", "education", "skills", "projects", "summary", "profile", "contact"}
	companyLeadMarkers  = []string{"就职于", "任职于", "于", "在", "：", ":"}
	positionLeadMarkers = []string{"担任", "任职", "职位", "岗位", "：", ":"}
)

// ExtractWorkExperience collects records from explicitly stated durations and from
// structured date ranges. Both paths append to the same list, so duplicates are possible.
func (p *Parser) ExtractWorkExperience(text string, lang types.Language) []types.WorkExperience {
	records := p.statedDurationRecords(text, lang)
	return append(records, p.dateRangeRecords(text, lang)...)
}

// durationMatch is one "<N> years of ... experience" phrase
type durationMatch struct {
	years  int
	phrase string
	text   string
	at     int
}

func findDurations(text string) []durationMatch {
	var found []durationMatch
	for _, m := range chineseDurationPattern.FindAllStringSubmatchIndex(text, -1) {
		n := parseCount(text[m[2]:m[3]])
		if n < minStatedYears || n > maxStatedYears {
			continue
		}
		found = append(found, durationMatch{years: n, phrase: text[m[4]:m[5]], text: text[m[2]:m[1]], at: m[2]})
	}
	for _, m := range latinDurationPattern.FindAllStringSubmatchIndex(text, -1) {
		n := parseCount(text[m[2]:m[3]])
		if n < minStatedYears || n > maxStatedYears {
			continue
		}
		found = append(found, durationMatch{years: n, phrase: text[m[4]:m[5]], text: text[m[0]:m[1]], at: m[0]})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].at < found[j].at })
	return found
}

func parseCount(s string) int {
	if n, ok := chineseNumerals[s]; ok {
		return n
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// StatedYears returns the first explicitly stated experience duration within 1 to 20 years.
func StatedYears(text string) (int, bool) {
	found := findDurations(text)
	if len(found) == 0 {
		return 0, false
	}
	return found[0].years, true
}

func (p *Parser) statedDurationRecords(text string, lang types.Language) []types.WorkExperience {
	year := p.now().Year()
	records := []types.WorkExperience{}
	for _, d := range findDurations(text) {
		records = append(records, types.WorkExperience{
			Company:      p.lex.Placeholders.Company.For(lang),
			Position:     p.roleTitle(positionFromPhrase(d.phrase), lang),
			StartDate:    strconv.Itoa(year - d.years),
			EndDate:      strconv.Itoa(year),
			Description:  []string{strings.TrimSpace(d.text)},
			Achievements: []string{},
		})
	}
	return records
}

// positionFromPhrase maps the words between the count and "experience" to a role.
func positionFromPhrase(phrase string) string {
	lower := strings.ToLower(phrase)
	frontend := containsAny(lower, "前端", "frontend", "front-end", "front end")
	backend := containsAny(lower, "后端", "backend", "back-end", "back end")
	switch {
	case containsAny(lower, "全栈", "full stack", "full-stack", "fullstack") || (frontend && backend):
		return "Full Stack Developer"
	case frontend:
		return "Frontend Developer"
	case backend:
		return "Backend Developer"
	default:
		return ""
	}
}

// roleTitle localizes an English role from the role dictionary, or returns the position placeholder.
func (p *Parser) roleTitle(role string, lang types.Language) string {
	if role == "" {
		return p.lex.Placeholders.Position.For(lang)
	}
	for _, pair := range p.lex.Roles {
		if pair.EN == role {
			if lang.IsChinese() {
				return pair.ZH
			}
			return pair.EN
		}
	}
	return role
}

func (p *Parser) dateRangeRecords(text string, lang types.Language) []types.WorkExperience {
	now := p.now()
	records := []types.WorkExperience{}

	for _, re := range dateRangePatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			group := func(n int) string {
				if m[2*n] < 0 {
					return ""
				}
				return text[m[2*n]:m[2*n+1]]
			}

			startYear, _ := strconv.Atoi(group(1))
			startMonth := parseMonth(group(2), group(3))

			ongoing := group(7) != "" || group(8) != ""
			endYear, endMonth := now.Year(), int(now.Month())
			if !ongoing {
				endYear, _ = strconv.Atoi(group(4))
				endMonth = parseMonth(group(5), group(6))
			}
			if startYear <= minStartYear || startYear > endYear {
				continue
			}

			endDate := p.lex.Placeholders.Present.For(lang)
			if !ongoing {
				endDate = formatDate(endYear, endMonth)
			}

			window, offset := runeWindow(text, m[0], m[1], experienceRadius)
			dateEnd := offset + m[1] - m[0]
			company := nearestMatch(window, offset, dateEnd, companyCandidates(window))
			position := nearestMatch(window, offset, dateEnd, positionCandidates(window))
			if company != "" {
				// "Acme Inc. Senior Engineer" is both a company and a title candidate.
				position = strings.TrimSpace(strings.TrimPrefix(position, company))
			} else {
				company = p.lex.Placeholders.Company.For(lang)
			}
			if position == "" {
				position = p.lex.Placeholders.Position.For(lang)
			}

			description := descriptionLines(window)
			records = append(records, types.WorkExperience{
				Company:      company,
				Position:     position,
				StartDate:    formatDate(startYear, startMonth),
				EndDate:      endDate,
				Description:  description,
				Achievements: achievementLines(description),
			})
		}
	}
	return records
}

func parseMonth(candidates ...string) int {
	for _, c := range candidates {
		if n, err := strconv.Atoi(c); err == nil && n >= 1 && n <= 12 {
			return n
		}
	}
	return 0
}

// formatDate renders "YYYY" or "YYYY.M"
func formatDate(year, month int) string {
	if month == 0 {
		return strconv.Itoa(year)
	}
	return strconv.Itoa(year) + "." + strconv.Itoa(month)
}

// candidate is a located match inside an experience window
type candidate struct {
	text    string
	at, end int
}

func companyCandidates(window string) []candidate {
	var out []candidate
	for _, re := range companyPatterns {
		for _, loc := range re.FindAllStringIndex(window, -1) {
			name := trimLeadIn(window[loc[0]:loc[1]], companyLeadMarkers...)
			if runeLen(name) >= 2 {
				out = append(out, candidate{text: name, at: loc[0], end: loc[1]})
			}
		}
	}
	for _, loc := range headingPattern.FindAllStringSubmatchIndex(window, -1) {
		heading := window[loc[2]:loc[3]]
		if isSectionHeading(heading) {
			continue
		}
		out = append(out, candidate{text: heading, at: loc[0], end: loc[1]})
	}
	return out
}

func positionCandidates(window string) []candidate {
	var out []candidate
	for _, re := range positionPatterns {
		for _, loc := range re.FindAllStringIndex(window, -1) {
			title := trimLeadIn(window[loc[0]:loc[1]], positionLeadMarkers...)
			if title != "" {
				out = append(out, candidate{text: title, at: loc[0], end: loc[1]})
			}
		}
	}
	return out
}

// nearestMatch picks the candidate closest to the date match spanning [start, end).
// Candidates on the date's own line rank before all others. A preceding candidate is
// measured from its end and a following one from its start; earlier candidates win ties.
func nearestMatch(window string, start, end int, candidates []candidate) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		dist, gap := 0, ""
		switch {
		case c.end <= start:
			dist, gap = start-c.end, window[c.end:start]
		case c.at >= end:
			dist, gap = c.at-end, window[end:c.at]
		}
		if strings.Contains(gap, "\n") {
			dist += len(window)
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && c.at < start) {
			best, bestDist = strings.TrimSpace(c.text), dist
		}
	}
	return best
}

func isSectionHeading(heading string) bool {
	return containsAny(strings.ToLower(heading), sectionHeadingWords...)
}

func descriptionLines(window string) []string {
	lines := []string{}
	for _, line := range splitLines(window) {
		line = trimBullet(line)
		if isMarkdownHeading(line) || runeLen(line) < minDescriptionRunes {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxDescriptionLines {
			break
		}
	}
	return lines
}

func achievementLines(description []string) []string {
	out := []string{}
	for _, line := range description {
		if achievementPattern.MatchString(line) {
			out = append(out, line)
		}
	}
	return out
}
