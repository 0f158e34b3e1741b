// Package experience derives metrics from extracted work-experience records:
// total years, industry and career progression.
package experience

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var yearMonthPattern = regexp.MustCompile(`(\d{4})(?:\s*[./\-年]\s*(\d{1,2}))?`)

// YearMonth is a calendar month used for span arithmetic
type YearMonth struct {
	Year  int
	Month int
}

// Months returns the number of months since year zero.
func (ym YearMonth) Months() int {
	return ym.Year*12 + ym.Month - 1
}

// Before reports whether ym is earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Months() < other.Months()
}

// Period is one normalized employment span
type Period struct {
	Start YearMonth
	End   YearMonth
}

// ParseDate normalizes a loosely formatted date. A missing month is January and
// ongoing tokens resolve to now. It reports false when no year can be found.
func ParseDate(s string, lex *lexicon.Lexicon, now time.Time) (YearMonth, bool) {
	if lex.IsPresentToken(s) {
		return YearMonth{Year: now.Year(), Month: int(now.Month())}, true
	}
	m := yearMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return YearMonth{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month := 1
	if m[2] != "" {
		if n, err := strconv.Atoi(m[2]); err == nil && n >= 1 && n <= 12 {
			month = n
		}
	}
	return YearMonth{Year: year, Month: month}, true
}

// Periods normalizes every record with a parseable start and end, sorted by start.
// The records themselves are never modified.
func Periods(records []types.WorkExperience, lex *lexicon.Lexicon, now time.Time) []Period {
	periods := make([]Period, 0, len(records))
	for _, rec := range records {
		start, ok := ParseDate(rec.StartDate, lex, now)
		if !ok {
			continue
		}
		end, ok := ParseDate(rec.EndDate, lex, now)
		if !ok {
			continue
		}
		periods = append(periods, Period{Start: start, End: end})
	}
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})
	return periods
}

// startYear returns the leading year of a date string, or 0.
func startYear(s string) int {
	m := yearMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	year, _ := strconv.Atoi(m[1])
	return year
}
