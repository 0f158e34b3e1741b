package lexicon

import (
	"regexp"
	"strings"
)

// Term matches one keyword case-insensitively. Keywords containing ASCII letters or digits
// must sit on word boundaries; pure CJK keywords match as substrings.
type Term struct {
	Text  string
	lower string
	re    *regexp.Regexp
}

// NewTerm compiles a keyword matcher.
func NewTerm(text string) Term {
	t := Term{Text: text, lower: strings.ToLower(text)}
	if hasASCIIAlnum(text) {
		t.re = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])` + regexp.QuoteMeta(text) + `(?:$|[^a-z0-9])`)
	}
	return t
}

// NewTerms compiles a list of keywords, preserving order.
func NewTerms(texts []string) []Term {
	terms := make([]Term, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		terms = append(terms, NewTerm(text))
	}
	return terms
}

// Match reports whether the keyword occurs in s.
func (t Term) Match(s string) bool {
	if t.re != nil {
		return t.re.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), t.lower)
}

// AnyMatch reports whether any of the terms occurs in s.
func AnyMatch(terms []Term, s string) bool {
	for _, t := range terms {
		if t.Match(s) {
			return true
		}
	}
	return false
}

// CountMatches returns how many distinct terms occur in s.
func CountMatches(terms []Term, s string) int {
	n := 0
	for _, t := range terms {
		if t.Match(s) {
			n++
		}
	}
	return n
}

// Matched returns the text of every term found in s, in term order.
func Matched(terms []Term, s string) []string {
	var found []string
	for _, t := range terms {
		if t.Match(s) {
			found = append(found, t.Text)
		}
	}
	return found
}

func hasASCIIAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return true
		}
	}
	return false
}
