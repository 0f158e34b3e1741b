// Package parsing extracts structured résumé entities from cleaned plain text.
//
// Extractors never fail: a pattern that finds nothing leaves the field at its zero value.
package parsing

import (
	"time"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Parser runs the entity extractors against one lexicon and clock
type Parser struct {
	lex *lexicon.Lexicon
	now func() time.Time
}

// Option configures a Parser
type Option func(*Parser)

// WithClock sets the clock used to resolve "present" and stated durations.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// NewParser creates a parser. A nil lexicon selects the embedded default.
func NewParser(lex *lexicon.Lexicon, opts ...Option) *Parser {
	if lex == nil {
		lex = lexicon.Default()
	}
	p := &Parser{lex: lex, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lexicon returns the tables the parser matches against.
func (p *Parser) Lexicon() *lexicon.Lexicon {
	return p.lex
}

// Parse runs every extractor and assembles the results.
func (p *Parser) Parse(text string, lang types.Language) *types.ParsedResume {
	return &types.ParsedResume{
		PersonalInfo:   p.ExtractPersonalInfo(text),
		Education:      p.ExtractEducation(text),
		WorkExperience: p.ExtractWorkExperience(text, lang),
		Projects:       p.ExtractProjects(text),
		Skills:         p.ExtractSkills(text, lang),
		Certifications: p.ExtractCertifications(text),
		Languages:      p.ExtractLanguages(text),
		Language:       lang,
	}
}
