// Package lexicon provides the keyword tables behind extraction and classification.
// Tables are stored as YAML, embedded at compile time, and can be replaced by an override file.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon holds every keyword table used by the analyzer
type Lexicon struct {
	ResumeHeaderWords []string     `yaml:"resume_header_words"`
	DurationMarkers   []string     `yaml:"duration_markers"`
	EducationKeywords []string     `yaml:"education_keywords"`
	Cities            []string     `yaml:"cities"`
	PresentTokens     []string     `yaml:"present_tokens"`
	TechTerms         []string     `yaml:"tech_terms"`
	ChineseTechTerms  []TermLabel  `yaml:"chinese_tech_terms"`
	SoftSkills        []LabeledSet `yaml:"soft_skills"`
	Certifications    []LabeledSet `yaml:"certifications"`
	SpokenLanguages   []LabeledSet `yaml:"spoken_languages"`
	Industries        []Industry   `yaml:"industries"`
	DefaultIndustry   string       `yaml:"default_industry"`
	AITags            []TagFamily  `yaml:"ai_tags"`
	AITagRules        AITagRules   `yaml:"ai_tag_rules"`
	Roles             []RolePair   `yaml:"roles"`
	RoleBuckets       RoleBuckets  `yaml:"role_buckets"`
	SeniorityLadders  [][]string   `yaml:"seniority_ladders"`
	ProjectLiterals   []string     `yaml:"project_literals"`
	Placeholders      Placeholders `yaml:"placeholders"`

	techTerms      []Term
	educationTerms []Term
	headerTerms    []Term
	strongTitles   []Term
	bucketTerms    map[string][]Term
	ladderTerms    [][]Term
}

// TermLabel maps a source term to an output label
type TermLabel struct {
	Term  string `yaml:"term"`
	Label string `yaml:"label"`
}

// LabeledSet is a label plus the keywords that evidence it
type LabeledSet struct {
	Label    string   `yaml:"label"`
	LabelZh  string   `yaml:"label_zh"`
	Keywords []string `yaml:"keywords"`
	terms    []Term
}

// Industry is one industry keyword set
type Industry struct {
	Name     string   `yaml:"name"`
	NameZh   string   `yaml:"name_zh"`
	Keywords []string `yaml:"keywords"`
	terms    []Term
}

// TagFamily is the keyword family scored for one AI tag
type TagFamily struct {
	Tag      types.AITag `yaml:"tag"`
	Keywords []string    `yaml:"keywords"`
	terms    []Term
}

// AITagRules configures the weighting and short-circuit of AI-tag scoring
type AITagRules struct {
	WeightedTag  types.AITag `yaml:"weighted_tag"`
	Weight       int         `yaml:"weight"`
	Threshold    int         `yaml:"threshold"`
	DefaultTag   types.AITag `yaml:"default_tag"`
	StrongTitles []string    `yaml:"strong_titles"`
}

// RolePair is one entry of the bidirectional role dictionary
type RolePair struct {
	EN string `yaml:"en"`
	ZH string `yaml:"zh"`
}

// RoleBuckets groups technical keywords used to infer a role when no experience exists
type RoleBuckets struct {
	Web3     []string `yaml:"web3"`
	Frontend []string `yaml:"frontend"`
	Backend  []string `yaml:"backend"`
}

// Localized is a pair of language-specific strings
type Localized struct {
	EN string `yaml:"en"`
	ZH string `yaml:"zh"`
}

// For returns the string for the given language track.
func (l Localized) For(lang types.Language) string {
	if lang.IsChinese() {
		return l.ZH
	}
	return l.EN
}

// Placeholders holds the generic values used when a field cannot be found
type Placeholders struct {
	Company  Localized `yaml:"company"`
	Position Localized `yaml:"position"`
	Present  Localized `yaml:"present"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the embedded lexicon. It panics if the embedded tables are invalid,
// which can only happen through a broken build.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = Load(defaultLexicon)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("failed to load embedded lexicon: %v", defaultErr))
	}
	return defaultLex
}

// Load parses lexicon YAML and compiles its matchers.
func Load(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, &LoadError{Message: "failed to parse lexicon YAML", Cause: err}
	}
	if err := lex.validate(); err != nil {
		return nil, err
	}
	lex.compile()
	return &lex, nil
}

// LoadFile reads a lexicon override from disk.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read lexicon file %s", path), Cause: err}
	}
	return Load(data)
}

func (l *Lexicon) validate() error {
	switch {
	case len(l.Industries) == 0:
		return &LoadError{Message: "industries table is empty"}
	case len(l.AITags) == 0:
		return &LoadError{Message: "ai_tags table is empty"}
	case len(l.TechTerms) == 0:
		return &LoadError{Message: "tech_terms table is empty"}
	case l.AITagRules.DefaultTag == "":
		return &LoadError{Message: "ai_tag_rules.default_tag is required"}
	}
	if l.AITagRules.Weight <= 0 {
		l.AITagRules.Weight = 1
	}
	if l.DefaultIndustry == "" {
		l.DefaultIndustry = l.Industries[0].Name
	}
	return nil
}

func (l *Lexicon) compile() {
	l.techTerms = NewTerms(l.TechTerms)
	l.educationTerms = NewTerms(l.EducationKeywords)
	l.headerTerms = NewTerms(l.ResumeHeaderWords)
	l.strongTitles = NewTerms(l.AITagRules.StrongTitles)
	l.bucketTerms = map[string][]Term{
		"web3":     NewTerms(l.RoleBuckets.Web3),
		"frontend": NewTerms(l.RoleBuckets.Frontend),
		"backend":  NewTerms(l.RoleBuckets.Backend),
	}
	l.ladderTerms = make([][]Term, 0, len(l.SeniorityLadders))
	for _, ladder := range l.SeniorityLadders {
		l.ladderTerms = append(l.ladderTerms, NewTerms(ladder))
	}
	for i := range l.SoftSkills {
		l.SoftSkills[i].terms = NewTerms(l.SoftSkills[i].Keywords)
	}
	for i := range l.Certifications {
		l.Certifications[i].terms = NewTerms(l.Certifications[i].Keywords)
	}
	for i := range l.SpokenLanguages {
		l.SpokenLanguages[i].terms = NewTerms(l.SpokenLanguages[i].Keywords)
	}
	for i := range l.Industries {
		l.Industries[i].terms = NewTerms(l.Industries[i].Keywords)
	}
	for i := range l.AITags {
		l.AITags[i].terms = NewTerms(l.AITags[i].Keywords)
	}
}

// Terms returns the compiled keyword matchers of a labeled set.
func (s LabeledSet) Terms() []Term { return s.terms }

// Terms returns the compiled keyword matchers of an industry.
func (i Industry) Terms() []Term { return i.terms }

// Terms returns the compiled keyword matchers of a tag family.
func (f TagFamily) Terms() []Term { return f.terms }

// TechMatchers returns the compiled technical vocabulary in table order.
func (l *Lexicon) TechMatchers() []Term { return l.techTerms }

// EducationTerms returns the compiled education keywords.
func (l *Lexicon) EducationTerms() []Term { return l.educationTerms }

// HeaderTerms returns the compiled résumé header words.
func (l *Lexicon) HeaderTerms() []Term { return l.headerTerms }

// StrongTitles returns the compiled developer-title literals.
func (l *Lexicon) StrongTitles() []Term { return l.strongTitles }

// BucketTerms returns the compiled keywords of a role bucket (web3, frontend, backend).
func (l *Lexicon) BucketTerms(bucket string) []Term { return l.bucketTerms[bucket] }

// LadderTerms returns the compiled seniority ladders, each ordered from lowest to highest rank.
func (l *Lexicon) LadderTerms() [][]Term { return l.ladderTerms }

// IndustryName returns the display name of an industry for the given language track.
func (l *Lexicon) IndustryName(name string, lang types.Language) string {
	if !lang.IsChinese() {
		return name
	}
	for _, ind := range l.Industries {
		if ind.Name == name && ind.NameZh != "" {
			return ind.NameZh
		}
	}
	return name
}

// IsPresentToken reports whether s denotes an ongoing period.
func (l *Lexicon) IsPresentToken(s string) bool {
	for _, tok := range l.PresentTokens {
		if strings.EqualFold(strings.TrimSpace(s), tok) {
			return true
		}
	}
	return false
}
