package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const sampleResume = "Zhang Wei\nzhang@example.com\n深圳\n五年前端开发经验\n### 项目经历\nNFT商城开发，使用 React, TypeScript"

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestParser() *Parser {
	return NewParser(nil, WithClock(fixedClock))
}

func TestParse_SampleResume(t *testing.T) {
	parsed := newTestParser().Parse(sampleResume, types.LanguageChinese)
	require.NotNil(t, parsed)

	assert.Equal(t, types.LanguageChinese, parsed.Language)
	assert.Equal(t, "Zhang Wei", parsed.PersonalInfo.Name)
	assert.Equal(t, "zhang@example.com", parsed.PersonalInfo.Email)
	assert.Equal(t, "深圳", parsed.PersonalInfo.Location)

	require.Len(t, parsed.WorkExperience, 1)
	assert.Equal(t, "2019", parsed.WorkExperience[0].StartDate)
	assert.Equal(t, "2024", parsed.WorkExperience[0].EndDate)

	require.Len(t, parsed.Projects, 1)
	assert.Equal(t, "NFT商城开发", parsed.Projects[0].Name)
	assert.Contains(t, parsed.Projects[0].Technologies, "React")
	assert.Contains(t, parsed.Projects[0].Technologies, "TypeScript")

	tech := parsed.SkillItems(types.SkillCategoryTechnical)
	assert.Contains(t, tech, "React")
	assert.Contains(t, tech, "TypeScript")
	assert.Contains(t, tech, "Frontend Development")

	assert.NotNil(t, parsed.Education)
	assert.NotNil(t, parsed.Certifications)
	assert.NotNil(t, parsed.Languages)
}

func TestParse_EmptyText(t *testing.T) {
	parsed := newTestParser().Parse("", types.LanguageEnglish)

	assert.Empty(t, parsed.PersonalInfo.Name)
	assert.Empty(t, parsed.Education)
	assert.Empty(t, parsed.WorkExperience)
	assert.Empty(t, parsed.Projects)
	assert.Empty(t, parsed.Skills)
	assert.NotNil(t, parsed.Skills)
}

func TestNewParser_DefaultsToEmbeddedLexicon(t *testing.T) {
	p := NewParser(nil)
	assert.NotNil(t, p.Lexicon())
	assert.NotNil(t, p.now)
}
