package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestExtractSkills(t *testing.T) {
	text := "熟练使用 React、Vue 和 Golang，具备良好的沟通能力和团队合作精神"

	tests := []struct {
		name         string
		lang         types.Language
		expectedSoft []string
	}{
		{name: "chinese labels", lang: types.LanguageChinese, expectedSoft: []string{"沟通能力", "团队协作"}},
		{name: "english labels", lang: types.LanguageEnglish, expectedSoft: []string{"Communication", "Teamwork"}},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := p.ExtractSkills(text, tt.lang)
			require.Len(t, skills, 2)

			assert.Equal(t, types.SkillCategoryTechnical, skills[0].Category)
			assert.Equal(t, []string{"React", "Vue", "Go"}, skills[0].Items)
			assert.Equal(t, types.ProficiencyIntermediate, skills[0].Proficiency)

			assert.Equal(t, types.SkillCategorySoft, skills[1].Category)
			assert.Equal(t, tt.expectedSoft, skills[1].Items)
			assert.Equal(t, types.ProficiencyIntermediate, skills[1].Proficiency)
		})
	}
}

func TestExtractSkills_ChineseTermLabels(t *testing.T) {
	skills := newTestParser().ExtractSkills("五年前端开发经验，熟悉区块链", types.LanguageChinese)

	require.Len(t, skills, 1)
	assert.Equal(t, []string{"Frontend Development", "Blockchain"}, skills[0].Items)
}

func TestExtractSkills_WordBoundary(t *testing.T) {
	skills := newTestParser().ExtractSkills("JavaScript only", types.LanguageEnglish)

	require.Len(t, skills, 1)
	assert.Equal(t, []string{"JavaScript"}, skills[0].Items)
}

func TestExtractSkills_None(t *testing.T) {
	skills := newTestParser().ExtractSkills("做饭 and gardening", types.LanguageEnglish)

	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestExtractCertifications(t *testing.T) {
	certs := newTestParser().ExtractCertifications("PMP certified, CET-6, 英语六级")
	assert.Equal(t, []string{"PMP", "CET-6"}, certs)

	assert.Equal(t, []string{}, newTestParser().ExtractCertifications("none"))
}

func TestExtractLanguages(t *testing.T) {
	langs := newTestParser().ExtractLanguages("English (fluent), 普通话")
	assert.Equal(t, []string{"English", "Mandarin"}, langs)
}
