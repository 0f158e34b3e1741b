package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestLatestEducation(t *testing.T) {
	tests := []struct {
		name     string
		records  []types.Education
		lang     types.Language
		expected string
	}{
		{
			name:     "none chinese",
			lang:     types.LanguageChinese,
			expected: "未注明教育背景",
		},
		{
			name:     "none english",
			lang:     types.LanguageEnglish,
			expected: "Education not specified",
		},
		{
			name: "chinese sentence",
			records: []types.Education{
				{Institution: "北京大学", Major: "计算机科学与技术", Degree: "本科", GraduationYear: 2019},
			},
			lang:     types.LanguageChinese,
			expected: "北京大学 计算机科学与技术 本科，2019年毕业",
		},
		{
			name: "english sentence",
			records: []types.Education{
				{Institution: "Stanford University", Degree: "Bachelor of Science", Major: "Computer Science", GraduationYear: 2018},
			},
			lang:     types.LanguageEnglish,
			expected: "Bachelor of Science in Computer Science, Stanford University (2018)",
		},
		{
			name: "highest year with first tie kept",
			records: []types.Education{
				{Institution: "A College", GraduationYear: 2016},
				{Institution: "B University", GraduationYear: 2020},
				{Institution: "C Institute", GraduationYear: 2020},
			},
			lang:     types.LanguageEnglish,
			expected: "B University (2020)",
		},
		{
			name: "no year",
			records: []types.Education{
				{Degree: "MBA"},
			},
			lang:     types.LanguageEnglish,
			expected: "MBA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LatestEducation(tt.records, tt.lang))
		})
	}
}
