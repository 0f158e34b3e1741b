package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestYearsOfExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		records  []types.WorkExperience
		expected int
	}{
		{
			name:     "no records",
			text:     "",
			records:  nil,
			expected: 0,
		},
		{
			name: "stated chinese duration wins over ranges",
			text: "5年工作经验",
			records: []types.WorkExperience{
				{StartDate: "2005", EndDate: "2024"},
			},
			expected: 5,
		},
		{
			name: "stated english duration wins over ranges",
			text: "5 years of experience",
			records: []types.WorkExperience{
				{StartDate: "2010.1", EndDate: "Present"},
			},
			expected: 5,
		},
		{
			name: "span is capped",
			text: "",
			records: []types.WorkExperience{
				{StartDate: "1990", EndDate: "2024"},
			},
			expected: 15,
		},
		{
			name: "earliest start to latest end across overlaps",
			text: "",
			records: []types.WorkExperience{
				{StartDate: "2018.6", EndDate: "2020.6"},
				{StartDate: "2016.6", EndDate: "2019.1"},
				{StartDate: "2020.7", EndDate: "2022.5"},
			},
			expected: 5,
		},
		{
			name: "ongoing resolves to now",
			text: "",
			records: []types.WorkExperience{
				{StartDate: "2021.6", EndDate: "至今"},
			},
			expected: 3,
		},
		{
			name: "partial year floors",
			text: "",
			records: []types.WorkExperience{
				{StartDate: "2022.1", EndDate: "2023.11"},
			},
			expected: 1,
		},
		{
			name: "inverted range is zero",
			text: "",
			records: []types.WorkExperience{
				{StartDate: "2023", EndDate: "2020"},
			},
			expected: 0,
		},
	}

	lex := lexicon.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YearsOfExperience(tt.text, tt.records, lex, testNow))
		})
	}
}
