package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestExtractEducation_Chinese(t *testing.T) {
	text := "教育背景\n2015.9 - 2019.6 北京大学 计算机科学与技术专业 本科"

	records := newTestParser().ExtractEducation(text)

	require.Len(t, records, 1)
	assert.Equal(t, types.Education{
		Institution:    "北京大学",
		Degree:         "本科",
		Major:          "计算机科学与技术",
		GraduationYear: 2019,
	}, records[0])
}

func TestExtractEducation_EnglishOverlappingWindows(t *testing.T) {
	text := "EDUCATION\nStanford University\nBachelor of Science in Computer Science, 2018\nGPA: 3.8/4.0"

	records := newTestParser().ExtractEducation(text)

	// Both keyword lines see the same window.
	require.Len(t, records, 2)
	expected := types.Education{
		Institution:    "Stanford University",
		Degree:         "Bachelor of Science",
		Major:          "Computer Science",
		GraduationYear: 2018,
		GPA:            "3.8/4.0",
	}
	assert.Equal(t, expected, records[0])
	assert.Equal(t, expected, records[1])
}

func TestExtractEducation_LeadInTrimmed(t *testing.T) {
	records := newTestParser().ExtractEducation("2020年毕业于清华大学，硕士")

	require.Len(t, records, 1)
	assert.Equal(t, "清华大学", records[0].Institution)
	assert.Equal(t, "硕士", records[0].Degree)
	assert.Equal(t, 2020, records[0].GraduationYear)
}

func TestExtractEducation_NoKeywords(t *testing.T) {
	records := newTestParser().ExtractEducation("Built services in Go")

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestExtractEducation_RangeReportsEndYear(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "chinese range", text: "2016 - 2020 本科 浙江大学", want: 2020},
		{name: "end year first", text: "Master of Science, MIT\n2022 (enrolled 2020)", want: 2022},
		{name: "pre-2000 ignored", text: "1998 - 2002 Bachelor of Arts, Boston College", want: 2002},
		{name: "no year", text: "本科 浙江大学", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := newTestParser().ExtractEducation(tt.text)
			require.NotEmpty(t, records)
			assert.Equal(t, tt.want, records[0].GraduationYear)
		})
	}
}

func TestLatestYear(t *testing.T) {
	assert.Equal(t, 2021, latestYear("2017 - 2021"))
	assert.Equal(t, 0, latestYear("1999"))
	assert.Equal(t, 2012, latestYear("2012年毕业"))
}
