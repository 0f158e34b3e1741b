package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestStatedYears(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantYears int
		wantOK    bool
	}{
		{name: "chinese numeral", text: "五年前端开发经验", wantYears: 5, wantOK: true},
		{name: "ten as chinese numeral", text: "十年经验", wantYears: 10, wantOK: true},
		{name: "arabic with chinese", text: "5年工作经验", wantYears: 5, wantOK: true},
		{name: "qualifier", text: "3年以上的开发经验", wantYears: 3, wantOK: true},
		{name: "english", text: "5 years of experience", wantYears: 5, wantOK: true},
		{name: "english with plus and field", text: "10+ years of backend experience", wantYears: 10, wantOK: true},
		{name: "above bound", text: "30年经验", wantYears: 0, wantOK: false},
		{name: "calendar year is not a duration", text: "2019年加入，积累经验", wantYears: 0, wantOK: false},
		{name: "no phrase", text: "Senior engineer", wantYears: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, ok := StatedYears(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantYears, years)
		})
	}
}

func TestExtractWorkExperience_StatedDuration(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		lang     types.Language
		expected types.WorkExperience
	}{
		{
			name: "chinese frontend",
			text: "五年前端开发经验",
			lang: types.LanguageChinese,
			expected: types.WorkExperience{
				Company:      "未注明公司",
				Position:     "前端开发工程师",
				StartDate:    "2019",
				EndDate:      "2024",
				Description:  []string{"五年前端开发经验"},
				Achievements: []string{},
			},
		},
		{
			name: "english full stack",
			text: "5 years of full stack experience",
			lang: types.LanguageEnglish,
			expected: types.WorkExperience{
				Company:      "Unspecified Company",
				Position:     "Full Stack Developer",
				StartDate:    "2019",
				EndDate:      "2024",
				Description:  []string{"5 years of full stack experience"},
				Achievements: []string{},
			},
		},
		{
			name: "no role keyword",
			text: "8 years of experience",
			lang: types.LanguageEnglish,
			expected: types.WorkExperience{
				Company:      "Unspecified Company",
				Position:     "Software Engineer",
				StartDate:    "2016",
				EndDate:      "2024",
				Description:  []string{"8 years of experience"},
				Achievements: []string{},
			},
		},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := p.ExtractWorkExperience(tt.text, tt.lang)
			require.Len(t, records, 1)
			assert.Equal(t, tt.expected, records[0])
		})
	}
}

func TestExtractWorkExperience_DateRange(t *testing.T) {
	text := "工作经历\n深圳市腾讯计算机系统有限公司\n高级前端工程师\n2019.3 - 至今\n负责微信小程序核心模块开发，性能提升30%"

	records := newTestParser().ExtractWorkExperience(text, types.LanguageChinese)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "深圳市腾讯计算机系统有限公司", rec.Company)
	assert.Equal(t, "高级前端工程师", rec.Position)
	assert.Equal(t, "2019.3", rec.StartDate)
	assert.Equal(t, "至今", rec.EndDate)
	assert.Equal(t, []string{
		"深圳市腾讯计算机系统有限公司",
		"高级前端工程师",
		"2019.3 - 至今",
		"负责微信小程序核心模块开发，性能提升30%",
	}, rec.Description)
	assert.Equal(t, []string{"负责微信小程序核心模块开发，性能提升30%"}, rec.Achievements)
}

func TestExtractWorkExperience_Placeholders(t *testing.T) {
	records := newTestParser().ExtractWorkExperience("2018 ~ 2020", types.LanguageEnglish)

	require.Len(t, records, 1)
	assert.Equal(t, "Unspecified Company", records[0].Company)
	assert.Equal(t, "Software Engineer", records[0].Position)
	assert.Equal(t, "2018", records[0].StartDate)
	assert.Equal(t, "2020", records[0].EndDate)
}

func TestExtractWorkExperience_LabeledRangeIsDuplicated(t *testing.T) {
	records := newTestParser().ExtractWorkExperience("工作时间：2019年3月 至 2021年6月", types.LanguageChinese)

	// The generic and the labeled pattern both match the same range.
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "2019.3", rec.StartDate)
		assert.Equal(t, "2021.6", rec.EndDate)
	}
}

func TestExtractWorkExperience_SameLineAttribution(t *testing.T) {
	text := "Acme Inc. Senior Engineer 2001.1 - 2023.1\nGoogle LLC Junior Engineer 1995 - 2000"

	records := newTestParser().ExtractWorkExperience(text, types.LanguageEnglish)

	require.Len(t, records, 2)
	assert.Equal(t, "Acme Inc.", records[0].Company)
	assert.Equal(t, "Senior Engineer", records[0].Position)
	assert.Equal(t, "2001.1", records[0].StartDate)
	assert.Equal(t, "Google LLC", records[1].Company)
	assert.Equal(t, "Junior Engineer", records[1].Position)
	assert.Equal(t, "1995", records[1].StartDate)
}

func TestNearestMatch(t *testing.T) {
	window := "Acme Inc. 2019 - 2021\nGlobex Corp"
	start, end := 10, 21
	tests := []struct {
		name       string
		candidates []candidate
		want       string
	}{
		{name: "none", want: ""},
		{
			name: "same line beats closer next line",
			candidates: []candidate{
				{text: "Acme Inc.", at: 0, end: 9},
				{text: "Globex Corp", at: 22, end: 33},
			},
			want: "Acme Inc.",
		},
		{
			name: "preceding candidate measured from its end",
			candidates: []candidate{
				{text: "far", at: 0, end: 3},
				{text: "near", at: 2, end: 9},
			},
			want: "near",
		},
		{
			name: "overlap tie prefers the candidate starting first",
			candidates: []candidate{
				{text: "after", at: 12, end: 15},
				{text: "before", at: 8, end: 11},
			},
			want: "before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nearestMatch(window, start, end, tt.candidates))
		})
	}
}

func TestExtractWorkExperience_RejectedRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "start before 1991", text: "1985 - 1988"},
		{name: "start after end", text: "2021 - 2019"},
		{name: "no dates", text: "Worked on many things"},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := p.ExtractWorkExperience(tt.text, types.LanguageEnglish)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2020", formatDate(2020, 0))
	assert.Equal(t, "2020.7", formatDate(2020, 7))
}
