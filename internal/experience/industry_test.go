package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestClassifyIndustry(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "technology keyword", text: "Built SaaS products", expected: "Technology"},
		{name: "finance keyword", text: "Payments at a Bank", expected: "Finance"},
		{name: "priority order", text: "银行 游戏", expected: "Finance"},
		{name: "chinese gaming", text: "某游戏公司", expected: "Gaming"},
		{name: "e-commerce", text: "电商平台", expected: "E-commerce"},
		{name: "healthcare", text: "hospital systems", expected: "Healthcare"},
		{name: "default", text: "carpentry", expected: "Technology"},
		{name: "word boundary", text: "endgame planning", expected: "Technology"},
	}

	lex := lexicon.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyIndustry(tt.text, lex))
		})
	}
}

func TestProfileText(t *testing.T) {
	records := []types.WorkExperience{
		{Company: "Acme", Position: "Engineer", Description: []string{"built things"}, Achievements: []string{"shipped"}},
	}

	assert.Equal(t, "Acme Engineer built things shipped Go", ProfileText(records, []string{"Go"}))
	assert.Equal(t, "Acme Engineer built things shipped", RecordText(records[0]))
}
