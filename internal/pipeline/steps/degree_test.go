package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreeRank(t *testing.T) {
	tests := []struct {
		degree string
		want   int
	}{
		{"Associate Degree", 1},
		{"大专", 1},
		{"Bachelor of Science", 2},
		{"本科", 2},
		{"Master", 3},
		{"MBA", 3},
		{"硕士研究生", 3},
		{"Ph.D.", 4},
		{"博士", 4},
		{"Diploma", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.degree, func(t *testing.T) {
			assert.Equal(t, tt.want, DegreeRank(tt.degree))
		})
	}
}

func TestHighestDegree(t *testing.T) {
	assert.Equal(t, "PhD", HighestDegree([]string{"Bachelor", "PhD", "Master"}))
	assert.Equal(t, "Bachelor", HighestDegree([]string{"Bachelor", "B.S."}))
	assert.Equal(t, "Diploma", HighestDegree([]string{"Diploma"}))
	assert.Equal(t, "", HighestDegree(nil))
}
