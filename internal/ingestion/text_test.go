package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "  # Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Equal(t, "# Title\n## Subtitle\nContent here", result)
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n  * Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "  * Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii spaces", input: "Line    with    multiple    spaces", want: "Line with multiple spaces"},
		{name: "tabs", input: "React\t\tTypeScript", want: "React TypeScript"},
		{name: "ideographic space", input: "前端　　开发", want: "前端 开发"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")
	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_FoldsFullWidth(t *testing.T) {
	result := CleanText("邮箱：ｚｈａｎｇ＠ｅｘａｍｐｌｅ．ｃｏｍ\n电话：１３８００１３８０００")

	assert.Equal(t, "邮箱：zhang@example.com\n电话：13800138000", result)
}

func TestCleanText_RejoinsSplitTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "email", input: "zhang.wei@exam-\nple.com", want: "zhang.wei@example.com"},
		{name: "url", input: "https://github.com/zhang-\nwei", want: "https://github.com/zhangwei"},
		{name: "phone keeps hyphen", input: "Tel 138-\n0013-8000", want: "Tel 138-0013-8000"},
		{name: "prose untouched", input: "front-\nend", want: "front-\nend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters，中文标点"
	assert.Equal(t, input, CleanText(input))
}
