// Package ingestion turns résumé documents into the clean plain text the analyzer expects.
package ingestion

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

var (
	spaceRunPattern  = regexp.MustCompile(`[ \t\x{00A0}\x{3000}]+`)
	blankLinePattern = regexp.MustCompile(`\n\n\n+`)

	// A token split across lines with a trailing hyphen. Emails and URLs are rejoined
	// without the hyphen; phone numbers keep it.
	splitEmailPattern = regexp.MustCompile(`([\w.+-]+@[\w.-]*)-\n\s*([\w.-]+)`)
	splitURLPattern   = regexp.MustCompile(`((?:https?://|www\.)\S*)-\n\s*(\S+)`)
	splitPhonePattern = regexp.MustCompile(`(\+?\d[\d ]{1,14})-\n\s*(\d)`)
)

// foldWide maps full-width ASCII letters, digits and address punctuation to their
// narrow forms. CJK punctuation such as "，" and "：" is left alone.
// The returned transformer is stateful, so each call gets its own.
func foldWide() transform.Transformer {
	return runes.If(runes.Predicate(isFoldable), width.Fold, nil)
}

func isFoldable(r rune) bool {
	if r < 0xFF01 || r > 0xFF5E {
		return false
	}
	narrow := r - 0xFF01 + '!'
	return unicode.IsLetter(narrow) || unicode.IsDigit(narrow) || strings.ContainsRune("@.-_/+#", narrow)
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Fold full-width alphanumerics so addresses and numbers match
	if folded, _, err := transform.String(foldWide(), content); err == nil {
		content = folded
	}

	// 3. Clean each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	// 4. Rejoin contact tokens broken across lines
	result = rejoinSplitTokens(result)

	// 5. Remove excessive blank lines (max 2 consecutive)
	result = blankLinePattern.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t　")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t　")
	if strings.HasPrefix(trimmed, "#") {
		return spaceRunPattern.ReplaceAllString(trimmed, " ")
	}

	// Bullets keep their indentation
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + spaceRunPattern.ReplaceAllString(trimmed, " ")
	}

	return spaceRunPattern.ReplaceAllString(trimmed, " ")
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

func rejoinSplitTokens(s string) string {
	s = splitEmailPattern.ReplaceAllString(s, "$1$2")
	s = splitURLPattern.ReplaceAllString(s, "$1$2")
	return splitPhonePattern.ReplaceAllString(s, "$1-$2")
}
