package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitLines splits text into lines without dropping blanks.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// nonBlankLines returns trimmed non-empty lines.
func nonBlankLines(text string) []string {
	var out []string
	for _, line := range splitLines(text) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func hanCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			n++
		}
	}
	return n
}

// truncateRunes cuts s to at most n characters.
func truncateRunes(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// runeWindow returns text[start:end] widened by radius characters on each side.
func runeWindow(text string, start, end, radius int) (string, int) {
	lo := start
	for n := 0; n < radius && lo > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for n := 0; n < radius && hi < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return text[lo:hi], start - lo
}

// trimBullet removes list markers from the start of a line.
func trimBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"- ", "* ", "• ", "· ", "-", "•", "·"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}

func isMarkdownHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// appendUnique appends s to list if it is non-empty and not already present.
func appendUnique(list []string, s string) []string {
	if s == "" {
		return list
	}
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// trimLeadIn drops everything up to the last lead-in marker, e.g. "毕业于清华大学" -> "清华大学".
func trimLeadIn(s string, markers ...string) string {
	for _, m := range markers {
		if i := strings.LastIndex(s, m); i >= 0 {
			s = s[i+len(m):]
		}
	}
	return strings.TrimSpace(s)
}
