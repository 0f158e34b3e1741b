// Package language selects the analysis track of a résumé from its character mix.
package language

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// cjkThreshold is the CJK share above which a text is analysed on the Chinese track.
const cjkThreshold = 0.10

// CJKRatio returns the share of CJK ideographs among all characters of text.
func CJKRatio(text string) float64 {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return 0
	}
	cjk := 0
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			cjk++
		}
	}
	return float64(cjk) / float64(total)
}

// Detect returns the Chinese track when the CJK ratio exceeds the threshold,
// otherwise the English track.
func Detect(text string) types.Language {
	if CJKRatio(text) > cjkThreshold {
		return types.LanguageChinese
	}
	return types.LanguageEnglish
}

// Tag returns the BCP 47 tag for a track.
func Tag(lang types.Language) language.Tag {
	if lang.IsChinese() {
		return language.SimplifiedChinese
	}
	return language.English
}
