package utils

import (
	"regexp"
	"strings"
)

// Reply language codes
const (
	LangArabic  = "ar"
	LangEnglish = "en"
	LangMixed   = "mixed"
)

var (
	arabicPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}]`)
	latinPattern  = regexp.MustCompile(`[A-Za-z]`)
)

// DetectReplyLanguage classifies a prospect reply by script. Mostly Arabic
// characters means "ar", mostly Latin means "en", a real mix of both means
// "mixed". Empty or scriptless text defaults to "en".
func DetectReplyLanguage(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return LangEnglish
	}

	runes := float64(len([]rune(text)))
	arabicRatio := float64(len(arabicPattern.FindAllString(text, -1))) / runes
	latinRatio := float64(len(latinPattern.FindAllString(text, -1))) / runes

	switch {
	case arabicRatio > 0.1 && latinRatio > 0.1:
		return LangMixed
	case arabicRatio > 0.1:
		return LangArabic
	case arabicRatio > 0 && arabicRatio >= latinRatio:
		return LangArabic
	default:
		return LangEnglish
	}
}
