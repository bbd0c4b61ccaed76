package transcript

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// timestamps such as 1234_5678 (media bullets)
	timestampRe = regexp.MustCompile(`\d+_\d+`)

	censusRe = regexp.MustCompile(`\[[^\]]*\]|\b\d+\b|\bxxx\b`)
	markupRe = regexp.MustCompile(`\[[^\]]*\]|\b(?:xxx|www|0)\b|&=|[/=]`)
)

// CensusClean strips timestamps, bracketed codes, bare numbers and the
// unintelligible-speech token "xxx". Punctuation is left alone, so a turn
// holding only a terminator still has text.
func CensusClean(text string) string {
	text = timestampRe.ReplaceAllString(text, "")
	text = censusRe.ReplaceAllString(text, "")
	return collapseSpace(text)
}

// FullClean strips timestamps, bracketed codes, the xxx/www/0 placeholder
// tokens, retracing and event markup, and every character other than
// letters, digits, whitespace and . , ! ? - '.
//
// Removing markup can join fragments into a new removable token ("x/xx"
// becomes "xxx"), so the pass is repeated until the text stops changing.
// FullClean(FullClean(s)) == FullClean(s) for every s.
func FullClean(text string) string {
	for {
		next := fullCleanPass(text)
		if next == text {
			return next
		}
		text = next
	}
}

func fullCleanPass(text string) string {
	text = timestampRe.ReplaceAllString(text, "")
	text = markupRe.ReplaceAllString(text, "")
	text = strings.Map(keepRune, text)
	return collapseSpace(text)
}

func keepRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return r
	}
	switch r {
	case '.', ',', '!', '?', '-', '\'':
		return r
	}
	return -1
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// substantive reports whether cleaned text is longer than one character.
func substantive(clean string) bool {
	return utf8.RuneCountInString(clean) > 1
}
