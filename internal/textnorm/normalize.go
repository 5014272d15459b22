// Package textnorm provides the text normalization levels used throughout
// the evaluation metrics. All functions are pure and locale-independent
// beyond Unicode normalization and code-point ordering.
package textnorm

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Strict applies Unicode canonical composition (NFC) only, preserving all
// whitespace, punctuation, and casing. Use it when exact formatting matters.
func Strict(text string) string {
	return norm.NFC.String(text)
}

// Standard applies NFC, collapses every run of whitespace to a single ASCII
// space, and trims leading and trailing whitespace. This removes formatting
// differences (newlines vs spaces) while preserving actual content.
func Standard(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// LettersOnly applies NFC and keeps only Unicode word characters: letters,
// digits, and underscore. All whitespace and punctuation is removed while
// diacritics and casing survive. This is the most lenient level, measuring
// pure character recognition quality.
func LettersOnly(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFC.String(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TokenSort splits text on whitespace, sorts the tokens by code point, and
// rejoins them with single spaces. Comparing token-sorted documents removes
// the impact of reading order on text similarity.
func TokenSort(text string) string {
	tokens := strings.Fields(text)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
