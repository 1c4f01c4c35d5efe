package question

import "strings"

// ignoredPunctuation lists the characters dropped before comparing answers.
const ignoredPunctuation = `.,!?;:'"`

// Normalize canonicalizes an answer for comparison: ignored punctuation is
// removed, whitespace runs collapse to one space, the result is trimmed and
// lowercased. Accents are preserved.
func Normalize(value string) string {
	if value == "" {
		return ""
	}
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(ignoredPunctuation, r) {
			return -1
		}
		return r
	}, value)
	return strings.ToLower(strings.Join(strings.Fields(stripped), " "))
}
