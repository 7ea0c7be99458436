package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Labeler derives the source-language label of a field from its name. The
// label doubles as the fallback text of the field's label key.
type Labeler func(name string) string

// DefaultLabeler splits name on separators and case or digit boundaries and
// title-cases each word: "ownerEmail" gives "Owner Email", "address_line2"
// gives "Address Line 2". All-caps runs are kept as acronyms, so "userID"
// gives "User ID" and "HTTPServer" gives "HTTP Server".
//
// A cases.Caser carries state and is not safe for concurrent use, so each
// call gets its own.
func DefaultLabeler(name string) string {
	caser := cases.Title(language.Und)
	words := splitWords(name)
	for i, word := range words {
		if isAcronym(word) {
			continue
		}
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}

func isAcronym(word string) bool {
	letters := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters > 1
}

func splitWords(name string) []string {
	var (
		words   []string
		current []rune
		prev    rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	for _, r := range name {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			prev = 0
			continue
		}
		if prev != 0 && wordBoundary(prev, r) {
			flush()
		}
		current = append(current, r)
		prev = r
	}
	flush()
	return splitAcronyms(words)
}

// splitAcronyms moves the last capital of an all-caps run onto the word it
// starts: "HTTPServer" becomes "HTTP", "Server".
func splitAcronyms(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		runes := []rune(word)
		cut := 0
		for i := 1; i+1 < len(runes); i++ {
			if unicode.IsUpper(runes[i-1]) && unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i+1]) {
				cut = i
			}
		}
		if cut == 0 {
			out = append(out, word)
			continue
		}
		out = append(out, string(runes[:cut]), string(runes[cut:]))
	}
	return out
}

func wordBoundary(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}
