// Package wordlist provides word filtering helpers.
package wordlist

import (
	"unicode"
	"unicode/utf8"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLetter returns a filter accepting words that start with letter
// (any case) and contain only ASCII letters, spaces and hyphens.
func FilterForLetter(letter rune) FilterFunc {
	letter = unicode.ToUpper(letter)
	return func(word string) bool {
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.ToUpper(first) != letter {
			return false
		}
		return filterASCIIWord(word)
	}
}

func filterASCIIWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == ' ', ch == '-':
		default:
			return false
		}
	}
	return true
}
