// internal/puzzle/letters.go
//
// Letter classification and single-letter input parsing.
// Puzzles are normalized to uppercase A–Z plus spaces, so every check here
// works on uppercase runes.

package puzzle

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	vowels   = "AEIOU"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrNotOneLetter = errors.New("Enter just one letter")
	ErrNotALetter   = errors.New("That is not a letter")
)

// IsVowel reports whether r is one of A, E, I, O, U.
func IsVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// IsAlphabetic reports whether r is a letter A–Z in either case.
func IsAlphabetic(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// IsConsonant reports whether r is an uppercase letter that is not a vowel.
func IsConsonant(r rune) bool {
	return r >= 'A' && r <= 'Z' && !IsVowel(r)
}

// ParseLetter turns one line of player input into an uppercase letter.
// The line must hold exactly one character (a trailing CR/LF is ignored)
// and that character must be alphabetic.
func ParseLetter(line string) (rune, error) {
	line = strings.TrimRight(line, "\r\n")
	if utf8.RuneCountInString(line) != 1 {
		return 0, ErrNotOneLetter
	}
	r, _ := utf8.DecodeRuneInString(line)
	if !IsAlphabetic(r) {
		return 0, ErrNotALetter
	}
	return toUpper(r), nil
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
