// internal/puzzle/ledger.go
//
// Ledger records which letters have been guessed during one round.
// It grows monotonically until Reset, which starts a fresh round.

package puzzle

import (
	"sort"
	"strings"
)

// Ledger is the set of letters guessed so far. The zero value is ready to use.
type Ledger struct {
	letters map[rune]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{letters: make(map[rune]struct{})}
}

// HasGuessed reports whether letter is already in the ledger.
func (l *Ledger) HasGuessed(letter rune) bool {
	if l == nil {
		return false
	}
	_, ok := l.letters[letter]
	return ok
}

// Record adds letter to the ledger. Recording a letter twice leaves the
// ledger unchanged; the return value is true only when the letter was new.
func (l *Ledger) Record(letter rune) bool {
	if l.letters == nil {
		l.letters = make(map[rune]struct{})
	}
	if _, ok := l.letters[letter]; ok {
		return false
	}
	l.letters[letter] = struct{}{}
	return true
}

// Reset forgets every guess.
func (l *Ledger) Reset() {
	l.letters = make(map[rune]struct{})
}

// Len returns the number of distinct letters guessed.
func (l *Ledger) Len() int { return len(l.letters) }

// Letters returns the guessed letters in alphabetical order.
func (l *Ledger) Letters() []rune {
	out := make([]rune, 0, len(l.letters))
	for r := range l.letters {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsPhraseFullySolved reports whether every non-space character of phrase
// has been guessed.
func (l *Ledger) IsPhraseFullySolved(phrase string) bool {
	for _, c := range phrase {
		if c == ' ' {
			continue
		}
		if !l.HasGuessed(c) {
			return false
		}
	}
	return true
}

// RemainingConsonants returns the consonants not yet guessed.
func (l *Ledger) RemainingConsonants() []rune {
	return l.remaining(IsConsonant)
}

// RemainingVowels returns the vowels not yet guessed.
func (l *Ledger) RemainingVowels() []rune {
	return l.remaining(IsVowel)
}

func (l *Ledger) remaining(keep func(rune) bool) []rune {
	var out []rune
	for _, r := range alphabet {
		if keep(r) && !l.HasGuessed(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountOccurrences returns how many positions of phrase hold letter.
func CountOccurrences(letter rune, phrase string) int {
	return strings.Count(phrase, string(letter))
}

// ContainsLetter reports whether letter appears anywhere in phrase.
func ContainsLetter(letter rune, phrase string) bool {
	return strings.ContainsRune(phrase, letter)
}
