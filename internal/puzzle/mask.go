package puzzle

import "strings"

// Placeholder is shown in place of a letter that has not been guessed.
const Placeholder = '_'

// Guessed answers whether a letter has been guessed. *Ledger implements it.
type Guessed interface {
	HasGuessed(letter rune) bool
}

// Mask renders phrase for the console. Spaces are never hidden; a letter is
// shown when revealAll is set or it has been guessed, otherwise it becomes
// Placeholder. Each emitted character is followed by one space so the
// puzzle reads evenly in a fixed-width terminal.
func Mask(phrase string, guessed Guessed, revealAll bool) string {
	return mask(phrase, guessed, revealAll, true)
}

// MaskCompact is Mask without the separator spaces.
func MaskCompact(phrase string, guessed Guessed, revealAll bool) string {
	return mask(phrase, guessed, revealAll, false)
}

func mask(phrase string, guessed Guessed, revealAll, spaced bool) string {
	var b strings.Builder
	for _, c := range phrase {
		if c != ' ' && !revealAll && (guessed == nil || !guessed.HasGuessed(c)) {
			c = Placeholder
		}
		b.WriteRune(c)
		if spaced {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
