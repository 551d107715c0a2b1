package game

import "errors"

// Rejections. None of these end the session; the message is what the
// player is shown.
var (
	ErrWrongState        = errors.New("action not available now")
	ErrInvalidMenuInput  = errors.New("Invalid input")
	ErrNotMenuChoice     = errors.New("Not a menu choice")
	ErrAlreadyGuessed    = errors.New("You already guessed that letter!")
	ErrVowelNotAllowed   = errors.New("That is a vowel!")
	ErrNotVowel          = errors.New("That is not a vowel.")
	ErrInsufficientFunds = errors.New("You need at least")
	ErrNoConsonantsLeft  = errors.New("There are no consonants left to guess")
	ErrNoVowelsLeft      = errors.New("There are no vowels left to buy")
	ErrInvalidPhrase     = errors.New("puzzle must contain only letters and spaces")
)
