// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - State:   where the session is in its turn cycle.
//   - Action:  the closed set of menu actions.
//   - Scoring: how a correct consonant is paid.
//   - SpinResult / GuessResult / SolveStep: typed outcomes returned to the driver.

package game

import (
	"fmt"

	"github.com/robalobadob/wheel/apps/console/internal/wheel"
)

// State is the session's position in the turn cycle.
//
// AwaitingConsonant, AwaitingVowel and Solving are the letter prompts of a
// single menu action; the driver keeps prompting until the session leaves
// them. RoundWon, RoundLost and Quit are terminal.
type State int

const (
	AwaitingMenuChoice State = iota
	AwaitingConsonant
	AwaitingVowel
	Solving
	RoundWon
	RoundLost
	Quit
)

func (s State) String() string {
	switch s {
	case AwaitingMenuChoice:
		return "awaiting_menu_choice"
	case AwaitingConsonant:
		return "awaiting_consonant"
	case AwaitingVowel:
		return "awaiting_vowel"
	case Solving:
		return "solving"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether the session is over.
func (s State) Terminal() bool {
	return s == RoundWon || s == RoundLost || s == Quit
}

// Action is one menu entry. The numeric value is the menu number.
type Action int

const (
	ActionSpin Action = iota + 1
	ActionBuyVowel
	ActionSolve
	ActionQuit
)

// Scoring selects how a correct consonant pays out.
type Scoring int

const (
	// ScorePerOccurrence pays the wedge amount once per occurrence of the letter.
	ScorePerOccurrence Scoring = iota
	// ScoreFlat pays the wedge amount once, however often the letter appears.
	ScoreFlat
)

// ParseScoring accepts "per_occurrence" (or "") and "flat".
func ParseScoring(s string) (Scoring, error) {
	switch s {
	case "", "per_occurrence":
		return ScorePerOccurrence, nil
	case "flat":
		return ScoreFlat, nil
	}
	return 0, fmt.Errorf("unknown scoring rule %q", s)
}

// SpinResult reports the wedge a spin landed on.
type SpinResult struct {
	Wedge          wheel.Wedge
	NeedsConsonant bool // cash wedge: the session now waits for a consonant
	Winnings       int  // winnings after the spin resolved
}

// GuessResult reports an accepted consonant or vowel.
type GuessResult struct {
	Letter   rune
	Count    int // occurrences in the phrase
	Payout   int // amount added to winnings; always 0 for vowels
	Winnings int
}

// Correct reports whether the letter is in the phrase.
func (r GuessResult) Correct() bool { return r.Count > 0 }

// SolveStep reports the session after one letter of a solve attempt.
type SolveStep struct {
	Letter   rune // zero for the step returned by BeginSolve
	State    State
	Winnings int
}
