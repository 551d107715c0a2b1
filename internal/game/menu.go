package game

import (
	"strconv"
	"strings"
)

var menuLabels = map[Action]string{
	ActionSpin:     "Spin the wheel",
	ActionBuyVowel: "Buy a vowel",
	ActionSolve:    "Solve the puzzle",
	ActionQuit:     "Quit the game",
}

func (a Action) String() string {
	if l, ok := menuLabels[a]; ok {
		return l
	}
	return "action(" + strconv.Itoa(int(a)) + ")"
}

// Label is the menu line for a, e.g. "1. Spin the wheel".
func (a Action) Label() string {
	return strconv.Itoa(int(a)) + ". " + a.String()
}

// Menu returns the menu lines in order.
func Menu() []string {
	out := make([]string, 0, len(menuLabels))
	for a := ActionSpin; a <= ActionQuit; a++ {
		out = append(out, a.Label())
	}
	return out
}

// ParseMenuChoice maps one line of input to an Action.
func ParseMenuChoice(line string) (Action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, ErrInvalidMenuInput
	}
	a := Action(n)
	if a < ActionSpin || a > ActionQuit {
		return 0, ErrNotMenuChoice
	}
	return a, nil
}
