// internal/wheel/wedge.go
//
// Wedge values and the table format they are read from.
// A table line is either a cash amount ("$500"), "BANKRUPT" or "LOSE A TURN".

package wheel

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes cash wedges from the two penalty wedges.
type Kind int

const (
	Cash Kind = iota
	Bankrupt
	LoseTurn
)

const (
	bankruptLabel = "BANKRUPT"
	loseTurnLabel = "LOSE A TURN"
)

// Wedge is one slot of the wheel. Amount is only meaningful for Cash.
type Wedge struct {
	Kind   Kind
	Amount int
}

// CashWedge returns a cash wedge worth amount.
func CashWedge(amount int) Wedge { return Wedge{Kind: Cash, Amount: amount} }

// IsCash reports whether the wedge pays out for a correct consonant.
func (w Wedge) IsCash() bool { return w.Kind == Cash }

// String renders the wedge the way it is printed on the wheel.
func (w Wedge) String() string {
	switch w.Kind {
	case Bankrupt:
		return bankruptLabel
	case LoseTurn:
		return loseTurnLabel
	default:
		return "$" + strconv.Itoa(w.Amount)
	}
}

// ParseWedge parses one wedge label. Cash labels must carry a leading '$'
// and a positive whole amount.
func ParseWedge(label string) (Wedge, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	switch {
	case s == bankruptLabel:
		return Wedge{Kind: Bankrupt}, nil
	case s == loseTurnLabel:
		return Wedge{Kind: LoseTurn}, nil
	case strings.HasPrefix(s, "$"):
		n, err := strconv.Atoi(s[1:])
		if err != nil || n <= 0 {
			return Wedge{}, fmt.Errorf("wheel: invalid cash amount %q", label)
		}
		return CashWedge(n), nil
	}
	return Wedge{}, fmt.Errorf("wheel: unknown wedge %q", label)
}
