// internal/wheel/table.go
//
// The wheel itself: an ordered list of wedges and the uniform draw over it.
//
// Weighting is done by repetition. A value listed four times comes up four
// times as often as a value listed once; Draw never looks at the values.
//
// The default table is the 24-wedge wheel embedded in the assets package.
// WEDGES_FILE (see main) can point at a replacement in the same format.

package wheel

import (
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/wheel/apps/console/assets"
)

// Table is an ordered list of wedges.
type Table []Wedge

// Source is the random source a draw needs. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

var ErrEmptyTable = errors.New("wheel: wedge table is empty")

// DefaultTable returns the embedded wheel.
func DefaultTable() (Table, error) {
	lines, err := assets.WedgeLines()
	if err != nil {
		return nil, err
	}
	return ParseTable(lines)
}

// LoadTable reads a wheel from a file with one wedge label per line.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseTable(lines)
}

// ParseTable parses labels in order. An empty result is an error.
func ParseTable(labels []string) (Table, error) {
	t := make(Table, 0, len(labels))
	for i, l := range labels {
		w, err := ParseWedge(l)
		if err != nil {
			return nil, fmt.Errorf("wedge %d: %w", i+1, err)
		}
		t = append(t, w)
	}
	if len(t) == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// Draw picks one entry uniformly at random. The table is not modified.
func Draw(rng Source, t Table) (Wedge, error) {
	if len(t) == 0 {
		return Wedge{}, ErrEmptyTable
	}
	return t[rng.Intn(len(t))], nil
}
