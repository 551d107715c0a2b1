// internal/phrases/phrases.go
//
// Puzzle table management.
//
// Responsibilities:
//   - Load the puzzle list from PUZZLES_FILE or fall back to the embedded default.
//   - Normalize entries to uppercase and drop anything that is not letters and spaces.
//   - Pick a puzzle uniformly at random, or the puzzle of the day.
//
// A puzzle is a non-empty string of A–Z and single spaces with at least one
// letter. Surrounding whitespace is trimmed and runs of spaces are collapsed.

package phrases

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wheel/apps/console/assets"
)

var ErrNoPuzzles = errors.New("phrases: puzzle list is empty")

// Source is the random source Random needs. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// List is an ordered puzzle table.
type List []string

// Load returns the puzzle table at path, or the embedded default when path
// is empty.
func Load(path string) (List, error) {
	var (
		lines []string
		err   error
	)
	if path == "" {
		lines, err = assets.PuzzleLines()
	} else {
		lines, err = readPuzzleFile(path)
	}
	if err != nil {
		return nil, err
	}

	var out List
	for _, l := range lines {
		p, ok := Normalize(l)
		if !ok {
			log.Warn().Str("line", l).Msg("skipping invalid puzzle")
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoPuzzles
	}
	return out, nil
}

func readPuzzleFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// Normalize uppercases s, collapses whitespace and reports whether the
// result is a valid puzzle.
func Normalize(s string) (string, bool) {
	p := strings.Join(strings.Fields(strings.ToUpper(s)), " ")
	if p == "" {
		return "", false
	}
	for _, r := range p {
		if r != ' ' && (r < 'A' || r > 'Z') {
			return "", false
		}
	}
	return p, true
}

// Random returns a puzzle chosen uniformly from the list.
func (l List) Random(rng Source) (string, error) {
	if len(l) == 0 {
		return "", ErrNoPuzzles
	}
	return l[rng.Intn(len(l))], nil
}

// At returns the puzzle at idx, wrapping around the list.
func (l List) At(idx int) (string, error) {
	if len(l) == 0 {
		return "", ErrNoPuzzles
	}
	idx %= len(l)
	if idx < 0 {
		idx += len(l)
	}
	return l[idx], nil
}

// DateKey is the UTC calendar day of t, as YYYY-MM-DD.
func DateKey(t time.Time) string { return t.UTC().Format("2006-01-02") }

// Daily returns the puzzle of the UTC day containing date. Everyone using
// the same salt and list gets the same puzzle that day.
func (l List) Daily(date time.Time, salt string) (string, error) {
	if len(l) == 0 {
		return "", ErrNoPuzzles
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	v := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return l[v%uint64(len(l))], nil
}
