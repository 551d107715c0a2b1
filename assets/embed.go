// Package assets holds the default data tables shipped inside the binary:
// the puzzle list and the wheel's wedge list.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed puzzles.txt wedges.txt
var FS embed.FS

// ReadLines returns the non-blank, non-comment lines of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// PuzzleLines returns the embedded default puzzle table.
func PuzzleLines() ([]string, error) {
	return readEmbedded("puzzles.txt")
}

// WedgeLines returns the embedded default wedge labels, in wheel order.
func WedgeLines() ([]string, error) {
	return readEmbedded("wedges.txt")
}
