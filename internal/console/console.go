// internal/console/console.go
//
// Text console front end for a game.Session.
// Reads one line per prompt and writes plain text lines. All rule checks
// live in the session; this loop only shows the board, prints the reason
// for each rejected line and prompts again.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wheel/apps/console/internal/game"
	"github.com/robalobadob/wheel/apps/console/internal/puzzle"
	"github.com/robalobadob/wheel/apps/console/internal/wheel"
)

// ErrInputClosed is returned when the input runs out before the round ends.
var ErrInputClosed = errors.New("console: input closed")

const banner = `                      ======================
                      =  Wheel Of Fortune  =
                      ======================
`

// errRetry marks a rejection whose reason has already been printed.
var errRetry = errors.New("retry")

type console struct {
	in  *bufio.Reader
	out io.Writer
}

// Run plays s until it reaches a terminal state and returns that state.
// ctx is checked before every prompt.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *game.Session) (game.State, error) {
	c := &console{in: bufio.NewReader(in), out: out}
	for !s.State().Terminal() {
		if err := c.turn(ctx, s); err != nil {
			return s.State(), err
		}
	}
	return s.State(), nil
}

func (c *console) turn(ctx context.Context, s *game.Session) error {
	c.board(s)
	line, err := c.prompt(ctx, "Enter choice: ")
	if err != nil {
		return err
	}
	a, err := game.ParseMenuChoice(line)
	if err != nil {
		c.println(err.Error())
		return nil
	}

	c.printf("You chose: %s\n", a.Label())
	switch a {
	case game.ActionSpin:
		return c.spin(ctx, s)
	case game.ActionBuyVowel:
		return c.buyVowel(ctx, s)
	case game.ActionSolve:
		return c.solve(ctx, s)
	case game.ActionQuit:
		return s.Quit()
	}
	return nil
}

func (c *console) board(s *game.Session) {
	c.printf("%s\n", banner)
	c.printf("Winnings: $%d\n", s.Winnings())
	c.println(s.Display())
	c.println("")
	for _, l := range game.Menu() {
		c.println(l)
	}
}

func (c *console) spin(ctx context.Context, s *game.Session) error {
	res, err := s.Spin()
	if err != nil {
		return c.reject(err)
	}
	c.printf("You landed on: %s\n", res.Wedge)
	if res.Wedge.Kind == wheel.Bankrupt {
		c.println("Your money is gone!")
	}
	if !res.Wedge.IsCash() {
		return nil
	}

	g, err := readLetter(ctx, c, func(line string) (game.GuessResult, error) {
		g, err := s.GuessConsonant(line)
		if errors.Is(err, game.ErrVowelNotAllowed) {
			letter, _ := puzzle.ParseLetter(line)
			c.printf("Your letter is: %c\n", letter)
			c.println(err.Error())
			c.println("Guess again")
			return g, errRetry
		}
		return g, err
	})
	if err != nil {
		return err
	}
	c.printf("Your letter is: %c\n", g.Letter)
	if g.Correct() {
		c.println("Correct!")
		c.printf("%c appears %d times\n", g.Letter, g.Count)
	} else {
		c.printf("Sorry, %c is not in the puzzle\n", g.Letter)
	}
	return nil
}

func (c *console) buyVowel(ctx context.Context, s *game.Session) error {
	if err := s.BuyVowel(); err != nil {
		return c.reject(err)
	}
	g, err := readLetter(ctx, c, s.GuessVowel)
	if err != nil {
		return err
	}
	if g.Correct() {
		c.printf("%c appears %d times\n", g.Letter, g.Count)
	} else {
		c.printf("Sorry, %c is not in the puzzle\n", g.Letter)
	}
	return nil
}

func (c *console) solve(ctx context.Context, s *game.Session) error {
	c.println("\nIF YOU GET ONE LETTER WRONG, YOU LOSE!!\n")
	step, err := s.BeginSolve()
	if err != nil {
		return err
	}
	for step.State == game.Solving {
		c.println(s.Mask(false))
		if step, err = readLetter(ctx, c, s.SolveLetter); err != nil {
			return err
		}
	}

	switch step.State {
	case game.RoundWon:
		c.printf("You just won $%d!!\n", step.Winnings)
	case game.RoundLost:
		c.println("YOU GET NOTHING!")
		c.println("YOU LOSE!")
		c.println("GOOD DAY, SIR!")
	}
	return nil
}

// reject prints a rule rejection and carries on. Wrong-state errors are
// programming errors and are returned.
func (c *console) reject(err error) error {
	if errors.Is(err, game.ErrWrongState) {
		return err
	}
	c.println(err.Error())
	return nil
}

// readLetter prompts until try accepts a line.
func readLetter[T any](ctx context.Context, c *console, try func(string) (T, error)) (T, error) {
	for {
		line, err := c.prompt(ctx, "Enter a letter: ")
		if err != nil {
			var zero T
			return zero, err
		}
		res, err := try(line)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, errRetry) {
			continue
		}
		if err := c.reject(err); err != nil {
			var zero T
			return zero, err
		}
	}
}

func (c *console) prompt(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.printf("%s", p)
	return c.readLine()
}

// readLine returns the next line without its line ending. Lines of any
// length are returned whole; the session rejects the ones it can't use.
func (c *console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *console) println(s string) { _, _ = fmt.Fprintln(c.out, s) }

func (c *console) printf(format string, a ...any) { _, _ = fmt.Fprintf(c.out, format, a...) }
