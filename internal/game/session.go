// internal/game/session.go
//
// Session is the game engine for one round of Wheel of Fortune.
// Responsibilities:
//   - Hold the phrase, the guess ledger, winnings and the last wedge drawn.
//   - Resolve spins (cash, BANKRUPT, LOSE A TURN) and pay correct consonants.
//   - Charge for vowels, run solve attempts, and track won/lost/quit.
//
// Notes:
//   - The session never reads input. Every letter arrives as a raw line; a
//     rejected line returns an error and leaves the state as it was, so the
//     driver decides whether to prompt again.
//   - Winnings never go below zero.
//   - A Session is driven by one player and is not safe for concurrent use.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wheel/apps/console/internal/phrases"
	"github.com/robalobadob/wheel/apps/console/internal/puzzle"
	"github.com/robalobadob/wheel/apps/console/internal/wheel"
)

// DefaultVowelCost is the price of one vowel.
const DefaultVowelCost = 250

// Options configures a Session. Zero values pick the defaults.
type Options struct {
	Wedges    wheel.Table  // default: wheel.DefaultTable()
	RNG       wheel.Source // default: time-seeded math/rand
	VowelCost int          // default: DefaultVowelCost
	Scoring   Scoring
	RevealAll bool // show every letter in Display
}

// Session holds the state of a single round.
type Session struct {
	id        string
	phrase    string
	ledger    *puzzle.Ledger
	wedges    wheel.Table
	rng       wheel.Source
	vowelCost int
	scoring   Scoring
	revealAll bool

	state     State
	winnings  int
	lastWedge wheel.Wedge
	hasWedge  bool

	log zerolog.Logger
}

// New starts a round on phrase. The phrase is uppercased and must consist
// of letters and spaces.
func New(phrase string, opts Options) (*Session, error) {
	p, ok := phrases.Normalize(phrase)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhrase, phrase)
	}

	wedges := opts.Wedges
	if wedges == nil {
		var err error
		if wedges, err = wheel.DefaultTable(); err != nil {
			return nil, err
		}
	}
	if len(wedges) == 0 {
		return nil, wheel.ErrEmptyTable
	}

	rng := opts.RNG
	if rng == nil {
		rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	cost := opts.VowelCost
	if cost <= 0 {
		cost = DefaultVowelCost
	}

	id := randomID()
	s := &Session{
		id:        id,
		phrase:    p,
		ledger:    puzzle.NewLedger(),
		wedges:    wedges,
		rng:       rng,
		vowelCost: cost,
		scoring:   opts.Scoring,
		revealAll: opts.RevealAll,
		state:     AwaitingMenuChoice,
		log:       log.With().Str("session", id).Logger(),
	}
	s.log.Debug().Int("length", len(p)).Int("wedges", len(wedges)).Msg("round started")
	return s, nil
}

// ID is a random identifier used to correlate log lines.
func (s *Session) ID() string { return s.id }

// Phrase returns the hidden phrase.
func (s *Session) Phrase() string { return s.phrase }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Winnings returns the current winnings.
func (s *Session) Winnings() int { return s.winnings }

// VowelCost returns the price of one vowel.
func (s *Session) VowelCost() int { return s.vowelCost }

// LastWedge returns the wedge of the most recent spin; ok is false before
// the first spin.
func (s *Session) LastWedge() (w wheel.Wedge, ok bool) { return s.lastWedge, s.hasWedge }

// Guessed returns the letters guessed so far, alphabetically.
func (s *Session) Guessed() []rune { return s.ledger.Letters() }

// Display renders the puzzle for the console, honoring the reveal flag.
func (s *Session) Display() string { return s.Mask(s.revealAll) }

// Mask renders the puzzle with an explicit reveal flag.
func (s *Session) Mask(revealAll bool) string {
	return puzzle.Mask(s.phrase, s.ledger, revealAll)
}

// Solved reports whether every letter of the phrase has been guessed.
func (s *Session) Solved() bool { return s.ledger.IsPhraseFullySolved(s.phrase) }

// Spin draws a wedge. BANKRUPT clears winnings and LOSE A TURN does
// nothing; both end the turn. A cash wedge moves the session to
// AwaitingConsonant.
func (s *Session) Spin() (SpinResult, error) {
	if err := s.expect(AwaitingMenuChoice); err != nil {
		return SpinResult{}, err
	}
	if len(s.ledger.RemainingConsonants()) == 0 {
		return SpinResult{}, ErrNoConsonantsLeft
	}
	w, err := wheel.Draw(s.rng, s.wedges)
	if err != nil {
		return SpinResult{}, err
	}
	s.lastWedge, s.hasWedge = w, true

	res := SpinResult{Wedge: w}
	switch {
	case w.IsCash():
		s.transition(AwaitingConsonant)
		res.NeedsConsonant = true
	case w.Kind == wheel.Bankrupt:
		s.winnings = 0
	}
	res.Winnings = s.winnings
	s.log.Debug().Str("wedge", w.String()).Int("winnings", s.winnings).Msg("spin")
	return res, nil
}

// GuessConsonant takes the consonant for the current cash wedge.
func (s *Session) GuessConsonant(line string) (GuessResult, error) {
	if err := s.expect(AwaitingConsonant); err != nil {
		return GuessResult{}, err
	}
	letter, err := s.freshLetter(line)
	if err != nil {
		return GuessResult{}, err
	}
	if puzzle.IsVowel(letter) {
		return GuessResult{}, ErrVowelNotAllowed
	}

	s.ledger.Record(letter)
	res := GuessResult{Letter: letter, Count: puzzle.CountOccurrences(letter, s.phrase)}
	if res.Count > 0 {
		res.Payout = s.payout(res.Count)
		s.winnings += res.Payout
	}
	res.Winnings = s.winnings
	s.transition(AwaitingMenuChoice)
	s.log.Debug().Str("letter", string(letter)).Int("count", res.Count).Int("payout", res.Payout).Msg("consonant")
	return res, nil
}

func (s *Session) payout(count int) int {
	if s.scoring == ScoreFlat {
		return s.lastWedge.Amount
	}
	return s.lastWedge.Amount * count
}

// BuyVowel charges the vowel cost and moves the session to AwaitingVowel.
// The charge stands whether or not the vowel turns out to be in the phrase.
func (s *Session) BuyVowel() error {
	if err := s.expect(AwaitingMenuChoice); err != nil {
		return err
	}
	if s.winnings < s.vowelCost {
		return fmt.Errorf("%w $%d", ErrInsufficientFunds, s.vowelCost)
	}
	if len(s.ledger.RemainingVowels()) == 0 {
		return ErrNoVowelsLeft
	}
	s.winnings -= s.vowelCost
	s.transition(AwaitingVowel)
	return nil
}

// GuessVowel takes the vowel that was paid for. Vowels never pay out.
func (s *Session) GuessVowel(line string) (GuessResult, error) {
	if err := s.expect(AwaitingVowel); err != nil {
		return GuessResult{}, err
	}
	letter, err := s.freshLetter(line)
	if err != nil {
		return GuessResult{}, err
	}
	if !puzzle.IsVowel(letter) {
		return GuessResult{}, ErrNotVowel
	}

	s.ledger.Record(letter)
	res := GuessResult{
		Letter:   letter,
		Count:    puzzle.CountOccurrences(letter, s.phrase),
		Winnings: s.winnings,
	}
	s.transition(AwaitingMenuChoice)
	s.log.Debug().Str("letter", string(letter)).Int("count", res.Count).Msg("vowel")
	return res, nil
}

// BeginSolve starts a solve attempt. If the phrase is already fully
// revealed the round is won on the spot.
func (s *Session) BeginSolve() (SolveStep, error) {
	if err := s.expect(AwaitingMenuChoice); err != nil {
		return SolveStep{}, err
	}
	s.transition(Solving)
	if s.Solved() {
		s.transition(RoundWon)
	}
	return SolveStep{State: s.state, Winnings: s.winnings}, nil
}

// SolveLetter takes the next letter of a solve attempt. Letters already
// guessed are accepted. A letter missing from the phrase loses the round
// and all winnings; completing the phrase wins it.
func (s *Session) SolveLetter(line string) (SolveStep, error) {
	if err := s.expect(Solving); err != nil {
		return SolveStep{}, err
	}
	letter, err := puzzle.ParseLetter(line)
	if err != nil {
		return SolveStep{}, err
	}

	if !puzzle.ContainsLetter(letter, s.phrase) {
		s.winnings = 0
		s.transition(RoundLost)
	} else {
		s.ledger.Record(letter)
		if s.Solved() {
			s.transition(RoundWon)
		}
	}
	return SolveStep{Letter: letter, State: s.state, Winnings: s.winnings}, nil
}

// Quit ends the session. Winnings are kept as they are.
func (s *Session) Quit() error {
	if err := s.expect(AwaitingMenuChoice); err != nil {
		return err
	}
	s.transition(Quit)
	return nil
}

// freshLetter parses line and rejects letters that were already guessed.
func (s *Session) freshLetter(line string) (rune, error) {
	letter, err := puzzle.ParseLetter(line)
	if err != nil {
		return 0, err
	}
	if s.ledger.HasGuessed(letter) {
		return 0, ErrAlreadyGuessed
	}
	return letter, nil
}

func (s *Session) expect(want State) error {
	if s.state != want {
		return fmt.Errorf("%w (state %s)", ErrWrongState, s.state)
	}
	return nil
}

func (s *Session) transition(to State) {
	if to == s.state {
		return
	}
	s.log.Debug().Stringer("from", s.state).Stringer("to", to).Int("winnings", s.winnings).Msg("transition")
	s.state = to
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
