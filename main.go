package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wheel/apps/console/internal/console"
	"github.com/robalobadob/wheel/apps/console/internal/game"
	"github.com/robalobadob/wheel/apps/console/internal/phrases"
	"github.com/robalobadob/wheel/apps/console/internal/wheel"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	s, err := newSession(cfg, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := console.Run(ctx, os.Stdin, os.Stdout, s)
	if err != nil && !errors.Is(err, console.ErrInputClosed) && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Str("session", s.ID()).Msg("game aborted")
		os.Exit(1)
	}
	log.Info().Str("session", s.ID()).Stringer("state", st).Int("winnings", s.Winnings()).Msg("game over")
}

// newSession loads the puzzle and wedge tables and starts a round.
func newSession(cfg config, now time.Time) (*game.Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	puzzles, err := phrases.Load(cfg.PuzzlesFile)
	if err != nil {
		return nil, err
	}
	wedges, err := loadWedges(cfg.WedgesFile)
	if err != nil {
		return nil, err
	}

	var phrase string
	if cfg.Daily {
		phrase, err = puzzles.Daily(now, cfg.DailySalt)
	} else {
		phrase, err = puzzles.Random(rng)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Int("puzzles", len(puzzles)).Int("wedges", len(wedges)).Int64("seed", seed).Bool("daily", cfg.Daily).Msg("tables loaded")

	return game.New(phrase, game.Options{
		Wedges:    wedges,
		RNG:       rng,
		VowelCost: cfg.VowelCost,
		Scoring:   cfg.Scoring,
		RevealAll: cfg.Reveal,
	})
}

func loadWedges(path string) (wheel.Table, error) {
	if path == "" {
		return wheel.DefaultTable()
	}
	return wheel.LoadTable(path)
}
