// config.go
//
// Runtime configuration, read from the environment after godotenv has
// loaded any .env file.
//
// Environment variables:
//   LOG_LEVEL       zerolog level (default "warn")
//   SEED            random seed for puzzle and wheel; 0 or unset uses the clock
//   REVEAL_LETTERS  show every letter of the puzzle (debugging)
//   SCORING         "per_occurrence" (default) or "flat"
//   VOWEL_COST      price of a vowel (default 250)
//   PUZZLES_FILE    puzzle list, one per line (default: embedded list)
//   WEDGES_FILE     wheel, one wedge per line (default: embedded wheel)
//   PUZZLE_MODE     "random" (default) or "daily"
//   DAILY_SALT      salt for the daily puzzle index

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/robalobadob/wheel/apps/console/internal/game"
)

type config struct {
	LogLevel    string
	Seed        int64
	Reveal      bool
	Scoring     game.Scoring
	VowelCost   int
	PuzzlesFile string
	WedgesFile  string
	Daily       bool
	DailySalt   string
}

func loadConfig() (config, error) {
	scoring, err := game.ParseScoring(strings.ToLower(getEnv("SCORING", "per_occurrence")))
	if err != nil {
		return config{}, err
	}
	mode := strings.ToLower(getEnv("PUZZLE_MODE", "random"))
	if mode != "random" && mode != "daily" {
		return config{}, fmt.Errorf("unknown PUZZLE_MODE %q", mode)
	}
	return config{
		LogLevel:    getEnv("LOG_LEVEL", "warn"),
		Seed:        int64(envInt("SEED", 0)),
		Reveal:      envBool("REVEAL_LETTERS", false),
		Scoring:     scoring,
		VowelCost:   envInt("VOWEL_COST", game.DefaultVowelCost),
		PuzzlesFile: os.Getenv("PUZZLES_FILE"),
		WedgesFile:  os.Getenv("WEDGES_FILE"),
		Daily:       mode == "daily",
		DailySalt:   getEnv("DAILY_SALT", "local_dev_salt"),
	}, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
