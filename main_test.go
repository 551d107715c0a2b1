package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wheel/apps/console/internal/game"
	"github.com/robalobadob/wheel/apps/console/internal/phrases"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "SEED", "REVEAL_LETTERS", "SCORING", "VOWEL_COST", "PUZZLES_FILE", "WEDGES_FILE", "PUZZLE_MODE", "DAILY_SALT"} {
		t.Setenv(k, "")
	}
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.Reveal)
	assert.Equal(t, game.ScorePerOccurrence, cfg.Scoring)
	assert.Equal(t, game.DefaultVowelCost, cfg.VowelCost)
	assert.False(t, cfg.Daily)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SEED", "42")
	t.Setenv("REVEAL_LETTERS", "true")
	t.Setenv("SCORING", "FLAT")
	t.Setenv("VOWEL_COST", "100")
	t.Setenv("PUZZLE_MODE", "daily")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Reveal)
	assert.Equal(t, game.ScoreFlat, cfg.Scoring)
	assert.Equal(t, 100, cfg.VowelCost)
	assert.True(t, cfg.Daily)

	t.Setenv("SCORING", "double")
	_, err = loadConfig()
	assert.Error(t, err)

	t.Setenv("SCORING", "")
	t.Setenv("PUZZLE_MODE", "weekly")
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestNewSessionSeededIsReproducible(t *testing.T) {
	cfg := config{Seed: 7, DailySalt: "s"}
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	a, err := newSession(cfg, now)
	require.NoError(t, err)
	b, err := newSession(cfg, now)
	require.NoError(t, err)
	assert.Equal(t, a.Phrase(), b.Phrase())

	ra, err := a.Spin()
	require.NoError(t, err)
	rb, err := b.Spin()
	require.NoError(t, err)
	assert.Equal(t, ra.Wedge, rb.Wedge)
}

func TestNewSessionDailyAndFiles(t *testing.T) {
	dir := t.TempDir()
	pz := filepath.Join(dir, "puzzles.txt")
	wd := filepath.Join(dir, "wedges.txt")
	require.NoError(t, os.WriteFile(pz, []byte("alpha\nbravo\ncharlie\n"), 0o644))
	require.NoError(t, os.WriteFile(wd, []byte("$100\n"), 0o644))

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	cfg := config{Daily: true, DailySalt: "salt", PuzzlesFile: pz, WedgesFile: wd, Reveal: true}

	s, err := newSession(cfg, now)
	require.NoError(t, err)
	want, err := phrases.List{"ALPHA", "BRAVO", "CHARLIE"}.Daily(now, "salt")
	require.NoError(t, err)
	assert.Equal(t, want, s.Phrase())

	res, err := s.Spin()
	require.NoError(t, err)
	assert.Equal(t, 100, res.Wedge.Amount)

	cfg.WedgesFile = filepath.Join(dir, "missing.txt")
	_, err = newSession(cfg, now)
	assert.Error(t, err)
}
