package main

import (
	"testing"
	"time"

	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/engine"
	"github.com/lgbarn/nibblechess/internal/errors"
)

// saveRestoreString sets a string flag and returns a func restoring it.
// Usage: defer saveRestoreString(safety, "stub")()
func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyPlayerFlags(t *testing.T) {
	t.Run("defaults to random players", func(t *testing.T) {
		cfg := config.NewConfig()
		if err := applyPlayerFlags(cfg); err != nil {
			t.Fatalf("applyPlayerFlags() error = %v", err)
		}
		if cfg.White != config.RandomPlayer || cfg.Black != config.RandomPlayer {
			t.Errorf("players = %v/%v; want random/random", cfg.White, cfg.Black)
		}
	})

	t.Run("terminal white", func(t *testing.T) {
		defer saveRestoreString(whitePlayer, "terminal")()
		cfg := config.NewConfig()
		if err := applyPlayerFlags(cfg); err != nil {
			t.Fatalf("applyPlayerFlags() error = %v", err)
		}
		if cfg.White != config.TerminalPlayer {
			t.Errorf("White = %v; want terminal", cfg.White)
		}
	})

	t.Run("unknown black", func(t *testing.T) {
		defer saveRestoreString(blackPlayer, "stockfish")()
		err := applyPlayerFlags(config.NewConfig())
		if !errors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("applyPlayerFlags() error = %v; want ErrInvalidConfig", err)
		}
	})
}

func TestApplyPlayFlags(t *testing.T) {
	t.Run("copies values", func(t *testing.T) {
		defer saveRestoreInt(games, 12)()
		defer saveRestoreInt(workers, 3)()
		defer saveRestoreInt(maxPly, 80)()
		defer saveRestoreString(safety, "stub")()
		defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
		defer saveRestoreBool(failFast, true)()
		oldSeed := *seed
		*seed = 99
		defer func() { *seed = oldSeed }()

		cfg := config.NewConfig()
		if err := applyPlayFlags(cfg); err != nil {
			t.Fatalf("applyPlayFlags() error = %v", err)
		}
		want := config.PlayConfig{
			Games: 12, Workers: 3, MaxPlies: 80, Seed: 99,
			Safety: engine.SafetyStub, StartFEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			FailFast: true,
		}
		if *cfg.Play != want {
			t.Errorf("Play = %+v; want %+v", *cfg.Play, want)
		}
	})

	t.Run("bad safety", func(t *testing.T) {
		defer saveRestoreString(safety, "none")()
		if err := applyPlayFlags(config.NewConfig()); err == nil {
			t.Error("applyPlayFlags() should reject an unknown safety mode")
		}
	})
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("screen with unicode", func(t *testing.T) {
		defer saveRestoreString(renderMode, "screen")()
		defer saveRestoreBool(unicode, true)()
		defer saveRestoreBool(noMoves, true)()
		oldDelay := *delay
		*delay = 50 * time.Millisecond
		defer func() { *delay = oldDelay }()

		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Render != config.RenderScreen {
			t.Errorf("Render = %v; want screen", cfg.Output.Render)
		}
		if !cfg.Output.Unicode || cfg.Output.Colour {
			t.Errorf("Unicode/Colour = %v/%v; want true/false", cfg.Output.Unicode, cfg.Output.Colour)
		}
		if cfg.Output.IncludeMoves {
			t.Error("IncludeMoves should be false with -nomoves")
		}
		if cfg.Output.Delay != 50*time.Millisecond {
			t.Errorf("Delay = %v; want 50ms", cfg.Output.Delay)
		}
	})

	t.Run("bad render mode", func(t *testing.T) {
		defer saveRestoreString(renderMode, "gui")()
		if err := applyOutputFlags(config.NewConfig()); err == nil {
			t.Error("applyOutputFlags() should reject an unknown render mode")
		}
	})
}

func TestApplyDuplicateFlags(t *testing.T) {
	tests := []struct {
		name   string
		detect bool
		file   string
		want   bool
	}{
		{"off", false, "", false},
		{"flag", true, "", true},
		{"file implies detection", false, "dupes.txt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(detectDuplicates, tt.detect)()
			defer saveRestoreString(duplicateFile, tt.file)()
			cfg := config.NewConfig()
			applyDuplicateFlags(cfg)
			if cfg.Duplicate.Detect != tt.want {
				t.Errorf("Detect = %v; want %v", cfg.Duplicate.Detect, tt.want)
			}
		})
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
		}
	})

	t.Run("quiet wins", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
		}
	})

	t.Run("archive and profile", func(t *testing.T) {
		defer saveRestoreString(archiveDir, "games.db")()
		defer saveRestoreString(cpuProfile, "prof")()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags() error = %v", err)
		}
		if cfg.Archive.Dir != "games.db" || cfg.CPUProfileDir != "prof" {
			t.Errorf("Archive.Dir/CPUProfileDir = %q/%q", cfg.Archive.Dir, cfg.CPUProfileDir)
		}
	})
}
