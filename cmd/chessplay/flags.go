// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/engine"
)

var (
	// Players
	whitePlayer = flag.String("white", "random", "White player: random or terminal")
	blackPlayer = flag.String("black", "random", "Black player: random or terminal")

	// Play options
	games    = flag.Int("games", 1, "Number of games to play")
	workers  = flag.Int("workers", 1, "Number of goroutines playing a batch")
	maxPly   = flag.Int("maxply", config.DefaultMaxPlies, "Maximum plies per game")
	seed     = flag.Int64("seed", 1, "Base random seed; game n uses seed+n-1")
	safety   = flag.String("safety", "full", "King safety: full or stub")
	verify   = flag.Bool("verify", false, "Cross-check every move set against dragontoothmg")
	startFEN = flag.String("fen", "", "Start every game from this FEN position")
	failFast = flag.Bool("failfast", false, "Skip the rest of a batch after the first -verify mismatch")

	// Display options
	renderMode = flag.String("render", "none", "Board display during play: none, text or screen")
	unicode    = flag.Bool("unicode", false, "Draw chess symbols instead of letters")
	colour     = flag.Bool("colour", false, "Colour the squares of the text board")
	delay      = flag.Duration("delay", 0, "Pause before each move of a displayed game")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output game records in JSON format")
	noMoves    = flag.Bool("nomoves", false, "Leave the move list out of text records")

	// Duplicate detection
	detectDuplicates = flag.Bool("D", false, "Report games ending in an already seen position")
	duplicateFile    = flag.String("d", "", "Output duplicate reports to this file")

	// Archive
	archiveDir  = flag.String("archive", "", "Save finished games in a badger database in this directory")
	listArchive = flag.Bool("list", false, "Print the games stored in -archive and exit")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summary, 2 one line per game")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	cpuProfile = flag.String("cpuprofile", "", "Write a CPU profile into this directory")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyDuplicateFlags(cfg)

	cfg.Archive.Dir = *archiveDir
	cfg.CPUProfileDir = *cpuProfile
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyPlayerFlags selects how each side chooses its moves.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return fmt.Errorf("-white: %w", err)
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return fmt.Errorf("-black: %w", err)
	}
	cfg.White, cfg.Black = white, black
	return nil
}

// applyPlayFlags configures the turn loop and the batch.
func applyPlayFlags(cfg *config.Config) error {
	mode, err := engine.ParseSafetyMode(*safety)
	if err != nil {
		return fmt.Errorf("-safety: %w", err)
	}
	cfg.Play.Games = *games
	cfg.Play.Workers = *workers
	cfg.Play.MaxPlies = *maxPly
	cfg.Play.Seed = *seed
	cfg.Play.Safety = mode
	cfg.Play.Verify = *verify
	cfg.Play.StartFEN = *startFEN
	cfg.Play.FailFast = *failFast
	return nil
}

// applyOutputFlags configures record output and board display.
func applyOutputFlags(cfg *config.Config) error {
	mode, err := config.ParseRenderMode(*renderMode)
	if err != nil {
		return fmt.Errorf("-render: %w", err)
	}
	cfg.Output.Render = mode
	cfg.Output.Unicode = *unicode
	cfg.Output.Colour = *colour
	cfg.Output.Delay = *delay
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.IncludeMoves = !*noMoves
	cfg.Output.Filename = *outputFile
	return nil
}

// applyDuplicateFlags configures duplicate detection. Naming a duplicate
// file turns detection on.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Detect = *detectDuplicates || *duplicateFile != ""
}
