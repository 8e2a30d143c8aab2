// chessplay plays chess games on a packed 4-bit board between random and
// terminal players, alone or in parallel self-play batches.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"

	"github.com/lgbarn/nibblechess/internal/archive"
	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/errors"
)

const programVersion = "0.1.0"

// openFiles are closed before the program exits.
var openFiles []*os.File

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	err := run(cfg, os.Stdin, os.Stdout)
	closeFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
		os.Exit(1)
	}
}

// run plays the configured games. in feeds terminal players and display
// receives prompts and text boards.
func run(cfg *config.Config, in io.Reader, display io.Writer) error {
	if cfg.CPUProfileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfileDir), profile.Quiet).Stop()
	}

	store, err := openArchive(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	if *listArchive {
		return printArchive(cfg, store)
	}
	if singleGame(cfg) {
		return playSingle(cfg, store, in, display)
	}
	return playBatch(cfg, store, display)
}

// singleGame reports whether the run needs the interactive single-game loop.
func singleGame(cfg *config.Config) bool {
	return cfg.Interactive() || cfg.Output.Render == config.RenderScreen
}

// openArchive opens the game archive, or returns nil when archiving is off.
func openArchive(cfg *config.Config) (*archive.Store, error) {
	if !cfg.Archive.Enabled() {
		return nil, nil
	}
	if cfg.Archive.InMemory {
		return archive.OpenInMemory()
	}
	store, err := archive.Open(cfg.Archive.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive %s", cfg.Archive.Dir)
	}
	cfg.Logf(2, "archive: %s", cfg.Archive.Dir)
	return store, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	cfg.LogFile = createFile(*logFile, "log")
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	cfg.SetOutput(createFile(*outputFile, "output"))
}

// setupDuplicateFile configures the duplicate report file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}
	cfg.Duplicate.DuplicateFile = createFile(*duplicateFile, "duplicate")
}

func createFile(name, kind string) *os.File {
	file, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s file %s: %v\n", kind, name, err)
		os.Exit(1)
	}
	openFiles = append(openFiles, file)
	return file
}

func closeFiles() {
	for _, f := range openFiles {
		f.Close()
	}
	openFiles = nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games between random and terminal players.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nTerminal players enter coordinate moves such as e2e4 or e7e8n;\n")
	fmt.Fprintf(os.Stderr, "a bare promotion defaults to a queen and ? lists the available moves.\n")
	fmt.Fprintf(os.Stderr, "In the screen view press q or Escape to stop.\n")
}
