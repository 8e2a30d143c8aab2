// Package config provides run configuration for chessplay.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/nibblechess/internal/errors"
)

// PlayerKind selects how a side chooses its moves.
type PlayerKind int

const (
	RandomPlayer   PlayerKind = iota // Uniform choice from the move set
	TerminalPlayer                   // Coordinate moves read from standard input
)

// String returns the flag spelling of the player kind.
func (k PlayerKind) String() string {
	switch k {
	case RandomPlayer:
		return "random"
	case TerminalPlayer:
		return "terminal"
	}
	return fmt.Sprintf("PlayerKind(%d)", int(k))
}

// ParsePlayerKind parses "random" or "terminal".
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(s) {
	case "random", "":
		return RandomPlayer, nil
	case "terminal", "human":
		return TerminalPlayer, nil
	}
	return RandomPlayer, fmt.Errorf("unknown player %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	White PlayerKind
	Black PlayerKind

	Verbosity int // 0=nothing, 1=batch summary, 2=one line per game

	Play      *PlayConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Archive   *ArchiveConfig

	// CPUProfileDir enables CPU profiling into the directory when set.
	CPUProfileDir string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		White:      RandomPlayer,
		Black:      RandomPlayer,
		Verbosity:  1,
		Play:       NewPlayConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Archive:    NewArchiveConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream game records are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Interactive reports whether either side is played from the terminal.
func (c *Config) Interactive() bool {
	return c.White == TerminalPlayer || c.Black == TerminalPlayer
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks each section and the combinations between them.
func (c *Config) Validate() error {
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if c.Interactive() && c.Play.Games != 1 {
		return fmt.Errorf("terminal player needs exactly one game, got %d: %w",
			c.Play.Games, errors.ErrInvalidConfig)
	}
	if c.Output.Render == RenderScreen && c.Play.Games != 1 {
		return fmt.Errorf("screen rendering needs exactly one game, got %d: %w",
			c.Play.Games, errors.ErrInvalidConfig)
	}
	if c.Output.Render == RenderScreen && c.Interactive() {
		return fmt.Errorf("screen rendering cannot share the terminal with a terminal player: %w",
			errors.ErrInvalidConfig)
	}
	return nil
}
