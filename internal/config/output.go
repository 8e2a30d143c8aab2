package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/nibblechess/internal/errors"
)

// RenderMode selects how the board is shown while a game is played.
type RenderMode int

const (
	RenderNone   RenderMode = iota // No board output
	RenderText                     // ANSI text after every move
	RenderScreen                   // Full-screen terminal view
)

// String returns the flag spelling of the render mode.
func (m RenderMode) String() string {
	switch m {
	case RenderNone:
		return "none"
	case RenderText:
		return "text"
	case RenderScreen:
		return "screen"
	}
	return fmt.Sprintf("RenderMode(%d)", int(m))
}

// ParseRenderMode parses "none", "text" or "screen".
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return RenderNone, nil
	case "text":
		return RenderText, nil
	case "screen":
		return RenderScreen, nil
	}
	return RenderNone, fmt.Errorf("unknown render mode %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Render controls board display during play
	Render RenderMode

	// Unicode draws chess symbols; Colour paints text board squares
	Unicode bool
	Colour  bool

	// Delay pauses before each move of a displayed game
	Delay time.Duration

	// JSONFormat writes game records as a JSON array instead of summary lines
	JSONFormat bool

	// IncludeMoves adds the move list to each summary line
	IncludeMoves bool

	// Filename is the record destination; empty means standard output
	Filename string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Render:       RenderNone,
		IncludeMoves: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Render < RenderNone || o.Render > RenderScreen {
		return fmt.Errorf("render mode %v: %w", o.Render, errors.ErrInvalidConfig)
	}
	if o.Delay < 0 {
		return fmt.Errorf("negative delay %v: %w", o.Delay, errors.ErrInvalidConfig)
	}
	return nil
}
