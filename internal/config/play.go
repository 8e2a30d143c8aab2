package config

import (
	"fmt"

	"github.com/lgbarn/nibblechess/internal/engine"
	"github.com/lgbarn/nibblechess/internal/errors"
)

// DefaultMaxPlies caps a game that neither side can finish.
const DefaultMaxPlies = 500

// PlayConfig holds settings for the turn loop and the self-play batch.
type PlayConfig struct {
	Games    int   // Number of games to play
	Workers  int   // Goroutines playing batch games
	MaxPlies int   // Ply limit per game
	Seed     int64 // Base seed; game n uses Seed+n

	Safety engine.SafetyMode
	Verify bool // Cross-check every move set against the reference generator

	// FailFast skips the remaining batch games after the first mismatch
	FailFast bool

	// StartFEN replaces the initial position when set
	StartFEN string
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Games:    1,
		Workers:  1,
		MaxPlies: DefaultMaxPlies,
		Seed:     1,
		Safety:   engine.SafetyFull,
	}
}

// Validate checks that the play configuration is usable.
func (p *PlayConfig) Validate() error {
	if p.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d: %w", p.Games, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxPlies < 1 {
		return fmt.Errorf("max plies must be at least 1, got %d: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	if p.Verify && p.Safety != engine.SafetyFull {
		return fmt.Errorf("verification needs %v safety, got %v: %w",
			engine.SafetyFull, p.Safety, errors.ErrInvalidConfig)
	}
	if p.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(p.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// StartPosition parses StartFEN. It returns nil when no start position is set.
func (p *PlayConfig) StartPosition() (*engine.Position, error) {
	if p.StartFEN == "" {
		return nil, nil
	}
	return engine.NewBoardFromFEN(p.StartFEN)
}
