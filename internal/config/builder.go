package config

import (
	"io"

	"github.com/lgbarn/nibblechess/internal/engine"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets how each side chooses its moves.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.White = white
	b.cfg.Black = black
	return b
}

// WithGames sets the batch size and the number of workers playing it.
func (b *ConfigBuilder) WithGames(games, workers int) *ConfigBuilder {
	b.cfg.Play.Games = games
	b.cfg.Play.Workers = workers
	return b
}

// WithMaxPlies sets the per-game ply limit.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Play.MaxPlies = plies
	return b
}

// WithSeed sets the base random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithSafety sets the king-safety mode used for move generation.
func (b *ConfigBuilder) WithSafety(mode engine.SafetyMode) *ConfigBuilder {
	b.cfg.Play.Safety = mode
	return b
}

// WithStartFEN sets the position every game starts from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Play.StartFEN = fen
	return b
}

// WithVerify enables cross-checking against the reference generator.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Play.Verify = enabled
	return b
}

// WithFailFast stops a batch at the first verification mismatch.
func (b *ConfigBuilder) WithFailFast(enabled bool) *ConfigBuilder {
	b.cfg.Play.FailFast = enabled
	return b
}

// WithRender sets the board display mode.
func (b *ConfigBuilder) WithRender(mode RenderMode) *ConfigBuilder {
	b.cfg.Output.Render = mode
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDuplicateDetection enables duplicate reporting.
func (b *ConfigBuilder) WithDuplicateDetection(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	return b
}

// WithArchive sets the archive directory.
func (b *ConfigBuilder) WithArchive(dir string) *ConfigBuilder {
	b.cfg.Archive.Dir = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
