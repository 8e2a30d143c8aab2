// Package output writes finished game records as text or JSON.
package output

import (
	"io"

	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/game"
)

// RecordWriter is the interface for writing game records to output.
type RecordWriter interface {
	// WriteRecord writes a single record to the output.
	WriteRecord(rec *game.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewRecordWriter returns the writer selected by cfg.Output.
func NewRecordWriter(w io.Writer, cfg *config.Config) RecordWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.IncludeMoves)
}
