package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/nibblechess/internal/game"
)

// DefaultLineLength is the wrap column for move text.
const DefaultLineLength = 80

// LineWriter writes space-separated tokens, wrapping before a token that
// would pass the line length.
type LineWriter struct {
	w             io.Writer
	maxLineLength int
	lineLength    int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a LineWriter. A non-positive maxLineLength selects
// DefaultLineLength.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &LineWriter{w: w, maxLineLength: maxLineLength}
}

// Write writes a token, preceded by a space or a line break as needed.
func (o *LineWriter) Write(s string) {
	if len(s) == 0 {
		return
	}
	if o.needsSpace {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err == nil {
		_, o.err = io.WriteString(o.w, s)
	}
}

// TextWriter writes each record as a block of bracketed tags followed by the
// numbered move list and a blank line.
type TextWriter struct {
	w             io.Writer
	includeMoves  bool
	maxLineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, includeMoves bool) *TextWriter {
	return &TextWriter{w: w, includeMoves: includeMoves, maxLineLength: DefaultLineLength}
}

// WriteRecord writes rec immediately.
func (tw *TextWriter) WriteRecord(rec *game.Record) error {
	var sb strings.Builder
	writeTag(&sb, "Game", strconv.Itoa(rec.ID))
	writeTag(&sb, "Seed", strconv.FormatInt(rec.Seed, 10))
	writeTag(&sb, "Safety", rec.Safety)
	writeTag(&sb, "End", rec.End.String())
	if rec.Error != "" {
		writeTag(&sb, "Error", rec.Error)
	}
	writeTag(&sb, "Plies", strconv.Itoa(rec.Plies))
	writeTag(&sb, "HalfmoveClock", strconv.Itoa(rec.HalfmoveClock))
	writeTag(&sb, "FinalFEN", rec.FinalFEN)
	if rec.Hash != 0 {
		writeTag(&sb, "Hash", fmt.Sprintf("%016x", rec.Hash))
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(tw.w, sb.String()); err != nil {
		return err
	}

	if !tw.includeMoves || len(rec.Moves) == 0 {
		return nil
	}
	lw := NewLineWriter(tw.w, tw.maxLineLength)
	for i, m := range rec.Moves {
		if i%2 == 0 {
			lw.Write(strconv.Itoa(i/2+1) + ".")
		}
		lw.Write(m)
	}
	lw.NewLine()
	lw.NewLine()
	return lw.Err()
}

func writeTag(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "[%s %q]\n", name, value)
}

// Flush is a no-op; records are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
