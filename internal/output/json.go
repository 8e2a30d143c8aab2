package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/nibblechess/internal/game"
)

// JSONOutput holds multiple records for array output.
type JSONOutput struct {
	Games []*game.Record `json:"games"`
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	records []*game.Record
	single  bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		records: make([]*game.Record, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteRecord buffers a record for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteRecord(rec *game.Record) error {
	if jw.single {
		return encode(jw.w, rec)
	}
	jw.records = append(jw.records, rec)
	return nil
}

// Flush writes all buffered records as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.records) == 0 {
		return nil
	}
	err := encode(jw.w, &JSONOutput{Games: jw.records})
	jw.records = jw.records[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
