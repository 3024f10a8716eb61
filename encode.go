package inix

import (
	"fmt"
	"io"
)

// Encoder writes Inix documents to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the reconstructed text of doc to the stream. Unlike
// Serialize, an empty document writes nothing rather than EmptySentinel.
func (e *Encoder) Encode(doc *Document) error {
	if _, err := doc.WriteTo(e.w); err != nil {
		return fmt.Errorf("inix: %w", err)
	}
	return nil
}
