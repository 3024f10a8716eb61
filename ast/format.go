package ast

import (
	"io"
	"strings"
)

// EmptySentinel is what String returns for a document without nodes. It is a
// diagnostic, not valid Inix text, and must not be fed back to the parser.
const EmptySentinel = "<empty>"

const (
	newline          = "\n"
	commentSeparator = " ; "
)

// String reconstructs the document as Inix text, or returns EmptySentinel
// when the document has no nodes.
func (d *Document) String() string {
	if d.Len() == 0 {
		return EmptySentinel
	}
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the reconstructed document to w. Nodes are written in file
// order; an empty document writes nothing.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	f := &formatter{w: w}
	for _, n := range d.nodes.All() {
		switch n := n.(type) {
		case *Header:
			f.writeHeader(n)
		case *Comment:
			f.writeComment(n)
		}
		if f.err != nil {
			break
		}
	}
	return f.n, f.err
}

// formatter writes nodes to w, remembering the first write error and the
// number of bytes written.
type formatter struct {
	w   io.Writer
	n   int64
	err error
}

func (f *formatter) write(parts ...string) {
	for _, s := range parts {
		if f.err != nil {
			return
		}
		n, err := io.WriteString(f.w, s)
		f.n += int64(n)
		f.err = err
	}
}

func (f *formatter) writeHeader(h *Header) {
	f.write(h.Name)
	f.writeInlineComment(h.Comment)
	f.write(newline)
	for k, p := range h.All() {
		f.write(k, "=", p.Value)
		f.writeInlineComment(p.Comment)
		f.write(newline)
	}
	f.write(newline)
}

func (f *formatter) writeComment(c *Comment) {
	f.write(c.Text, newline, newline)
}

func (f *formatter) writeInlineComment(comment string) {
	if comment != "" {
		f.write(commentSeparator, comment)
	}
}
