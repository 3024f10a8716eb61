package ast

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-inix/errors"
	"github.com/KimNorgaard/go-inix/internal/ordered"
)

const commentKeyPrefix = "Comment-"

// Document is the root of a parsed Inix file: an insertion-ordered mapping
// from keys to nodes plus the errors recorded while it was built.
//
// Header nodes are keyed by their bracketed name ("[GAMES]"). Standalone
// comments are keyed "Comment-<n>" where n counts comments from 1 across the
// whole document.
//
// The Add methods build a document and are meant for the parser; once
// parsed, a document is read-only by convention.
type Document struct {
	nodes    ordered.Map[string, Node]
	comments int
	errors   errors.ParseErrors
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CommentKey returns the document key of the n-th standalone comment.
func CommentKey(n int) string {
	return commentKeyPrefix + strconv.Itoa(n)
}

// HeaderKey returns the document key for a header name, wrapping it in
// brackets unless it already starts with one.
func HeaderKey(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "[") {
		return name
	}
	return "[" + name + "]"
}

// AddHeader stores h under its Name. A header with the same name is replaced
// in place.
func (d *Document) AddHeader(h *Header) {
	d.nodes.Set(h.Name, h)
}

// AddComment appends c as the next standalone comment and returns its key.
func (d *Document) AddComment(c *Comment) string {
	d.comments++
	key := CommentKey(d.comments)
	d.nodes.Set(key, c)
	return key
}

// AddError records a recoverable parse error.
func (d *Document) AddError(e errors.ParseError) {
	d.errors = append(d.errors, e)
}

// Get returns the node stored under the literal key.
func (d *Document) Get(key string) (Node, error) {
	n, ok := d.nodes.Get(key)
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, errors.ErrKeyNotFound)
	}
	return n, nil
}

// Header returns the header with the given name. A bare name is wrapped in
// brackets, so Header("GAMES") and Header("[GAMES]") are equivalent.
func (d *Document) Header(name string) (*Header, error) {
	key := HeaderKey(name)
	n, ok := d.nodes.Get(key)
	if !ok {
		return nil, fmt.Errorf("header %s: %w", key, errors.ErrKeyNotFound)
	}
	h, ok := n.(*Header)
	if !ok {
		return nil, fmt.Errorf("header %s: %w", key, errors.ErrKeyNotFound)
	}
	return h, nil
}

// Comment returns the n-th standalone comment, counting from 1.
func (d *Document) Comment(n int) (*Comment, error) {
	key := CommentKey(n)
	node, ok := d.nodes.Get(key)
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", n, errors.ErrKeyNotFound)
	}
	c, ok := node.(*Comment)
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", n, errors.ErrKeyNotFound)
	}
	return c, nil
}

// ContainsHeader reports whether a header with the given name exists.
func (d *Document) ContainsHeader(name string) bool {
	_, err := d.Header(name)
	return err == nil
}

// Len returns the number of top-level nodes (headers and standalone comments).
func (d *Document) Len() int {
	return d.nodes.Len()
}

// Keys returns the node keys in file order.
func (d *Document) Keys() []string {
	return d.nodes.Keys()
}

// All iterates over the nodes in file order.
func (d *Document) All() iter.Seq2[string, Node] {
	return d.nodes.All()
}

// Headers iterates over the header nodes in file order.
func (d *Document) Headers() iter.Seq[*Header] {
	return func(yield func(*Header) bool) {
		for _, n := range d.nodes.All() {
			if h, ok := n.(*Header); ok && !yield(h) {
				return
			}
		}
	}
}

// Comments iterates over the standalone comments in file order.
func (d *Document) Comments() iter.Seq[*Comment] {
	return func(yield func(*Comment) bool) {
		for _, n := range d.nodes.All() {
			if c, ok := n.(*Comment); ok && !yield(c) {
				return
			}
		}
	}
}

// HasErrors reports whether any error was recorded while parsing.
// A document with errors may still hold everything that parsed correctly.
func (d *Document) HasErrors() bool {
	return len(d.errors) > 0
}

// Errors returns the recorded error messages in the order they occurred.
func (d *Document) Errors() []string {
	msgs := make([]string, len(d.errors))
	for i, e := range d.errors {
		msgs[i] = e.Error()
	}
	return msgs
}

// ParseErrors returns a copy of the recorded errors.
func (d *Document) ParseErrors() errors.ParseErrors {
	out := make(errors.ParseErrors, len(d.errors))
	copy(out, d.errors)
	return out
}

// Err returns the recorded errors as a single error, or nil if there are none.
func (d *Document) Err() error {
	if len(d.errors) == 0 {
		return nil
	}
	return d.ParseErrors()
}
