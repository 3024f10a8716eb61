package ast

import (
	"fmt"
	"iter"
	"strings"

	"github.com/KimNorgaard/go-inix/errors"
	"github.com/KimNorgaard/go-inix/internal/ordered"
)

// Node is a top-level entry of a Document: a *Header or a *Comment.
type Node interface {
	// String returns the serialized form of the node, including the blank
	// line that separates it from the next node.
	String() string
	node()
}

// Property is a key/value pair of a header with an optional inline comment.
type Property struct {
	Value   string
	Comment string
}

// Header is a named section owning an ordered set of properties.
type Header struct {
	// Name is the trimmed header text including its brackets, e.g. "[GAMES]".
	Name    string
	Comment string

	properties ordered.Map[string, *Property]
}

// NewHeader returns an empty header.
func NewHeader(name, comment string) *Header {
	return &Header{Name: name, Comment: comment}
}

func (h *Header) node() {}

// Set stores p under key. An existing key keeps its position and is overwritten.
func (h *Header) Set(key string, p *Property) {
	h.properties.Set(key, p)
}

// Property returns the property stored under key.
func (h *Header) Property(key string) (*Property, error) {
	p, ok := h.properties.Get(key)
	if !ok {
		return nil, fmt.Errorf("property %q in %s: %w", key, h.Name, errors.ErrKeyNotFound)
	}
	return p, nil
}

// Value returns the value of the property stored under key.
func (h *Header) Value(key string) (string, error) {
	p, err := h.Property(key)
	if err != nil {
		return "", err
	}
	return p.Value, nil
}

// HasProperty reports whether the header has a property named key.
func (h *Header) HasProperty(key string) bool {
	return h.properties.Has(key)
}

// Len returns the number of properties.
func (h *Header) Len() int {
	return h.properties.Len()
}

// Keys returns the property keys in file order.
func (h *Header) Keys() []string {
	return h.properties.Keys()
}

// All iterates over the properties in file order.
func (h *Header) All() iter.Seq2[string, *Property] {
	return h.properties.All()
}

func (h *Header) String() string {
	var sb strings.Builder
	f := &formatter{w: &sb}
	f.writeHeader(h)
	return sb.String()
}

// Comment is a standalone comment line, stored verbatim with its marker.
type Comment struct {
	Text string
}

func (c *Comment) node() {}

func (c *Comment) String() string {
	var sb strings.Builder
	f := &formatter{w: &sb}
	f.writeComment(c)
	return sb.String()
}
