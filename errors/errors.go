package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKeyNotFound is returned by document and header lookups for keys that
// are not present.
var ErrKeyNotFound = errors.New("inix: key not found")

// Kind classifies a ParseError.
type Kind int

const (
	// MalformedHeader is a header line without a closing bracket.
	MalformedHeader Kind = iota + 1
	// MalformedProperty is a property line that does not split into a key and a value.
	MalformedProperty
	// DuplicateHeader is a header whose name was already used earlier in the document.
	DuplicateHeader
	// SourceReadFailure is an I/O error while reading the source.
	SourceReadFailure
)

func (k Kind) String() string {
	switch k {
	case MalformedHeader:
		return "MalformedHeader"
	case MalformedProperty:
		return "MalformedProperty"
	case DuplicateHeader:
		return "DuplicateHeader"
	case SourceReadFailure:
		return "SourceReadFailure"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError represents a single recoverable error recorded during parsing.
// Line is the 1-based source line, or 0 when the error is not tied to a line.
type ParseError struct {
	Kind    Kind
	Message string
	Line    int
	Err     error // underlying cause, if any
}

func (e ParseError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e ParseError) Unwrap() error { return e.Err }

// ParseErrors is a slice of ParseError that implements the error interface.
// This allows returning all errors found during parsing at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	msgs := make([]string, len(p))
	for i, e := range p {
		msgs[i] = e.Error()
	}
	return "inix: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (p ParseErrors) Unwrap() []error {
	errs := make([]error, len(p))
	for i, e := range p {
		errs[i] = e
	}
	return errs
}

// Count returns the number of errors of the given kind.
func (p ParseErrors) Count(kind Kind) int {
	n := 0
	for _, e := range p {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// MissingBracket builds the error recorded for a header without a closing bracket.
func MissingBracket(line int, header string) ParseError {
	return ParseError{
		Kind:    MalformedHeader,
		Message: fmt.Sprintf("missing closing bracket: %q", header),
		Line:    line,
	}
}

// BadProperty builds the error recorded for a property line whose key/value
// split produced the wrong number of pieces.
func BadProperty(line int, raw string, pieces int) ParseError {
	return ParseError{
		Kind:    MalformedProperty,
		Message: fmt.Sprintf("error parsing the property %q (%d parts)", raw, pieces),
		Line:    line,
	}
}

// RepeatedHeader builds the error recorded for a header name seen twice.
func RepeatedHeader(line int, header string) ParseError {
	return ParseError{
		Kind:    DuplicateHeader,
		Message: fmt.Sprintf("duplicate header %s", header),
		Line:    line,
	}
}

// ReadFailure builds the error recorded when the source cannot be read.
func ReadFailure(err error) ParseError {
	return ParseError{
		Kind:    SourceReadFailure,
		Message: "error reading the file - " + err.Error(),
		Err:     err,
	}
}
