package inix

import (
	"io"
	"os"
	"strings"

	"github.com/KimNorgaard/go-inix/ast"
	"github.com/KimNorgaard/go-inix/errors"
	"github.com/KimNorgaard/go-inix/internal/lexer"
	"github.com/KimNorgaard/go-inix/internal/parser"
)

type (
	// Document is a parsed Inix file. See ast.Document.
	Document = ast.Document
	// Node is a top-level document entry: a *Header or a *Comment.
	Node = ast.Node
	// Header is a named section of properties.
	Header = ast.Header
	// Property is a key/value pair with an optional inline comment.
	Property = ast.Property
	// Comment is a standalone comment line.
	Comment = ast.Comment
	// ParseError is a single recoverable parse error.
	ParseError = errors.ParseError
	// ParseErrors is the list of errors recorded on a Document.
	ParseErrors = errors.ParseErrors
)

// ErrKeyNotFound is returned by lookups of absent headers, properties and comments.
var ErrKeyNotFound = errors.ErrKeyNotFound

// EmptySentinel is what Serialize returns for a document without nodes.
const EmptySentinel = ast.EmptySentinel

// Parse builds a Document from lines that have already been read.
// Malformed lines never abort the parse; they are recorded on the returned
// document, see Document.Errors.
func Parse(lines []string, opts ...Option) *Document {
	return parse(lexer.FromLines(lines), opts)
}

// ParseString parses Inix text.
func ParseString(s string, opts ...Option) *Document {
	return parse(lexer.New(strings.NewReader(s)), opts)
}

// ParseReader parses Inix text read from r. A read failure is recorded as a
// single error on an otherwise empty document.
func ParseReader(r io.Reader, opts ...Option) *Document {
	return parse(lexer.New(r), opts)
}

// ParseFile parses the file at path. Failing to open or read the file is
// recorded as a single error on an otherwise empty document.
func ParseFile(path string, opts ...Option) *Document {
	o := newOptions(opts)
	o.logger.Log("Loading in file with path - " + path)

	f, err := os.Open(path)
	if err != nil {
		o.logger.Log("Error reading lines of file - " + err.Error())
		doc := ast.NewDocument()
		doc.AddError(errors.ReadFailure(err))
		return doc
	}
	defer f.Close()

	return parser.New(o.parserOptions()...).Parse(lexer.New(f))
}

// Serialize reconstructs doc as Inix text. An empty document yields
// EmptySentinel, which is a diagnostic and not valid input for Parse.
func Serialize(doc *Document) string {
	return doc.String()
}

func parse(l *lexer.Lexer, opts []Option) *Document {
	o := newOptions(opts)
	return parser.New(o.parserOptions()...).Parse(l)
}
