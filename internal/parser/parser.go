package parser

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-inix/ast"
	"github.com/KimNorgaard/go-inix/errors"
	"github.com/KimNorgaard/go-inix/internal/lexer"
	"github.com/KimNorgaard/go-inix/internal/token"
)

// Logger receives diagnostic messages from the parser.
type Logger interface {
	Log(message string)
}

type lineParseFn func(tok token.Token)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger the parser reports progress to.
func WithLogger(l Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// MergeDuplicateHeaders makes a repeated header name continue the earlier
// header silently instead of recording a DuplicateHeader error.
func MergeDuplicateHeaders() Option {
	return func(p *Parser) {
		p.mergeDuplicates = true
	}
}

// Parser builds a Document from classified lines. A Parser may be reused for
// several inputs but must not be shared between goroutines.
type Parser struct {
	logger          Logger
	mergeDuplicates bool

	doc      *ast.Document
	current *ast.Header // header properties attach to, nil before the first header

	lineParseFns map[token.Type]lineParseFn
}

// New creates a new parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: nopLogger{}}
	for _, opt := range opts {
		opt(p)
	}

	p.lineParseFns = make(map[token.Type]lineParseFn)
	p.registerLine(token.HEADER, p.parseHeader)
	p.registerLine(token.PROPERTY, p.parseProperty)
	p.registerLine(token.COMMENT, p.parseComment)

	return p
}

// Parse consumes every token of l and returns the resulting document.
// Malformed lines are recorded on the document and skipped. If l fails to
// read its source, the returned document is empty apart from a single
// SourceReadFailure error.
func (p *Parser) Parse(l *lexer.Lexer) *ast.Document {
	p.reset()

	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		p.lineParseFns[tok.Type](tok)
	}

	if err := l.Err(); err != nil {
		p.logf("error reading lines of file - %s", err)
		doc := ast.NewDocument()
		doc.AddError(errors.ReadFailure(err))
		return doc
	}

	p.logf("finished parsing: %d nodes, %d errors", p.doc.Len(), len(p.doc.Errors()))
	return p.doc
}

func (p *Parser) reset() {
	p.doc = ast.NewDocument()
	p.current = nil
}

func (p *Parser) parseHeader(tok token.Token) {
	headerPart, comment, _ := strings.Cut(tok.Literal, ";")
	name := strings.TrimSpace(headerPart)

	if !strings.HasSuffix(name, "]") {
		p.doc.AddError(errors.MissingBracket(tok.Line, name))
		return
	}

	if h, err := p.doc.Header(name); err == nil {
		if !p.mergeDuplicates {
			p.doc.AddError(errors.RepeatedHeader(tok.Line, name))
		}
		p.logf("line %d: continuing earlier header %s", tok.Line, name)
		p.current = h
		return
	}

	h := ast.NewHeader(name, strings.TrimSpace(comment))
	p.doc.AddHeader(h)
	p.current = h
}

func (p *Parser) parseProperty(tok token.Token) {
	kv, comment, _ := strings.Cut(tok.Literal, ";")

	parts := strings.SplitN(kv, "=", 2)
	if len(parts) != 2 {
		p.doc.AddError(errors.BadProperty(tok.Line, tok.Literal, len(parts)))
		return
	}

	if p.current == nil {
		p.logf("line %d: dropping property outside of any header: %s", tok.Line, tok.Literal)
		return
	}

	p.current.Set(strings.TrimSpace(parts[0]), &ast.Property{
		Value:   strings.TrimSpace(parts[1]),
		Comment: strings.TrimSpace(comment),
	})
}

func (p *Parser) parseComment(tok token.Token) {
	p.doc.AddComment(&ast.Comment{Text: tok.Literal})
}

func (p *Parser) registerLine(tokenType token.Type, fn lineParseFn) {
	p.lineParseFns[tokenType] = fn
}

func (p *Parser) logf(format string, args ...any) {
	p.logger.Log(fmt.Sprintf(format, args...))
}

type nopLogger struct{}

func (nopLogger) Log(string) {}
