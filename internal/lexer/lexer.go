package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/KimNorgaard/go-inix/internal/token"
)

const byteOrderMark = "\uFEFF"

// Lexer turns INI source into a stream of classified line tokens.
// Empty and whitespace-only lines are skipped and never produce a token.
type Lexer struct {
	next func() (string, bool)
	line int
	err  error
}

// New creates a Lexer reading lines from r. Lines may be of any length.
func New(r io.Reader) *Lexer {
	br := bufio.NewReader(r)
	l := &Lexer{}
	l.next = func() (string, bool) {
		if l.err != nil {
			return "", false
		}
		line, err := br.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				l.err = err
				return "", false
			}
			if line == "" {
				return "", false
			}
		}
		return strings.TrimSuffix(line, "\n"), true
	}
	return l
}

// FromLines creates a Lexer over lines that have already been read.
func FromLines(lines []string) *Lexer {
	i := 0
	return &Lexer{
		next: func() (string, bool) {
			if i >= len(lines) {
				return "", false
			}
			i++
			return lines[i-1], true
		},
	}
}

// NextToken returns the next non-empty line, or an EOF token once the
// input is exhausted.
func (l *Lexer) NextToken() token.Token {
	for {
		raw, ok := l.next()
		if !ok {
			return token.Token{Type: token.EOF, Line: l.line}
		}
		l.line++

		raw = strings.TrimSuffix(raw, "\r")
		if l.line == 1 {
			raw = strings.TrimPrefix(raw, byteOrderMark)
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}

		return token.Token{
			Type:    token.Classify(raw[0]),
			Literal: raw,
			Line:    l.line,
		}
	}
}

// Err returns the first read error encountered by the underlying reader.
// It is only meaningful once NextToken has returned EOF.
func (l *Lexer) Err() error {
	return l.err
}
