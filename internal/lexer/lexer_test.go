package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-inix/internal/lexer"
	"github.com/KimNorgaard/go-inix/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := "\uFEFF; top comment\r\n" +
		"[FRUITS] ; header comment\r\n" +
		"\r\n" +
		"APPLE=1\r\n" +
		"   \t\r\n" +
		"// slash comment\n" +
		"[BROKEN\n"

	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
		expectedLine    int
	}{
		{token.COMMENT, "; top comment", 1},
		{token.HEADER, "[FRUITS] ; header comment", 2},
		{token.PROPERTY, "APPLE=1", 4},
		{token.COMMENT, "// slash comment", 6},
		{token.HEADER, "[BROKEN", 7},
		{token.EOF, "", 7},
	}

	l := lexer.New(strings.NewReader(input))
	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong", i)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
		require.Equal(t, tt.expectedLine, tok.Line, "tests[%d] - line wrong", i)
	}
	require.NoError(t, l.Err())
}

func TestFromLines(t *testing.T) {
	l := lexer.FromLines([]string{"", "[A]", "K=V\r", ""})

	tok := l.NextToken()
	require.Equal(t, token.HEADER, tok.Type)
	require.Equal(t, 2, tok.Line)

	tok = l.NextToken()
	require.Equal(t, token.PROPERTY, tok.Type)
	require.Equal(t, "K=V", tok.Literal)
	require.Equal(t, 3, tok.Line)

	require.Equal(t, token.EOF, l.NextToken().Type)
	require.Equal(t, token.EOF, l.NextToken().Type)
	require.NoError(t, l.Err())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadError(t *testing.T) {
	l := lexer.New(failingReader{})
	require.Equal(t, token.EOF, l.NextToken().Type)
	require.EqualError(t, l.Err(), "disk on fire")
}

func TestLongLine(t *testing.T) {
	value := strings.Repeat("x", 2*1024*1024)
	l := lexer.New(strings.NewReader("[A]\nK=" + value + "\nB=1"))

	require.Equal(t, token.HEADER, l.NextToken().Type)

	tok := l.NextToken()
	require.Equal(t, token.PROPERTY, tok.Type)
	require.Equal(t, "K="+value, tok.Literal)

	tok = l.NextToken()
	require.Equal(t, "B=1", tok.Literal)
	require.Equal(t, 3, tok.Line)

	require.Equal(t, token.EOF, l.NextToken().Type)
	require.NoError(t, l.Err())
}
