package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/KimNorgaard/go-inix/errors"
	"github.com/stretchr/testify/require"
)

func TestParseError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      errors.ParseError
		kind     errors.Kind
		expected string
	}{
		{
			name:     "missing bracket",
			err:      errors.MissingBracket(3, "[BROKEN"),
			kind:     errors.MalformedHeader,
			expected: `line 3: missing closing bracket: "[BROKEN"`,
		},
		{
			name:     "bad property",
			err:      errors.BadProperty(7, "JUSTAKEY", 1),
			kind:     errors.MalformedProperty,
			expected: `line 7: error parsing the property "JUSTAKEY" (1 parts)`,
		},
		{
			name:     "duplicate header",
			err:      errors.RepeatedHeader(9, "[GAMES]"),
			kind:     errors.DuplicateHeader,
			expected: "line 9: duplicate header [GAMES]",
		},
		{
			name:     "read failure",
			err:      errors.ReadFailure(fs.ErrNotExist),
			kind:     errors.SourceReadFailure,
			expected: "error reading the file - file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind)
			require.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseErrors(t *testing.T) {
	var empty errors.ParseErrors
	require.Equal(t, "", empty.Error())

	errs := errors.ParseErrors{
		errors.MissingBracket(1, "[A"),
		errors.BadProperty(2, "B", 1),
		errors.BadProperty(3, "C", 1),
	}
	require.Equal(t, `inix: line 1: missing closing bracket: "[A"; line 2: error parsing the property "B" (1 parts); line 3: error parsing the property "C" (1 parts)`, errs.Error())
	require.Equal(t, 2, errs.Count(errors.MalformedProperty))
	require.Equal(t, 1, errs.Count(errors.MalformedHeader))
	require.Zero(t, errs.Count(errors.SourceReadFailure))

	var pe errors.ParseError
	require.True(t, stderrors.As(errs, &pe))
	require.Equal(t, errors.MalformedHeader, pe.Kind)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "MalformedHeader", errors.MalformedHeader.String())
	require.Equal(t, "SourceReadFailure", errors.SourceReadFailure.String())
	require.Equal(t, "Kind(42)", errors.Kind(42).String())
}

func TestReadFailure_Unwrap(t *testing.T) {
	errs := errors.ParseErrors{errors.ReadFailure(fs.ErrPermission)}
	require.ErrorIs(t, errs, fs.ErrPermission)
	require.NotErrorIs(t, errors.MissingBracket(1, "[A"), fs.ErrPermission)
}
