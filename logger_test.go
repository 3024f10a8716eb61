package inix_test

import (
	"testing"

	"github.com/KimNorgaard/go-inix"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.messages = append(r.messages, message)
}

func TestWithLogger(t *testing.T) {
	logger := &recordingLogger{}
	doc := inix.ParseFile("testdata/broken.ini", inix.WithLogger(logger))
	require.True(t, doc.HasErrors())

	require.NotEmpty(t, logger.messages)
	require.Equal(t, "Loading in file with path - testdata/broken.ini", logger.messages[0])
	require.Contains(t, logger.messages, "line 2: dropping property outside of any header: ORPHAN=dropped before any header")
	require.Equal(t, "finished parsing: 3 nodes, 2 errors", logger.messages[len(logger.messages)-1])
}

func TestWithLogger_MissingFile(t *testing.T) {
	logger := &recordingLogger{}
	inix.ParseFile("testdata/missing.ini", inix.WithLogger(logger))

	require.Len(t, logger.messages, 2)
	require.Contains(t, logger.messages[1], "Error reading lines of file - ")
}

func TestNopLogger(t *testing.T) {
	require.NotPanics(t, func() {
		inix.NopLogger{}.Log("ignored")
		inix.ParseString("X=1", inix.WithLogger(nil))
	})
}

func TestCommonLogger(t *testing.T) {
	var logger inix.Logger = inix.NewCommonLogger("inix.test")
	require.NotPanics(t, func() {
		doc := inix.ParseString("[A]\nX=1\n", inix.WithLogger(logger))
		require.Equal(t, 1, doc.Len())
	})
}
