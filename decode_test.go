package inix_test

import (
	"testing"

	"github.com/KimNorgaard/go-inix"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader_Struct(t *testing.T) {
	doc := inix.ParseFile("testdata/setup.ini")

	type camber struct {
		Name  string `inix:"NAME"`
		Min   string
		Max   string
		Tab   string `inix:"TAB"`
		Extra string
	}

	var c camber
	require.NoError(t, inix.DecodeHeader(doc, "CAMBER_RF", &c))
	require.Equal(t, camber{Name: "Camber RF", Min: "-40", Max: "0", Tab: "ALIGNMENT"}, c)
}

func TestDecodeHeader_Map(t *testing.T) {
	doc := inix.ParseFile("testdata/setup.ini")

	var m map[string]string
	require.NoError(t, inix.DecodeHeader(doc, "[FUEL]", &m))
	require.Equal(t, map[string]string{"MIN": "1", "MAX": "70", "URL": "http://example.com/a=b"}, m)
}

func TestDecodeHeader_Errors(t *testing.T) {
	doc := inix.ParseFile("testdata/setup.ini")

	t.Run("missing header", func(t *testing.T) {
		var m map[string]string
		err := inix.DecodeHeader(doc, "NOPE", &m)
		require.ErrorIs(t, err, inix.ErrKeyNotFound)
	})

	t.Run("values are not converted", func(t *testing.T) {
		var fuel struct {
			Max int
		}
		err := inix.DecodeHeader(doc, "FUEL", &fuel)
		require.Error(t, err)
		require.Contains(t, err.Error(), "decoding [FUEL]")
	})

	t.Run("non-pointer target", func(t *testing.T) {
		var m map[string]string
		require.Error(t, inix.DecodeHeader(doc, "FUEL", m))
	})
}
