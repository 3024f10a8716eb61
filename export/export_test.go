package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/KimNorgaard/go-inix"
	"github.com/KimNorgaard/go-inix/export"
)

const source = `; comments are dropped
[SERVER] ; main
PORT=8080
HOST=localhost ; inline

[EMPTY]
`

var expected = map[string]map[string]string{
	"SERVER": {"PORT": "8080", "HOST": "localhost"},
	"EMPTY":  {},
}

func TestMap(t *testing.T) {
	doc := inix.ParseString(source)
	require.Equal(t, expected, export.Map(doc))
}

func TestTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.TOML(&buf, inix.ParseString(source)))

	var decoded map[string]map[string]string
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	require.Equal(t, expected["SERVER"], decoded["SERVER"])
	require.Contains(t, buf.String(), "[SERVER]")
	require.NotContains(t, buf.String(), "comments are dropped")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.YAML(&buf, inix.ParseString(source)))

	out := buf.String()
	require.Less(t, strings.Index(out, "SERVER"), strings.Index(out, "EMPTY"))
	require.Less(t, strings.Index(out, "PORT"), strings.Index(out, "HOST"))

	var decoded map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, expected["SERVER"], decoded["SERVER"])
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, inix.ParseString(source)))

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), buf.String())
	require.Equal(t, expected, decoded)

	out := buf.String()
	require.Less(t, strings.Index(out, "PORT"), strings.Index(out, "HOST"))
}

func TestMsgPack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.MsgPack(&buf, inix.ParseString(source)))

	var decoded map[string]map[string]string
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, expected, decoded)
}

func TestWrite(t *testing.T) {
	doc := inix.ParseString(source)
	for _, f := range export.Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, doc, f))
			require.NotZero(t, buf.Len())
		})
	}

	err := export.Write(&bytes.Buffer{}, doc, "xml")
	require.EqualError(t, err, `export: unsupported format "xml"`)
}

func TestSectionName(t *testing.T) {
	doc := inix.ParseString("[CAMBER_RF]\n[]\n")
	var names []string
	for h := range doc.Headers() {
		names = append(names, export.SectionName(h))
	}
	require.Equal(t, []string{"CAMBER_RF", ""}, names)
}
