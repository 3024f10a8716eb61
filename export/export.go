// Package export converts Inix documents to other configuration formats.
//
// Conversions are lossy: standalone and inline comments are dropped and
// header names lose their brackets. Every value stays a string.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/KimNorgaard/go-inix/ast"
)

// Format names an export format.
type Format string

const (
	FormatTOML    Format = "toml"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgPack Format = "msgpack"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON, FormatMsgPack}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc *ast.Document, format Format) error {
	switch format {
	case FormatTOML:
		return TOML(w, doc)
	case FormatYAML:
		return YAML(w, doc)
	case FormatJSON:
		return JSON(w, doc)
	case FormatMsgPack:
		return MsgPack(w, doc)
	}
	return fmt.Errorf("export: unsupported format %q", format)
}

// SectionName returns a header name without its surrounding brackets.
func SectionName(h *ast.Header) string {
	return strings.TrimSuffix(strings.TrimPrefix(h.Name, "["), "]")
}

// Map returns the headers of doc as nested maps keyed by section name.
func Map(doc *ast.Document) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for h := range doc.Headers() {
		props := make(map[string]string, h.Len())
		for key, p := range h.All() {
			props[key] = p.Value
		}
		out[SectionName(h)] = props
	}
	return out
}

// MapSlice returns the headers of doc as an ordered yaml.MapSlice that keeps
// headers and properties in file order.
func MapSlice(doc *ast.Document) yaml.MapSlice {
	out := yaml.MapSlice{}
	for h := range doc.Headers() {
		props := yaml.MapSlice{}
		for key, p := range h.All() {
			props = append(props, yaml.MapItem{Key: key, Value: p.Value})
		}
		out = append(out, yaml.MapItem{Key: SectionName(h), Value: props})
	}
	return out
}

// TOML writes doc as TOML tables. Keys are sorted by the encoder.
func TOML(w io.Writer, doc *ast.Document) error {
	if err := toml.NewEncoder(w).Encode(Map(doc)); err != nil {
		return fmt.Errorf("export: toml: %w", err)
	}
	return nil
}

// YAML writes doc as a YAML mapping in file order.
func YAML(w io.Writer, doc *ast.Document) error {
	b, err := yaml.Marshal(MapSlice(doc))
	if err != nil {
		return fmt.Errorf("export: yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// JSON writes doc as a JSON object in file order.
func JSON(w io.Writer, doc *ast.Document) error {
	b, err := yaml.MarshalWithOptions(MapSlice(doc), yaml.JSON())
	if err != nil {
		return fmt.Errorf("export: json: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// MsgPack writes doc as a MessagePack map with sorted keys.
func MsgPack(w io.Writer, doc *ast.Document) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(Map(doc)); err != nil {
		return fmt.Errorf("export: msgpack: %w", err)
	}
	return nil
}
