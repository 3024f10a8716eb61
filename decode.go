package inix

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeHeader copies the property values of the named header into v, which
// must be a pointer to a struct or to a map[string]string.
//
// Struct fields are matched by their `inix` tag, or case-insensitively by
// field name. Values are never converted: every target field must be a
// string, and a non-string field yields an error.
func DecodeHeader(doc *Document, name string, v any) error {
	h, err := doc.Header(name)
	if err != nil {
		return fmt.Errorf("inix: %w", err)
	}

	values := make(map[string]string, h.Len())
	for key, p := range h.All() {
		values[key] = p.Value
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "inix",
		Result:  v,
	})
	if err != nil {
		return fmt.Errorf("inix: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("inix: decoding %s: %w", h.Name, err)
	}
	return nil
}
