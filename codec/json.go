package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// The exported document tree consists of structs, slices and primitive
// values only, all of which encode deterministically: two marshals of the
// same manifold produce identical bytes.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// JSONIndent is the standard-library JSON codec with two-space indentation,
// intended for human-facing output such as the CLI.
type JSONIndent struct{}

// Marshal encodes the value to indented JSON.
func (JSONIndent) Marshal(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

// Unmarshal decodes the JSON data into v.
func (JSONIndent) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json-indent").
func (JSONIndent) Name() string { return "json-indent" }
