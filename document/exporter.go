package document

import (
	"github.com/sepkit/manifold/codec"
)

// Exporter serializes documents through a configurable codec. The zero
// value exports with codec.Default.
type Exporter struct {
	codec codec.Codec
}

// NewExporter creates an Exporter using the given codec. A nil codec falls
// back to codec.Default.
func NewExporter(c codec.Codec) *Exporter {
	if c == nil {
		c = codec.Default
	}
	return &Exporter{codec: c}
}

// Codec returns the codec in use.
func (e *Exporter) Codec() codec.Codec {
	if e.codec == nil {
		return codec.Default
	}
	return e.codec
}

// Marshal serializes an already-built document. Re-serializing the same
// document always yields identical bytes.
func (e *Exporter) Marshal(doc Document) ([]byte, error) {
	return e.Codec().Marshal(doc)
}

// Unmarshal decodes serialized document bytes.
func (e *Exporter) Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := e.Codec().Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
