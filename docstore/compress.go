package docstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the codec used by CompressingStore. The codec byte is
// written as a one-byte header in front of the payload, so stored documents
// are self-describing and a store can hold mixed codecs.
type Compression byte

const (
	// CompressionNone stores documents uncompressed.
	CompressionNone Compression = iota
	// CompressionZstd uses zstandard. Good default for JSON documents.
	CompressionZstd
	// CompressionLZ4 trades ratio for speed.
	CompressionLZ4
	// CompressionGzip maximizes interoperability.
	CompressionGzip
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionGzip:
		return "gzip"
	default:
		return fmt.Sprintf("compression(%d)", byte(c))
	}
}

// CompressingStore wraps a Store and transparently compresses documents on
// Put. Get decompresses based on the stored header byte regardless of the
// configured codec, so changing the codec never breaks old documents.
type CompressingStore struct {
	inner       Store
	compression Compression
	zenc        *zstd.Encoder
	zdec        *zstd.Decoder
}

// NewCompressingStore creates a CompressingStore writing with the given
// codec.
func NewCompressingStore(inner Store, compression Compression) (*CompressingStore, error) {
	s := &CompressingStore{
		inner:       inner,
		compression: compression,
	}

	var err error
	// The zstd encoder/decoder are reusable and concurrency-safe via
	// EncodeAll/DecodeAll; construct them once.
	s.zenc, err = zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("docstore: zstd encoder: %w", err)
	}
	s.zdec, err = zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("docstore: zstd decoder: %w", err)
	}
	return s, nil
}

// Put compresses and writes a document.
func (s *CompressingStore) Put(ctx context.Context, name string, data []byte) error {
	payload, err := s.compress(data)
	if err != nil {
		return err
	}
	return s.inner.Put(ctx, name, payload)
}

// Get reads and decompresses a document.
func (s *CompressingStore) Get(ctx context.Context, name string) ([]byte, error) {
	payload, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.decompress(payload)
}

// Delete removes a document.
func (s *CompressingStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns all documents matching the prefix.
func (s *CompressingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func (s *CompressingStore) compress(data []byte) ([]byte, error) {
	switch s.compression {
	case CompressionNone:
		out := make([]byte, 0, len(data)+1)
		out = append(out, byte(CompressionNone))
		return append(out, data...), nil

	case CompressionZstd:
		out := []byte{byte(CompressionZstd)}
		return s.zenc.EncodeAll(data, out), nil

	case CompressionLZ4:
		var buf bytes.Buffer
		buf.WriteByte(byte(CompressionLZ4))
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("docstore: lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("docstore: lz4 close: %w", err)
		}
		return buf.Bytes(), nil

	case CompressionGzip:
		var buf bytes.Buffer
		buf.WriteByte(byte(CompressionGzip))
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("docstore: gzip compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("docstore: gzip close: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("docstore: unknown compression %d", s.compression)
	}
}

func (s *CompressingStore) decompress(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("docstore: empty payload, missing compression header")
	}
	codec := Compression(payload[0])
	body := payload[1:]

	switch codec {
	case CompressionNone:
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil

	case CompressionZstd:
		return s.zdec.DecodeAll(body, nil)

	case CompressionLZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(body)))
		if err != nil {
			return nil, fmt.Errorf("docstore: lz4 decompress: %w", err)
		}
		return out, nil

	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("docstore: gzip decompress: %w", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("docstore: gzip decompress: %w", err)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("docstore: unknown compression header %d", payload[0])
	}
}
