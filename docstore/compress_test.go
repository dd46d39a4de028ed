package docstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressingStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	payload := bytes.Repeat([]byte(`{"signature":"c0.301_s0.578_e0.678"}`), 100)

	for _, compression := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4, CompressionGzip} {
		t.Run(compression.String(), func(t *testing.T) {
			store, err := NewCompressingStore(NewMemoryStore(), compression)
			require.NoError(t, err)

			require.NoError(t, store.Put(ctx, "doc", payload))

			data, err := store.Get(ctx, "doc")
			require.NoError(t, err)
			assert.Equal(t, payload, data)
		})
	}
}

func TestCompressingStore_HeaderByte(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	store, err := NewCompressingStore(inner, CompressionZstd)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "doc", []byte("payload")))

	raw, err := inner.Get(ctx, "doc")
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, byte(CompressionZstd), raw[0])
}

func TestCompressingStore_MixedCodecs(t *testing.T) {
	// A store configured for one codec still reads documents written with
	// another, based on the header byte.
	ctx := context.Background()
	inner := NewMemoryStore()

	writer, err := NewCompressingStore(inner, CompressionLZ4)
	require.NoError(t, err)
	require.NoError(t, writer.Put(ctx, "doc", []byte("written with lz4")))

	reader, err := NewCompressingStore(inner, CompressionZstd)
	require.NoError(t, err)
	data, err := reader.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("written with lz4"), data)
}

func TestCompressingStore_ShrinksRepetitiveInput(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	store, err := NewCompressingStore(inner, CompressionZstd)
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("abcdefgh"), 4096)
	require.NoError(t, store.Put(ctx, "doc", payload))

	raw, err := inner.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Less(t, len(raw), len(payload)/4)
}

func TestCompressingStore_NotFoundPassesThrough(t *testing.T) {
	store, err := NewCompressingStore(NewMemoryStore(), CompressionZstd)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
