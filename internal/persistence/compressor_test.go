package persistence

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompression_Roundtrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := []byte(`{"version":1,"users":{}}`)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.NotEqual(t, original, compressed)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_EmptyData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	compressed, err := c.Compress([]byte{})
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}

func TestZstdCompression_LargeData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := bytes.Repeat([]byte(`{"title":"Two Sum"}`), 50_000)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original)/2)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_DecompressInvalidData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("not valid zstd data"))
	assert.Error(t, err)
}
