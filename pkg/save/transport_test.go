package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportRoundTrip(t *testing.T) {
	buf := entryRecord(entryPayload("gold", 500))

	decoded, err := DecodeTransport(EncodeTransport(buf))
	require.NoError(t, err)
	assert.Equal(t, buf, decoded)
}

func TestDecodeTransportTrailingNewline(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03}
	raw := append(EncodeTransport(buf), '\n')

	decoded, err := DecodeTransport(raw)
	require.NoError(t, err)
	assert.Equal(t, buf, decoded)
}

func TestDecodeTransportInvalid(t *testing.T) {
	_, err := DecodeTransport([]byte("not!base64!!"))
	assert.Error(t, err)
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player")
	buf := entryRecord(entryPayload("gold", 500))

	require.NoError(t, WriteFile(path, buf))

	// On-disk contents are transport encoded, not raw.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, buf, raw)

	decoded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf, decoded)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
