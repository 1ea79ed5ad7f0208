package save

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// DecodeTransport strips the outer base64 encoding from raw save file
// contents. Surrounding whitespace is tolerated; save files on disk
// typically end with a newline.
func DecodeTransport(raw []byte) ([]byte, error) {
	buf, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decoding save transport: %w", err)
	}
	return buf, nil
}

// EncodeTransport re-applies the outer base64 encoding.
func EncodeTransport(buf []byte) []byte {
	return []byte(base64.StdEncoding.EncodeToString(buf))
}

// ReadFile reads a save file and strips its transport encoding.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeTransport(raw)
}

// WriteFile applies the transport encoding and writes the save file.
func WriteFile(path string, buf []byte) error {
	return os.WriteFile(path, EncodeTransport(buf), 0o644)
}
