package save

import (
	"unicode/utf8"

	"github.com/savectl/savectl/pkg/wire"
)

// Sub-field numbers inside an entry payload.
const (
	nameField  = 1
	valueField = 3
)

// Entry is a named numeric record discovered in a decoded save buffer.
// Its offsets and payload are private: an Entry is an opaque handle that is
// only meaningful against the exact buffer revision it was scanned from.
type Entry struct {
	// Name is the entry's identifier, decoded from sub-field 1.
	Name string

	// Value is the stored amount, decoded from sub-field 3.
	Value uint64

	// start and end bound the whole record in the outer buffer: marker
	// byte, length varint, and payload.
	start, end int

	// payload is the record's sub-message bytes as seen at scan time.
	payload []byte
}

// entryName extracts the candidate name from a parsed payload: the last
// occurrence of a length-delimited sub-field 1, if it decodes as UTF-8.
// Invalid UTF-8 means the name is absent, not an error.
func entryName(msg wire.Message) string {
	name := ""
	for _, v := range msg[nameField] {
		raw, ok := v.(wire.Bytes)
		if !ok {
			continue
		}
		if utf8.Valid(raw) {
			name = string(raw)
		} else {
			name = ""
		}
	}
	return name
}

// entryValue extracts the stored amount: the first occurrence of sub-field 3,
// which must be varint-encoded.
func entryValue(msg wire.Message) (uint64, bool) {
	recs := msg[valueField]
	if len(recs) == 0 {
		return 0, false
	}
	v, ok := recs[0].(wire.Uint)
	return uint64(v), ok
}
