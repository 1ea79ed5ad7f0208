package save

import (
	"bytes"

	"github.com/savectl/savectl/pkg/wire"
)

// Apply rewrites one entry's stored value and returns a new buffer. The
// input buffer is never mutated.
//
// Before splicing, Apply checks that the bytes at the entry's recorded span
// still hold the record seen at scan time, and that re-parsing the payload
// recovers the recorded name. Either check failing means the handle predates
// an edit that shifted the buffer, and Apply fails with ErrStaleEntry
// instead of corrupting unrelated bytes. Only the first record of the value
// field is replaced; its wire type and any trailing records are preserved.
//
// Bytes before the entry and after it are copied verbatim, shifted only if
// the rebuilt record's length differs from the original span. Apply does
// not re-scan: patching a second entry requires a fresh scan of the
// returned buffer.
func Apply(buf []byte, e Entry, newValue int64) ([]byte, error) {
	if newValue < 0 {
		return nil, wire.ErrNegativeValue
	}

	if e.start < 0 || e.end > len(buf) || e.start >= e.end || buf[e.start] != marker {
		return nil, ErrStaleEntry
	}
	length, payloadStart, err := wire.ConsumeUvarint(buf, e.start+1)
	if err != nil || payloadStart+int(length) != e.end || !bytes.Equal(buf[payloadStart:e.end], e.payload) {
		return nil, ErrStaleEntry
	}

	msg, err := wire.Parse(e.payload)
	if err != nil {
		return nil, err
	}
	if entryName(msg) != e.Name {
		return nil, ErrStaleEntry
	}

	recs := msg[valueField]
	if len(recs) == 0 {
		return nil, ErrNotScalarValue
	}
	if _, ok := recs[0].(wire.Uint); !ok {
		return nil, ErrNotScalarValue
	}
	recs[0] = wire.Uint(newValue)

	rebuilt := msg.Marshal()

	out := make([]byte, 0, len(buf)-(e.end-e.start)+len(rebuilt)+11)
	out = append(out, buf[:e.start]...)
	out = append(out, marker)
	out = wire.AppendUvarint(out, uint64(len(rebuilt)))
	out = append(out, rebuilt...)
	out = append(out, buf[e.end:]...)
	return out, nil
}
