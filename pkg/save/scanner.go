package save

import (
	"log/slog"

	"github.com/savectl/savectl/pkg/logging"
	"github.com/savectl/savectl/pkg/wire"
)

// marker is the tag byte that opens an entry record at the top level of the
// save buffer: field 3, wire type 2 (length-delimited).
const marker = 0x1A

// Scanner discovers currency entries in decoded save buffers.
type Scanner struct {
	log *slog.Logger
}

// NewScanner creates a Scanner. A nil logger disables diagnostics.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Scanner{log: logger}
}

// Scan walks buf for entry records and returns them in ascending offset
// order. Entries never overlap.
//
// The outer buffer is not field-structured as far as the scanner is
// concerned; any byte of unrelated content may coincidentally equal the
// marker. Every candidate is therefore validated by fully parsing its
// payload and requiring a non-empty name and a varint value field. A failed
// candidate resumes the scan one byte past the marker, never at the
// candidate's claimed payload end: that claimed end may itself sit inside
// unrelated data, and a real record can legitimately follow a false
// positive closely.
func (s *Scanner) Scan(buf []byte) []Entry {
	var entries []Entry
	idx := 0
	for idx < len(buf) {
		if buf[idx] != marker {
			idx++
			continue
		}

		length, payloadStart, err := wire.ConsumeUvarint(buf, idx+1)
		if err != nil {
			// Marker at the tail of the buffer with no room for a length.
			idx++
			continue
		}
		payloadEnd := payloadStart + int(length)
		if payloadEnd < payloadStart || payloadEnd > len(buf) {
			idx++
			continue
		}

		msg, err := wire.Parse(buf[payloadStart:payloadEnd])
		if err != nil {
			s.log.Debug("skipping false-positive marker", "offset", idx, "error", err)
			idx++
			continue
		}

		name := entryName(msg)
		value, ok := entryValue(msg)
		if name == "" || !ok {
			// Well-formed sub-message, but not an entry.
			idx++
			continue
		}

		payload := make([]byte, int(length))
		copy(payload, buf[payloadStart:payloadEnd])
		entries = append(entries, Entry{
			Name:    name,
			Value:   value,
			start:   idx,
			end:     payloadEnd,
			payload: payload,
		})
		s.log.Debug("found entry", "name", name, "value", value, "offset", idx)
		idx = payloadEnd
	}
	return entries
}

// Catalog scans buf and indexes the result by entry name.
func (s *Scanner) Catalog(buf []byte) Catalog {
	entries := s.Scan(buf)
	catalog := make(Catalog, len(entries))
	for _, e := range entries {
		catalog[e.Name] = e
	}
	return catalog
}
