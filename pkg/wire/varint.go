package wire

// AppendUvarint appends the base-128 encoding of v to dst and returns the
// extended slice. The encoding is minimal: no superfluous trailing groups,
// and zero encodes as a single 0x00 byte.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// ConsumeUvarint decodes a varint from buf starting at idx and returns the
// value and the index of the first byte after it. It returns
// ErrTruncatedVarint if buf ends before a terminating byte (high bit clear)
// is found; a partial value is never returned.
func ConsumeUvarint(buf []byte, idx int) (uint64, int, error) {
	var v uint64
	var shift uint
	for {
		if idx >= len(buf) {
			return 0, idx, ErrTruncatedVarint
		}
		b := buf[idx]
		v |= uint64(b&0x7F) << shift
		idx++
		if b < 0x80 {
			return v, idx, nil
		}
		shift += 7
	}
}

// EncodeVarint encodes a non-negative integer as a varint. It returns
// ErrNegativeValue for v < 0 rather than wrapping into the unsigned range.
func EncodeVarint(v int64) ([]byte, error) {
	if v < 0 {
		return nil, ErrNegativeValue
	}
	return AppendUvarint(nil, uint64(v)), nil
}
