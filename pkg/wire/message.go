package wire

import "sort"

// Type is a wire type code, the low three bits of a field tag.
type Type int

// Supported wire types. The remaining protobuf wire types (fixed64, fixed32,
// groups) are outside this format and rejected during parsing.
const (
	TypeVarint Type = 0
	TypeBytes  Type = 2
)

// Value is one decoded occurrence of a field. Exactly two implementations
// exist, Uint and Bytes, so consumers can switch over them exhaustively;
// unsupported wire type codes are rejected once, in Parse.
type Value interface {
	// Type reports the wire type the value encodes as.
	Type() Type
}

// Uint is a varint-encoded field value (wire type 0).
type Uint uint64

// Type implements Value.
func (Uint) Type() Type { return TypeVarint }

// Bytes is a length-delimited field value (wire type 2).
type Bytes []byte

// Type implements Value.
func (Bytes) Type() Type { return TypeBytes }

// Message maps field numbers to that field's values in arrival order.
// A field number may repeat; Marshal preserves repetition order.
type Message map[int][]Value

// Parse decodes a flat payload into a Message. The payload must be fully
// consumed by well-formed fields: a truncated tag, value, or length run
// fails with ErrTruncatedVarint, and a tag carrying a wire type other than
// varint or length-delimited fails with UnsupportedWireTypeError. Parse
// never recovers internally; recovery at scan candidates is the scanner's
// job.
func Parse(payload []byte) (Message, error) {
	msg := Message{}
	idx := 0
	for idx < len(payload) {
		tag, next, err := ConsumeUvarint(payload, idx)
		if err != nil {
			return nil, err
		}
		idx = next
		num := int(tag >> 3)
		switch Type(tag & 0x07) {
		case TypeVarint:
			v, next, err := ConsumeUvarint(payload, idx)
			if err != nil {
				return nil, err
			}
			idx = next
			msg[num] = append(msg[num], Uint(v))
		case TypeBytes:
			length, next, err := ConsumeUvarint(payload, idx)
			if err != nil {
				return nil, err
			}
			idx = next
			end := idx + int(length)
			if end < idx || end > len(payload) {
				return nil, ErrTruncatedVarint
			}
			raw := make([]byte, length)
			copy(raw, payload[idx:end])
			idx = end
			msg[num] = append(msg[num], Bytes(raw))
		default:
			return nil, &UnsupportedWireTypeError{Type: Type(tag & 0x07), FieldNum: num}
		}
	}
	return msg, nil
}

// Marshal serializes the message back to wire format. Field numbers are
// emitted in ascending order and each field's occurrences in their original
// order. Length prefixes are recomputed from the content, so a Message
// edited in place marshals correctly without any bookkeeping.
func (m Message) Marshal() []byte {
	nums := make([]int, 0, len(m))
	for num := range m {
		nums = append(nums, num)
	}
	sort.Ints(nums)

	var out []byte
	for _, num := range nums {
		for _, v := range m[num] {
			out = AppendUvarint(out, uint64(num)<<3|uint64(v.Type()))
			switch v := v.(type) {
			case Uint:
				out = AppendUvarint(out, uint64(v))
			case Bytes:
				out = AppendUvarint(out, uint64(len(v)))
				out = append(out, v...)
			}
		}
	}
	return out
}
