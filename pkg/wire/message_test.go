package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// buildPayload assembles a payload with protowire so the parser is tested
// against independently produced bytes.
func buildPayload(t *testing.T, name string, value uint64) []byte {
	t.Helper()
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, name)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, value)
	return b
}

func TestParsePayload(t *testing.T) {
	payload := buildPayload(t, "gold", 500)

	msg, err := Parse(payload)
	require.NoError(t, err)
	require.Len(t, msg, 2)

	require.Len(t, msg[1], 1)
	assert.Equal(t, Bytes("gold"), msg[1][0])

	require.Len(t, msg[3], 1)
	assert.Equal(t, Uint(500), msg[3][0])
}

func TestParseRepeatedFieldOrder(t *testing.T) {
	var payload []byte
	payload = protowire.AppendTag(payload, 2, protowire.VarintType)
	payload = protowire.AppendVarint(payload, 10)
	payload = protowire.AppendTag(payload, 2, protowire.VarintType)
	payload = protowire.AppendVarint(payload, 20)
	payload = protowire.AppendTag(payload, 2, protowire.VarintType)
	payload = protowire.AppendVarint(payload, 30)

	msg, err := Parse(payload)
	require.NoError(t, err)
	assert.Equal(t, []Value{Uint(10), Uint(20), Uint(30)}, msg[2])

	// Repetition order survives a rebuild.
	again, err := Parse(msg.Marshal())
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestParseErrors(t *testing.T) {
	t.Run("unsupported wire type", func(t *testing.T) {
		// Field 2, wire type 5 (fixed32).
		payload := []byte{0x15, 0x01, 0x02, 0x03, 0x04}

		msg, err := Parse(payload)
		assert.Nil(t, msg)

		var wtErr *UnsupportedWireTypeError
		require.ErrorAs(t, err, &wtErr)
		assert.Equal(t, Type(5), wtErr.Type)
		assert.Equal(t, 2, wtErr.FieldNum)
	})

	t.Run("truncated varint value", func(t *testing.T) {
		payload := []byte{0x18, 0x80} // field 3 varint, continuation never ends
		_, err := Parse(payload)
		assert.ErrorIs(t, err, ErrTruncatedVarint)
	})

	t.Run("truncated tag", func(t *testing.T) {
		payload := []byte{0x80}
		_, err := Parse(payload)
		assert.ErrorIs(t, err, ErrTruncatedVarint)
	})

	t.Run("length past end of payload", func(t *testing.T) {
		payload := []byte{0x0A, 0x10, 'h', 'i'} // declares 16 bytes, has 2
		_, err := Parse(payload)
		assert.ErrorIs(t, err, ErrTruncatedVarint)
	})
}

// Parsing and rebuilding must preserve the logical field mapping even though
// the rebuild reorders fields by ascending number.
func TestMarshalRoundTripModuloOrdering(t *testing.T) {
	// Field 3 deliberately first so the rebuild changes byte order.
	var payload []byte
	payload = protowire.AppendTag(payload, 3, protowire.VarintType)
	payload = protowire.AppendVarint(payload, 500)
	payload = protowire.AppendTag(payload, 1, protowire.BytesType)
	payload = protowire.AppendString(payload, "gold")
	payload = protowire.AppendTag(payload, 7, protowire.BytesType)
	payload = protowire.AppendBytes(payload, []byte{0xDE, 0xAD})

	msg, err := Parse(payload)
	require.NoError(t, err)

	rebuilt := msg.Marshal()
	assert.NotEqual(t, payload, rebuilt, "rebuild should reorder by field number")

	again, err := Parse(rebuilt)
	require.NoError(t, err)
	assert.Equal(t, msg, again)

	// Ascending order means field 1's tag comes first now.
	assert.Equal(t, byte(0x0A), rebuilt[0])
}

func TestMarshalAscendingFieldOrder(t *testing.T) {
	msg := Message{
		5: {Uint(1)},
		1: {Bytes("name")},
		3: {Uint(99)},
	}

	rebuilt := msg.Marshal()

	num1, _, n := protowire.ConsumeTag(rebuilt)
	require.Positive(t, n)
	assert.Equal(t, protowire.Number(1), num1)

	// Reference decoder must see the same three fields.
	var nums []protowire.Number
	off := 0
	for off < len(rebuilt) {
		num, typ, n := protowire.ConsumeTag(rebuilt[off:])
		require.Positive(t, n)
		off += n
		m := protowire.ConsumeFieldValue(num, typ, rebuilt[off:])
		require.Positive(t, m)
		off += m
		nums = append(nums, num)
	}
	assert.Equal(t, []protowire.Number{1, 3, 5}, nums)
}

// An unknown length-delimited field must survive a parse/edit/rebuild cycle
// byte for byte, including content that is not valid UTF-8.
func TestUnknownFieldsRoundTrip(t *testing.T) {
	blob := []byte{0xFF, 0x00, 0xC3, 0x28} // invalid UTF-8 on purpose

	var payload []byte
	payload = protowire.AppendTag(payload, 1, protowire.BytesType)
	payload = protowire.AppendString(payload, "gems")
	payload = protowire.AppendTag(payload, 3, protowire.VarintType)
	payload = protowire.AppendVarint(payload, 12)
	payload = protowire.AppendTag(payload, 9, protowire.BytesType)
	payload = protowire.AppendBytes(payload, blob)

	msg, err := Parse(payload)
	require.NoError(t, err)

	msg[3][0] = Uint(9000)
	rebuilt := msg.Marshal()

	again, err := Parse(rebuilt)
	require.NoError(t, err)
	assert.Equal(t, Uint(9000), again[3][0])
	assert.Equal(t, Bytes(blob), again[9][0])
}

func TestParseEmptyPayload(t *testing.T) {
	msg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Empty(t, msg.Marshal())
}
