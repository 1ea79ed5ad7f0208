package wire

import (
	"errors"
	"fmt"
)

// Codec errors.
var (
	// ErrTruncatedVarint is returned when a buffer ends in the middle of a
	// varint sequence or a length-delimited field's declared length runs
	// past the end of the payload.
	ErrTruncatedVarint = errors.New("unexpected end of buffer while decoding varint")

	// ErrNegativeValue is returned when a negative value is passed to
	// EncodeVarint. Varints only represent non-negative integers.
	ErrNegativeValue = errors.New("varint cannot encode negative values")
)

// UnsupportedWireTypeError is returned when a tag carries a wire type other
// than varint or length-delimited.
type UnsupportedWireTypeError struct {
	// Type is the offending wire type code.
	Type Type

	// FieldNum is the field number whose tag carried the wire type.
	FieldNum int
}

func (e *UnsupportedWireTypeError) Error() string {
	return fmt.Sprintf("unsupported wire type %d on field %d", int(e.Type), e.FieldNum)
}
