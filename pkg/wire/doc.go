// Package wire implements the restricted tag-based wire encoding used by
// player save files.
//
// The format is a subset of the protobuf wire encoding: each field is a
// varint tag (field number << 3 | wire type) followed by either a varint
// value (wire type 0) or a varint length and that many raw bytes
// (wire type 2). Fixed-width wire types are deliberately not modeled;
// encountering one is a parse error, not a skip.
//
// Parsing produces a Message, a mapping from field number to the ordered
// occurrences of that field. Marshal is the inverse, except that fields are
// emitted in ascending field-number order so that rebuilt payloads are
// deterministic and diffable. A marshal of an untouched parse therefore
// preserves every field's content but not necessarily the original byte
// order.
package wire
