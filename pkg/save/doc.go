// Package save locates and patches named currency entries inside a decoded
// player save buffer.
//
// The save blob is treated as an opaque byte stream: only one record shape
// is of interest, a length-delimited field 3 whose payload carries a string
// name (sub-field 1) and a varint value (sub-field 3). The Scanner walks the
// buffer looking for that record's marker byte, validates each candidate
// with pkg/wire, and produces Entry handles. Apply rebuilds a single entry's
// payload with a new value and splices it back, leaving every other byte of
// the buffer untouched.
//
// Entries are positional handles into one specific buffer revision. A patch
// may change an entry's encoded length and shift everything after it, so
// callers must re-scan the patched buffer before acting on another entry;
// Apply detects the most common misuse (a handle pointing at shifted data)
// and fails with ErrStaleEntry.
//
// Transport encoding (base64 on disk) and the stored-versus-displayed
// offset arithmetic live here too, as thin boundary helpers around the
// same raw-bytes core.
package save
