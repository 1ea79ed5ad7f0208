package save

import "errors"

// Catalog and patch errors.
var (
	// ErrEntryNotFound is returned when a requested entry name is absent
	// from the current catalog.
	ErrEntryNotFound = errors.New("entry not found in save data")

	// ErrStaleEntry is returned when an Entry's stored payload no longer
	// yields the name recorded at scan time. The buffer has shifted since
	// the scan; the caller must re-scan.
	ErrStaleEntry = errors.New("entry is stale, re-scan the save data")

	// ErrNotScalarValue is returned when an entry's value field is missing
	// or not varint-encoded.
	ErrNotScalarValue = errors.New("entry value field is not a varint")

	// ErrMissingOffset is returned when a write is requested for an entry
	// whose stored-to-displayed offset is unknown.
	ErrMissingOffset = errors.New("no offset known for entry")
)
