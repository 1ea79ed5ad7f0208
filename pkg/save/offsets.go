package save

import "fmt"

// Offsets maps entry names to the constant difference between the value
// stored in the save file and the amount the game displays. The game
// obfuscates stored amounts by a fixed per-entry shift, so writing a
// desired display amount means storing desired plus that entry's offset.
type Offsets map[string]int64

// ComputeOffsets derives stored-minus-actual offsets from user-supplied
// actual amounts. Every named entry must exist in the catalog.
func ComputeOffsets(catalog Catalog, actual map[string]int64) (Offsets, error) {
	offsets := make(Offsets, len(actual))
	for name, amount := range actual {
		e, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		offsets[name] = int64(e.Value) - amount
	}
	return offsets, nil
}

// StoredValue translates a desired display amount into the value to store
// for the named entry. Returns ErrMissingOffset if the entry's offset is
// unknown.
func (o Offsets) StoredValue(name string, desired int64) (int64, error) {
	offset, ok := o[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrMissingOffset)
	}
	return desired + offset, nil
}
