package save

import (
	"fmt"
	"sort"
)

// Catalog indexes the entries of one buffer revision by name. Like the
// entries it holds, a Catalog goes stale as soon as the buffer is patched.
type Catalog map[string]Entry

// Lookup returns the entry with the given name, or ErrEntryNotFound.
func (c Catalog) Lookup(name string) (Entry, error) {
	e, ok := c[name]
	if !ok {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrEntryNotFound)
	}
	return e, nil
}

// Names returns the catalog's entry names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
