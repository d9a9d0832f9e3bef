// Package registry keeps the index of every emitted declaration and orders it
// so that base declarations come before the ones extending them.
package registry

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// DependencyFunc returns the exported names an entry must be placed after.
// Names that are not registered are ignored.
type DependencyFunc func(entry *Entry) []string

// Index maps every exported name to the entry declaring it.
type Index struct {
	names   map[string]*Entry
	entries []*Entry
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		names: make(map[string]*Entry),
	}
}

// Add registers entries. An entry with an exported name that is already
// registered at the same package location is skipped. A name registered at a
// different location is a CollisionError.
func (i *Index) Add(entries ...*Entry) error {
	for _, entry := range entries {
		known, err := i.contains(entry)
		if err != nil {
			return err
		}
		if known {
			continue
		}

		for _, name := range entry.exported {
			i.names[name] = entry
		}
		i.entries = append(i.entries, entry)
	}

	return nil
}

func (i *Index) contains(entry *Entry) (bool, error) {
	for _, name := range entry.exported {
		existing, ok := i.names[name]
		if !ok {
			continue
		}
		if existing.PackageLocation != entry.PackageLocation {
			return false, &CollisionError{
				Name:     name,
				Existing: existing.PackageLocation,
				Location: entry.PackageLocation,
			}
		}
		return true, nil
	}

	return false, nil
}

// Export adds name to the names exported by a registered entry.
func (i *Index) Export(entry *Entry, name string) error {
	if existing, ok := i.names[name]; ok {
		if existing.PackageLocation != entry.PackageLocation {
			return &CollisionError{
				Name:     name,
				Existing: existing.PackageLocation,
				Location: entry.PackageLocation,
			}
		}
		return nil
	}

	entry.AddExportedName(name)
	i.names[name] = entry

	return nil
}

// Get returns the entry exporting name.
func (i *Index) Get(name string) (*Entry, bool) {
	entry, ok := i.names[name]
	return entry, ok
}

// Entries returns the entries in insertion order, or in emission order after
// Sort.
func (i *Index) Entries() []*Entry {
	return i.entries
}

// Len returns the number of entries.
func (i *Index) Len() int {
	return len(i.entries)
}

// Sort places every entry after the entries its dependencies resolve to and
// otherwise keeps insertion order. A dependency cycle is reported as a
// CycleError and leaves the order unchanged.
func (i *Index) Sort(deps DependencyFunc) error {
	states := make(map[*Entry]visitState, len(i.entries))
	ordered := make([]*Entry, 0, len(i.entries))

	var visit func(entry *Entry, path []string) error
	visit = func(entry *Entry, path []string) error {
		name := entryName(entry)

		switch states[entry] {
		case stateDone:
			return nil
		case stateVisiting:
			return &CycleError{Path: cyclePath(path, name)}
		}

		states[entry] = stateVisiting
		path = append(path, name)

		if deps != nil {
			for _, dep := range deps(entry) {
				if dep == "" {
					continue
				}
				next, ok := i.names[dep]
				if !ok {
					continue
				}
				if err := visit(next, path); err != nil {
					return err
				}
			}
		}

		states[entry] = stateDone
		ordered = append(ordered, entry)

		return nil
	}

	for _, entry := range i.entries {
		if err := visit(entry, nil); err != nil {
			return err
		}
	}

	i.entries = ordered

	return nil
}

func entryName(entry *Entry) string {
	if len(entry.exported) > 0 {
		return entry.exported[0]
	}

	return entry.PackageLocation
}

// cyclePath trims path to the part starting at name and closes the loop.
func cyclePath(path []string, name string) []string {
	for idx, step := range path {
		if step == name {
			out := append([]string(nil), path[idx:]...)
			return append(out, name)
		}
	}

	return append(append([]string(nil), path...), name)
}
