package intern

import "sync"

// Handle is a small stable alias for an interned subtype name.
//
// Handles are assigned sequentially by a Table and are stable for the
// process lifetime. They are not stable across processes and must never be
// persisted as long-term identity; re-intern the name instead.
type Handle uint32

// None is the handle of the absent (empty) name. It is a valid, known
// handle, distinct from every named subtype.
const None Handle = 0

// Table is a string interning table. The zero value is not usable; create
// tables with NewTable.
type Table struct {
	mu     sync.RWMutex
	byName map[string]Handle
	names  []string
}

// NewTable returns an empty table. Slot 0 is reserved for None.
func NewTable() *Table {
	return &Table{
		byName: make(map[string]Handle),
		names:  []string{""},
	}
}

// Intern returns the handle for name, assigning a new one on first sight.
// The empty name always maps to None.
func (t *Table) Intern(name string) Handle {
	if name == "" {
		return None
	}

	t.mu.RLock()
	h, ok := t.byName[name]
	t.mu.RUnlock()
	if ok {
		return h
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check under the write lock; another goroutine may have interned
	// the same name between the two lock acquisitions.
	if h, ok := t.byName[name]; ok {
		return h
	}

	h = Handle(len(t.names))
	t.names = append(t.names, name)
	t.byName[name] = h
	return h
}

// Known reports whether h was produced by this table. None is always known.
func (t *Table) Known(h Handle) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int(h) < len(t.names)
}

// NameOf returns the name interned as h. It returns the empty string for
// None and for handles this table never produced.
func (t *Table) NameOf(h Handle) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(h) >= len(t.names) {
		return ""
	}
	return t.names[h]
}

// Len returns the number of named entries in the table, excluding None.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names) - 1
}

// defaultTable is the process-wide table used by the package-level functions.
var defaultTable = NewTable()

// Default returns the process-wide table.
func Default() *Table {
	return defaultTable
}

// Intern interns name in the process-wide table.
func Intern(name string) Handle {
	return defaultTable.Intern(name)
}

// Known reports whether h is known to the process-wide table.
func Known(h Handle) bool {
	return defaultTable.Known(h)
}

// NameOf resolves h against the process-wide table.
func NameOf(h Handle) string {
	return defaultTable.NameOf(h)
}

// Reset discards every entry in the process-wide table.
// This is primarily useful for testing.
func Reset() {
	defaultTable.mu.Lock()
	defer defaultTable.mu.Unlock()

	defaultTable.byName = make(map[string]Handle)
	defaultTable.names = []string{""}
}
