// Package intern maps optional subtype name strings to small stable integer
// handles and back.
//
// Handles are only meaningful within the table that produced them, and only
// for the lifetime of the process. The empty (absent) name is a first-class
// value: interning "" always yields None, and None is always a known handle.
//
// # Usage
//
// Most callers use the process-wide default table through the package-level
// functions:
//
//	h := intern.Intern("Iron")
//	intern.NameOf(h) // "Iron"
//	intern.Intern("") == intern.None // true
//
// Code that needs isolation (tests, embedded namespaces) constructs its own
// table with NewTable and calls the same methods on the instance.
//
// # Thread Safety
//
// All operations are safe for concurrent use. The table uses sync.RWMutex so
// lookups on already-interned names take only a read lock.
package intern
