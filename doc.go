// Package defcore provides the composite definition identifier used to name
// data-driven game content: a content category paired with a named variant
// within that category, such as "Ore/Iron" or "Block/Granite".
//
// # Core Concepts
//
// The package is organized around two value types and one collaborator
// bundle:
//
//   - ID: the canonical identifier, a (category token, subtype handle)
//     pair. Immutable, comparable, directly usable as a map key, with a
//     human-readable round-trip text form.
//   - CompactID: a fixed 6-byte binary projection of an ID for dense
//     packing inside wire messages. Transient by design; ID stays the
//     long-term identity.
//   - Namespace: the injected pair of collaborators every operation
//     resolves against — a category registry (package category) and a
//     subtype intern table (package intern).
//
// # Usage
//
// Register categories at startup, then parse and format identifiers:
//
//	ore := category.MustRegister("Ore")
//
//	id, err := defcore.Parse("Ore/Iron")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(id)                // "Ore/Iron"
//	fmt.Println(id == defcore.New(ore, "Iron")) // true
//
// The subtype is optional: "Ore/(null)" and "Ore/" both parse to the
// identifier with the absent subtype, which formats back as "Ore/(null)".
//
// For wire transfer, narrow to the compact form and widen on receipt:
//
//	blit, err := defcore.Narrow(id)
//	// ... 6 bytes on the wire ...
//	back, err := blit.Widen()      // back == id
//
// # Error Handling
//
// Parse failures are *FormatError values wrapping sentinel causes:
//
//	if _, err := defcore.Parse(s); errors.Is(err, defcore.ErrUnknownCategory) {
//		// handle unregistered category
//	}
//
// TryParse converts the same failures into a boolean result. Narrowing an
// invalid-category identifier and widening an unresolvable handle return
// ErrInvalidCategory and ErrUnknownHandle respectively; both are contract
// violations the caller is expected to rule out beforehand.
//
// # Thread Safety
//
// IDs and CompactIDs are immutable values; all operations are pure
// functions of their inputs plus the namespace's registry and intern table,
// which are themselves safe for concurrent use. No coordination is needed
// to construct, compare, hash, or format identifiers from multiple
// goroutines.
package defcore
