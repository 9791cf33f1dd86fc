package defcore

import (
	"github.com/emberveil/defcore/category"
	"github.com/emberveil/defcore/intern"
)

// NullName is the text rendered for an invalid category and for the absent
// subtype, and accepted by Parse as "no subtype".
const NullName = category.NullName

// ID is a composite definition identifier: a content category paired with a
// named variant within that category, e.g. "Ore/Iron". It is the canonical
// key type for looking up, comparing, and serializing references to
// data-driven game content.
//
// ID is an immutable value type. It is comparable and hashes structurally,
// so it can be used directly as a map or set key. Equality compares the
// category token and the subtype handle; the original subtype string is
// never consulted.
//
// The zero value is the invalid identifier: invalid category, absent
// subtype.
type ID struct {
	category category.Token
	subtype  intern.Handle
}

// Nil is the invalid identifier (the zero value).
var Nil ID

// Content is anything that carries an embedded definition identity.
// ID itself satisfies Content.
type Content interface {
	// Category returns the content's category token.
	Category() category.Token

	// Subtype returns the content's subtype handle.
	Subtype() intern.Handle
}

// FromContent builds an identifier from a content item's embedded
// (category, subtype) pair. No validation is performed beyond what the item
// already guarantees.
func FromContent(c Content) ID {
	return ID{category: c.Category(), subtype: c.Subtype()}
}

// Category returns the identifier's category token.
func (id ID) Category() category.Token {
	return id.category
}

// Subtype returns the identifier's subtype handle. intern.None means the
// identifier has no variant.
func (id ID) Subtype() intern.Handle {
	return id.subtype
}

// IsValid reports whether the identifier names a registered category.
func (id ID) IsValid() bool {
	return id.category.IsValid()
}

// Hash returns a 32-bit structural hash: the category hash shifted into the
// high 16 bits combined with the low bits of the subtype handle. Equal
// identifiers always hash equal. Not a cryptographic hash.
func (id ID) Hash() uint32 {
	return id.category.Hash()<<16 | uint32(id.subtype)&0xFFFF
}

// Hash64 returns a 64-bit structural hash: the category hash shifted 32
// bits, ORed with the subtype handle. It trades width for a lower collision
// probability than Hash, but it is still not collision-free: callers keying
// on Hash64 alone must fall back to full equality comparison on a match.
func (id ID) Hash64() uint64 {
	return uint64(id.category.Hash())<<32 | uint64(id.subtype)
}

// String formats the identifier as "<category>/<subtype>", rendering
// "(null)" for an invalid category and for the absent subtype. For every
// identifier built against the default namespace this is the exact inverse
// of Parse. IDs built against a private Namespace should be formatted with
// Namespace.Format instead.
func (id ID) String() string {
	return DefaultNamespace().Format(id)
}

// Comparer is a stateless equality and hashing strategy for IDs, usable as
// a key-comparison strategy in associative containers that take one. The
// shared DefaultComparer instance is safe for concurrent use.
type Comparer struct{}

// DefaultComparer is the shared Comparer instance.
var DefaultComparer Comparer

// Equal reports whether a and b are the same identifier.
func (Comparer) Equal(a, b ID) bool {
	return a == b
}

// Hash returns the 32-bit structural hash of id.
func (Comparer) Hash(id ID) uint32 {
	return id.Hash()
}

// Hash64 returns the 64-bit structural hash of id.
func (Comparer) Hash64(id ID) uint64 {
	return id.Hash64()
}
