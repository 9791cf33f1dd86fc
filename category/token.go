package category

import "github.com/cespare/xxhash/v2"

// NullName is the text rendered for the invalid token.
const NullName = "(null)"

// Token is the full runtime identity of a content category.
//
// Tokens are comparable and usable as map keys. The zero value is the
// distinguished invalid token: it has no name, no handle, and IsValid
// reports false. Valid tokens are only produced by a Registry.
type Token struct {
	name   string
	handle uint16
}

// Invalid is the distinguished invalid token (the zero value).
var Invalid Token

// Name returns the category name, or the empty string for the invalid token.
func (t Token) Name() string {
	return t.name
}

// Handle returns the 16-bit runtime handle assigned by the registry.
// The invalid token has handle 0; valid handles start at 1. Handles are
// stable for the process lifetime, not across sessions.
func (t Token) Handle() uint16 {
	return t.handle
}

// IsValid reports whether t names a registered category.
func (t Token) IsValid() bool {
	return t.handle != 0
}

// Hash returns a 32-bit structural hash of the token, derived from the
// category name so it is stable across sessions regardless of registration
// order. The invalid token hashes to 0.
func (t Token) Hash() uint32 {
	if !t.IsValid() {
		return 0
	}
	return uint32(xxhash.Sum64String(t.name))
}

// String returns the category name, or "(null)" for the invalid token.
func (t Token) String() string {
	if !t.IsValid() {
		return NullName
	}
	return t.name
}
