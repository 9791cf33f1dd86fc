package defcore

import (
	"encoding/binary"
	"fmt"

	"github.com/emberveil/defcore/category"
	"github.com/emberveil/defcore/intern"
)

// CompactIDSize is the exact number of bytes a CompactID occupies on the
// wire: a 2-byte runtime category handle followed by a 4-byte subtype
// handle, both little-endian, no padding.
const CompactIDSize = 6

// CompactID is a fixed-width binary projection of an ID, designed for dense
// packing inside larger wire messages. It carries the category as its
// narrow 16-bit runtime handle instead of the full token, which is the
// entire reason this type exists alongside ID.
//
// Runtime handles are stable for the process lifetime only, so a CompactID
// is purely transient: it is constructed at serialization boundaries and
// never stored as long-term identity. ID remains canonical.
type CompactID struct {
	// TypeHandle is the category's runtime handle. Zero means invalid/unset.
	TypeHandle uint16

	// Subtype is the interned subtype handle.
	Subtype intern.Handle
}

// CompactFromHandles builds a CompactID directly from a runtime handle and
// a subtype handle. No resolution is performed.
func CompactFromHandles(typeHandle uint16, subtype intern.Handle) CompactID {
	return CompactID{TypeHandle: typeHandle, Subtype: subtype}
}

// NewCompactID narrows a category token and subtype handle into a
// CompactID. It fails with ErrInvalidCategory if tok is the invalid token.
func NewCompactID(tok category.Token, subtype intern.Handle) (CompactID, error) {
	if !tok.IsValid() {
		return CompactID{}, ErrInvalidCategory
	}
	return CompactID{TypeHandle: tok.Handle(), Subtype: subtype}, nil
}

// IsValid reports whether the runtime handle is set.
func (c CompactID) IsValid() bool {
	return c.TypeHandle != 0
}

// Narrow projects id down to its compact form. It fails with
// ErrInvalidCategory if id's category is the invalid token; callers are
// expected to validate before reaching a serialization boundary.
func (ns *Namespace) Narrow(id ID) (CompactID, error) {
	return NewCompactID(id.category, id.subtype)
}

// Widen resolves c's runtime handle back to a full category token and
// returns the reconstructed identifier. It fails with ErrUnknownHandle when
// the handle is zero or was never assigned in this process.
//
// A subtype handle the namespace's intern table has never produced is
// tolerated (the handle still round-trips and compares correctly); use
// ns.Subtypes().Known to check when it matters.
func (ns *Namespace) Widen(c CompactID) (ID, error) {
	tok, ok := ns.categories.ByHandle(c.TypeHandle)
	if !ok {
		return Nil, fmt.Errorf("defcore: widen: %w: %d", ErrUnknownHandle, c.TypeHandle)
	}
	return ID{category: tok, subtype: c.Subtype}, nil
}

// Narrow projects id down to its compact form via the default namespace.
func Narrow(id ID) (CompactID, error) {
	return defaultNamespace.Narrow(id)
}

// Widen reconstructs the full identifier via the default namespace.
func (c CompactID) Widen() (ID, error) {
	return defaultNamespace.Widen(c)
}

// String formats c by widening it against the default namespace and
// delegating to the identifier's formatting. An unresolvable handle renders
// as the invalid category.
func (c CompactID) String() string {
	tok, _ := category.ByHandle(c.TypeHandle)
	return defaultNamespace.Format(ID{category: tok, subtype: c.Subtype})
}

// PutCompactID writes c's wire form into the first CompactIDSize bytes of
// b. It fails with ErrShortBuffer if b is too small.
func PutCompactID(b []byte, c CompactID) error {
	if len(b) < CompactIDSize {
		return ErrShortBuffer
	}
	binary.LittleEndian.PutUint16(b[0:2], c.TypeHandle)
	binary.LittleEndian.PutUint32(b[2:6], uint32(c.Subtype))
	return nil
}

// ReadCompactID decodes a CompactID from the first CompactIDSize bytes of b.
// It fails with ErrShortBuffer if b is too small.
func ReadCompactID(b []byte) (CompactID, error) {
	if len(b) < CompactIDSize {
		return CompactID{}, ErrShortBuffer
	}
	return CompactID{
		TypeHandle: binary.LittleEndian.Uint16(b[0:2]),
		Subtype:    intern.Handle(binary.LittleEndian.Uint32(b[2:6])),
	}, nil
}

// AppendBinary appends c's wire form to b and returns the extended slice.
func (c CompactID) AppendBinary(b []byte) []byte {
	var buf [CompactIDSize]byte
	binary.LittleEndian.PutUint16(buf[0:2], c.TypeHandle)
	binary.LittleEndian.PutUint32(buf[2:6], uint32(c.Subtype))
	return append(b, buf[:]...)
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is always
// exactly CompactIDSize bytes.
func (c CompactID) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(nil), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It requires
// exactly CompactIDSize bytes; a CompactID embedded in a larger buffer
// should be read with ReadCompactID instead.
func (c *CompactID) UnmarshalBinary(data []byte) error {
	if len(data) > CompactIDSize {
		return fmt.Errorf("defcore: unmarshal compact identifier: got %d bytes, want %d",
			len(data), CompactIDSize)
	}
	dec, err := ReadCompactID(data)
	if err != nil {
		return err
	}
	*c = dec
	return nil
}
