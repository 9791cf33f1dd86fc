package defcore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberveil/defcore/category"
	"github.com/emberveil/defcore/intern"
)

func TestHashConsistency(t *testing.T) {
	ns := testNamespace(t)

	a := ns.MustParse("Ore/Iron")
	b := ns.MustParse("Ore/Iron")
	c := ns.MustParse("Ore/Copper")

	require.Equal(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash(), "equal ids must hash equal")
	assert.Equal(t, a.Hash64(), b.Hash64(), "equal ids must hash equal (64-bit)")

	// Not guaranteed in general, but a collision between two subtypes of
	// the same category would mean the subtype handle is being ignored.
	assert.NotEqual(t, a.Hash64(), c.Hash64())
}

func TestHashLayout(t *testing.T) {
	ns := testNamespace(t)
	id := ns.MustParse("Ore/Iron")

	catHash := id.Category().Hash()

	// High bits of the 32-bit hash come from the category.
	assert.Equal(t, catHash<<16|uint32(id.Subtype())&0xFFFF, id.Hash())

	// The 64-bit hash is the category hash shifted 32, ORed with the
	// subtype handle.
	assert.Equal(t, uint64(catHash)<<32|uint64(id.Subtype()), id.Hash64())
}

func TestNilHash(t *testing.T) {
	assert.Zero(t, Nil.Hash())
	assert.Zero(t, Nil.Hash64())
}

func TestComparer(t *testing.T) {
	ns := testNamespace(t)

	a := ns.MustParse("Ore/Iron")
	b := ns.MustParse("Ore/Iron")
	c := ns.MustParse("Block/Granite")

	assert.True(t, DefaultComparer.Equal(a, b))
	assert.False(t, DefaultComparer.Equal(a, c))
	assert.Equal(t, a.Hash(), DefaultComparer.Hash(a))
	assert.Equal(t, a.Hash64(), DefaultComparer.Hash64(a))
}

// TestBulkRoundTrip exercises the round-trip and hash-consistency laws over
// a large set of generated subtype names.
func TestBulkRoundTrip(t *testing.T) {
	reg := category.NewRegistry()
	ore := reg.MustRegister("Ore")
	ns := NewNamespace(reg, intern.NewTable())

	seen := map[ID]string{}
	for i := 0; i < 500; i++ {
		name := uuid.NewString()
		id := ns.New(ore, name)

		back, err := ns.Parse(ns.Format(id))
		require.NoError(t, err, "round-trip of %q", name)
		require.Equal(t, id, back, "round-trip of %q", name)

		// Same name re-interned must produce the identical id.
		require.Equal(t, id, ns.New(ore, name))

		if prev, dup := seen[id]; dup {
			t.Fatalf("distinct names %q and %q mapped to the same id", prev, name)
		}
		seen[id] = name
	}
}
