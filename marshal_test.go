package defcore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/emberveil/defcore/category"
)

// ensureCategory registers name in the default registry unless an earlier
// test already did.
func ensureCategory(t *testing.T, name string) category.Token {
	t.Helper()
	if tok, ok := category.Resolve(name); ok {
		return tok
	}
	return category.MustRegister(name)
}

func TestMarshalText(t *testing.T) {
	ore := ensureCategory(t, "Ore")
	id := New(ore, "Iron")

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Ore/Iron", string(text))

	var back ID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)
}

func TestMarshalTextInvalid(t *testing.T) {
	_, err := Nil.MarshalText()
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestUnmarshalTextError(t *testing.T) {
	var id ID
	err := id.UnmarshalText([]byte("UnregisteredCategory/Foo"))
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestJSONRoundTrip(t *testing.T) {
	ore := ensureCategory(t, "Ore")

	type drop struct {
		Item  ID  `json:"item"`
		Count int `json:"count"`
	}

	out, err := json.Marshal(drop{Item: New(ore, "Iron"), Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":"Ore/Iron","count":3}`, string(out))

	var back drop
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, New(ore, "Iron"), back.Item)
	assert.Equal(t, 3, back.Count)
}

func TestYAMLRoundTrip(t *testing.T) {
	ore := ensureCategory(t, "Ore")

	type recipe struct {
		Input  ID `yaml:"input"`
		Output ID `yaml:"output"`
	}

	src := recipe{Input: New(ore, "Iron"), Output: New(ore, "")}

	out, err := yaml.Marshal(src)
	require.NoError(t, err)
	assert.Contains(t, string(out), "input: Ore/Iron")
	assert.Contains(t, string(out), "output: Ore/(null)")

	var back recipe
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, src, back)
}

func TestYAMLUnmarshalError(t *testing.T) {
	var id ID
	err := yaml.Unmarshal([]byte(`"NoSlashHere"`), &id)
	require.ErrorIs(t, err, ErrMissingSeparator)
}
