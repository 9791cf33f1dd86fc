package defcore

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler, producing the same
// "<category>/<subtype>" form as String. Narrowing an invalid-category
// identifier to its serializable form is a contract violation, so it fails
// with ErrInvalidCategory instead of emitting "(null)/...". This also gives
// IDs JSON support for free via encoding/json.
func (id ID) MarshalText() ([]byte, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("defcore: marshal identifier: %w", ErrInvalidCategory)
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing against the
// default namespace.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler so identifiers embed in YAML
// documents as plain "<category>/<subtype>" scalars.
func (id ID) MarshalYAML() (any, error) {
	text, err := id.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(text))
}
