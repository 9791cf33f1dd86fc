package defcore

import (
	"fmt"
	"strings"

	"github.com/emberveil/defcore/category"
	"github.com/emberveil/defcore/intern"
)

// Namespace bundles the two collaborators every identifier operation needs:
// a category registry and a subtype intern table. All parsing, formatting,
// widening and narrowing logic lives here so the collaborators are injected
// explicitly rather than reached for as ambient globals.
//
// A Namespace is safe for concurrent use as long as its registry and table
// are, which the implementations in the category and intern packages
// guarantee.
type Namespace struct {
	categories *category.Registry
	subtypes   *intern.Table
}

// NewNamespace returns a namespace over the given registry and table.
func NewNamespace(categories *category.Registry, subtypes *intern.Table) *Namespace {
	return &Namespace{categories: categories, subtypes: subtypes}
}

// defaultNamespace wraps the process-wide default registry and table, so
// categories registered through the category package are visible to the
// package-level functions here.
var defaultNamespace = NewNamespace(category.Default(), intern.Default())

// DefaultNamespace returns the namespace over the process-wide default
// category registry and intern table.
func DefaultNamespace() *Namespace {
	return defaultNamespace
}

// Categories returns the namespace's category registry.
func (ns *Namespace) Categories() *category.Registry {
	return ns.categories
}

// Subtypes returns the namespace's intern table.
func (ns *Namespace) Subtypes() *intern.Table {
	return ns.subtypes
}

// New builds an identifier from a category token and a subtype name,
// interning the name in the namespace's table. An empty name and the
// literal "(null)" both yield the absent subtype.
func (ns *Namespace) New(tok category.Token, subtypeName string) ID {
	if subtypeName == NullName {
		subtypeName = ""
	}
	return ID{category: tok, subtype: ns.subtypes.Intern(subtypeName)}
}

// Parse parses text of the form "<category>/<subtype>".
//
// The text is split on the first '/'; both segments are trimmed of
// surrounding whitespace. The left segment must name a registered category.
// The right segment is the subtype name; an empty segment and the literal
// "(null)" both mean "no subtype". Failures are reported as a *FormatError
// wrapping ErrEmptyInput, ErrMissingSeparator, or ErrUnknownCategory.
func (ns *Namespace) Parse(text string) (ID, error) {
	if text == "" {
		return Nil, &FormatError{Input: text, Err: ErrEmptyInput}
	}

	catName, subName, found := strings.Cut(text, "/")
	if !found {
		return Nil, &FormatError{Input: text, Err: ErrMissingSeparator}
	}

	catName = strings.TrimSpace(catName)
	subName = strings.TrimSpace(subName)

	tok, ok := ns.categories.Resolve(catName)
	if !ok {
		return Nil, &FormatError{Input: text, Err: fmt.Errorf("%w: %q", ErrUnknownCategory, catName)}
	}

	return ns.New(tok, subName), nil
}

// TryParse is Parse with a boolean result instead of an error. On failure
// the returned identifier is Nil.
func (ns *Namespace) TryParse(text string) (ID, bool) {
	id, err := ns.Parse(text)
	if err != nil {
		return Nil, false
	}
	return id, true
}

// MustParse is like Parse but panics on error. Intended for identifiers
// written as literals in source.
func (ns *Namespace) MustParse(text string) ID {
	id, err := ns.Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// Format renders id as "<category>/<subtype>", with "(null)" standing in
// for an invalid category and for the absent subtype. Format is the exact
// inverse of Parse for every identifier built against this namespace.
func (ns *Namespace) Format(id ID) string {
	sub := NullName
	if id.subtype != intern.None {
		if name := ns.subtypes.NameOf(id.subtype); name != "" {
			sub = name
		}
	}
	return id.category.String() + "/" + sub
}

// FromContent builds an identifier from a content item's embedded identity.
// It needs no resolution and is namespace-independent; the method exists so
// namespace-centric call sites read uniformly.
func (ns *Namespace) FromContent(c Content) ID {
	return FromContent(c)
}

// Parse parses text against the default namespace. See Namespace.Parse.
func Parse(text string) (ID, error) {
	return defaultNamespace.Parse(text)
}

// TryParse parses text against the default namespace, reporting success
// instead of returning an error. See Namespace.TryParse.
func TryParse(text string) (ID, bool) {
	return defaultNamespace.TryParse(text)
}

// MustParse parses text against the default namespace, panicking on error.
func MustParse(text string) ID {
	return defaultNamespace.MustParse(text)
}

// New builds an identifier in the default namespace. See Namespace.New.
func New(tok category.Token, subtypeName string) ID {
	return defaultNamespace.New(tok, subtypeName)
}
