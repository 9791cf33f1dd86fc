package category

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors returned by Register.
var (
	// ErrEmptyName indicates an attempt to register a category with no name.
	ErrEmptyName = errors.New("empty category name")

	// ErrDuplicate indicates the category name is already registered.
	ErrDuplicate = errors.New("category already registered")

	// ErrHandleSpace indicates the 16-bit handle space is exhausted.
	ErrHandleSpace = errors.New("category handle space exhausted")
)

// Registry maps category names to tokens and runtime handles back to tokens.
// Create registries with NewRegistry; the zero value is not usable.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]Token
	byHandle []Token
}

// NewRegistry returns an empty registry. Handle 0 is reserved for the
// invalid token, so the first registered category receives handle 1.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]Token),
		byHandle: []Token{Invalid},
	}
}

// Register assigns the next free runtime handle to name and returns its
// token. It fails if name is empty, already registered, or the handle space
// is exhausted.
func (r *Registry) Register(name string) (Token, error) {
	if name == "" {
		return Invalid, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return Invalid, fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	if len(r.byHandle) > math.MaxUint16 {
		return Invalid, ErrHandleSpace
	}

	tok := Token{name: name, handle: uint16(len(r.byHandle))}
	r.byHandle = append(r.byHandle, tok)
	r.byName[name] = tok
	return tok, nil
}

// MustRegister is like Register but panics on error. Intended for
// startup-time registration of built-in categories.
func (r *Registry) MustRegister(name string) Token {
	tok, err := r.Register(name)
	if err != nil {
		panic(fmt.Sprintf("category: register %q: %v", name, err))
	}
	return tok
}

// Resolve returns the token registered under name.
func (r *Registry) Resolve(name string) (Token, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tok, ok := r.byName[name]
	return tok, ok
}

// ByHandle returns the token assigned the given runtime handle. Handle 0
// and unassigned handles resolve to the invalid token with ok == false.
func (r *Registry) ByHandle(h uint16) (Token, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h == 0 || int(h) >= len(r.byHandle) {
		return Invalid, false
	}
	return r.byHandle[h], true
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byHandle) - 1
}

// defaultRegistry backs the package-level functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register registers name in the process-wide registry.
func Register(name string) (Token, error) {
	return defaultRegistry.Register(name)
}

// MustRegister registers name in the process-wide registry, panicking on error.
func MustRegister(name string) Token {
	return defaultRegistry.MustRegister(name)
}

// Resolve looks up name in the process-wide registry.
func Resolve(name string) (Token, bool) {
	return defaultRegistry.Resolve(name)
}

// ByHandle looks up a runtime handle in the process-wide registry.
func ByHandle(h uint16) (Token, bool) {
	return defaultRegistry.ByHandle(h)
}

// Reset discards every registration in the process-wide registry.
// This is primarily useful for testing.
func Reset() {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()

	defaultRegistry.byName = make(map[string]Token)
	defaultRegistry.byHandle = []Token{Invalid}
}
