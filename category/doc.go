// Package category resolves content category names to runtime tokens.
//
// A Token is the full runtime identity of a content category such as "Ore"
// or "Block". Tokens are produced by a Registry, which also assigns each
// category a narrow 16-bit runtime handle for use in compact wire forms.
// Handles are stable for the process lifetime only; the category name is the
// identity that survives across sessions.
//
// # Usage
//
//	ore := category.MustRegister("Ore")
//	tok, ok := category.Resolve("Ore")   // tok == ore
//	tok, ok = category.ByHandle(ore.Handle())
//
// The package-level functions operate on a process-wide default registry,
// mirroring how content categories are registered once at startup. Tests and
// embedded namespaces construct isolated registries with NewRegistry.
//
// # Thread Safety
//
// Registries are safe for concurrent use. Registration is expected to happen
// during startup; lookups afterwards take only a read lock.
package category
