// Package internalcheck holds repository policy tests for the binding.
//
// The checks pin structural invariants that ordinary unit tests cannot see,
// like which package is allowed to touch the Windows FFI. Nothing here is
// meant to be imported; the package exists for its tests.
package internalcheck
