// Package vecmath provides the small, value-type 3-component vectors that
// every other package in spatialgrid builds on: Int3 for cell coordinates,
// Float3 for world-space points and extents.
//
// Equality on both types is bit-identity on their components (NaN-unsafe
// for Float3; callers must not feed NaN into world coordinates). Hashing
// is deterministic within one process but is not guaranteed stable across
// Go versions or architectures.
package vecmath
