package grid

import "errors"

// Sentinel errors for SpatialHash construction and mutation.
var (
	// ErrInvalidInitialCapacity indicates New was called with an initial
	// capacity below 1.
	ErrInvalidInitialCapacity = errors.New("grid: initial capacity must be >= 1")

	// ErrInvalidCellSize indicates a non-positive cell size component.
	ErrInvalidCellSize = errors.New("grid: cell size must be strictly positive on every axis")

	// ErrUnknownID indicates an operation referenced an id not present in
	// the reverse tables.
	ErrUnknownID = errors.New("grid: unknown item id")

	// ErrInvariantViolation indicates a remove failed to find the expected
	// bucket entry: a caller bug (double-remove, or a stale id used after
	// Clear), not a condition the grid retries or recovers from.
	ErrInvariantViolation = errors.New("grid: invariant violation")

	// ErrCapacityExhausted indicates a ConcurrentWriter.TryAdd could not
	// reserve space in the reverse tables. The caller must finish the
	// current tick, grow capacity with PrepareFreePlace, and retry.
	ErrCapacityExhausted = errors.New("grid: capacity exhausted")
)
