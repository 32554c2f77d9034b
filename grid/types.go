package grid

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/vecmath"
)

// ItemID is a 32-bit, monotonically increasing, never-reused (within one
// grid's lifetime) item identifier. The zero value is never assigned.
type ItemID uint32

// Item is the capability contract a caller's payload type must satisfy.
// Equality and hashing over T are the caller's concern (used by an
// orchestrator layer, not by this package) and are not required here.
type Item interface {
	// Center returns the item's world-space centre.
	Center() vecmath.Float3
	// Size returns the item's full AABB extents (not half-extents).
	Size() vecmath.Float3
	// ItemID returns the id last written by SetItemID, or 0 if none.
	ItemID() ItemID
	// SetItemID records the id the grid assigned this item.
	SetItemID(ItemID)
}

// config is the resolved, immutable construction configuration. Option
// values mutate a Config the way builder.BuilderOption mutates a
// builderConfig.
type config struct {
	initialCapacity int64
	shardCount      int
	allocatorLabel  string
}

// Option configures a SpatialHash at construction.
type Option func(*config)

// WithInitialCapacity sets the number of items the grid's reverse tables
// are pre-sized to hold without triggering PrepareFreePlace. Default: 64.
func WithInitialCapacity(n int) Option {
	return func(c *config) { c.initialCapacity = int64(n) }
}

// WithShardCount overrides the default (CPU-probed) shard count used by
// the forward and reverse tables. Mostly useful in tests that want
// deterministic shard assignment. Rounded up to a power of two.
func WithShardCount(n int) Option {
	return func(c *config) { c.shardCount = n }
}

// WithAllocatorLabel attaches a diagnostic label (e.g. the name of a
// pluggable allocator strategy) to the grid, surfaced as a prefix of
// InstanceID.
// It has no effect on behaviour.
func WithAllocatorLabel(label string) Option {
	return func(c *config) { c.allocatorLabel = label }
}

func newConfig(opts ...Option) config {
	c := config{
		initialCapacity: 64,
		shardCount:      defaultShardCount(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.shardCount = nextPowerOfTwo(c.shardCount)

	return c
}

// SpatialHash is a uniform-grid spatial index over items of type T. See
// the package doc for the two access disciplines it supports.
type SpatialHash[T Item] struct {
	worldBounds aabb.Box
	cellSize    vecmath.Float3
	cellCountV  vecmath.Int3

	nextID atomic.Uint32

	buckets    *bucketTable
	idToBounds *idTable[aabb.Box]
	idToItem   *idTable[T]

	instanceID string

	// Ray-cast scratch state. Exclusive-mode only: mixing ray-cast
	// with concurrent writers is undefined.
	rayMu     sync.Mutex
	rayOrigin vecmath.Float3
	rayDir    vecmath.Float3
	rayLength float64
	hasHit    bool
	hitID     ItemID

	// Scratch sets reused across MoveItem calls (see move.go), each sized
	// to the larger of the two cell ranges it last held. Guarded by moveMu
	// since exclusive-mode callers are expected to be single goroutine, but
	// concurrent test harnesses sometimes aren't.
	moveMu sync.Mutex
	oldSet map[vecmath.Int3]struct{}
	newSet map[vecmath.Int3]struct{}

	// Scratch id-dedup set reused across query calls. Exclusive-mode only,
	// same discipline as the move scratch sets above.
	queryMu sync.Mutex
	seenIDs map[ItemID]struct{}
}

// New constructs an empty SpatialHash over worldBounds with the given
// fixed cellSize. It fails with ErrInvalidInitialCapacity or
// ErrInvalidCellSize for invalid construction arguments; neither error is
// retried internally.
func New[T Item](worldBounds aabb.Box, cellSize vecmath.Float3, opts ...Option) (*SpatialHash[T], error) {
	cfg := newConfig(opts...)
	if cfg.initialCapacity < 1 {
		return nil, ErrInvalidInitialCapacity
	}
	if cellSize.X <= 0 || cellSize.Y <= 0 || cellSize.Z <= 0 {
		return nil, ErrInvalidCellSize
	}

	cellCount := worldBounds.CellCount(cellSize)

	sh := &SpatialHash[T]{
		worldBounds: worldBounds,
		cellSize:    cellSize,
		cellCountV:  cellCount,
		buckets:     newBucketTable(cfg.shardCount),
		idToBounds:  newIDTable[aabb.Box](cfg.shardCount, cfg.initialCapacity),
		idToItem:    newIDTable[T](cfg.shardCount, cfg.initialCapacity),
		instanceID:  uuid.NewString(),
		oldSet:      make(map[vecmath.Int3]struct{}),
		newSet:      make(map[vecmath.Int3]struct{}),
		seenIDs:     make(map[ItemID]struct{}),
	}
	if cfg.allocatorLabel != "" {
		sh.instanceID = cfg.allocatorLabel + "/" + sh.instanceID
	}

	return sh, nil
}

// InstanceID returns a stable, process-local diagnostic identifier for
// this grid. It is never logged by this package and has no effect on
// behaviour; it exists so a caller running many grids (e.g. one per
// streaming chunk) can tell them apart in its own diagnostics.
func (sh *SpatialHash[T]) InstanceID() string { return sh.instanceID }

// CellSize returns the grid's fixed cell size.
func (sh *SpatialHash[T]) CellSize() vecmath.Float3 { return sh.cellSize }

// WorldBounds returns the grid's fixed world bounds.
func (sh *SpatialHash[T]) WorldBounds() aabb.Box { return sh.worldBounds }

// CellCount returns ceil(size(worldBounds)/cellSize) componentwise.
func (sh *SpatialHash[T]) CellCount() vecmath.Int3 { return sh.cellCountV }

// ItemCount returns the number of live items.
func (sh *SpatialHash[T]) ItemCount() int { return sh.idToItem.Len() }

// BucketItemCount returns the total number of (cell, id) occurrences
// across every bucket: the sum over items of the number of cells their
// clamped bounds overlap.
func (sh *SpatialHash[T]) BucketItemCount() int { return sh.buckets.Count() }
