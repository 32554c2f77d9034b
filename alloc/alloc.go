package alloc

// Allocator is a diagnostic identity attached to a grid at construction,
// surfaced read-only via grid.SpatialHash.InstanceID. It has no effect on
// how the grid actually allocates memory; it exists so a caller running
// many grids (one per streaming chunk, one per world shard) can tag each
// with the strategy or arena it conceptually belongs to.
type Allocator struct {
	label string
}

// New returns an Allocator identified by label. An empty label is valid
// and behaves the same as the zero value.
func New(label string) Allocator {
	return Allocator{label: label}
}

// Label returns the allocator's diagnostic label.
func (a Allocator) Label() string { return a.label }

// PrefaultHint returns a recommended PrepareFreePlace headroom for an
// expected batch of n new items: 3/2 of n, matching §4.F step 1's
// "prepare_free_place(count*3/2)", rounded up further on hosts whose wide
// SIMD support makes larger, less-frequent table growths cheaper relative
// to the page-fault cost of touching freshly grown shards.
func PrefaultHint(n int) int {
	hint := n + n/2
	if hasWideSIMD() {
		hint += hint / 4
	}

	return hint
}
