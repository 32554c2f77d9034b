package batch

import "github.com/voxelith/spatialgrid/grid"

// MovedItem pairs an item's new state with the id it held before the move,
// the "mirror id" §4.F's step 2 records for each entity.
type MovedItem[T grid.Item] struct {
	OldID grid.ItemID
	Item  T
}

// Report summarises one Tick call's effect on the grid, the per-call
// counterpart to grid.Stats' point-in-time snapshot.
type Report struct {
	Added   int
	Moved   int
	Removed int
}

// chunkSize caps how many items one errgroup worker handles per chunk. A
// fixed constant rather than a GOMAXPROCS-derived split keeps Tick's
// behaviour independent of the host it happens to run on; 256 keeps a
// worker's per-chunk latency low enough that errgroup's early-cancel on
// the first error still lands promptly.
const chunkSize = 256

func chunks[V any](items []V) [][]V {
	if len(items) == 0 {
		return nil
	}
	out := make([][]V, 0, (len(items)+chunkSize-1)/chunkSize)
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}

	return out
}
