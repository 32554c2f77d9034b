package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/voxelith/spatialgrid/grid"
)

// Tick drives one orchestrator tick over sh: it pre-sizes capacity for the
// "new" group, inserts "new" items in parallel, retires "moved" items with
// a serial remove_fast followed by a parallel add_fast, then removes
// "deleted" items serially — exactly the five steps of §4.F, minus the
// fifth (stripping a "dirty" marker component), which belongs to the
// orchestrator's own component store and is out of scope here.
//
// ctx governs only how quickly the parallel phases give up on the first
// error; it does not cancel the serial remove_fast/remove phases, which
// are cheap and always run to completion once started.
func Tick[T grid.Item](ctx context.Context, sh *grid.SpatialHash[T], newItems []T, moved []MovedItem[T], deletedIDs []grid.ItemID) (Report, error) {
	if sh == nil {
		return Report{}, ErrNilGrid
	}

	var report Report

	// Step 1-2: pre-size for the new group at 3/2 headroom, then insert in
	// parallel across a ConcurrentWriter.
	if len(newItems) > 0 {
		sh.PrepareFreePlace(len(newItems) * 3 / 2)
		cw := sh.ToConcurrent()

		g, gctx := errgroup.WithContext(ctx)
		for _, chunk := range chunks(newItems) {
			chunk := chunk
			g.Go(func() error {
				for _, item := range chunk {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					if !cw.TryAdd(item) {
						return fmt.Errorf("batch: tick: insert new item: %w", grid.ErrCapacityExhausted)
					}
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return report, err
		}
		report.Added = len(newItems)
	}

	// Step 3: moved items retire serially (remove_fast must observe the
	// item's prior cell range before it is overwritten), then re-insert in
	// parallel (add_fast only ever appends, so it is shard-safe).
	if len(moved) > 0 {
		for _, m := range moved {
			if err := sh.RemoveFast(m.OldID); err != nil {
				return report, fmt.Errorf("batch: tick: remove_fast(%d): %w", m.OldID, err)
			}
		}

		g, _ := errgroup.WithContext(ctx)
		for _, chunk := range chunks(moved) {
			chunk := chunk
			g.Go(func() error {
				for _, m := range chunk {
					sh.AddFast(m.Item)
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return report, err
		}
		report.Moved = len(moved)
	}

	// Step 4: deleted items are removed serially; no concurrency to gain,
	// and remove must observe the table state one id at a time.
	for _, id := range deletedIDs {
		if err := sh.Remove(id); err != nil {
			return report, fmt.Errorf("batch: tick: remove(%d): %w", id, err)
		}
		report.Removed++
	}

	return report, nil
}
