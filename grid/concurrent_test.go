package grid_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelith/spatialgrid/grid"
	"github.com/voxelith/spatialgrid/vecmath"
)

func TestConcurrentWriterParallelTryAdd(t *testing.T) {
	sh := newSpecGrid()
	const n = 500
	sh.PrepareFreePlace(n)
	cw := sh.ToConcurrent()

	var wg sync.WaitGroup
	items := make([]*testItem, n)
	for i := 0; i < n; i++ {
		items[i] = newTestItem(vecmath.NewFloat3(float64(i%29)+0.5, 1, 1), vecmath.NewFloat3(1, 1, 1))
	}

	for i := range items {
		wg.Add(1)
		go func(item *testItem) {
			defer wg.Done()
			require.True(t, cw.TryAdd(item))
		}(items[i])
	}
	wg.Wait()

	require.Equal(t, n, sh.ItemCount())

	seen := make(map[uint32]struct{}, n)
	for _, item := range items {
		require.NotZero(t, item.ItemID())
		seen[uint32(item.ItemID())] = struct{}{}
	}
	require.Len(t, seen, n, "ids must be unique across concurrent TryAdd calls")
}

func TestConcurrentWriterCapacityExhausted(t *testing.T) {
	sh, err := grid.New[*testItem](specWorld(), specCellSize(), grid.WithInitialCapacity(2), grid.WithShardCount(4))
	require.NoError(t, err)
	cw := sh.ToConcurrent()

	ok1 := cw.TryAdd(newTestItem(vecmath.NewFloat3(1, 1, 1), vecmath.NewFloat3(1, 1, 1)))
	ok2 := cw.TryAdd(newTestItem(vecmath.NewFloat3(1, 1, 1), vecmath.NewFloat3(1, 1, 1)))
	require.True(t, ok1)
	require.True(t, ok2)

	// Capacity was reserved for exactly 2; a third reservation must fail
	// rather than silently grow (shared-write mode forbids resizing).
	ok3 := cw.TryAdd(newTestItem(vecmath.NewFloat3(1, 1, 1), vecmath.NewFloat3(1, 1, 1)))
	require.False(t, ok3)
}
