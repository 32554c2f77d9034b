package batch_test

import (
	"context"
	"fmt"

	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/batch"
	"github.com/voxelith/spatialgrid/grid"
	"github.com/voxelith/spatialgrid/vecmath"
)

// ExampleTick demonstrates one orchestrator tick inserting two new items.
func ExampleTick() {
	sh, err := grid.New[*tickItem](
		aabb.NewBox(vecmath.NewFloat3(15, 15, 15), vecmath.NewFloat3(15, 15, 15)),
		vecmath.NewFloat3(1, 1, 1),
		grid.WithShardCount(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	newItems := []*tickItem{
		newTickItem(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(1, 1, 1)),
		newTickItem(vecmath.NewFloat3(10.5, 10.5, 10.5), vecmath.NewFloat3(1, 1, 1)),
	}

	report, err := batch.Tick[*tickItem](context.Background(), sh, newItems, nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(report.Added, sh.ItemCount())
	// Output: 2 2
}
