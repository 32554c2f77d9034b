// Package occupancy finds contiguous clusters of occupied cells in a
// grid.SpatialHash — a diagnostic view on top of the index's bucket table,
// not something the index itself needs for add/remove/move/query.
//
// Clusters flood-fills 6-connected (face-adjacent) occupied cells the same
// way gridgraph.ConnectedComponents flood-fills 4/8-connected land cells in
// a 2D grid: "occupied" here replaces "value >= LandThreshold", and the
// three extra neighbour offsets cover the third dimension.
package occupancy
