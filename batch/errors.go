package batch

import "errors"

// ErrNilGrid indicates Tick was called with a nil *grid.SpatialHash.
var ErrNilGrid = errors.New("batch: nil grid")
