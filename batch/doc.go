// Package batch is the narrow adapter between an entity orchestrator and a
// grid.SpatialHash: the handful of operations described as "external
// boundary adapters" the orchestrator calls into the core once per tick.
//
// Tick is the single public entry-point, mirroring builder.BuildGraph's
// "one orchestrator, everything else is a private helper" shape: it
// resolves capacity up front, fans new items out across a ConcurrentWriter,
// retires moved items with a serial remove_fast / parallel add_fast pair,
// and removes deleted items serially. It does not touch the orchestrator's
// own component store (dirty-marker stripping stays the caller's job).
package batch
