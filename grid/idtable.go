package grid

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"blainsmith.com/go/seahash"
)

// idTable is a sharded map keyed by ItemID, used for both id_to_bounds and
// id_to_item. Shard selection uses an independent hash (seahash over the
// id's bytes) rather than the id itself, so shard load does not depend on
// the order ids happen to be assigned in.
//
// Exclusive-mode callers (Set/Delete/Get) take the owning shard's lock
// directly. The concurrent-writer path (TryAdd) reserves a slot by
// compare-and-swapping the shared count against a capacity ceiling set by
// Grow, then writes under the owning shard's lock — the "atomic-cas for
// id-to-value upsert" §4.E describes.
type idTable[V any] struct {
	shards   []idShard[V]
	mask     uint32
	count    atomic.Int64
	capacity atomic.Int64
}

type idShard[V any] struct {
	mu sync.RWMutex
	m  map[ItemID]V
}

func newIDTable[V any](shardCount int, initialCapacity int64) *idTable[V] {
	t := &idTable[V]{
		shards: make([]idShard[V], shardCount),
		mask:   uint32(shardCount - 1),
	}
	for i := range t.shards {
		t.shards[i].m = make(map[ItemID]V)
	}
	t.capacity.Store(initialCapacity)

	return t
}

func idBytes(id ItemID) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(id))

	return buf[:]
}

func (t *idTable[V]) shardFor(id ItemID) *idShard[V] {
	h := seahash.Sum64(idBytes(id))

	return &t.shards[uint32(h)&t.mask]
}

// Set unconditionally upserts v under id. Used by exclusive-mode
// operations (Add, AddFast, MoveItem) which do not need the capacity
// check TryAdd enforces.
func (t *idTable[V]) Set(id ItemID, v V) {
	shard := t.shardFor(id)
	shard.mu.Lock()
	_, existed := shard.m[id]
	shard.m[id] = v
	shard.mu.Unlock()

	if !existed {
		t.count.Add(1)
	}
}

// Get returns the value stored under id, if any.
func (t *idTable[V]) Get(id ItemID) (V, bool) {
	shard := t.shardFor(id)
	shard.mu.RLock()
	v, ok := shard.m[id]
	shard.mu.RUnlock()

	return v, ok
}

// Delete removes id, reporting whether it was present.
func (t *idTable[V]) Delete(id ItemID) bool {
	shard := t.shardFor(id)
	shard.mu.Lock()
	_, existed := shard.m[id]
	delete(shard.m, id)
	shard.mu.Unlock()

	if existed {
		t.count.Add(-1)
	}

	return existed
}

// Len returns the number of entries currently stored.
func (t *idTable[V]) Len() int {
	return int(t.count.Load())
}

// Clear empties every shard and resets the occupied count. The capacity
// ceiling is left untouched: callers that already called PrepareFreePlace
// should not need to call it again after a Clear.
func (t *idTable[V]) Clear() {
	for i := range t.shards {
		t.shards[i].mu.Lock()
		t.shards[i].m = make(map[ItemID]V)
		t.shards[i].mu.Unlock()
	}
	t.count.Store(0)
}

// Grow raises the capacity ceiling to the next power of two at or above
// newCapacity. It must not be called while a ConcurrentWriter derived from
// the owning grid is still in use.
func (t *idTable[V]) Grow(newCapacity int64) {
	for {
		cur := t.capacity.Load()
		target := nextPowerOfTwoInt64(newCapacity)
		if target <= cur {
			return
		}
		if t.capacity.CompareAndSwap(cur, target) {
			return
		}
	}
}

// TryAdd reserves a capacity slot via compare-and-swap and, on success,
// writes v under id. It returns false without writing anything if the
// capacity ceiling has been reached.
func (t *idTable[V]) TryAdd(id ItemID, v V) bool {
	for {
		cur := t.count.Load()
		if cur >= t.capacity.Load() {
			return false
		}
		if t.count.CompareAndSwap(cur, cur+1) {
			break
		}
	}

	shard := t.shardFor(id)
	shard.mu.Lock()
	shard.m[id] = v
	shard.mu.Unlock()

	return true
}

func nextPowerOfTwoInt64(n int64) int64 {
	if n <= 1 {
		return 1
	}
	p := int64(1)
	for p < n {
		p <<= 1
	}

	return p
}
