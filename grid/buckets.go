package grid

import "sync"

// bucketTable is the forward index: cell hash -> the ids whose clamped
// bounds overlap that cell. It is sharded by the cell hash itself (the
// same key used for map lookup), so a given key always lives in exactly
// one shard regardless of who is writing it.
type bucketTable struct {
	shards []bucketShard
	mask   uint32
}

type bucketShard struct {
	mu sync.RWMutex
	m  map[uint32][]ItemID
}

func newBucketTable(shardCount int) *bucketTable {
	t := &bucketTable{
		shards: make([]bucketShard, shardCount),
		mask:   uint32(shardCount - 1),
	}
	for i := range t.shards {
		t.shards[i].m = make(map[uint32][]ItemID)
	}

	return t
}

func (t *bucketTable) shardFor(key uint32) *bucketShard {
	return &t.shards[key&t.mask]
}

// Append adds id to the bucket for key. Used by both exclusive add/move
// and the concurrent writer's try_add — concurrent callers only ever
// append, never remove, so a shard's write lock is held only briefly.
func (t *bucketTable) Append(key uint32, id ItemID) {
	shard := t.shardFor(key)
	shard.mu.Lock()
	shard.m[key] = append(shard.m[key], id)
	shard.mu.Unlock()
}

// Remove deletes one occurrence of id from the bucket for key, reporting
// whether it was found. Exclusive-mode only.
func (t *bucketTable) Remove(key uint32, id ItemID) bool {
	shard := t.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	ids := shard.m[key]
	for i, existing := range ids {
		if existing != id {
			continue
		}
		last := len(ids) - 1
		ids[i] = ids[last]
		ids = ids[:last]
		if len(ids) == 0 {
			delete(shard.m, key)
		} else {
			shard.m[key] = ids
		}

		return true
	}

	return false
}

// AppendTo appends every id currently stored under key into out.
func (t *bucketTable) AppendTo(key uint32, out []ItemID) []ItemID {
	shard := t.shardFor(key)
	shard.mu.RLock()
	out = append(out, shard.m[key]...)
	shard.mu.RUnlock()

	return out
}

// Count returns the total number of (cell, id) occurrences stored, i.e.
// bucket_item_count.
func (t *bucketTable) Count() int {
	total := 0
	for i := range t.shards {
		t.shards[i].mu.RLock()
		for _, ids := range t.shards[i].m {
			total += len(ids)
		}
		t.shards[i].mu.RUnlock()
	}

	return total
}

// Clear empties every shard.
func (t *bucketTable) Clear() {
	for i := range t.shards {
		t.shards[i].mu.Lock()
		t.shards[i].m = make(map[uint32][]ItemID)
		t.shards[i].mu.Unlock()
	}
}
