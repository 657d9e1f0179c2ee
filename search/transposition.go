package search

import (
	"sync"

	"github.com/oliverans-successor/chesscore/board"
)

// Bound distinguishes the three kinds of score a TranspositionEntry can
// carry, per spec.md §3.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// TranspositionEntry is the value half of the TT, keyed by Zobrist hash.
type TranspositionEntry struct {
	Hash     uint64
	Depth    int
	Score    int32
	Bound    Bound
	BestMove board.Move
}

const clusterSize = 4

// clusterBucket is one lock-protected slot of the table: a small cluster of
// entries sharing a hash-derived index, matching spec.md §5's
// "bucket-partitioned with per-bucket locks" requirement without pulling in
// a full lock-free map implementation.
type clusterBucket struct {
	mu      sync.Mutex
	entries [clusterSize]TranspositionEntry
}

// TranspositionTable is shared, read-heavy and safe for concurrent use by
// the root worker pool (spec.md §5). Replacement policy: prefer an existing
// entry for the same hash, then an empty slot, then the shallowest entry in
// the bucket — the teacher's TransTable.storeEntry policy (engine/transposition.go),
// adapted from a single global cluster array to per-bucket mutexes.
type TranspositionTable struct {
	buckets []clusterBucket
}

// NewTranspositionTable allocates a table sized to hold approximately
// entryCount entries, rounded down to a whole number of clusters (at least
// one).
func NewTranspositionTable(entryCount int) *TranspositionTable {
	if entryCount < clusterSize {
		entryCount = clusterSize
	}
	numBuckets := entryCount / clusterSize
	if numBuckets == 0 {
		numBuckets = 1
	}
	return &TranspositionTable{buckets: make([]clusterBucket, numBuckets)}
}

func (tt *TranspositionTable) bucketFor(hash uint64) *clusterBucket {
	return &tt.buckets[hash%uint64(len(tt.buckets))]
}

// Probe looks up hash, returning the entry and whether it was found.
func (tt *TranspositionTable) Probe(hash uint64) (TranspositionEntry, bool) {
	b := tt.bucketFor(hash)
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		if b.entries[i].Hash == hash {
			return b.entries[i], true
		}
	}
	return TranspositionEntry{}, false
}

// Store writes an entry, replacing (in priority order) a matching hash, an
// empty slot, or the shallowest entry in the bucket.
func (tt *TranspositionTable) Store(entry TranspositionEntry) {
	b := tt.bucketFor(entry.Hash)
	b.mu.Lock()
	defer b.mu.Unlock()

	target := -1
	for i := range b.entries {
		if b.entries[i].Hash == entry.Hash {
			target = i
			break
		}
	}
	if target == -1 {
		// Hash == 0 doubles as the empty-slot sentinel: a real position that
		// happens to hash to exactly 0 would never be found, but that chance
		// is astronomically small against a 64-bit Zobrist key.
		for i := range b.entries {
			if b.entries[i].Hash == 0 {
				target = i
				break
			}
		}
	}
	if target == -1 {
		target = 0
		minDepth := b.entries[0].Depth
		for i := 1; i < clusterSize; i++ {
			if b.entries[i].Depth < minDepth {
				minDepth = b.entries[i].Depth
				target = i
			}
		}
	}
	b.entries[target] = entry
}
