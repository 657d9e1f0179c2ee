package search

import "testing"

func TestTranspositionStoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(16)
	entry := TranspositionEntry{Hash: 0xC0FFEE, Depth: 5, Score: 123, Bound: Exact}
	tt.Store(entry)

	got, ok := tt.Probe(0xC0FFEE)
	if !ok {
		t.Fatal("expected probe hit after store")
	}
	if got.Score != 123 || got.Depth != 5 {
		t.Errorf("got %+v, want matching score/depth", got)
	}

	if _, ok := tt.Probe(0xDEADBEEF); ok {
		t.Error("expected probe miss for unseen hash")
	}
}

func TestTranspositionClusterEviction(t *testing.T) {
	tt := NewTranspositionTable(clusterSize) // a single bucket
	base := uint64(1)
	for i := 0; i < clusterSize+1; i++ {
		hash := base + uint64(i)*uint64(len(tt.buckets)) // all land in the same bucket
		tt.Store(TranspositionEntry{Hash: hash, Depth: i, Score: int32(i), Bound: Exact})
	}
	// The shallowest entry (depth 0) should have been evicted once the
	// cluster filled and a new, non-matching hash arrived.
	if _, ok := tt.Probe(base); ok {
		t.Error("expected the shallowest entry to be evicted")
	}
}
