package search_test

import (
	"testing"

	"github.com/oliverans-successor/chesscore/board"
	"github.com/oliverans-successor/chesscore/search"
)

// TestCountPositionsRawMatchesPerft checks that the Raw strategy delegates
// to the canonical, non-cumulative leaf count (spec.md §6, §9).
func TestCountPositionsRawMatchesPerft(t *testing.T) {
	b := board.NewBoard()
	for depth, want := range map[int]uint64{1: 20, 2: 400, 3: 8902} {
		if got := search.CountPositions(b, depth, search.Raw); got != want {
			t.Errorf("CountPositions(Raw, depth %d) = %d, want %d", depth, got, want)
		}
	}
}

// TestCountPositionsAlphaBetaIsDistinctFromRaw checks that the AlphaBeta
// strategy reports a different counting convention than Raw (spec.md §9's
// open question: the two conventions must not be conflated).
func TestCountPositionsAlphaBetaIsDistinctFromRaw(t *testing.T) {
	b := board.NewBoard()
	pruned := search.CountPositions(b, 3, search.AlphaBeta)
	if pruned == 0 {
		t.Fatal("expected a nonzero visited-node count")
	}
	if raw := search.CountPositions(b, 3, search.Raw); pruned == raw {
		t.Errorf("AlphaBeta count %d equals the Raw leaf count", pruned)
	}
}
