package board_test

import (
	"testing"

	"github.com/oliverans-successor/chesscore/board"
)

// Seed perft values from the initial position (spec.md §8); the canonical
// correctness gate for the move generator.
func TestPerftInitialPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, c := range cases {
		b := board.NewBoard()
		if got := board.Perft(b, c.depth); got != c.want {
			t.Errorf("perft depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		if got := board.Perft(b, c.depth); got != c.want {
			t.Errorf("perft depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftDepthZeroIsOne(t *testing.T) {
	b := board.NewBoard()
	if got := board.Perft(b, 0); got != 1 {
		t.Errorf("perft depth 0: got %d, want 1", got)
	}
}
