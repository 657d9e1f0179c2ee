package search

import "github.com/oliverans-successor/chesscore/board"

// Strategy selects a count_positions convention (spec.md §6, §9's open
// question about the two conflicting meanings of "node count" in the
// corpus).
type Strategy int

const (
	// Raw is the canonical, non-cumulative perft leaf count — delegates
	// to board.Perft, which is the authority for correctness (spec.md §8).
	Raw Strategy = iota
	// AlphaBeta counts nodes actually visited by a fixed-depth alpha-beta
	// search under pruning, cumulative across the whole search tree
	// (matching the teacher's nodesChecked counter in engine/search.go).
	AlphaBeta
)

// CountPositions implements the count_positions diagnostic named in
// spec.md §6. With Raw it is the exact perft leaf count; with AlphaBeta it
// is the number of nodes an alpha-beta search at this depth visits,
// counting interior, horizon and quiescence nodes alike; nodes inside
// pruned subtrees are never visited and so are not counted.
func CountPositions(b *board.Board, depth int, strategy Strategy) uint64 {
	if strategy == Raw {
		return board.Perft(b, depth)
	}
	w := &worker{board: b, tt: NewTranspositionTable(DefaultTTEntries)}
	w.alphaBeta(depth, 0, -MaxScore, MaxScore)
	return w.nodes
}
