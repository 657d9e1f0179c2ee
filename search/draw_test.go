package search

import (
	"testing"

	"github.com/oliverans-successor/chesscore/board"
)

// TestAlphaBetaScoresStalemateAsDraw is the interior-node half of spec.md
// §8 scenario 3: a stalemated side to move must score as DrawScore via
// alphaBeta's no-legal-move/not-in-check branch, not the material+PST
// evaluator (which has no notion of whose turn it is to move and would
// never itself return 0 for a king-and-queen-versus-king position).
func TestAlphaBetaScoresStalemateAsDraw(t *testing.T) {
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	w := &worker{board: b, tt: NewTranspositionTable(DefaultTTEntries)}
	if score := w.alphaBeta(2, 1, -MaxScore, MaxScore); score != DrawScore {
		t.Errorf("alphaBeta at a stalemate node = %d, want DrawScore (%d)", score, DrawScore)
	}
}

// TestAlphaBetaScoresThreefoldRepetitionAsDraw is spec.md §8 scenario 5.
// The position is manually replayed to its third occurrence (the same
// shuffle board/makemove_test.go's TestIsRepetitionFiresOnThirdOccurrence
// uses to exercise IsRepetition directly) so the test does not depend on
// the search choosing to repeat on its own — it drives the exact line and
// checks that alphaBeta recognizes the repeated node as a draw.
func TestAlphaBetaScoresThreefoldRepetitionAsDraw(t *testing.T) {
	b, err := board.FromFEN("4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	shuffle := []string{"e1d1", "e8d8", "d1e1", "d8e8"}
	for cycle := 0; cycle < 3; cycle++ {
		for _, alg := range shuffle {
			m, err := board.ParseAlgebraic(b, alg)
			if err != nil {
				t.Fatalf("ParseAlgebraic(%q): %v", alg, err)
			}
			b.Apply(m)
		}
	}
	if !b.IsRepetition(3) {
		t.Fatal("setup did not reach a threefold repetition")
	}

	w := &worker{board: b, tt: NewTranspositionTable(DefaultTTEntries)}
	if score := w.alphaBeta(4, 1, -MaxScore, MaxScore); score != DrawScore {
		t.Errorf("alphaBeta at a threefold-repeated node = %d, want DrawScore (%d)", score, DrawScore)
	}
}
