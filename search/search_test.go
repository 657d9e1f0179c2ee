package search_test

import (
	"testing"

	"github.com/oliverans-successor/chesscore/board"
	"github.com/oliverans-successor/chesscore/search"
)

// TestMateInOne is spec.md §8 end-to-end scenario 1.
func TestMateInOne(t *testing.T) {
	b, err := board.FromFEN("1Q6/8/8/8/8/k1K5/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	engine := search.NewEngine()
	result, ok := engine.FindBestMove(b, 4, nil)
	if !ok {
		t.Fatal("expected a best move")
	}
	if got := result.Move.Algebraic(b); got != "b8b3" {
		t.Errorf("best move = %s, want b8b3 (Qb3#)", got)
	}
	if want := search.MateScore - 1; result.Score != want {
		t.Errorf("score = %d, want %d", result.Score, want)
	}
}

// TestBackRankMateInTwo is spec.md §8 end-to-end scenario 2: Black to move
// has a forced mate in two against White's back rank.
func TestBackRankMateInTwo(t *testing.T) {
	fen := "4r2k/4q3/8/8/8/8/5PPP/R5K1 b - - 0 1"
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	engine := search.NewEngine()
	result, ok := engine.FindBestMove(b, 4, nil)
	if !ok {
		t.Fatal("expected a best move")
	}
	if want := search.MateScore - 3; result.Score < want {
		t.Errorf("score = %d, want >= %d (forced mate)", result.Score, want)
	}
}

// TestStalemateReturnsNoMove is spec.md §8 end-to-end scenario 3. At the
// root, FindBestMove simply reports no legal moves; the "stalemate scores
// as a draw" half of that scenario is the search's interior-node behavior,
// covered by TestAlphaBetaScoresStalemateAsDraw in the internal test file
// since it exercises alphaBeta directly rather than the pure evaluator
// (which is material+PST and has no notion of whose turn it is to move).
func TestStalemateReturnsNoMove(t *testing.T) {
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	engine := search.NewEngine()
	if _, ok := engine.FindBestMove(b, 4, nil); ok {
		t.Fatal("expected no legal moves (stalemate)")
	}
}

// TestPawnTakesKnightCaptureIsGenerated checks that the spec.md §8 scenario 4
// position offers a pawn-takes-knight capture among its legal moves.
func TestPawnTakesKnightCaptureIsGenerated(t *testing.T) {
	fen := "rnbqkbnr/pppp1ppp/8/4p3/4PN2/8/PPPP1PPP/RNB1KB1R b KQkq - 1 2"
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var capture board.Move
	found := false
	for _, m := range b.GenerateLegalMoves() {
		if m.IsCapture() && m.Piece == board.Pawn && m.Captured == board.Knight {
			capture = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a pawn-takes-knight capture among legal moves")
	}
	_ = capture // its ordering is checked by TestOrderMovesCaptureAboveQuiet in orderer_test.go
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	b, err := board.FromFEN("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if !b.IsInsufficientMaterial() {
		t.Fatal("K v K should be insufficient material")
	}
}

// TestFindBestMoveDepthIsMonotonicallyIncreasing is spec.md §8 end-to-end
// scenario 6: iterative deepening must report the depth it actually
// finished at, one ply deeper each iteration up to maxDepth.
func TestFindBestMoveDepthIsMonotonicallyIncreasing(t *testing.T) {
	b := board.NewBoard()
	engine := search.NewEngine()
	result, ok := engine.FindBestMove(b, 3, nil)
	if !ok {
		t.Fatal("expected a best move from the starting position")
	}
	if result.Depth != 3 {
		t.Errorf("final iteration depth = %d, want 3", result.Depth)
	}
}
