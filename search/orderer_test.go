package search

import (
	"testing"

	"github.com/oliverans-successor/chesscore/board"
)

// TestOrderMovesCaptureAboveQuiet is spec.md §8 end-to-end scenario 4: the
// move orderer must rank any capture above all quiet moves.
func TestOrderMovesCaptureAboveQuiet(t *testing.T) {
	b, err := board.FromFEN("rnbqkbnr/pppp1ppp/8/4p3/4PN2/8/PPPP1PPP/RNB1KB1R b KQkq - 1 2")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	moves := b.GenerateLegalMoves()
	var killers KillerTable
	var history HistoryTable
	orderMoves(moves, board.Move{}, &killers, &history, b.SideToMove, 0)

	lastCaptureIdx := -1
	firstQuietIdx := -1
	for i, m := range moves {
		if m.IsCapture() {
			lastCaptureIdx = i
		}
		if m.IsQuiet() && firstQuietIdx == -1 {
			firstQuietIdx = i
		}
	}
	if lastCaptureIdx == -1 {
		t.Fatal("expected at least one capture among legal moves")
	}
	if firstQuietIdx != -1 && lastCaptureIdx > firstQuietIdx {
		t.Errorf("a quiet move at index %d sorted above the capture at index %d", firstQuietIdx, lastCaptureIdx)
	}
}

func TestOrderMovesPVFirst(t *testing.T) {
	b := board.NewBoard()
	moves := b.GenerateLegalMoves()
	pv := moves[len(moves)-1]
	var killers KillerTable
	var history HistoryTable
	orderMoves(moves, pv, &killers, &history, b.SideToMove, 0)
	if moves[0] != pv {
		t.Errorf("PV move %s was not sorted first", pv)
	}
}

func TestKillerTableInsertAndQuery(t *testing.T) {
	var k KillerTable
	m1 := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3), Piece: board.Pawn}
	m2 := board.Move{From: board.NewSquare(1, 0), To: board.NewSquare(2, 2), Piece: board.Knight}
	k.Insert(5, m1)
	k.Insert(5, m2)
	if !k.Is(5, m1) || !k.Is(5, m2) {
		t.Fatal("expected both inserted killers to be recognized")
	}
	if k.Is(5, board.Move{From: board.NewSquare(0, 0), To: board.NewSquare(0, 1), Piece: board.Rook}) {
		t.Fatal("unrelated move should not be a killer")
	}
}

func TestHistoryTableBumpIsMonotonic(t *testing.T) {
	var h HistoryTable
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3), Piece: board.Pawn}
	before := h.Score(board.White, m)
	h.Bump(board.White, m, 4)
	if after := h.Score(board.White, m); after <= before {
		t.Fatalf("history score did not increase: before=%d after=%d", before, after)
	}
}
