package board_test

import (
	"testing"

	"github.com/oliverans-successor/chesscore/board"
)

// TestGenerateLegalMovesNeverExposesKing is spec.md §8 invariant 3.
func TestGenerateLegalMovesNeverExposesKing(t *testing.T) {
	walkAndCheckLegality(t, board.NewBoard(), 3)
}

func walkAndCheckLegality(t *testing.T, b *board.Board, depth int) {
	mover := b.SideToMove
	for _, m := range b.GenerateLegalMoves() {
		b.Apply(m)
		if b.InCheck(mover) {
			t.Fatalf("legal move %s left %s king in check", m, mover)
		}
		if depth > 0 {
			walkAndCheckLegality(t, b, depth-1)
		}
		b.Unapply()
	}
}

// TestOccupancyPartition is spec.md §8 invariant 4.
func TestOccupancyPartition(t *testing.T) {
	b := board.NewBoard()
	for _, c := range [2]board.Color{board.White, board.Black} {
		set := &b.Sets[c]
		union := set.Pawns | set.Knights | set.Bishops | set.Rooks | set.Queens | set.Kings
		if union != set.Occupied {
			t.Errorf("%s per-kind bitboards don't union to Occupied", c)
		}
	}
	if b.Sets[board.White].Occupied&b.Sets[board.Black].Occupied != board.Empty {
		t.Error("white and black occupancy overlap")
	}
}

// TestDiscoveredCheckFiltersEnPassant: capturing en passant would expose
// the king to a rook along the rank once the blocking pawns vanish.
func TestDiscoveredCheckFiltersEnPassant(t *testing.T) {
	b, err := board.FromFEN("8/8/8/8/k2Pp2R/8/8/7K b - d3 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.Tag == board.EnPassantMove {
			t.Fatalf("en-passant capture %s should be filtered by discovered check", m)
		}
	}
}

func TestDoubleCheckForcesKingMove(t *testing.T) {
	// A position where the Black king on h8 is attacked simultaneously by
	// a white rook (along rank 8) and a white knight (from f7); only king
	// moves can be legal.
	b, err := board.FromFEN("R6k/5N2/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.Piece != board.King {
			t.Fatalf("expected only king moves under double check, got %s", m)
		}
	}
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if moves := b.GenerateLegalMoves(); len(moves) != 0 {
		t.Fatalf("expected stalemate, got %d legal moves", len(moves))
	}
	if b.InCheck(board.Black) {
		t.Fatal("stalemate position should not be in check")
	}
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	// Black rook on f8 attacks f1, the square the king passes through on
	// the way to g1, so king-side castling must not be offered.
	b, err := board.FromFEN("1k3r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.Tag == board.CastleMove && m.CastleSide == board.KingSide {
			t.Fatal("king-side castle should be blocked by attack on f1")
		}
	}
}
