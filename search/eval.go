package search

import "github.com/oliverans-successor/chesscore/board"

// Material values in centipawns, indexed by board.PieceKind (spec.md §4.3).
var pieceValue = [7]int32{
	board.NoKind: 0,
	board.Pawn:   100,
	board.Knight: 320,
	board.Bishop: 330,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   0,
}

// Piece-square tables, White's perspective, square 0 = a1 .. square 63 = h8.
// Grounded on the teacher's PSQT_MG (engine/evaluation.go), collapsed to a
// single non-tapered table since spec.md §4.3 asks for one "precomputed
// 64-entry table", not a midgame/endgame blend.
var pst = [7][64]int32{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		-46, -41, -42, -39, -40, -12, 1, -21,
		-51, -52, -45, -45, -37, -37, -20, -30,
		-46, -40, -33, -33, -23, -26, -15, -30,
		-36, -27, -27, -11, 1, 2, -4, -21,
		-33, -6, 7, 13, 27, 57, 19, -11,
		57, 54, 55, 54, 46, 32, 4, 9,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-24, -28, -46, -30, -25, -21, -27, -40,
		-35, -32, -18, -10, -14, -12, -20, -18,
		-25, -8, -4, 6, 7, -1, -1, -17,
		-14, -1, 8, 5, 13, 10, 26, -1,
		-5, 8, 30, 35, 24, 43, 19, 22,
		-21, 12, 40, 49, 67, 64, 37, 14,
		-17, -12, 20, 33, 33, 37, -8, 3,
		-61, -6, -12, -2, 1, -6, -1, -16,
	},
	board.Bishop: {
		4, -2, -15, -21, -18, -8, -8, 2,
		4, 8, 11, -2, 1, 5, 20, 11,
		-2, 11, 8, 13, 10, 8, 10, 13,
		-7, 10, 15, 21, 26, 11, 10, 7,
		-4, 22, 24, 49, 34, 37, 20, 6,
		4, 18, 36, 36, 47, 55, 37, 24,
		-22, 6, 3, -7, 4, 14, -3, 8,
		-27, -8, -13, -12, -8, -21, 1, -10,
	},
	board.Rook: {
		-46, -41, -37, -34, -36, -40, -19, -42,
		-71, -45, -44, -43, -47, -37, -25, -51,
		-60, -46, -50, -44, -47, -48, -21, -38,
		-49, -45, -43, -35, -37, -34, -13, -29,
		-33, -21, -11, 6, 0, 7, 8, 2,
		-22, 10, 4, 25, 41, 38, 44, 20,
		-3, -5, 16, 28, 31, 37, 9, 30,
		23, 22, 19, 24, 23, 20, 21, 34,
	},
	board.Queen: {
		-6, -17, -12, -3, -6, -28, -27, -12,
		-11, -4, 2, -2, -1, 7, 8, -7,
		-8, -1, -2, -4, -4, -1, 8, 7,
		-5, -3, -2, -6, -6, 10, 7, 16,
		-11, -6, -2, -1, 12, 22, 26, 26,
		-13, -6, -1, 14, 36, 58, 71, 42,
		-11, -40, 5, 5, 20, 44, -2, 27,
		0, 16, 21, 29, 36, 38, 25, 36,
	},
	board.King: {
		-4, 36, -1, -69, -23, -74, 19, 26,
		12, 0, -18, -53, -33, -39, 7, 25,
		-6, -4, -3, -11, -6, -8, 4, -15,
		-1, 8, 16, 10, 15, 12, 23, -9,
		0, 9, 16, 10, 13, 15, 15, -8,
		1, 11, 12, 9, 8, 14, 12, 0,
		-2, 6, 6, 2, 3, 4, 3, -2,
		-1, 0, 0, 2, 0, 0, 0, -2,
	},
}

// pstMirror[sq] is the square White's table is indexed at for a Black piece
// on sq — the vertical mirror spec.md §4.3 calls for.
var pstMirror [64]board.Square

func init() {
	for sq := board.Square(0); sq < 64; sq++ {
		mirroredRank := 7 - sq.Rank()
		pstMirror[sq] = board.NewSquare(sq.File(), mirroredRank)
	}
}

// Evaluate returns the position's score in centipawns from White's
// perspective: positive favors White. It is a pure function of b — no move
// generation, no mutation (spec.md §4.3).
func Evaluate(b *board.Board) int32 {
	var score int32
	for _, c := range [2]board.Color{board.White, board.Black} {
		set := &b.Sets[c]
		for _, kind := range [6]board.PieceKind{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
			bb := set.BB(kind)
			for bb != board.Empty {
				sq, rest := bb.PopLSB()
				bb = rest
				sign := int32(1)
				tableSq := sq
				if c == board.Black {
					sign = -1
					tableSq = pstMirror[sq]
				}
				score += sign * (pieceValue[kind] + pst[kind][tableSq])
			}
		}
	}
	return score
}
