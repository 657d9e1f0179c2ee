package board

import "math/rand"

// Zobrist hashing tables, keyed by piece-on-square, side to move, castling
// rights state and en-passant file. Seeded deterministically so that test
// runs and successive processes agree on the same hash space.
var (
	zobristPiece    [15][64]uint64
	zobristCastle   [16]uint64
	zobristEPFile   [8]uint64
	zobristSideToMv uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0x636865737363)) // "chessc" in hex-ish, fixed seed
	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEPFile[f] = rnd.Uint64()
	}
	zobristSideToMv = rnd.Uint64()
}

func pieceZobristIndex(p Piece) int { return int(p) }

// computeZobrist recomputes the hash from scratch. Used only to seed a
// freshly parsed board and by tests asserting the incremental hash matches
// a from-scratch recomputation (spec invariant 2).
func (b *Board) computeZobrist() uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.pieceAt[sq]; p != NoPiece {
			h ^= zobristPiece[pieceZobristIndex(p)][sq]
		}
	}
	if b.SideToMove == Black {
		h ^= zobristSideToMv
	}
	h ^= zobristCastle[b.CastleRights]
	if b.EnPassant != NoSquare {
		h ^= zobristEPFile[b.EnPassant.File()]
	}
	return h
}
