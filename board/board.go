package board

// Board is the full position: piece placement, side to move, castling
// rights, en-passant target, move clocks, an incrementally maintained
// Zobrist hash, and the undo stack that make/unmake push to and pop from.
type Board struct {
	Sets [2]PieceSet // indexed by Color

	SideToMove    Color
	CastleRights  CastleRights
	EnPassant     Square
	HalfmoveClock int
	FullmoveNum   int
	Zobrist       uint64

	pieceAt [64]Piece // mailbox mirror of Sets, kept in lockstep by every mutation

	undoStack []UndoRecord

	// positionHistory records the Zobrist hash after every applied move,
	// used for threefold-repetition detection (supplemented feature, see
	// SPEC_FULL.md). It grows and shrinks in lockstep with undoStack.
	positionHistory []uint64
}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() *Board {
	b, err := FromFEN(StartFEN)
	if err != nil {
		panic("board: start position FEN failed to parse: " + err.Error())
	}
	return b
}

// Occupied returns the union of both sides' occupied squares.
func (b *Board) Occupied() Bitboard { return b.Sets[White].Occupied | b.Sets[Black].Occupied }

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieceAt[sq] }

// Clone returns a deep copy of the board, independent of the receiver. Used
// exclusively at the search root when dispatching parallel workers — see
// spec.md §9's "undo stack vs. board cloning" note.
func (b *Board) Clone() *Board {
	clone := *b
	clone.undoStack = append([]UndoRecord(nil), b.undoStack...)
	clone.positionHistory = append([]uint64(nil), b.positionHistory...)
	return &clone
}

// Equal reports whether two boards have bit-for-bit identical state,
// including the undo stack and Zobrist hash — the comparison spec.md §8
// invariant 1 requires after apply(m); unapply(m).
func (b *Board) Equal(o *Board) bool {
	if b.Sets != o.Sets || b.SideToMove != o.SideToMove || b.CastleRights != o.CastleRights ||
		b.EnPassant != o.EnPassant || b.HalfmoveClock != o.HalfmoveClock ||
		b.FullmoveNum != o.FullmoveNum || b.Zobrist != o.Zobrist || b.pieceAt != o.pieceAt {
		return false
	}
	if len(b.undoStack) != len(o.undoStack) {
		return false
	}
	for i := range b.undoStack {
		if b.undoStack[i] != o.undoStack[i] {
			return false
		}
	}
	return true
}

func (b *Board) addPiece(c Color, sq Square, k PieceKind) {
	b.Sets[c].add(sq, k)
	b.pieceAt[sq] = NewPiece(c, k)
	b.Zobrist ^= zobristPiece[pieceZobristIndex(NewPiece(c, k))][sq]
}

func (b *Board) removePiece(c Color, sq Square) PieceKind {
	p := b.pieceAt[sq]
	if p == NoPiece {
		return NoKind
	}
	k := p.Kind()
	b.Sets[c].remove(sq, k)
	b.pieceAt[sq] = NoPiece
	b.Zobrist ^= zobristPiece[pieceZobristIndex(p)][sq]
	return k
}

// InCheck reports whether c's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	kingBB := b.Sets[c].Kings
	if kingBB == Empty {
		return false
	}
	return b.IsAttacked(kingBB.LSB(), c.Opponent())
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	occ := b.Occupied()
	theirs := &b.Sets[by]

	if pawnAttacks[by.Opponent()][sq]&theirs.Pawns != Empty {
		return true
	}
	if knightAttacks[sq]&theirs.Knights != Empty {
		return true
	}
	if kingAttacks[sq]&theirs.Kings != Empty {
		return true
	}
	bishopsQueens := theirs.Bishops | theirs.Queens
	if bishopAttacks(sq, occ)&bishopsQueens != Empty {
		return true
	}
	rooksQueens := theirs.Rooks | theirs.Queens
	if rookAttacks(sq, occ)&rooksQueens != Empty {
		return true
	}
	return false
}

// IsRepetition reports whether the current position has occurred at least
// n times (including the current occurrence) in this board's history.
func (b *Board) IsRepetition(n int) bool {
	count := 0
	target := b.Zobrist
	for i := len(b.positionHistory) - 1; i >= 0; i-- {
		if b.positionHistory[i] == target {
			count++
			if count >= n {
				return true
			}
		}
	}
	return false
}

// IsInsufficientMaterial reports a dead draw by insufficient material
// (K v K, K+B v K, K+N v K on either side), per spec.md's supplemented
// draw detection (see SPEC_FULL.md).
func (b *Board) IsInsufficientMaterial() bool {
	white, black := &b.Sets[White], &b.Sets[Black]
	if white.Pawns|white.Rooks|white.Queens|black.Pawns|black.Rooks|black.Queens != Empty {
		return false
	}
	whiteMinors := white.Knights.Count() + white.Bishops.Count()
	blackMinors := black.Knights.Count() + black.Bishops.Count()
	if whiteMinors == 0 && blackMinors == 0 {
		return true // K v K
	}
	// K+(single minor) v K on either side is a dead draw; anything with two
	// or more minors on one side (KNN, KBB, KNB) can in principle force
	// mate and is not flagged here.
	if whiteMinors == 0 && blackMinors == 1 {
		return true
	}
	if blackMinors == 0 && whiteMinors == 1 {
		return true
	}
	return false
}
