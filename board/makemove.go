package board

// Apply mutates the board to reflect move m and pushes an UndoRecord so
// Unapply can reverse it in O(1). The caller must pass a pseudo-legal move
// produced by the move generator; Apply does not itself check legality —
// that filter lives in GenerateLegalMoves (filterLegal), which applies, checks king
// safety, and unapplies before a move is ever handed to a caller.
func (b *Board) Apply(m Move) {
	rec := UndoRecord{
		Move:             m,
		PrevCastleRights: b.CastleRights,
		PrevEnPassant:    b.EnPassant,
		PrevHalfmove:     b.HalfmoveClock,
		PrevFullmove:     b.FullmoveNum,
		PrevZobrist:      b.Zobrist,
		CapturedSquare:   NoSquare,
	}

	us := b.SideToMove
	them := us.Opponent()

	if b.EnPassant != NoSquare {
		b.Zobrist ^= zobristEPFile[b.EnPassant.File()]
	}
	b.EnPassant = NoSquare

	switch m.Tag {
	case CastleMove:
		b.applyCastle(us, m)
	case EnPassantMove:
		capSq := epCapturedSquare(us, m.To)
		rec.CapturedSquare = capSq
		b.removePiece(them, capSq)
		b.removePiece(us, m.From)
		b.addPiece(us, m.To, Pawn)
		b.HalfmoveClock = 0
	case PromotionMove:
		if m.Captured != NoKind {
			rec.CapturedSquare = m.To
			b.removePiece(them, m.To)
		}
		b.removePiece(us, m.From)
		b.addPiece(us, m.To, m.Promote)
		b.HalfmoveClock = 0
	default: // Quiet (including plain captures and double pawn pushes)
		if m.Captured != NoKind {
			rec.CapturedSquare = m.To
			b.removePiece(them, m.To)
		}
		b.removePiece(us, m.From)
		b.addPiece(us, m.To, m.Piece)
		if m.Piece == Pawn || m.Captured != NoKind {
			b.HalfmoveClock = 0
		} else {
			b.HalfmoveClock++
		}
		if m.Piece == Pawn {
			fromRank, toRank := int(m.From.Rank()), int(m.To.Rank())
			if abs(toRank-fromRank) == 2 {
				ep := NewSquare(m.From.File(), Rank((fromRank+toRank)/2))
				b.EnPassant = ep
				b.Zobrist ^= zobristEPFile[ep.File()]
			}
		}
	}

	b.updateCastleRights(us, m)

	b.SideToMove = them
	b.Zobrist ^= zobristSideToMv
	if them == White {
		b.FullmoveNum++
	}

	b.undoStack = append(b.undoStack, rec)
	b.positionHistory = append(b.positionHistory, b.Zobrist)
}

// Unapply pops the most recent UndoRecord and restores the board to the
// state it had before the corresponding Apply. Calling Unapply on an empty
// undo stack is an internal invariant violation (spec.md §7) and panics.
func (b *Board) Unapply() {
	n := len(b.undoStack)
	if n == 0 {
		panic("board: Unapply called on an empty undo stack")
	}
	rec := b.undoStack[n-1]
	b.undoStack = b.undoStack[:n-1]
	b.positionHistory = b.positionHistory[:len(b.positionHistory)-1]

	m := rec.Move
	them := b.SideToMove // side that is about to move again after undo is "us" from the move's perspective
	us := them.Opponent()

	switch m.Tag {
	case CastleMove:
		b.unapplyCastle(us, m)
	case EnPassantMove:
		b.removePiece(us, m.To)
		b.addPiece(us, m.From, Pawn)
		b.addPiece(them, rec.CapturedSquare, Pawn)
	case PromotionMove:
		b.removePiece(us, m.To)
		b.addPiece(us, m.From, Pawn)
		if m.Captured != NoKind {
			b.addPiece(them, rec.CapturedSquare, m.Captured)
		}
	default:
		b.removePiece(us, m.To)
		b.addPiece(us, m.From, m.Piece)
		if m.Captured != NoKind {
			b.addPiece(them, rec.CapturedSquare, m.Captured)
		}
	}

	b.SideToMove = us
	b.CastleRights = rec.PrevCastleRights
	b.EnPassant = rec.PrevEnPassant
	b.HalfmoveClock = rec.PrevHalfmove
	b.FullmoveNum = rec.PrevFullmove
	b.Zobrist = rec.PrevZobrist // direct restore, not recomputation: O(1) unmake per spec.md §4.2
}

func epCapturedSquare(us Color, to Square) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (b *Board) applyCastle(us Color, m Move) {
	kingFrom, kingTo, rookFrom, rookTo := castleSquares(us, m.CastleSide)
	b.removePiece(us, kingFrom)
	b.addPiece(us, kingTo, King)
	b.removePiece(us, rookFrom)
	b.addPiece(us, rookTo, Rook)
	b.HalfmoveClock++
}

func (b *Board) unapplyCastle(us Color, m Move) {
	kingFrom, kingTo, rookFrom, rookTo := castleSquares(us, m.CastleSide)
	b.removePiece(us, kingTo)
	b.addPiece(us, kingFrom, King)
	b.removePiece(us, rookTo)
	b.addPiece(us, rookFrom, Rook)
}

// castleSquares returns the king/rook from/to squares for a given color and
// castling side.
func castleSquares(c Color, side CastleSide) (kingFrom, kingTo, rookFrom, rookTo Square) {
	rank := Rank(0)
	if c == Black {
		rank = 7
	}
	kingFrom = NewSquare(4, rank)
	if side == KingSide {
		return kingFrom, NewSquare(6, rank), NewSquare(7, rank), NewSquare(5, rank)
	}
	return kingFrom, NewSquare(2, rank), NewSquare(0, rank), NewSquare(3, rank)
}

func (b *Board) updateCastleRights(us Color, m Move) {
	newRights := b.CastleRights
	switch {
	case m.Piece == King:
		if us == White {
			newRights &^= WhiteKingSide | WhiteQueenSide
		} else {
			newRights &^= BlackKingSide | BlackQueenSide
		}
	case m.Piece == Rook:
		newRights &^= rookOriginRights(m.From)
	}
	if m.Captured == Rook {
		newRights &^= rookOriginRights(m.To)
	}
	if newRights != b.CastleRights {
		b.Zobrist ^= zobristCastle[b.CastleRights]
		b.Zobrist ^= zobristCastle[newRights]
		b.CastleRights = newRights
	}
}

func rookOriginRights(sq Square) CastleRights {
	switch sq {
	case NewSquare(0, 0):
		return WhiteQueenSide
	case NewSquare(7, 0):
		return WhiteKingSide
	case NewSquare(0, 7):
		return BlackQueenSide
	case NewSquare(7, 7):
		return BlackKingSide
	default:
		return NoCastleRights
	}
}
