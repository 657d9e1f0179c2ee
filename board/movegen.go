package board

// pseudoLegalCap is a sizing hint for the move-list slice: the corpus's own
// move generators preallocate to a figure close to the true maximum
// (spec.md §4.1: "typical max ~60, hard cap ~218") to keep the hot path
// allocation-free for ordinary positions and let Go's slice growth handle
// the rare outlier.
const pseudoLegalCap = 48

// GenerateLegalMoves returns every legal move for the side to move. No
// illegal move is ever returned (spec.md §4.1 contract, invariant 3).
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := make([]Move, 0, pseudoLegalCap)
	b.generatePseudoLegal(&pseudo, false)
	return b.filterLegal(pseudo)
}

// GenerateCaptures returns every legal capturing move, en-passant capture
// and promotion — the "noisy" move subset quiescence search (spec.md §4.5)
// extends on.
func (b *Board) GenerateCaptures() []Move {
	pseudo := make([]Move, 0, pseudoLegalCap)
	b.generatePseudoLegal(&pseudo, true)
	return b.filterLegal(pseudo)
}

func (b *Board) filterLegal(pseudo []Move) []Move {
	legal := pseudo[:0]
	for _, m := range pseudo {
		b.Apply(m)
		moverJustMoved := b.SideToMove.Opponent()
		safe := !b.InCheck(moverJustMoved)
		b.Unapply()
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// generatePseudoLegal appends every pseudo-legal move (legality w.r.t. king
// safety not yet checked) to *out. If capturesOnly, only captures,
// en-passant captures and promotions are generated.
func (b *Board) generatePseudoLegal(out *[]Move, capturesOnly bool) {
	us := b.SideToMove
	them := us.Opponent()
	own := &b.Sets[us]
	opp := &b.Sets[them]
	occ := b.Occupied()
	empty := ^occ

	b.genPawnMoves(out, us, own, opp, empty, capturesOnly)
	genPieceMoves(out, Knight, own.Knights, own, opp, knightAttacksTable, capturesOnly)
	genSliderMoves(out, Bishop, own.Bishops, own, opp, occ, bishopAttacks, capturesOnly)
	genSliderMoves(out, Rook, own.Rooks, own, opp, occ, rookAttacks, capturesOnly)
	genSliderMoves(out, Queen, own.Queens, own, opp, occ, queenAttacks, capturesOnly)
	genPieceMoves(out, King, own.Kings, own, opp, kingAttacksTable, capturesOnly)
	if !capturesOnly {
		b.genCastles(out, us, occ)
	}
}

func knightAttacksTable(sq Square, _ Bitboard) Bitboard { return knightAttacks[sq] }
func kingAttacksTable(sq Square, _ Bitboard) Bitboard    { return kingAttacks[sq] }

func genPieceMoves(out *[]Move, kind PieceKind, pieces Bitboard, own, opp *PieceSet, attacksFn func(Square, Bitboard) Bitboard, capturesOnly bool) {
	for pieces != Empty {
		from, rest := pieces.PopLSB()
		pieces = rest
		targets := attacksFn(from, Empty) &^ own.Occupied
		for targets != Empty {
			to, restT := targets.PopLSB()
			targets = restT
			captured := capturedKindAt(opp, to)
			if capturesOnly && captured == NoKind {
				continue
			}
			*out = append(*out, Move{From: from, To: to, Piece: kind, Captured: captured})
		}
	}
}

func genSliderMoves(out *[]Move, kind PieceKind, pieces Bitboard, own, opp *PieceSet, occ Bitboard, attacksFn func(Square, Bitboard) Bitboard, capturesOnly bool) {
	for pieces != Empty {
		from, rest := pieces.PopLSB()
		pieces = rest
		targets := attacksFn(from, occ) &^ own.Occupied
		for targets != Empty {
			to, restT := targets.PopLSB()
			targets = restT
			captured := capturedKindAt(opp, to)
			if capturesOnly && captured == NoKind {
				continue
			}
			*out = append(*out, Move{From: from, To: to, Piece: kind, Captured: captured})
		}
	}
}

func capturedKindAt(opp *PieceSet, sq Square) PieceKind {
	if !opp.Occupied.Test(sq) {
		return NoKind
	}
	switch {
	case opp.Pawns.Test(sq):
		return Pawn
	case opp.Knights.Test(sq):
		return Knight
	case opp.Bishops.Test(sq):
		return Bishop
	case opp.Rooks.Test(sq):
		return Rook
	case opp.Queens.Test(sq):
		return Queen
	default:
		return King // unreachable in a valid position but kept exhaustive
	}
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

func (b *Board) genPawnMoves(out *[]Move, us Color, own, opp *PieceSet, empty Bitboard, capturesOnly bool) {
	pawns := own.Pawns
	var pushRank Rank = 7
	var startRank Rank = 1
	forward := Bitboard.North
	if us == Black {
		pushRank, startRank = 0, 6
		forward = Bitboard.South
	}

	singlePush := forward(pawns) & empty
	if capturesOnly {
		singlePush &= rankOf(pushRank) // only pushes that promote
	}
	for bb := singlePush; bb != Empty; {
		to, rest := bb.PopLSB()
		bb = rest
		from := backOf(to, us)
		emitPawnMove(out, from, to, us, NoKind, pushRank)
	}
	if !capturesOnly {
		doublePush := forward(forward(pawns&rankOf(startRank))&empty) & empty
		for bb := doublePush; bb != Empty; {
			to, rest := bb.PopLSB()
			bb = rest
			from := backOf(backOf(to, us), us)
			*out = append(*out, Move{From: from, To: to, Piece: Pawn})
		}
	}

	// Captures and en-passant are computed per-pawn (rather than via a bulk
	// shift-and-mask of the whole pawn bitboard) because each attacking
	// pawn's origin square is needed to build the Move.
	for p := pawns; p != Empty; {
		from, rest := p.PopLSB()
		p = rest
		attacks := pawnAttacks[us][from] & opp.Occupied
		for bb := attacks; bb != Empty; {
			to, restT := bb.PopLSB()
			bb = restT
			captured := capturedKindAt(opp, to)
			emitPawnMove(out, from, to, us, captured, pushRank)
		}
		if b.EnPassant != NoSquare && pawnAttacks[us][from].Test(b.EnPassant) {
			*out = append(*out, Move{From: from, To: b.EnPassant, Piece: Pawn, Tag: EnPassantMove, Captured: Pawn})
		}
	}
}

func backOf(sq Square, us Color) Square {
	if us == White {
		return sq - 8
	}
	return sq + 8
}

func rankOf(r Rank) Bitboard { return rankMask[r] }

func emitPawnMove(out *[]Move, from, to Square, us Color, captured PieceKind, promoRank Rank) {
	if to.Rank() == promoRank {
		for _, pk := range promotionKinds {
			*out = append(*out, Move{From: from, To: to, Piece: Pawn, Captured: captured, Promote: pk, Tag: PromotionMove})
		}
		return
	}
	*out = append(*out, Move{From: from, To: to, Piece: Pawn, Captured: captured})
}

func (b *Board) genCastles(out *[]Move, us Color, occ Bitboard) {
	rank := Rank(0)
	kingSideRight, queenSideRight := WhiteKingSide, WhiteQueenSide
	if us == Black {
		rank = 7
		kingSideRight, queenSideRight = BlackKingSide, BlackQueenSide
	}
	them := us.Opponent()

	kingFrom := NewSquare(4, rank)
	if b.CastleRights&kingSideRight != 0 {
		fSq, gSq := NewSquare(5, rank), NewSquare(6, rank)
		if !occ.Test(fSq) && !occ.Test(gSq) &&
			!b.IsAttacked(kingFrom, them) && !b.IsAttacked(fSq, them) && !b.IsAttacked(gSq, them) {
			*out = append(*out, Move{From: kingFrom, To: gSq, Piece: King, Tag: CastleMove, CastleSide: KingSide})
		}
	}
	if b.CastleRights&queenSideRight != 0 {
		bSq, cSq, dSq := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)
		if !occ.Test(bSq) && !occ.Test(cSq) && !occ.Test(dSq) &&
			!b.IsAttacked(kingFrom, them) && !b.IsAttacked(dSq, them) && !b.IsAttacked(cSq, them) {
			*out = append(*out, Move{From: kingFrom, To: cSq, Piece: King, Tag: CastleMove, CastleSide: QueenSide})
		}
	}
}
