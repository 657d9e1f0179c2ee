package board

import (
	"fmt"
	"strings"
)

// MoveTag distinguishes the move variants spec.md §3 describes.
type MoveTag uint8

const (
	Quiet MoveTag = iota
	CastleMove
	EnPassantMove
	PromotionMove
)

// Move is a tagged variant over {quiet/capture, castle, en-passant,
// promotion}. It is immutable once constructed and carries everything
// apply/unapply needs; it is a plain struct of seven one-byte fields, so
// move lists stay cheap to copy and sort.
type Move struct {
	From, To   Square
	Piece      PieceKind // kind of the piece making the move
	Captured   PieceKind // NoKind if not a capture
	Promote    PieceKind // NoKind unless Tag == PromotionMove
	Tag        MoveTag
	CastleSide CastleSide // meaningful only when Tag == CastleMove
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.Captured != NoKind || m.Tag == EnPassantMove }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Tag == PromotionMove }

// IsQuiet reports whether the move is neither a capture nor a promotion —
// the class of moves eligible for killer/history ordering.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// Algebraic renders the move as coordinate notation (e.g. "e2e4", "e7e8q"),
// the notation spec.md §6 asks Move.to_algebraic to produce. board is
// unused for coordinate notation but kept in the signature so a future
// disambiguating SAN renderer can be dropped in without changing callers.
func (m Move) Algebraic(board *Board) string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Tag == PromotionMove {
		sb.WriteString(strings.ToLower(promotionLetter(m.Promote)))
	}
	return sb.String()
}

func promotionLetter(k PieceKind) string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	default:
		return ""
	}
}

func (m Move) String() string { return m.Algebraic(nil) }

// ParseAlgebraic parses coordinate notation such as "e2e4" or "e7e8q"
// against the given board, looking the move up among the board's legal
// moves so that the returned Move carries correct Piece/Captured/Tag
// fields. Returns an error if the text does not name a legal move.
func ParseAlgebraic(b *Board, s string) (Move, error) {
	if len(s) < 4 {
		return Move{}, fmt.Errorf("%w: move %q too short", ErrMalformedFEN, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	var promo PieceKind = NoKind
	if len(s) >= 5 {
		promo = pieceKindFromLetter(rune(s[4]))
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From == from && m.To == to && (promo == NoKind || m.Promote == promo) {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %q is not a legal move", ErrIllegalPosition, s)
}

func pieceKindFromLetter(r rune) PieceKind {
	switch r {
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	default:
		return NoKind
	}
}

// UndoRecord carries exactly what Unapply needs to reverse one move: the
// move itself, the prior mutable board fields, and (for captures) the
// square the captured piece stood on; the captured kind is Move.Captured.
type UndoRecord struct {
	Move             Move
	PrevCastleRights CastleRights
	PrevEnPassant    Square
	PrevHalfmove     int
	PrevFullmove     int
	PrevZobrist      uint64
	CapturedSquare   Square // where Move.Captured actually sat (differs from To only for en passant)
}
