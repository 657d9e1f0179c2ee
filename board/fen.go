package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string into a Board. It validates field count, piece
// placement, side-to-move, castling rights, en-passant target and move
// clocks, and rejects positions that are structurally impossible (spec.md
// §7): a missing king, more than one king per side, more than 8 pawns on a
// side, or the side not to move in check (which covers both sides being in
// check at once).
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: got %d fields, want 6", ErrWrongFieldCount, len(fields))
	}

	b := &Board{EnPassant: NoSquare}
	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}
	if err := b.parseSideToMove(fields[1]); err != nil {
		return nil, err
	}
	if err := b.parseCastleRights(fields[2]); err != nil {
		return nil, err
	}
	if err := b.parseEnPassant(fields[3]); err != nil {
		return nil, err
	}
	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: halfmove clock %q", ErrMalformedFEN, fields[4])
	}
	b.HalfmoveClock = halfmove
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("%w: fullmove number %q", ErrMalformedFEN, fields[5])
	}
	b.FullmoveNum = fullmove

	if err := b.validatePosition(); err != nil {
		return nil, err
	}
	b.Zobrist = b.computeZobrist()
	return b, nil
}

func (b *Board) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: piece placement %q has %d ranks, want 8", ErrMalformedFEN, field, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := File(0)
		for _, ch := range rankStr {
			if file > 8 {
				return fmt.Errorf("%w: rank %q overflows 8 files", ErrMalformedFEN, rankStr)
			}
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			p, err := pieceFromChar(ch)
			if err != nil {
				return err
			}
			if file >= 8 {
				return fmt.Errorf("%w: rank %q overflows 8 files", ErrMalformedFEN, rankStr)
			}
			b.addPiece(p.Color(), NewSquare(file, rank), p.Kind())
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q does not sum to 8 files", ErrMalformedFEN, rankStr)
		}
	}
	return nil
}

func pieceFromChar(ch rune) (Piece, error) {
	k := fenPieceKindFromLetter(ch)
	if k == NoKind {
		return NoPiece, fmt.Errorf("%w: unrecognized piece letter %q", ErrMalformedFEN, string(ch))
	}
	if ch >= 'a' && ch <= 'z' {
		return NewPiece(Black, k), nil
	}
	return NewPiece(White, k), nil
}

func (b *Board) parseSideToMove(field string) error {
	switch field {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return fmt.Errorf("%w: side to move %q must be \"w\" or \"b\"", ErrMalformedFEN, field)
	}
	return nil
}

func (b *Board) parseCastleRights(field string) error {
	if field == "-" {
		b.CastleRights = NoCastleRights
		return nil
	}
	var rights CastleRights
	for _, ch := range field {
		switch ch {
		case 'K':
			rights |= WhiteKingSide
		case 'Q':
			rights |= WhiteQueenSide
		case 'k':
			rights |= BlackKingSide
		case 'q':
			rights |= BlackQueenSide
		default:
			return fmt.Errorf("%w: castling rights %q contains %q", ErrMalformedFEN, field, string(ch))
		}
	}
	b.CastleRights = rights
	return nil
}

func (b *Board) parseEnPassant(field string) error {
	sq, err := ParseSquare(field)
	if err != nil {
		return err
	}
	if sq != NoSquare && sq.Rank() != 2 && sq.Rank() != 5 {
		return fmt.Errorf("%w: en-passant target %q is not on rank 3 or 6", ErrMalformedFEN, field)
	}
	b.EnPassant = sq
	return nil
}

// validatePosition rejects FEN-described positions that cannot arise from
// legal play: a side without exactly one king, more than 8 pawns on a side,
// or the side not to move in check.
func (b *Board) validatePosition() error {
	for _, c := range [2]Color{White, Black} {
		if b.Sets[c].Kings.Count() != 1 {
			return fmt.Errorf("%w: %s must have exactly one king", ErrIllegalPosition, c)
		}
		if b.Sets[c].Pawns.Count() > 8 {
			return fmt.Errorf("%w: %s has more than 8 pawns", ErrIllegalPosition, c)
		}
	}
	if b.InCheck(b.SideToMove.Opponent()) {
		return fmt.Errorf("%w: the side not to move is in check", ErrIllegalPosition)
	}
	return nil
}

// ToFEN renders the board back into FEN notation.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := Rank(7); rank >= 0; rank-- {
		empty := 0
		for file := File(0); file < 8; file++ {
			p := b.pieceAt[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(fenLetter(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.CastleRights.String())

	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())

	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock, b.FullmoveNum)
	return sb.String()
}

func fenLetter(p Piece) string {
	letters := ".PNBRQK"
	c := letters[p.Kind()]
	if p.Color() == Black {
		c += 'a' - 'A'
	}
	return string(c)
}

func fenPieceKindFromLetter(r rune) PieceKind {
	switch r {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return NoKind
	}
}
