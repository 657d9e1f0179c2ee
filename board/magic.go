package board

// Magic-bitboard sliding-piece attack lookup (spec.md §4.1). For each
// square, a precomputed mask selects the relevant blocker bits; multiplying
// the masked occupancy by a square-specific magic constant and shifting
// right by a square-specific amount yields an index into a per-square
// attack table, built once at package init by enumerating every blocker
// configuration for that square's mask.
//
// The magic multipliers below are the same well-known constants used
// throughout the retrieved corpus (e.g. ChizhovVadim/CounterGo,
// hailam-chessplay's board/magic.go) rather than ones freshly discovered by
// a random search — baking in known-good magics turns "search for magics
// at startup" into "look them up", which spec.md §4.1 explicitly allows
// ("a one-time cost performed at initialization (or precomputed at build
// time)").
type magicEntry struct {
	mask   Bitboard
	magic  uint64
	shift  uint8
	offset uint32
}

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry

	bishopTable [5248]Bitboard
	rookTable   [102400]Bitboard
)

var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

func init() {
	initSliderMagics(bishopMagicNumbers, bishopMask, bishopAttacksSlow, bishopMagics[:], bishopTable[:])
	initSliderMagics(rookMagicNumbers, rookMask, rookAttacksSlow, rookMagics[:], rookTable[:])
}

func initSliderMagics(numbers [64]uint64, maskFn func(Square) Bitboard, slowFn func(Square, Bitboard) Bitboard, magics []magicEntry, table []Bitboard) {
	var offset uint32
	for sq := Square(0); sq < 64; sq++ {
		mask := maskFn(sq)
		relevantBits := mask.Count()
		magics[sq] = magicEntry{
			mask:   mask,
			magic:  numbers[sq],
			shift:  uint8(64 - relevantBits),
			offset: offset,
		}
		n := 1 << relevantBits
		for i := 0; i < n; i++ {
			occ := occupancyFromIndex(i, mask)
			idx := (uint64(occ) * numbers[sq]) >> (64 - relevantBits)
			table[offset+uint32(idx)] = slowFn(sq, occ)
		}
		offset += uint32(n)
	}
}

// occupancyFromIndex enumerates the index-th subset of mask's set bits.
func occupancyFromIndex(index int, mask Bitboard) Bitboard {
	var occ Bitboard
	for i := 0; mask != Empty; i++ {
		sq, rest := mask.PopLSB()
		mask = rest
		if index&(1<<i) != 0 {
			occ = occ.Set(sq)
		}
	}
	return occ
}

// bishopMask/rookMask return the relevant-occupancy masks: rays from sq,
// excluding the board edge (a blocker on the edge can't hide a blocker
// beyond it, so it never changes the attack set).
func bishopMask(sq Square) Bitboard {
	return bishopAttacksSlow(sq, Empty) &^ (Rank1 | Rank8 | FileA | FileH)
}

func rookMask(sq Square) Bitboard {
	f, r := sq.File(), sq.Rank()
	var mask Bitboard
	for ff := File(1); ff < 7; ff++ {
		if ff != f {
			mask = mask.Set(NewSquare(ff, r))
		}
	}
	for rr := Rank(1); rr < 7; rr++ {
		if rr != r {
			mask = mask.Set(NewSquare(f, rr))
		}
	}
	return mask
}

func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, -1, 1) | rayAttacks(sq, occupied, 1, 1) |
		rayAttacks(sq, occupied, -1, -1) | rayAttacks(sq, occupied, 1, -1)
}

func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, 0, 1) | rayAttacks(sq, occupied, 0, -1) |
		rayAttacks(sq, occupied, 1, 0) | rayAttacks(sq, occupied, -1, 0)
}

func rayAttacks(sq Square, occupied Bitboard, df, dr int) Bitboard {
	var attacks Bitboard
	f, r := int(sq.File())+df, int(sq.Rank())+dr
	for f >= 0 && f < 8 && r >= 0 && r < 8 {
		s := NewSquare(File(f), Rank(r))
		attacks = attacks.Set(s)
		if occupied.Test(s) {
			break
		}
		f += df
		r += dr
	}
	return attacks
}

func bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	idx := (uint64(occupied&m.mask) * m.magic) >> m.shift
	return bishopTable[m.offset+uint32(idx)]
}

func rookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	idx := (uint64(occupied&m.mask) * m.magic) >> m.shift
	return rookTable[m.offset+uint32(idx)]
}

func queenAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopAttacks(sq, occupied) | rookAttacks(sq, occupied)
}
