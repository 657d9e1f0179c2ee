package search

import "github.com/oliverans-successor/chesscore/board"

// MaxPly bounds the killer table's per-ply dimension. Search depths beyond
// this are not expected in this core (spec.md doesn't set a hard ceiling,
// but some fixed bound is required for a flat array).
const MaxPly = 128

// KillerTable holds up to two non-capture moves per ply that recently
// caused a beta cutoff at that ply. Per spec.md §5 it is per-worker, never
// shared — the teacher's KillerStruct (engine/killer.go) was shared under a
// mutex and that caused lock contention (documented in the teacher's
// cutstats.go as "Slow killer get/store lock"); this design drops sharing
// entirely rather than re-adding it with finer locking.
type KillerTable struct {
	moves [MaxPly][2]board.Move
}

// Insert records m as the most recent killer at ply, keeping the previous
// most-recent as the second slot unless m is already there.
func (k *KillerTable) Insert(ply int, m board.Move) {
	if ply >= MaxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// Is reports whether m is a recorded killer at ply.
func (k *KillerTable) Is(ply int, m board.Move) bool {
	if ply >= MaxPly {
		return false
	}
	return k.moves[ply][0] == m || k.moves[ply][1] == m
}

// Get returns the two killers at ply (an empty slot is the zero Move).
func (k *KillerTable) Get(ply int) (board.Move, board.Move) {
	if ply >= MaxPly {
		return board.Move{}, board.Move{}
	}
	return k.moves[ply][0], k.moves[ply][1]
}

// HistoryTable counts, per (color, from, to), how often a quiet move has
// caused a beta cutoff — used as the lowest-priority move-ordering
// tiebreaker (spec.md §4.6 class 5). Per-worker, per spec.md §5; approximate
// aggregation across workers is explicitly not required.
type HistoryTable struct {
	counters [2][64][64]int32
}

// maxHistoryScore caps the history counter below scoreKiller2, the lowest
// of the priority classes history is meant to rank beneath (spec.md §4.6
// class 5 must never outrank classes 2-4). Without a cap a long search's
// repeated bumps would otherwise grow past killer, promotion, and even
// capture scores.
const maxHistoryScore = scoreKiller2 - 1

// Bump increments the history counter for a cutoff at depth (deeper cutoffs
// count for more, matching the teacher's incrementHistoryScore(..., depth)),
// clamped to maxHistoryScore.
func (h *HistoryTable) Bump(c board.Color, m board.Move, depth int) {
	v := h.counters[c][m.From][m.To] + int32(depth*depth)
	if v > maxHistoryScore {
		v = maxHistoryScore
	}
	h.counters[c][m.From][m.To] = v
}

// Score returns the current history counter for a move.
func (h *HistoryTable) Score(c board.Color, m board.Move) int32 {
	return h.counters[c][m.From][m.To]
}
