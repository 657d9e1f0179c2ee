package search

import (
	"sort"

	"github.com/oliverans-successor/chesscore/board"
)

// Priority classes, highest first (spec.md §4.6):
//  1. PV/TT move
//  2. winning captures by MVV-LVA
//  3. promotions (queen before underpromotions)
//  4. killer moves for the current ply
//  5. other quiet moves by history counter
const (
	scorePV        = 1 << 20
	scoreCapture   = 1 << 16
	scorePromotion = 1 << 15
	scoreKiller1   = 1 << 14
	scoreKiller2   = 1 << 13
)

// mvvLvaRank gives the per-kind ranks used in the capture score
// 100*rank[victim] - rank[attacker], the teacher's moveordering.go formula
// "100*victim_value - attacker_value" collapsed to piece-kind ranks rather
// than centipawns, since only relative order within the capture class
// matters.
var mvvLvaRank = [7]int32{
	board.NoKind: 0,
	board.Pawn:   1,
	board.Knight: 2,
	board.Bishop: 3,
	board.Rook:   4,
	board.Queen:  5,
	board.King:   6,
}

// orderMoves sorts moves in place by descending priority. pvMove, if legal
// among moves, always sorts first. The orderer is pure with respect to the
// board: it never applies a move.
func orderMoves(moves []board.Move, pvMove board.Move, killers *KillerTable, history *HistoryTable, side board.Color, ply int) {
	k1, k2 := killers.Get(ply)
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(m, pvMove, k1, k2, history, side)
	}
	sort.Sort(&byScoreDesc{moves: moves, scores: scores})
}

func scoreMove(m, pvMove, k1, k2 board.Move, history *HistoryTable, side board.Color) int32 {
	switch {
	case m == pvMove:
		return scorePV
	case m.IsCapture():
		return scoreCapture + 100*mvvLvaRank[m.Captured] - mvvLvaRank[m.Piece]
	case m.IsPromotion():
		return scorePromotion + mvvLvaRank[m.Promote]
	case m == k1:
		return scoreKiller1
	case m == k2:
		return scoreKiller2
	default:
		return history.Score(side, m)
	}
}

// orderCaptures sorts a capture-only move list (as produced by
// board.Board.GenerateCaptures) by MVV-LVA, promotions ranked just below
// captures — the ordering quiescence search uses (spec.md §4.5 step 4).
func orderCaptures(moves []board.Move) {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		switch {
		case m.IsCapture():
			scores[i] = scoreCapture + 100*mvvLvaRank[m.Captured] - mvvLvaRank[m.Piece]
		case m.IsPromotion():
			scores[i] = scorePromotion + mvvLvaRank[m.Promote]
		}
	}
	sort.Sort(&byScoreDesc{moves: moves, scores: scores})
}

type byScoreDesc struct {
	moves  []board.Move
	scores []int32
}

func (s *byScoreDesc) Len() int      { return len(s.moves) }
func (s *byScoreDesc) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}
func (s *byScoreDesc) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
