// Package search implements the generic alpha-beta engine described in
// spec.md §4.4–§4.6: iterative deepening, a transposition table, killer and
// history move ordering, quiescence search, and an optional root-level
// worker pool. It is written against the concrete board package rather
// than spec.md §9's abstract capability set — Go's interfaces would add a
// layer of indirection with a single real implementation behind it, which
// the teacher's own engine package never does either.
package search

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/oliverans-successor/chesscore/board"
)

// Score constants, grounded on the teacher's engine/search.go (MaxScore,
// Checkmate, DrawScore).
const (
	MaxScore   int32 = 1 << 20
	MateScore  int32 = 32000
	DrawScore  int32 = 0
)

// SearchControl is the cooperative cancellation hook spec.md §5 describes:
// the caller sets Stop, and the search returns the best result from the
// last fully completed iterative-deepening iteration.
type SearchControl struct {
	stop atomic.Bool
}

// Stop requests cancellation. Safe to call from any goroutine.
func (c *SearchControl) Stop() { c.stop.Store(true) }

// Stopped reports whether Stop has been called.
func (c *SearchControl) Stopped() bool { return c != nil && c.stop.Load() }

// Result is what FindBestMove returns: the chosen move, its score from the
// mover's perspective, and the depth at which it was found.
type Result struct {
	Move  board.Move
	Score int32
	Depth int
}

// Engine holds the search configuration and the state that persists across
// find_best_move calls (spec.md §3: "Transposition entries ... may persist
// across successive find_best_move calls").
type Engine struct {
	TT      *TranspositionTable
	Workers int
}

// DefaultTTEntries is the transposition table size NewEngine allocates,
// chosen to be a modest default for a single search
// rather than the teacher's 256MB TTSize constant (engine/transposition.go).
const DefaultTTEntries = 1 << 20

// NewEngine returns an Engine with a fresh transposition table and
// single-threaded search. Use Engine.Workers to opt into root-level
// parallelism (spec.md §4.4: only worthwhile once root move count ≥ 10).
func NewEngine() *Engine {
	return &Engine{TT: NewTranspositionTable(DefaultTTEntries), Workers: 1}
}

// worker holds everything one searching goroutine needs: its own board (so
// mutation never crosses goroutines), its own killer/history tables
// (spec.md §5: never shared), a shared TT pointer, and a node counter.
type worker struct {
	board   *board.Board
	tt      *TranspositionTable
	killers KillerTable
	history HistoryTable
	control *SearchControl
	nodes   uint64
}

// FindBestMove runs iterative deepening from depth 1 to maxDepth and
// returns the best move found, or ok=false if the position has no legal
// moves (spec.md §6).
func (e *Engine) FindBestMove(b *board.Board, maxDepth int, control *SearchControl) (Result, bool) {
	rootMoves := b.GenerateLegalMoves()
	if len(rootMoves) == 0 {
		return Result{}, false
	}

	var best Result
	var pvMove board.Move
	haveResult := false

	for depth := 1; depth <= maxDepth; depth++ {
		if control.Stopped() {
			break
		}
		move, score, completed := e.searchRoot(b, rootMoves, depth, pvMove, control)
		if !completed && haveResult {
			break
		}
		best = Result{Move: move, Score: score, Depth: depth}
		pvMove = move
		haveResult = true
	}

	if !haveResult {
		return Result{}, false
	}
	return best, true
}

// searchRoot runs one iterative-deepening iteration. completed is false if
// the search was cancelled before finishing the iteration, in which case
// the caller discards this iteration's (possibly partial) result.
func (e *Engine) searchRoot(b *board.Board, rootMoves []board.Move, depth int, pvMove board.Move, control *SearchControl) (board.Move, int32, bool) {
	if e.Workers > 1 && len(rootMoves) >= 10 {
		return e.searchRootParallel(b, rootMoves, depth, pvMove, control)
	}
	return e.searchRootSequential(b, rootMoves, depth, pvMove, control)
}

func (e *Engine) searchRootSequential(b *board.Board, rootMoves []board.Move, depth int, pvMove board.Move, control *SearchControl) (board.Move, int32, bool) {
	w := &worker{board: b, tt: e.TT, control: control}
	ordered := append([]board.Move(nil), rootMoves...)
	orderMoves(ordered, pvMove, &w.killers, &w.history, b.SideToMove, 0)

	alpha, beta := -MaxScore, MaxScore
	var bestMove board.Move
	bestScore := -MaxScore

	for _, m := range ordered {
		if control.Stopped() {
			return bestMove, bestScore, false
		}
		b.Apply(m)
		score := -w.alphaBeta(depth-1, 1, -beta, -alpha)
		b.Unapply()

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestMove, bestScore, !control.Stopped()
}

// searchRootParallel partitions rootMoves round-robin across e.Workers
// goroutines, each with its own cloned board and killer/history tables
// (spec.md §4.4's "each worker clones the board ... contributes results to
// a shared best-score/best-move register under mutual exclusion"). Interior
// nodes stay sequential within each worker. Fan-out and join use an
// errgroup.Group rather than a bare sync.WaitGroup, the way the rest of the
// pack coordinates worker goroutines, even though no worker here ever
// returns a non-nil error.
func (e *Engine) searchRootParallel(b *board.Board, rootMoves []board.Move, depth int, pvMove board.Move, control *SearchControl) (board.Move, int32, bool) {
	ordered := append([]board.Move(nil), rootMoves...)
	var orderKillers KillerTable
	var orderHistory HistoryTable
	orderMoves(ordered, pvMove, &orderKillers, &orderHistory, b.SideToMove, 0)

	numWorkers := e.Workers
	if numWorkers > len(ordered) {
		numWorkers = len(ordered)
	}
	partitions := make([][]board.Move, numWorkers)
	for i, m := range ordered {
		partitions[i%numWorkers] = append(partitions[i%numWorkers], m)
	}

	var reg struct {
		mu        sync.Mutex
		move      board.Move
		score     int32
		have      bool
		cancelled bool
	}
	reg.score = -MaxScore

	var g errgroup.Group
	for _, part := range partitions {
		part := part
		g.Go(func() error {
			clone := b.Clone()
			w := &worker{board: clone, tt: e.TT, control: control}
			for _, m := range part {
				if control.Stopped() {
					reg.mu.Lock()
					reg.cancelled = true
					reg.mu.Unlock()
					return nil
				}
				clone.Apply(m)
				score := -w.alphaBeta(depth-1, 1, -MaxScore, MaxScore)
				clone.Unapply()

				reg.mu.Lock()
				if !reg.have || score > reg.score {
					reg.score = score
					reg.move = m
					reg.have = true
				}
				reg.mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if !reg.have {
		return board.Move{}, 0, false
	}
	return reg.move, reg.score, !reg.cancelled && !control.Stopped()
}

// alphaBeta scores board from the side-to-move's perspective (negamax
// convention, spec.md §9). It implements the four numbered steps of
// spec.md §4.4 and is fail-soft: a beta cutoff returns the true child
// score rather than beta, for tighter transposition-table bounds.
func (w *worker) alphaBeta(depth, ply int, alpha, beta int32) int32 {
	w.nodes++
	b := w.board

	if ply > 0 {
		if b.HalfmoveClock >= 100 || b.IsRepetition(3) || b.IsInsufficientMaterial() {
			return DrawScore
		}
	}
	if w.control.Stopped() {
		return 0
	}

	hash := b.Zobrist
	var ttMove board.Move
	if entry, ok := w.tt.Probe(hash); ok {
		ttMove = entry.BestMove
		if entry.Depth >= depth {
			switch entry.Bound {
			case Exact:
				return entry.Score
			case LowerBound:
				if entry.Score >= beta {
					return entry.Score
				}
			case UpperBound:
				if entry.Score <= alpha {
					return entry.Score
				}
			}
		}
	}

	if depth <= 0 {
		return w.quiescence(alpha, beta)
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove) {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	orderMoves(moves, ttMove, &w.killers, &w.history, b.SideToMove, ply)

	alphaOrig := alpha
	bestScore := -MaxScore
	var bestMove board.Move

	for _, m := range moves {
		b.Apply(m)
		score := -w.alphaBeta(depth-1, ply+1, -beta, -alpha)
		b.Unapply()

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() {
				w.killers.Insert(ply, m)
				w.history.Bump(b.SideToMove, m, depth)
			}
			w.tt.Store(TranspositionEntry{Hash: hash, Depth: depth, Score: bestScore, Bound: LowerBound, BestMove: m})
			return bestScore
		}
	}

	bound := UpperBound
	if bestScore > alphaOrig {
		bound = Exact
	}
	w.tt.Store(TranspositionEntry{Hash: hash, Depth: depth, Score: bestScore, Bound: bound, BestMove: bestMove})
	return bestScore
}

// quiescence extends search along captures only, to avoid the horizon
// effect (spec.md §4.5). Fail-soft, matching alphaBeta's choice.
func (w *worker) quiescence(alpha, beta int32) int32 {
	w.nodes++
	b := w.board

	standPat := Evaluate(b)
	if b.SideToMove == board.Black {
		standPat = -standPat
	}

	bestScore := standPat
	if bestScore >= beta {
		return bestScore
	}
	if bestScore > alpha {
		alpha = bestScore
	}

	captures := b.GenerateCaptures()
	orderCaptures(captures)

	for _, m := range captures {
		b.Apply(m)
		score := -w.quiescence(-beta, -alpha)
		b.Unapply()

		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return bestScore
		}
	}
	return bestScore
}
