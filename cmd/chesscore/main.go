// Command chesscore loads a position and reports the best move the search
// finds at a fixed depth. It is a thin caller over search.FindBestMove,
// standing in for the CLI/UCI front ends that spec.md §1 places outside
// this core's scope.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/oliverans-successor/chesscore/board"
	"github.com/oliverans-successor/chesscore/search"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 6, "maximum search depth")
	workers := flag.Int("workers", 1, "root-level worker count (1 disables parallel search)")
	flag.Parse()

	b, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	engine := search.NewEngine()
	engine.Workers = *workers
	if engine.Workers > runtime.NumCPU() {
		engine.Workers = runtime.NumCPU()
	}

	result, ok := engine.FindBestMove(b, *depth, nil)
	if !ok {
		fmt.Println("no legal moves")
		return
	}
	fmt.Printf("bestmove %s score %d depth %d\n", result.Move.Algebraic(b), result.Score, result.Depth)
}
