// Command perft is a diagnostic CLI exercising board.Perft and
// search.CountPositions, grounded on the teacher's cmd/perft/main.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/oliverans-successor/chesscore/board"
	"github.com/oliverans-successor/chesscore/search"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	repeat := flag.Int("repeat", 1, "repeat perft N times and report aggregate timing")
	alphaBeta := flag.Bool("alphabeta", false, "count nodes visited under alpha-beta pruning instead of raw leaf count")
	cpuProf := flag.String("cpuprofile", "", "write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer pprof.StopCPUProfile()
	}

	strategy := search.Raw
	if *alphaBeta {
		strategy = search.AlphaBeta
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += search.CountPositions(b, *depth, strategy)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("depth %d\tnodes %d\ttime %s\tnps %.0f\n", *depth, totalNodes, elapsed, nps)
}
