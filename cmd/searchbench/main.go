package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	gm "chess-ai/chessmg"
	"chess-ai/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	moveTimeFlag := flag.Duration("movetime", 15*time.Second, "wall-clock budget per search")
	centerFlag := flag.Bool("center", false, "enable the center-control evaluation term")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	depth := engine.Clamp(*depthFlag, 1, 7)
	if depth != *depthFlag {
		log.Printf("depth clamped to %d (supported range 1..7)", depth)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	// FEN selection
	fen := gm.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}

	fmt.Printf("searchbench: fen=%q depth=%d movetime=%s repeat=%d\n", fen, depth, *moveTimeFlag, *repeatFlag)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		board, err := gm.ParseFEN(fen)
		if err != nil {
			log.Fatalf("ParseFEN: %v", err)
		}

		search := engine.NewSearch(board.SideToMove(), depth, *moveTimeFlag)
		search.CenterControl = *centerFlag

		iterStart := time.Now()
		bestMove, ok := search.BestMove(board)
		iterElapsed := time.Since(iterStart)
		if !ok {
			fmt.Printf("iteration %d: no legal moves\n", i+1)
			continue
		}

		nps := float64(search.Nodes()) / iterElapsed.Seconds()
		fmt.Printf("iteration %d: bestmove %s  nodes=%d  time=%v  nps=%.0f\n",
			i+1, bestMove.String(), search.Nodes(), iterElapsed, nps)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v\n", totalElapsed)

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
