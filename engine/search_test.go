package engine_test

import (
	"testing"
	"time"

	gm "chess-ai/chessmg"
	"chess-ai/engine"
)

// plainMinimax is a pruning-free reference walker over the same evaluation
// and terminal rules the engine uses.
func plainMinimax(s *engine.Search, b *gm.Board, depth int, maximizing bool) int32 {
	if depth <= 0 {
		return s.Evaluate(b)
	}

	mover := s.Color
	if !maximizing {
		mover = mover.Opposite()
	}

	moves := b.LegalMoves(mover)
	if len(moves) == 0 {
		if b.InCheck(mover) {
			if maximizing {
				return -engine.MaxScore
			}
			return engine.MaxScore
		}
		return engine.DrawScore
	}

	if maximizing {
		best := -engine.MaxScore
		for _, m := range moves {
			clone := b.Copy()
			clone.Apply(m)
			if v := plainMinimax(s, clone, depth-1, false); v > best {
				best = v
			}
		}
		return best
	}

	worst := engine.MaxScore
	for _, m := range moves {
		clone := b.Copy()
		clone.Apply(m)
		if v := plainMinimax(s, clone, depth-1, true); v < worst {
			worst = v
		}
	}
	return worst
}

// plainBestMove mirrors the root selection rule: first move reaching the
// maximal value wins.
func plainBestMove(s *engine.Search, b *gm.Board, depth int) gm.Move {
	moves := b.LegalMoves(s.Color)
	best := moves[0]
	bestScore := int32(0)
	for i, m := range moves {
		clone := b.Copy()
		clone.Apply(m)
		score := plainMinimax(s, clone, depth-1, false)
		if i == 0 || score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}

func TestBestMoveIsLegal(t *testing.T) {
	b := gm.NewBoard()
	s := newSearch(gm.White, 2)

	move, ok := s.BestMove(b)
	if !ok {
		t.Fatalf("expected a move from the starting position")
	}
	found := false
	for _, m := range b.LegalMoves(gm.White) {
		if m.From == move.From && m.To == move.To {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("best move %s is not legal", move)
	}
	if s.Nodes() == 0 {
		t.Fatalf("node counter never advanced")
	}
}

// Alpha-beta pruning must not change the chosen move relative to an
// exhaustive walk of the same tree.
func TestBestMoveMatchesPlainMinimax(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
		"8/2k5/3q4/8/3Q4/2K5/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		s := newSearch(b.SideToMove(), 2)

		got, ok := s.BestMove(b)
		if !ok {
			t.Fatalf("%s: expected a move", fen)
		}
		want := plainBestMove(s, b, 2)
		if got.From != want.From || got.To != want.To {
			t.Errorf("%s: pruned search picked %s, exhaustive picked %s", fen, got, want)
		}
	}
}

func TestBestMoveFindsMateInOne(t *testing.T) {
	b := mustParse(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	s := newSearch(gm.White, 2)

	move, ok := s.BestMove(b)
	if !ok {
		t.Fatalf("expected a move")
	}
	if got := move.String(); got != "g6g7" {
		t.Fatalf("expected the mating move g6g7, got %s", got)
	}
}

func TestBestMoveReportsNoMoves(t *testing.T) {
	// Fool's mate: white has been checkmated.
	b := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	s := newSearch(gm.White, 2)
	if _, ok := s.BestMove(b); ok {
		t.Fatalf("a checkmated side has no move to report")
	}
}

func TestBestMoveDegradesOnExhaustedBudget(t *testing.T) {
	b := gm.NewBoard()
	s := engine.NewSearch(gm.White, 4, 0)

	move, ok := s.BestMove(b)
	if !ok {
		t.Fatalf("an exhausted budget must still yield a move")
	}
	first := b.LegalMoves(gm.White)[0]
	if move.From != first.From || move.To != first.To {
		t.Fatalf("expected the first legal move %s, got %s", first, move)
	}
}

func TestNodesResetBetweenCalls(t *testing.T) {
	b := gm.NewBoard()
	s := newSearch(gm.White, 2)

	if _, ok := s.BestMove(b); !ok {
		t.Fatalf("expected a move")
	}
	firstRun := s.Nodes()

	if _, ok := s.BestMove(b); !ok {
		t.Fatalf("expected a move")
	}
	if s.Nodes() != firstRun {
		t.Fatalf("node counter not reset: %d then %d", firstRun, s.Nodes())
	}
}

func TestSearchDoesNotMutateTheBoard(t *testing.T) {
	b := gm.NewBoard()
	before := b.ToFEN()

	s := engine.NewSearch(gm.White, 2, time.Minute)
	if _, ok := s.BestMove(b); !ok {
		t.Fatalf("expected a move")
	}
	if got := b.ToFEN(); got != before {
		t.Fatalf("search mutated the board:\n%s\n%s", before, got)
	}
}
