package chessmg_test

import (
	"testing"

	gm "chess-ai/chessmg"
)

func TestPerftStartingPosition(t *testing.T) {
	expected := map[int]uint64{
		1: 20,
		2: 400,
		3: 8902,
	}
	b := gm.NewBoard()
	for depth, want := range expected {
		if got := gm.Perft(b, depth); got != want {
			t.Errorf("perft(%d): got %d, want %d", depth, got, want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	b := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := gm.Perft(b, 1); got != 48 {
		t.Errorf("perft(1): got %d, want 48", got)
	}
	if got := gm.Perft(b, 2); got != 2039 {
		t.Errorf("perft(2): got %d, want 2039", got)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := gm.NewBoard()
	div := gm.PerftDivide(b, 3)
	if len(div) != 20 {
		t.Fatalf("expected 20 root moves, got %d", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := gm.Perft(b, 3); sum != want {
		t.Fatalf("divide sum %d != perft %d", sum, want)
	}
}

func TestPerftDepthZero(t *testing.T) {
	if got := gm.Perft(gm.NewBoard(), 0); got != 1 {
		t.Fatalf("perft(0): got %d, want 1", got)
	}
}
