package chessmg_test

import (
	"testing"

	gm "chess-ai/chessmg"
)

func TestApplyMovesPieceAndFlipsTurn(t *testing.T) {
	b := gm.NewBoard()
	b.Apply(mustMove(t, "e2e4"))

	if got := b.PieceAt(6, 4); got != gm.NoPiece {
		t.Errorf("e2 should be empty, got %v", got)
	}
	if got := b.PieceAt(4, 4); got != gm.WhitePawn {
		t.Errorf("e4 should hold the white pawn, got %v", got)
	}
	if b.SideToMove() != gm.Black {
		t.Errorf("turn should pass to black")
	}
	if len(b.History()) != 1 {
		t.Fatalf("history: expected 1 record, got %d", len(b.History()))
	}
	if rec := b.History()[0]; rec.Special != gm.SpecialNone || rec.Piece != gm.WhitePawn {
		t.Errorf("record: got %+v", rec)
	}
}

func TestApplyCaptureBookkeeping(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	b.Apply(mustMove(t, "e4d5"))

	if got := b.PieceAt(3, 3); got != gm.WhitePawn {
		t.Errorf("d5 should hold the capturing pawn, got %v", got)
	}
	captured := b.Captured()
	if len(captured) != 1 || captured[0] != gm.BlackPawn {
		t.Fatalf("captured list: got %v", captured)
	}
	if rec := b.History()[0]; rec.Special != gm.SpecialCapture || rec.Captured != gm.BlackPawn {
		t.Errorf("record: got %+v", rec)
	}
}

func TestApplyEnPassantRemovesPawn(t *testing.T) {
	b := gm.NewBoard()
	b.Apply(mustMove(t, "e2e4"))
	b.Apply(mustMove(t, "a7a6"))
	b.Apply(mustMove(t, "e4e5"))
	b.Apply(mustMove(t, "d7d5"))
	b.Apply(mustMove(t, "e5d6"))

	if got := b.PieceAt(2, 3); got != gm.WhitePawn {
		t.Errorf("d6 should hold the capturing pawn, got %v", got)
	}
	if got := b.PieceAt(3, 3); got != gm.NoPiece {
		t.Errorf("the d5 pawn should be removed, got %v", got)
	}
	captured := b.Captured()
	if len(captured) != 1 || captured[0] != gm.BlackPawn {
		t.Fatalf("captured list: got %v", captured)
	}
	rec := b.History()[len(b.History())-1]
	if rec.Special != gm.SpecialEnPassant {
		t.Errorf("record special: got %v", rec.Special)
	}
}

func TestApplyCastlingMovesRook(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	b.Apply(mustMove(t, "e1g1"))

	if got := b.PieceAt(7, 6); got != gm.WhiteKing {
		t.Errorf("g1 should hold the king, got %v", got)
	}
	if got := b.PieceAt(7, 5); got != gm.WhiteRook {
		t.Errorf("f1 should hold the rook, got %v", got)
	}
	if got := b.PieceAt(7, 7); got != gm.NoPiece {
		t.Errorf("h1 should be empty, got %v", got)
	}
	if got := b.KingSquare(gm.White); got != (gm.Square{Row: 7, Col: 6}) {
		t.Errorf("king cache: got %v", got)
	}
	if rec := b.History()[0]; rec.Special != gm.SpecialCastleKingside {
		t.Errorf("record special: got %v", rec.Special)
	}

	b.Apply(mustMove(t, "e8c8"))
	if got := b.PieceAt(0, 2); got != gm.BlackKing {
		t.Errorf("c8 should hold the king, got %v", got)
	}
	if got := b.PieceAt(0, 3); got != gm.BlackRook {
		t.Errorf("d8 should hold the rook, got %v", got)
	}
	if got := b.PieceAt(0, 0); got != gm.NoPiece {
		t.Errorf("a8 should be empty, got %v", got)
	}
	rec := b.History()[len(b.History())-1]
	if rec.Special != gm.SpecialCastleQueenside {
		t.Errorf("record special: got %v", rec.Special)
	}
}

func TestApplyPromotionDefaultsToQueen(t *testing.T) {
	b := mustParse(t, "8/P6k/8/8/8/8/7K/8 w - - 0 1")
	b.Apply(mustMove(t, "a7a8"))

	if got := b.PieceAt(0, 0); got != gm.WhiteQueen {
		t.Errorf("a8 should hold a queen, got %v", got)
	}
	if rec := b.History()[0]; rec.Special != gm.SpecialPromotion {
		t.Errorf("record special: got %v", rec.Special)
	}
}

func TestApplyPromotionHonorsChoice(t *testing.T) {
	b := mustParse(t, "8/P6k/8/8/8/8/7K/8 w - - 0 1")
	b.Apply(mustMove(t, "a7a8r"))
	if got := b.PieceAt(0, 0); got != gm.WhiteRook {
		t.Errorf("a8 should hold a rook, got %v", got)
	}

	b = mustParse(t, "8/7k/8/8/8/8/p6K/8 b - - 0 1")
	b.Apply(mustMove(t, "a2a1n"))
	if got := b.PieceAt(7, 0); got != gm.BlackKnight {
		t.Errorf("a1 should hold a black knight, got %v", got)
	}
}

func TestApplyEnPassantTargetLifecycle(t *testing.T) {
	b := gm.NewBoard()
	b.Apply(mustMove(t, "d2d4"))
	if got := b.EnPassantTarget(); got != (gm.Square{Row: 5, Col: 3}) {
		t.Fatalf("target after d2d4: got %v", got)
	}
	b.Apply(mustMove(t, "g8f6"))
	if got := b.EnPassantTarget(); got != gm.NoSquare {
		t.Fatalf("target should clear after the reply, got %v", got)
	}
}

func TestApplyCastlingFlagsAreMonotonic(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	b.Apply(mustMove(t, "h1h2"))
	b.Apply(mustMove(t, "a8a7"))
	b.Apply(mustMove(t, "h2h1"))
	b.Apply(mustMove(t, "a7a8"))

	if b.IsValidMove(sq(t, "e1"), sq(t, "g1"), true) {
		t.Errorf("kingside right should be gone for good")
	}
	if !b.IsValidMove(sq(t, "e1"), sq(t, "c1"), true) {
		t.Errorf("queenside right should be untouched")
	}
}
