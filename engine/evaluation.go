package engine

import (
	gm "chess-ai/chessmg"
)

// =============================================================================
// MATERIAL VALUES
// =============================================================================
var pieceValue = [7]int32{
	gm.PieceTypeNone:   0,
	gm.PieceTypePawn:   100,
	gm.PieceTypeKnight: 320,
	gm.PieceTypeBishop: 330,
	gm.PieceTypeRook:   500,
	gm.PieceTypeQueen:  900,
	gm.PieceTypeKing:   20000,
}

// =============================================================================
// PIECE-SQUARE TABLES
// Indexed [row][col] from the white perspective (row 0 = rank 8); black
// lookups mirror the row. Static configuration, never mutated.
// =============================================================================
var pawnTable = [8][8]int32{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int32{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int32{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int32{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenTable = [8][8]int32{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable = [8][8]int32{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

// pieceSquareValue looks up the positional value for a piece on (row, col).
// Black mirrors the row index so both sides read the tables from their own
// side of the board.
func pieceSquareValue(p gm.Piece, row, col int) int32 {
	if p.Color() == gm.Black {
		row = 7 - row
	}
	switch p.Type() {
	case gm.PieceTypePawn:
		return pawnTable[row][col]
	case gm.PieceTypeKnight:
		return knightTable[row][col]
	case gm.PieceTypeBishop:
		return bishopTable[row][col]
	case gm.PieceTypeRook:
		return rookTable[row][col]
	case gm.PieceTypeQueen:
		return queenTable[row][col]
	case gm.PieceTypeKing:
		return kingTable[row][col]
	}
	return 0
}

// Central squares d4, e4, d5, e5 and the ring around them.
var centerSquares = []gm.Square{
	{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 3}, {Row: 4, Col: 4},
}

var extendedCenterSquares = []gm.Square{
	{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4}, {Row: 2, Col: 5},
	{Row: 3, Col: 2}, {Row: 3, Col: 5},
	{Row: 4, Col: 2}, {Row: 4, Col: 5},
	{Row: 5, Col: 2}, {Row: 5, Col: 3}, {Row: 5, Col: 4}, {Row: 5, Col: 5},
}

// Evaluate scores the position from the configured color's perspective:
// material plus piece-square value for every piece (added for own pieces,
// subtracted for the opponent's), 10 points per net legal move, and a
// 50-point swing for either king standing in check. The optional
// center-control term adds 30 per occupied central square and 10 per
// occupied extended-central square, signed by ownership.
func (s *Search) Evaluate(b *gm.Board) int32 {
	var score int32

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.PieceAt(row, col)
			if piece.Empty() {
				continue
			}
			value := pieceValue[piece.Type()] + pieceSquareValue(piece, row, col)
			if piece.Color() == s.Color {
				score += value
			} else {
				score -= value
			}
		}
	}

	ownMoves := len(b.LegalMoves(s.Color))
	oppMoves := len(b.LegalMoves(s.Color.Opposite()))
	score += 10 * int32(ownMoves-oppMoves)

	if b.InCheck(s.Color) {
		score -= 50
	}
	if b.InCheck(s.Color.Opposite()) {
		score += 50
	}

	if s.CenterControl {
		score += s.centerControl(b)
	}

	return score
}

func (s *Search) centerControl(b *gm.Board) int32 {
	var score int32
	for _, sq := range centerSquares {
		piece := b.PieceAt(sq.Row, sq.Col)
		if piece.Empty() {
			continue
		}
		if piece.Color() == s.Color {
			score += 30
		} else {
			score -= 30
		}
	}
	for _, sq := range extendedCenterSquares {
		piece := b.PieceAt(sq.Row, sq.Col)
		if piece.Empty() {
			continue
		}
		if piece.Color() == s.Color {
			score += 10
		} else {
			score -= 10
		}
	}
	return score
}
