package chessmg

// IsSquareAttacked reports whether any piece of defender's opponent can
// reach sq. It relies on canPieceAttack, which never consults king safety;
// that separation is what keeps check detection from recursing forever,
// since king-safety checks are themselves built on this scan.
func (b *Board) IsSquareAttacked(sq Square, defender Color) bool {
	attacker := defender.Opposite()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.grid[row][col]
			if piece == NoPiece || piece.Color() != attacker {
				continue
			}
			if b.canPieceAttack(Square{row, col}, sq) {
				return true
			}
		}
	}
	return false
}

// canPieceAttack reports whether the piece on from geometrically reaches to,
// ignoring king safety. Pawns attack only forward-diagonally; the king
// contributes its one-step reach (castling never attacks anything).
func (b *Board) canPieceAttack(from, to Square) bool {
	piece := b.grid[from.Row][from.Col]
	switch piece.Type() {
	case PieceTypePawn:
		dir := 1
		if piece.Color() == White {
			dir = -1
		}
		return abs(to.Col-from.Col) == 1 && to.Row == from.Row+dir
	case PieceTypeKnight:
		return validKnightMove(from, to)
	case PieceTypeBishop:
		return b.validBishopMove(from, to)
	case PieceTypeRook:
		return b.validRookMove(from, to)
	case PieceTypeQueen:
		return b.validQueenMove(from, to)
	case PieceTypeKing:
		return abs(to.Row-from.Row) <= 1 && abs(to.Col-from.Col) <= 1
	}
	return false
}

// InCheck reports whether the given side's king square is attacked.
func (b *Board) InCheck(c Color) bool {
	return b.IsSquareAttacked(b.KingSquare(c), c)
}

// wouldCauseCheck simulates the raw geometric move on a clone (no legality
// re-filtering, king cache updated via SetPiece) and reports whether the
// mover's own king ends up attacked.
func (b *Board) wouldCauseCheck(from, to Square) bool {
	mover := b.grid[from.Row][from.Col].Color()

	clone := b.Copy()
	piece := clone.grid[from.Row][from.Col]
	clone.SetPiece(to.Row, to.Col, piece)
	clone.SetPiece(from.Row, from.Col, NoPiece)

	return clone.InCheck(mover)
}
