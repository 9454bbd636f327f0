package chessmg

// IsValidMove reports whether the side to move may legally play from->to.
// The pipeline: range checks, source occupancy, turn gate, own-piece
// destination, per-kind geometry, then (unless suppressed) the move must not
// leave the mover's own king in check.
func (b *Board) IsValidMove(from, to Square, checkKingSafety bool) bool {
	return b.isValidMoveFor(b.sideToMove, from, to, checkKingSafety)
}

// isValidMoveFor is IsValidMove with an explicit mover: move enumeration and
// the mobility term of the evaluator need legality for a color that is not
// necessarily on turn.
func (b *Board) isValidMoveFor(mover Color, from, to Square, checkKingSafety bool) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return false
	}

	piece := b.grid[from.Row][from.Col]
	if piece == NoPiece {
		return false
	}
	if piece.Color() != mover {
		return false
	}

	target := b.grid[to.Row][to.Col]
	if target != NoPiece && target.Color() == piece.Color() {
		return false
	}

	var ok bool
	switch piece.Type() {
	case PieceTypePawn:
		ok = b.validPawnMove(from, to)
	case PieceTypeKnight:
		ok = validKnightMove(from, to)
	case PieceTypeBishop:
		ok = b.validBishopMove(from, to)
	case PieceTypeRook:
		ok = b.validRookMove(from, to)
	case PieceTypeQueen:
		ok = b.validQueenMove(from, to)
	case PieceTypeKing:
		ok = b.validKingMove(from, to)
	}

	if ok && checkKingSafety {
		ok = !b.wouldCauseCheck(from, to)
	}
	return ok
}

// validPawnMove: single push onto an empty square, double push from the
// start rank through an empty intermediate, or a one-step forward-diagonal
// capture (normal or onto the en-passant target).
func (b *Board) validPawnMove(from, to Square) bool {
	piece := b.grid[from.Row][from.Col]
	target := b.grid[to.Row][to.Col]

	dir, startRow := 1, 1 // black moves down the grid
	if piece.Color() == White {
		dir, startRow = -1, 6
	}

	// Forward pushes never capture.
	if to.Col == from.Col {
		if to.Row == from.Row+dir {
			return target == NoPiece
		}
		if from.Row == startRow && to.Row == from.Row+2*dir {
			return target == NoPiece && b.grid[from.Row+dir][from.Col] == NoPiece
		}
		return false
	}

	// Diagonal capture.
	if abs(to.Col-from.Col) == 1 && to.Row == from.Row+dir {
		if target != NoPiece && b.Opposing(piece, target) {
			return true
		}
		if b.enPassantTarget == to {
			// The pawn being taken sits behind the target square.
			victim := b.grid[to.Row-dir][to.Col]
			return victim.Type() == PieceTypePawn && b.Opposing(piece, victim)
		}
	}
	return false
}

func validKnightMove(from, to Square) bool {
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

func (b *Board) validBishopMove(from, to Square) bool {
	if abs(to.Row-from.Row) != abs(to.Col-from.Col) {
		return false
	}
	return b.pathClear(from, to)
}

func (b *Board) validRookMove(from, to Square) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return b.pathClear(from, to)
}

func (b *Board) validQueenMove(from, to Square) bool {
	if from.Row == to.Row || from.Col == to.Col ||
		abs(to.Row-from.Row) == abs(to.Col-from.Col) {
		return b.pathClear(from, to)
	}
	return false
}

func (b *Board) validKingMove(from, to Square) bool {
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	if dr <= 1 && dc <= 1 {
		return true
	}
	// A two-file shift on the same rank is a castling attempt.
	if dr == 0 && dc == 2 {
		return b.validCastling(from, to)
	}
	return false
}

// validCastling enforces all five castling conditions: the king has never
// moved, the relevant rook has never moved and still sits on its home
// square, the king is not in check, the squares between king and rook are
// empty, and no square the king transits (start, crossed, destination) is
// attacked.
func (b *Board) validCastling(from, to Square) bool {
	piece := b.grid[from.Row][from.Col]
	color := piece.Color()

	if color == White && b.whiteKingMoved {
		return false
	}
	if color == Black && b.blackKingMoved {
		return false
	}

	if b.InCheck(color) {
		return false
	}

	kingside := to.Col > from.Col
	rookCol := 0
	if kingside {
		rookCol = 7
	}

	if color == White {
		if kingside && b.whiteKingsideRookMoved {
			return false
		}
		if !kingside && b.whiteQueensideRookMoved {
			return false
		}
	} else {
		if kingside && b.blackKingsideRookMoved {
			return false
		}
		if !kingside && b.blackQueensideRookMoved {
			return false
		}
	}

	// The rook must still be at home, and it must be ours.
	rook := b.grid[from.Row][rookCol]
	if rook.Type() != PieceTypeRook || rook.Color() != color {
		return false
	}

	step := -1
	if kingside {
		step = 1
	}

	// Every square strictly between king and rook must be empty.
	for col := from.Col + step; col != rookCol; col += step {
		if b.grid[from.Row][col] != NoPiece {
			return false
		}
	}

	// The king's start, crossed and destination squares must be safe.
	for col := from.Col; col != to.Col+step; col += step {
		if b.IsSquareAttacked(Square{from.Row, col}, color) {
			return false
		}
	}

	return true
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func (b *Board) pathClear(from, to Square) bool {
	rowStep, colStep := sign(to.Row-from.Row), sign(to.Col-from.Col)

	row, col := from.Row+rowStep, from.Col+colStep
	for row != to.Row || col != to.Col {
		if b.grid[row][col] != NoPiece {
			return false
		}
		row += rowStep
		col += colStep
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
