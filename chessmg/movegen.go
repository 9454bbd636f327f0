package chessmg

// LegalMoves enumerates every legal move for the given color, treating that
// color as the mover. Promotion kind is left unset; the executor promotes to
// a queen unless the caller chooses otherwise.
func (b *Board) LegalMoves(c Color) []Move {
	var moves []Move
	for fromRow := 0; fromRow < 8; fromRow++ {
		for fromCol := 0; fromCol < 8; fromCol++ {
			piece := b.grid[fromRow][fromCol]
			if piece == NoPiece || piece.Color() != c {
				continue
			}
			from := Square{fromRow, fromCol}
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					to := Square{toRow, toCol}
					if b.isValidMoveFor(c, from, to, true) {
						moves = append(moves, Move{From: from, To: to})
					}
				}
			}
		}
	}
	return moves
}

// LegalMovesFrom enumerates the legal destinations of the piece on sq for
// the side to move. Empty squares and opposing pieces yield nothing.
func (b *Board) LegalMovesFrom(sq Square) []Move {
	piece := b.PieceAt(sq.Row, sq.Col)
	if piece == NoPiece || piece.Color() != b.sideToMove {
		return nil
	}
	var moves []Move
	for toRow := 0; toRow < 8; toRow++ {
		for toCol := 0; toCol < 8; toCol++ {
			to := Square{toRow, toCol}
			if b.IsValidMove(sq, to, true) {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}

// HasLegalMoves reports whether the given color has at least one legal move.
func (b *Board) HasLegalMoves(c Color) bool {
	for fromRow := 0; fromRow < 8; fromRow++ {
		for fromCol := 0; fromCol < 8; fromCol++ {
			piece := b.grid[fromRow][fromCol]
			if piece == NoPiece || piece.Color() != c {
				continue
			}
			from := Square{fromRow, fromCol}
			for toRow := 0; toRow < 8; toRow++ {
				for toCol := 0; toCol < 8; toCol++ {
					if b.isValidMoveFor(c, from, Square{toRow, toCol}, true) {
						return true
					}
				}
			}
		}
	}
	return false
}

// InCheckmate reports whether the given side is in check with no legal move.
func (b *Board) InCheckmate(c Color) bool {
	return b.InCheck(c) && !b.HasLegalMoves(c)
}

// InStalemate reports whether the given side has no legal move but is not
// in check.
func (b *Board) InStalemate(c Color) bool {
	return !b.InCheck(c) && !b.HasLegalMoves(c)
}
