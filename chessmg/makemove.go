package chessmg

// Apply executes a move already known to be pseudo-legal. It is the single
// state-transition authority: the live-play path and every search-node
// expansion route through it, so special-rule bookkeeping can never drift
// between what is played and what is searched.
//
// Order of operations: en-passant removal, castling rook relocation, the
// piece move itself (recording any capture), promotion, en-passant target
// bookkeeping, castling-flag updates, history append, turn flip.
func (b *Board) Apply(m Move) {
	piece := b.grid[m.From.Row][m.From.Col]
	color := piece.Color()
	kind := piece.Type()

	special := SpecialNone
	captured := b.grid[m.To.Row][m.To.Col]

	// En passant: the captured pawn is not on the destination square but one
	// rank behind it, from the mover's point of view.
	if kind == PieceTypePawn && m.To == b.enPassantTarget {
		capRow := m.To.Row - 1
		if color == White {
			capRow = m.To.Row + 1
		}
		captured = b.grid[capRow][m.To.Col]
		b.SetPiece(capRow, m.To.Col, NoPiece)
		special = SpecialEnPassant
	}

	// Castling: a two-file king shift drags the rook along.
	if kind == PieceTypeKing && abs(m.To.Col-m.From.Col) == 2 {
		rookFromCol, rookToCol := 0, 3
		special = SpecialCastleQueenside
		if m.To.Col > m.From.Col {
			rookFromCol, rookToCol = 7, 5
			special = SpecialCastleKingside
		}
		rook := b.grid[m.From.Row][rookFromCol]
		b.SetPiece(m.From.Row, rookToCol, rook)
		b.SetPiece(m.From.Row, rookFromCol, NoPiece)
	}

	// The move itself. SetPiece keeps the king cache current.
	b.SetPiece(m.To.Row, m.To.Col, piece)
	b.SetPiece(m.From.Row, m.From.Col, NoPiece)

	if captured != NoPiece {
		b.captured = append(b.captured, captured)
		if special == SpecialNone {
			special = SpecialCapture
		}
	}

	// Promotion: a pawn on the farthest rank is always replaced, by a queen
	// unless the move requested another kind.
	if kind == PieceTypePawn {
		promotionRow := 7
		if color == White {
			promotionRow = 0
		}
		if m.To.Row == promotionRow {
			pt := m.Promotion
			if pt == PieceTypeNone {
				pt = PieceTypeQueen
			}
			b.SetPiece(m.To.Row, m.To.Col, PieceFromType(color, pt))
			special = SpecialPromotion
		}
	}

	// The en-passant window closes after every move; a fresh double push
	// opens a new one on the skipped square.
	b.enPassantTarget = NoSquare
	if kind == PieceTypePawn && abs(m.To.Row-m.From.Row) == 2 {
		b.enPassantTarget = Square{(m.From.Row + m.To.Row) / 2, m.From.Col}
	}

	// Monotonic castling flags. A rook departing file a or h marks that
	// side's rook as moved regardless of rank; the flags only ever tighten.
	switch kind {
	case PieceTypeKing:
		if color == White {
			b.whiteKingMoved = true
		} else {
			b.blackKingMoved = true
		}
	case PieceTypeRook:
		if color == White {
			if m.From.Col == 7 {
				b.whiteKingsideRookMoved = true
			} else if m.From.Col == 0 {
				b.whiteQueensideRookMoved = true
			}
		} else {
			if m.From.Col == 7 {
				b.blackKingsideRookMoved = true
			} else if m.From.Col == 0 {
				b.blackQueensideRookMoved = true
			}
		}
	}

	b.history = append(b.history, MoveRecord{
		Move:     m,
		Piece:    piece,
		Captured: captured,
		Special:  special,
	})

	b.SwitchTurn()
}
