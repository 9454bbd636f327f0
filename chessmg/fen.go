package chessmg

import (
	"errors"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) byte {
	const white = "?PNBRQK"
	const black = "?pnbrqk"
	t := p.Type()
	if t == PieceTypeNone || t > PieceTypeKing {
		return '?'
	}
	if p.Color() == Black {
		return black[t]
	}
	return white[t]
}

// ToFEN serializes the position. Ranks run from rank 8 to rank 1 with
// run-length-encoded empty squares; the trailing half-move and full-move
// counters are fixed "0 1" placeholders, which this core does not track.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		emptyCount := 0
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	castling := ""
	if !b.whiteKingMoved {
		if !b.whiteKingsideRookMoved {
			castling += "K"
		}
		if !b.whiteQueensideRookMoved {
			castling += "Q"
		}
	}
	if !b.blackKingMoved {
		if !b.blackKingsideRookMoved {
			castling += "k"
		}
		if !b.blackQueensideRookMoved {
			castling += "q"
		}
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteByte(' ')

	sb.WriteString(b.enPassantTarget.String())
	sb.WriteString(" 0 1")

	return sb.String()
}

// ParseFEN parses a FEN string and returns a new Board set up to that
// position. The castling-rights field is folded back onto the monotonic
// moved-flags: a missing right marks the corresponding rook as moved, and a
// side with no rights at all marks its king as moved too. The half-move and
// full-move fields are accepted and ignored.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	b := &Board{enPassantTarget: NoSquare}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	whiteKings, blackKings := 0, 0
	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if col >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			b.SetPiece(row, col, piece)
			if piece == WhiteKing {
				whiteKings++
			}
			if piece == BlackKing {
				blackKings++
			}
			col++
		}
		if col != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return nil, errors.New("invalid FEN: each side must have exactly one king")
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights -> moved flags
	var wk, wq, bk, bq bool
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				wk = true
			case 'Q':
				wq = true
			case 'k':
				bk = true
			case 'q':
				bq = true
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}
	b.whiteKingsideRookMoved = !wk
	b.whiteQueensideRookMoved = !wq
	b.whiteKingMoved = !wk && !wq
	b.blackKingsideRookMoved = !bk
	b.blackQueensideRookMoved = !bq
	b.blackKingMoved = !bk && !bq

	// 4. En passant target square
	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, errors.New("invalid FEN: en passant square out of range")
		}
		b.enPassantTarget = sq
	}

	// Fields 5 and 6 (half-move clock, full-move number) are placeholders
	// in this core and intentionally ignored.

	return b, nil
}
