package chessmg

import "errors"

// Move is a (source, destination, optional promotion kind) triple. Whether
// the move is a capture, en passant, castle or promotion is derived from
// board context when it is applied, never chosen by the caller.
type Move struct {
	From, To  Square
	Promotion PieceType
}

// SpecialMove tags what a move turned out to be when it was executed.
type SpecialMove uint8

const (
	SpecialNone SpecialMove = iota
	SpecialCapture
	SpecialEnPassant
	SpecialCastleKingside
	SpecialCastleQueenside
	SpecialPromotion
)

func (s SpecialMove) String() string {
	switch s {
	case SpecialCapture:
		return "capture"
	case SpecialEnPassant:
		return "en passant"
	case SpecialCastleKingside:
		return "castle kingside"
	case SpecialCastleQueenside:
		return "castle queenside"
	case SpecialPromotion:
		return "promotion"
	default:
		return "move"
	}
}

// MoveRecord is one history entry: the move, the piece that made it, any
// captured piece, and the derived special character. Display-only data; the
// rule checks never read it.
type MoveRecord struct {
	Move     Move
	Piece    Piece
	Captured Piece
	Special  SpecialMove
}

var promotionChars = map[PieceType]byte{
	PieceTypeKnight: 'n',
	PieceTypeBishop: 'b',
	PieceTypeRook:   'r',
	PieceTypeQueen:  'q',
}

// String produces the long algebraic form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if ch, ok := promotionChars[m.Promotion]; ok {
		s += string(ch)
	}
	return s
}

// ParseMove parses long algebraic notation ("e2e4", "e7e8q"). The optional
// fifth character selects the promotion piece kind.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, errors.New("invalid move notation: wrong length")
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Move{}, errors.New("invalid move notation: bad source square")
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, errors.New("invalid move notation: bad destination square")
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'n', 'N':
			m.Promotion = PieceTypeKnight
		case 'b', 'B':
			m.Promotion = PieceTypeBishop
		case 'r', 'R':
			m.Promotion = PieceTypeRook
		case 'q', 'Q':
			m.Promotion = PieceTypeQueen
		default:
			return Move{}, errors.New("invalid move notation: bad promotion piece")
		}
	}
	return m, nil
}
