// Package chessmg implements the chess board model, the full rule set
// (legality, attack detection, terminal states) and the single move
// executor shared by live play and search.
//
// The board is a plain 8x8 mailbox grid indexed (row, col) with row 0 being
// rank 8. Hypothetical continuations are explored on deep copies of the
// board, never by mutating a shared state.
package chessmg

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Empty reports whether p is the empty-square marker.
func (p Piece) Empty() bool { return p == NoPiece }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Square addresses a board cell by (row, col), row 0 = rank 8, col 0 = file a.
type Square struct {
	Row, Col int
}

// NoSquare is the sentinel for "no square" (unset en-passant target etc.).
var NoSquare = Square{-1, -1}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}

// String renders the square in file-letter + rank-digit form, e.g. "e4".
// Off-board squares render as "-".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.Col), '8' - byte(sq.Row)})
}

// ParseSquare parses "e4" style coordinates.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return Square{Row: int('8' - s[1]), Col: int(s[0] - 'a')}, true
}

// Board is the full game state: piece placement, side to move, castling
// flags, en-passant target, king caches, and the played-move bookkeeping.
//
// The castling flags are monotonic: once a king or rook is recorded as
// moved, the flag never resets. The king-moved flag gates both rook flags
// of that side.
type Board struct {
	grid [8][8]Piece

	sideToMove Color

	whiteKingMoved          bool
	whiteKingsideRookMoved  bool
	whiteQueensideRookMoved bool
	blackKingMoved          bool
	blackKingsideRookMoved  bool
	blackQueensideRookMoved bool

	// En passant target square, valid only on the ply immediately after a
	// double pawn push. NoSquare otherwise.
	enPassantTarget Square

	// Cached king squares, kept equal to the grid at all times.
	whiteKingSquare Square
	blackKingSquare Square

	history  []MoveRecord
	captured []Piece
}

// NewBoard returns a board in the standard starting position, White to move.
func NewBoard() *Board {
	b := &Board{
		sideToMove:      White,
		enPassantTarget: NoSquare,
		whiteKingSquare: Square{7, 4},
		blackKingSquare: Square{0, 4},
	}

	back := [8]PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for col := 0; col < 8; col++ {
		b.grid[0][col] = PieceFromType(Black, back[col])
		b.grid[1][col] = BlackPawn
		b.grid[6][col] = WhitePawn
		b.grid[7][col] = PieceFromType(White, back[col])
	}
	return b
}

// PieceAt returns the piece on (row, col). Out-of-range coordinates yield
// NoPiece rather than a fault.
func (b *Board) PieceAt(row, col int) Piece {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return NoPiece
	}
	return b.grid[row][col]
}

// SetPiece places a piece on (row, col). Out-of-range writes are no-ops.
// Placing a king refreshes that side's king cache.
func (b *Board) SetPiece(row, col int, p Piece) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return
	}
	b.grid[row][col] = p
	if p.Type() == PieceTypeKing {
		if p.Color() == White {
			b.whiteKingSquare = Square{row, col}
		} else {
			b.blackKingSquare = Square{row, col}
		}
	}
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SwitchTurn flips the side to move.
func (b *Board) SwitchTurn() { b.sideToMove = b.sideToMove.Opposite() }

// EnPassantTarget returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantTarget() Square { return b.enPassantTarget }

// KingSquare returns the cached square of the given side's king.
func (b *Board) KingSquare(c Color) Square {
	if c == White {
		return b.whiteKingSquare
	}
	return b.blackKingSquare
}

// Opposing reports whether two pieces belong to different sides. Empty
// squares oppose nothing.
func (b *Board) Opposing(p1, p2 Piece) bool {
	if p1 == NoPiece || p2 == NoPiece {
		return false
	}
	return p1.Color() != p2.Color()
}

// History returns the applied-move records, oldest first.
func (b *Board) History() []MoveRecord { return b.history }

// Captured returns the captured pieces in capture order.
func (b *Board) Captured() []Piece { return b.captured }

// Copy produces a fully independent deep copy: mutating the copy can never
// affect the original or any sibling copy.
func (b *Board) Copy() *Board {
	nb := *b
	nb.history = make([]MoveRecord, len(b.history))
	copy(nb.history, b.history)
	nb.captured = make([]Piece, len(b.captured))
	copy(nb.captured, b.captured)
	return &nb
}
