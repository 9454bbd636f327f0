// Package game exposes the live-play surface of the engine core: validated
// move application, terminal-state queries and an in-process registry of
// concurrent game sessions. GUI and driver layers consume the core only
// through this package and the chessmg query methods.
package game

import (
	"time"

	"github.com/google/uuid"

	gm "chess-ai/chessmg"
)

// Outcome classifies a finished (or ongoing) game.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCheckmate
	OutcomeStalemate
)

// Status is the terminal-state answer: none, checkmate with a winner, or
// stalemate.
type Status struct {
	Outcome Outcome
	// Winner is meaningful only when Outcome is OutcomeCheckmate.
	Winner gm.Color
}

// Game is one chess session. All state transitions go through MakeMove,
// which refuses illegal input and leaves the board untouched on failure.
type Game struct {
	ID        string
	Board     *gm.Board
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New starts a game from the standard initial position.
func New() *Game {
	now := time.Now()
	return &Game{
		ID:        uuid.NewString(),
		Board:     gm.NewBoard(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewFromFEN starts a game from an arbitrary position.
func NewFromFEN(fen string) (*Game, error) {
	board, err := gm.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Game{
		ID:        uuid.NewString(),
		Board:     board,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MakeMove validates and applies a move for the side to play. The optional
// promotion kind only matters for pawns reaching the farthest rank (queen
// when unset). Returns false — with the board left exactly as it was — when
// the move is illegal.
func (g *Game) MakeMove(from, to gm.Square, promotion gm.PieceType) bool {
	if !g.Board.IsValidMove(from, to, true) {
		return false
	}
	g.Board.Apply(gm.Move{From: from, To: to, Promotion: promotion})
	g.UpdatedAt = time.Now()
	return true
}

// MakeMoveNotation applies a move given in long algebraic notation
// ("e2e4", "e7e8q").
func (g *Game) MakeMoveNotation(notation string) bool {
	m, err := gm.ParseMove(notation)
	if err != nil {
		return false
	}
	return g.MakeMove(m.From, m.To, m.Promotion)
}

// InCheck reports whether the side to play is currently in check.
func (g *Game) InCheck() bool {
	return g.Board.InCheck(g.Board.SideToMove())
}

// TerminalState reports whether the game is over: checkmate names the
// winner (the side that delivered mate), stalemate has none.
func (g *Game) TerminalState() Status {
	side := g.Board.SideToMove()
	if g.Board.InCheckmate(side) {
		return Status{Outcome: OutcomeCheckmate, Winner: side.Opposite()}
	}
	if g.Board.InStalemate(side) {
		return Status{Outcome: OutcomeStalemate}
	}
	return Status{Outcome: OutcomeNone}
}

// Reset puts the session back to the standard starting position. The
// session keeps its ID.
func (g *Game) Reset() {
	g.Board = gm.NewBoard()
	g.UpdatedAt = time.Now()
}
