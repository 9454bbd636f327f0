package engine

import (
	"time"

	gm "chess-ai/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore stands in for infinity: a checkmate found anywhere in the
	// tree dominates every material/positional score.
	MaxScore  int32 = 1_000_000
	DrawScore int32 = 0
)

// Search runs a depth-bounded minimax with alpha-beta pruning for one side.
//
// A Search carries per-call mutable state (deadline, node counter), so a
// single instance must not be invoked concurrently from multiple
// goroutines. Sequential reuse across successive moves is fine: every
// BestMove call resets that state.
type Search struct {
	// Color is the side this engine instance plays.
	Color gm.Color
	// MaxDepth is the search horizon in plies.
	MaxDepth int
	// MoveTime is the wall-clock budget per BestMove call. Enforced by
	// cooperative polling before each candidate and each recursive call; a
	// single expensive leaf evaluation is never interrupted mid-flight.
	MoveTime time.Duration
	// CenterControl enables the optional center-occupancy evaluation term.
	CenterControl bool

	nodes    int
	deadline time.Time
}

// NewSearch returns an engine for the given side, search depth and
// per-move time budget.
func NewSearch(color gm.Color, depth int, moveTime time.Duration) *Search {
	return &Search{Color: color, MaxDepth: depth, MoveTime: moveTime}
}

// Nodes reports how many nodes the last BestMove call visited.
func (s *Search) Nodes() int { return s.nodes }

func (s *Search) timeExceeded() bool {
	return time.Now().After(s.deadline)
}

// BestMove picks the engine's move on the given board. It reports false
// only when the side to play has no legal move at all; an exhausted time
// budget degrades the answer to the best candidate evaluated so far (or the
// first legal move if none was), never to "no move".
//
// The board is only read: every candidate is explored on its own clone.
func (s *Search) BestMove(b *gm.Board) (gm.Move, bool) {
	s.nodes = 0
	s.deadline = time.Now().Add(s.MoveTime)

	moves := b.LegalMoves(s.Color)
	if len(moves) == 0 {
		return gm.Move{}, false
	}

	// Last-resort fallback if the budget expires before any candidate is
	// fully evaluated.
	best := moves[0]
	bestScore := -MaxScore
	alpha, beta := -MaxScore, MaxScore
	evaluated := 0

	for _, m := range moves {
		if s.timeExceeded() {
			break
		}

		clone := b.Copy()
		clone.Apply(m)
		score := s.minimax(clone, s.MaxDepth-1, alpha, beta, false)

		if evaluated == 0 || score > bestScore {
			bestScore = score
			best = m
		}
		evaluated++
		alpha = Max(alpha, score)
	}

	return best, true
}

// minimax returns the value of the position for the engine's color, walking
// the move tree to the given remaining depth with alpha-beta pruning. A
// maximizing node is one where the engine's own side is to move.
//
// On time-budget expiry mid-iteration it returns the best (worst) value
// accumulated so far rather than an unresolved sentinel.
func (s *Search) minimax(b *gm.Board, depth int, alpha, beta int32, maximizing bool) int32 {
	s.nodes++

	if s.timeExceeded() || depth <= 0 {
		return s.Evaluate(b)
	}

	mover := s.Color
	if !maximizing {
		mover = s.Color.Opposite()
	}

	moves := b.LegalMoves(mover)
	if len(moves) == 0 {
		if b.InCheck(mover) {
			// Checkmate is a loss for the side whose turn it is.
			if maximizing {
				return -MaxScore
			}
			return MaxScore
		}
		// Stalemate, and the defensive neutral value for any other
		// no-moves situation.
		return DrawScore
	}

	if maximizing {
		best := -MaxScore
		for _, m := range moves {
			if s.timeExceeded() {
				return best
			}
			clone := b.Copy()
			clone.Apply(m)
			value := s.minimax(clone, depth-1, alpha, beta, false)
			best = Max(best, value)
			alpha = Max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	worst := MaxScore
	for _, m := range moves {
		if s.timeExceeded() {
			return worst
		}
		clone := b.Copy()
		clone.Apply(m)
		value := s.minimax(clone, depth-1, alpha, beta, true)
		worst = Min(worst, value)
		beta = Min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return worst
}
