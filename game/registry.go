package game

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a session ID has no live game.
var ErrNotFound = errors.New("game not found")

// Registry is a concurrent in-process store of game sessions keyed by ID.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewRegistry returns an empty session store.
func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*Game)}
}

// NewGame creates, registers and returns a fresh session.
func (r *Registry) NewGame() *Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := New()
	r.games[g.ID] = g
	return g
}

// Get looks up a session by ID.
func (r *Registry) Get(id string) (*Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// Remove drops a session. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
