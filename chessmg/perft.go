package chessmg

// Perft counts leaf nodes of the legal move tree to the given depth, using
// the same clone+apply expansion the search uses. Promotion choice is
// deferred to application time, so a promoting (from,to) pair counts once
// rather than once per piece kind.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves(b.sideToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		clone := b.Copy()
		clone.Apply(m)
		nodes += Perft(clone, depth-1)
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts at the given depth.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range b.LegalMoves(b.sideToMove) {
		clone := b.Copy()
		clone.Apply(m)
		div[m] = Perft(clone, depth-1)
	}
	return div
}
