package chess

// PerftResult carries the total leaf count together with a per-move
// breakdown at the root, useful for diffing against a reference engine
// when a perft mismatch needs to be isolated to a single root move.
type PerftResult struct {
	Nodes   uint64
	Divide  map[string]uint64
}

// Perft counts the leaf positions reachable by depth-d legal-move play
// from pos. Perft(pos, 0) = 1.
func Perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(pos)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.Make(m)
		nodes += Perft(pos, depth-1)
		pos.Unmake()
	}
	return nodes
}

// Divide runs Perft one ply at a time from the root, reporting the node
// count contributed by each individual root move; a debugging aid for
// isolating a discrepancy against a known-good perft count.
func Divide(pos *Position, depth int) PerftResult {
	result := PerftResult{Divide: make(map[string]uint64)}
	if depth == 0 {
		result.Nodes = 1
		return result
	}
	moves := GenerateLegalMoves(pos)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.Make(m)
		n := Perft(pos, depth-1)
		pos.Unmake()
		result.Divide[m.String()] = n
		result.Nodes += n
	}
	return result
}
