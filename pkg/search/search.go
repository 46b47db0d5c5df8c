// Package search implements a fixed-depth negamax alpha-beta search over
// pkg/chess positions, scored by pkg/eval. There is no iterative
// deepening, transposition table, or time control: a search of depth d
// always runs to completion.
package search

import (
	"math"

	"github.com/talon-chess/talon/pkg/chess"
	"github.com/talon-chess/talon/pkg/eval"
)

// Inf is the mate/no-move sentinel score, comfortably outside any
// material+PST evaluation so it always dominates real scores in
// comparisons.
const Inf = math.MaxInt32 / 2

// Result is the outcome of a fixed-depth search from the root.
type Result struct {
	BestMove chess.Move
	Score    int
	Nodes    int64
}

// Search returns the root move maximizing the negamax score at depth.
// depth must be at least 1. With no legal moves at the root, the result
// has a zero BestMove and Score -Inf (the UCI layer prints "bestmove 0000").
func Search(pos *chess.Position, depth int) Result {
	s := &searcher{pos: pos}
	moves := chess.GenerateLegalMoves(pos)

	best := Result{Score: -Inf}
	alpha, beta := -Inf, Inf

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.Make(m)
		score := -s.negamax(depth-1, -beta, -alpha)
		pos.Unmake()

		if i == 0 || score > best.Score {
			best.Score = score
			best.BestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}
	best.Nodes = s.nodes
	return best
}

type searcher struct {
	pos   *chess.Position
	nodes int64
}

// negamax returns the score of pos from the side to move's perspective,
// searching depth plies with alpha-beta bounds [alpha, beta].
func (s *searcher) negamax(depth, alpha, beta int) int {
	s.nodes++

	if depth == 0 {
		return eval.Evaluate(s.pos)
	}

	moves := chess.GenerateLegalMoves(s.pos)
	if moves.Len() == 0 {
		if s.pos.InCheck() {
			return -Inf
		}
		return 0
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		s.pos.Make(m)
		score := -s.negamax(depth-1, -beta, -alpha)
		s.pos.Unmake()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
