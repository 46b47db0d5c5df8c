package search

import (
	"testing"

	"github.com/talon-chess/talon/pkg/chess"
)

func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := chess.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return pos
}

// TestSearchFindsBackRankMate: black's king on g8 is boxed in by its own
// pawns, so Re1e8 delivers mate. Depth 2 is needed for the mate to surface:
// a depth-0 leaf only evaluates statically, so the terminal check happens
// one ply up, at the node right after the mating move.
func TestSearchFindsBackRankMate(t *testing.T) {
	pos := mustPosition(t, "6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	result := Search(pos, 2)

	want := chess.Move{From: chess.E1, To: chess.E8}
	if result.BestMove != want {
		t.Errorf("BestMove = %v, want %v", result.BestMove, want)
	}
	if result.Score != Inf {
		t.Errorf("Score = %d, want %d (mate)", result.Score, Inf)
	}
}

// TestSearchStalemateIsZero uses the textbook king-too-close stalemate: the
// black king on h8 has no legal move and is not in check.
func TestSearchStalemateIsZero(t *testing.T) {
	pos := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if moves := chess.GenerateLegalMoves(pos); moves.Len() != 0 {
		t.Fatalf("expected stalemate position to have no legal moves, got %d", moves.Len())
	}
	if pos.InCheck() {
		t.Fatalf("expected stalemate position not to be in check")
	}

	s := &searcher{pos: pos}
	if got := s.negamax(1, -Inf, Inf); got != 0 {
		t.Errorf("negamax(stalemate) = %d, want 0", got)
	}
}

func TestSearchDeterministic(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	first := Search(mustPosition(t, fen), 3)
	second := Search(mustPosition(t, fen), 3)

	if first.BestMove != second.BestMove || first.Score != second.Score || first.Nodes != second.Nodes {
		t.Errorf("Search not deterministic: %+v vs %+v", first, second)
	}
}

func TestSearchLeavesPositionUnchanged(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos := mustPosition(t, fen)
	before := pos.String()
	Search(pos, 3)
	if got := pos.String(); got != before {
		t.Errorf("Search mutated the position: got %q, want %q", got, before)
	}
}
