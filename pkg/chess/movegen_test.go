package chess

import (
	"sort"
	"testing"
)

func legalMoveStrings(t *testing.T, fen string) []string {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	moves := GenerateLegalMoves(pos)
	out := make([]string, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		out[i] = moves.At(i).String()
	}
	sort.Strings(out)
	return out
}

func TestPinnedKnightHasNoMoves(t *testing.T) {
	got := legalMoveStrings(t, "8/8/8/8/8/8/8/K2N2r1 w - - 0 1")
	want := []string{"a1a2", "a1b1", "a1b2"}
	sort.Strings(want)
	assertMoveSet(t, got, want)
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	got := legalMoveStrings(t, "8/7k/8/8/8/1n2Q3/8/K3r3 w - - 0 1")
	want := []string{"a1a2", "a1b2"}
	sort.Strings(want)
	assertMoveSet(t, got, want)
}

func TestEnPassantIllegalDiscoveredCheck(t *testing.T) {
	got := legalMoveStrings(t, "8/8/8/K1pP3q/8/8/8/8 w - c6 0 1")
	for _, m := range got {
		if m == "d5c6" {
			t.Fatalf("d5c6 should be illegal (discovered rank check), got legal set %v", got)
		}
	}
}

func TestEnPassantLegal(t *testing.T) {
	got := legalMoveStrings(t, "4k3/8/8/3pP3/8/8/2q5/4K3 w - d6 0 1")
	found := false
	for _, m := range got {
		if m == "e5d6" {
			found = true
		}
	}
	if !found {
		t.Fatalf("e5d6 should be legal, got %v", got)
	}
}

func assertMoveSet(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPromotionEmitsFourChoicesOnCorrectRank(t *testing.T) {
	// White pawn one step from promotion.
	pos, err := NewPositionFromFEN("8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := GenerateLegalMoves(pos)
	count := 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From == A7 && m.To == A8 {
			count++
		}
	}
	if count != 4 {
		t.Fatalf("expected 4 promotion choices from a7a8, got %d", count)
	}

	// Black pawn one step from promotion, on rank 0 not rank 7 — this is
	// the color-correct fix for the rank(end)==7-for-both-colors bug.
	posBlack, err := NewPositionFromFEN("k1K5/8/8/8/8/8/p7/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	movesBlack := GenerateLegalMoves(posBlack)
	countBlack := 0
	for i := 0; i < movesBlack.Len(); i++ {
		m := movesBlack.At(i)
		if m.From == A2 && m.To == A1 {
			countBlack++
		}
	}
	if countBlack != 4 {
		t.Fatalf("expected 4 promotion choices from a2a1, got %d", countBlack)
	}
}

func TestCastlingRightsClearOnKingMove(t *testing.T) {
	pos, err := NewPositionFromFEN("1nb1kbnr/8/8/3q4/8/8/8/rNBQKBN1 b k - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := Move{From: E8, To: D7}
	pos.Make(m)
	if pos.Castling() != 0 {
		t.Errorf("expected no castling rights left after e8d7, got %v", pos.Castling())
	}
}
