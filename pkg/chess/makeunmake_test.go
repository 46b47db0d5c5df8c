package chess

import "testing"

func TestMakeUnmakeRoundTrip(t *testing.T) {
	before, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		t.Fatal(err)
	}
	beforeFEN := before.String()

	before.Make(Move{From: B1, To: C3})
	if before.String() == beforeFEN {
		t.Fatal("position did not change after Make")
	}
	before.Unmake()

	if got := before.String(); got != beforeFEN {
		t.Errorf("after unmake, FEN = %q, want %q", got, beforeFEN)
	}
}

// TestMakeUnmakeRoundTripDeep walks every legal move from a set of
// tricky positions one ply deep, checking that make/unmake exactly
// restores every field the position exposes (spec property 1).
func TestMakeUnmakeRoundTripDeep(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"8/8/8/K1pP3q/8/8/8/8 w - c6 0 1",
		"4k3/8/8/3pP3/8/8/2q5/4K3 w - d6 0 1",
	}

	for _, fen := range fens {
		pos, err := NewPositionFromFEN(fen)
		if err != nil {
			t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
		}
		before := snapshot(pos)
		moves := GenerateLegalMoves(pos)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			pos.Make(m)
			pos.Unmake()
			after := snapshot(pos)
			if before != after {
				t.Fatalf("fen=%q move=%v: round trip mismatch\n before=%+v\n after=%+v", fen, m, before, after)
			}
		}
	}
}

type positionSnapshot struct {
	fen      string
	key      uint64
	undoDeep int
}

func snapshot(p *Position) positionSnapshot {
	return positionSnapshot{fen: p.String(), key: p.Key(), undoDeep: len(p.undoStack)}
}

func TestLegalMovesLeaveKingSafe(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/K2N2r1 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		moves := GenerateLegalMoves(pos)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			us := pos.SideToMove()
			pos.Make(m)
			if !pos.isSafe(pos.KingSquare(us), us.Opponent(), pos.occupancy()) {
				t.Errorf("fen=%q move=%v leaves king in check", fen, m)
			}
			pos.Unmake()
		}
	}
}
