package chess

import "testing"

// TestMagicPerfectHash checks the perfect-hash property (spec property 5):
// for every subset of a square's blocker mask, the magic-indexed lookup
// matches a naive ray-trace over that subset as occupancy.
func TestMagicPerfectHash(t *testing.T) {
	squares := []Square{A1, D4, E4, H8, A8, H1, D1, E5}

	for _, sq := range squares {
		bMask := relevantBishopMask(sq)
		for i := 0; i < 1<<bMask.PopCount(); i++ {
			occ := spreadBits(i, bMask)
			want := bishopAttacksSlow(sq, occ)
			got := bishopAttacks(sq, occ)
			if got != want {
				t.Fatalf("bishopAttacks(%v, %#x) = %#x, want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}

		rMask := relevantRookMask(sq)
		for i := 0; i < 1<<rMask.PopCount(); i++ {
			occ := spreadBits(i, rMask)
			want := rookAttacksSlow(sq, occ)
			got := rookAttacks(sq, occ)
			if got != want {
				t.Fatalf("rookAttacks(%v, %#x) = %#x, want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}

func TestSpreadBitsCoversPowerset(t *testing.T) {
	mask := BitBoard(0b1011) // bits 0,1,3
	seen := map[BitBoard]bool{}
	for i := 0; i < 1<<mask.PopCount(); i++ {
		seen[spreadBits(i, mask)] = true
	}
	if len(seen) != 1<<mask.PopCount() {
		t.Errorf("spreadBits produced %d distinct subsets, want %d", len(seen), 1<<mask.PopCount())
	}
	for subset := range seen {
		if subset&^mask != 0 {
			t.Errorf("spreadBits produced %#x, outside mask %#x", uint64(subset), uint64(mask))
		}
	}
}
