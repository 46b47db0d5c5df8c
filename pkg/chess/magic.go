package chess

import (
	"math/bits"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// magicEntry is a single square's perfect-hash descriptor: the relevant
// occupancy mask, the multiplier found by search, the shift bringing the
// product into the index range, and this square's offset into the shared
// attack table.
type magicEntry struct {
	mask       BitBoard
	multiplier uint64
	shift      uint
	offset     int
}

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry

	// bishopTable and rookTable are flat, shared across all squares; each
	// magicEntry.offset marks where its square's slice begins.
	bishopTable []BitBoard
	rookTable   []BitBoard
)

// relevantMaskRay walks dir from sq, stopping one square short of the
// edge: a piece on the final square of a ray can never block anything
// further, so it is irrelevant to the attack set and excluded from the
// hash key, keeping the blocker mask (and so the table) as small as
// possible per spec's magic-bitboard scheme.
func relevantMaskRay(sq Square, dir func(BitBoard) BitBoard) BitBoard {
	var mask BitBoard
	b := squareBB(sq)
	for {
		next := dir(b)
		if next == 0 {
			return mask
		}
		if dir(next) == 0 {
			// next is the last square on the board for this ray.
			return mask
		}
		mask |= next
		b = next
	}
}

// relevantBishopMask/relevantRookMask return the blocker squares that can
// possibly affect a slider's attack set from sq.
func relevantBishopMask(sq Square) BitBoard {
	var mask BitBoard
	for _, dir := range []func(BitBoard) BitBoard{upRight, upLeft, downRight, downLeft} {
		mask |= relevantMaskRay(sq, dir)
	}
	return mask
}

func relevantRookMask(sq Square) BitBoard {
	var mask BitBoard
	for _, dir := range []func(BitBoard) BitBoard{up, down, left, right} {
		mask |= relevantMaskRay(sq, dir)
	}
	return mask
}

// slideRay walks each direction function from sq, one step at a time,
// stopping (inclusive of the blocking square) whenever the current square
// intersects occ, or immediately when the walk falls off the board.
func slideRay(sq Square, dirs []func(BitBoard) BitBoard, occ BitBoard) BitBoard {
	var attacks BitBoard
	for _, dir := range dirs {
		b := squareBB(sq)
		for {
			b = dir(b)
			if b == 0 {
				break
			}
			attacks |= b
			if b&occ != 0 {
				break
			}
		}
	}
	return attacks
}

func bishopAttacksSlow(sq Square, occ BitBoard) BitBoard {
	return slideRay(sq, []func(BitBoard) BitBoard{upRight, upLeft, downRight, downLeft}, occ)
}

func rookAttacksSlow(sq Square, occ BitBoard) BitBoard {
	return slideRay(sq, []func(BitBoard) BitBoard{up, down, left, right}, occ)
}

// spreadBits maps the set bits of index onto the set-bit positions of
// mask, in ascending order, enumerating one member of mask's powerset per
// index in [0, 1<<mask.PopCount()).
func spreadBits(index int, mask BitBoard) BitBoard {
	var result BitBoard
	bit := 0
	mask.Iter(func(sq Square) {
		if index&(1<<uint(bit)) != 0 {
			result = result.Set(sq)
		}
		bit++
	})
	return result
}

// randomFewBitsSet draws a sparse 64-bit candidate: ANDing three
// independent draws biases the result toward few set bits, which is what
// makes good multipliers findable at all for sparse blocker masks.
func randomFewBitsSet(rng *rand.Rand) uint64 {
	return rng.Uint64() & rng.Uint64() & rng.Uint64()
}

// findMagic performs the randomized trial search of spec's magic-number
// scheme: repeatedly draw a sparse candidate multiplier and check that it
// hashes every blocker subset in blockers to a distinct index. The stream
// is seeded per-square so the whole table is reproducible across runs.
func findMagic(sq Square, mask BitBoard, blockers, attacks []BitBoard, shift uint, seed int64) uint64 {
	rng := rand.New(rand.NewSource(seed))
	size := 1 << (64 - shift)
	used := make([]bool, size)

	for attempt := 0; attempt < 100_000_000; attempt++ {
		magic := randomFewBitsSet(rng)
		// A multiplier whose top byte collects too few bits from the mask
		// can't possibly spread occupancy variation across the index;
		// reject early the way the offline search does.
		if bits.OnesCount64(uint64(mask)*magic&0xFF00000000000000) < 6 {
			continue
		}

		for i := range used {
			used[i] = false
		}

		ok := true
		for _, occ := range blockers {
			idx := (uint64(occ) * magic) >> shift
			if used[idx] {
				ok = false
				break
			}
			used[idx] = true
		}
		if ok {
			return magic
		}
	}
	// Practically unreachable for 64-bit sliders with correctly-sized
	// masks; a zero magic would corrupt every lookup, so surface the
	// failure loudly instead of shipping a broken table.
	panic("chess: magic search exhausted attempts for square")
}

func buildMagic(sq Square, relevantMask func(Square) BitBoard, slow func(Square, BitBoard) BitBoard, seed int64) (magicEntry, []BitBoard) {
	mask := relevantMask(sq)
	bitCount := mask.PopCount()
	shift := uint(64 - bitCount)
	size := 1 << bitCount

	blockers := make([]BitBoard, size)
	attacks := make([]BitBoard, size)
	for i := 0; i < size; i++ {
		occ := spreadBits(i, mask)
		blockers[i] = occ
		attacks[i] = slow(sq, occ)
	}

	magic := findMagic(sq, mask, blockers, attacks, shift, seed)

	table := make([]BitBoard, size)
	for i, occ := range blockers {
		idx := (uint64(occ) * magic) >> shift
		table[idx] = attacks[i]
	}

	return magicEntry{mask: mask, multiplier: magic, shift: shift}, table
}

func init() {
	var bishopParts, rookParts [64][]BitBoard
	var g errgroup.Group

	for i := 0; i < 64; i++ {
		sq := Square(i)
		g.Go(func() error {
			entry, table := buildMagic(sq, relevantBishopMask, bishopAttacksSlow, int64(sq)*2+1)
			bishopMagics[sq] = entry
			bishopParts[sq] = table
			return nil
		})
		g.Go(func() error {
			entry, table := buildMagic(sq, relevantRookMask, rookAttacksSlow, int64(sq)*2+2)
			rookMagics[sq] = entry
			rookParts[sq] = table
			return nil
		})
	}
	_ = g.Wait()

	for sq := 0; sq < 64; sq++ {
		bishopMagics[sq].offset = len(bishopTable)
		bishopTable = append(bishopTable, bishopParts[sq]...)
		rookMagics[sq].offset = len(rookTable)
		rookTable = append(rookTable, rookParts[sq]...)
	}
}

func bishopAttacks(sq Square, occ BitBoard) BitBoard {
	m := &bishopMagics[sq]
	idx := (uint64(occ&m.mask) * m.multiplier) >> m.shift
	return bishopTable[m.offset+int(idx)]
}

func rookAttacks(sq Square, occ BitBoard) BitBoard {
	m := &rookMagics[sq]
	idx := (uint64(occ&m.mask) * m.multiplier) >> m.shift
	return rookTable[m.offset+int(idx)]
}

func queenAttacks(sq Square, occ BitBoard) BitBoard {
	return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
}
