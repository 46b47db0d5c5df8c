package chess

import "math/bits"

// BitBoard is a 64-bit set of squares: bit i is set iff square i is a
// member. Squares are numbered a1=0 .. h8=63.
type BitBoard uint64

const (
	Empty64 BitBoard = 0
	All     BitBoard = 0xFFFF_FFFF_FFFF_FFFF
	// Edges is the ring of squares adjacent to the board's border.
	Edges BitBoard = 0xff818181818181ff
)

const (
	FileAMask BitBoard = 0x0101010101010101 << iota
	FileBMask
	FileCMask
	FileDMask
	FileEMask
	FileFMask
	FileGMask
	FileHMask
)

var FileMasks = [8]BitBoard{
	FileAMask, FileBMask, FileCMask, FileDMask, FileEMask, FileFMask, FileGMask, FileHMask,
}

const (
	Rank1Mask BitBoard = 0xFF << (8 * iota)
	Rank2Mask
	Rank3Mask
	Rank4Mask
	Rank5Mask
	Rank6Mask
	Rank7Mask
	Rank8Mask
)

var RankMasks = [8]BitBoard{
	Rank1Mask, Rank2Mask, Rank3Mask, Rank4Mask, Rank5Mask, Rank6Mask, Rank7Mask, Rank8Mask,
}

// SquareMask[sq] is the singleton bitboard for sq.
var SquareMask [64]BitBoard

func init() {
	for sq := 0; sq < 64; sq++ {
		SquareMask[sq] = BitBoard(1) << uint(sq)
	}
}

func squareBB(sq Square) BitBoard { return BitBoard(1) << uint(sq) }

// Set returns b with sq added.
func (b BitBoard) Set(sq Square) BitBoard { return b | squareBB(sq) }

// Clear returns b with sq removed.
func (b BitBoard) Clear(sq Square) BitBoard { return b &^ squareBB(sq) }

// Test reports whether sq is a member of b.
func (b BitBoard) Test(sq Square) bool { return b&squareBB(sq) != 0 }

// SetIfInRange sets the bit for (file,rank) iff both coordinates lie in
// [0,7]; otherwise it silently leaves b unchanged. This guards edge
// arithmetic when building the static attack tables.
func (b BitBoard) SetIfInRange(file, rank int) BitBoard {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return b
	}
	return b.Set(MakeSquare(file, rank))
}

func (b BitBoard) Union(other BitBoard) BitBoard        { return b | other }
func (b BitBoard) Intersection(other BitBoard) BitBoard { return b & other }
func (b BitBoard) Complement() BitBoard                 { return ^b }
func (b BitBoard) Xor(other BitBoard) BitBoard          { return b ^ other }
func (b BitBoard) IsEmpty() bool                        { return b == 0 }

// PopCount returns the number of set squares.
func (b BitBoard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// MoreThanOne reports whether b has two or more set squares.
func (b BitBoard) MoreThanOne() bool { return b != 0 && (b-1)&b != 0 }

// Lsb returns the index of the least significant set bit. It is undefined
// for the empty board.
func (b BitBoard) Lsb() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// PopLsb clears and returns the least significant set bit's square.
func (b BitBoard) PopLsb() (Square, BitBoard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// Iter calls fn for every set square in ascending order.
func (b BitBoard) Iter(fn func(sq Square)) {
	for x := b; x != 0; x &= x - 1 {
		fn(x.Lsb())
	}
}

// Squares materializes b's members in ascending order.
func (b BitBoard) Squares() []Square {
	result := make([]Square, 0, b.PopCount())
	b.Iter(func(sq Square) { result = append(result, sq) })
	return result
}

func wholeFile(f int) BitBoard { return FileMasks[f] }
func wholeRank(r int) BitBoard { return RankMasks[r] }

// leftOf returns all files strictly less than f. leftOf(0) is empty.
func leftOf(f int) BitBoard {
	var b BitBoard
	for i := 0; i < f; i++ {
		b |= FileMasks[i]
	}
	return b
}

// rightOf returns all files strictly greater than f. rightOf(7) is empty.
func rightOf(f int) BitBoard {
	var b BitBoard
	for i := f + 1; i < 8; i++ {
		b |= FileMasks[i]
	}
	return b
}

// above returns all ranks strictly greater than r.
func above(r int) BitBoard {
	var b BitBoard
	for i := r + 1; i < 8; i++ {
		b |= RankMasks[i]
	}
	return b
}

// below returns all ranks strictly less than r.
func below(r int) BitBoard {
	var b BitBoard
	for i := 0; i < r; i++ {
		b |= RankMasks[i]
	}
	return b
}

func up(b BitBoard) BitBoard    { return b << 8 }
func down(b BitBoard) BitBoard  { return b >> 8 }
func right(b BitBoard) BitBoard { return (b &^ FileHMask) << 1 }
func left(b BitBoard) BitBoard  { return (b &^ FileAMask) >> 1 }

func upRight(b BitBoard) BitBoard   { return up(right(b)) }
func upLeft(b BitBoard) BitBoard    { return up(left(b)) }
func downRight(b BitBoard) BitBoard { return down(right(b)) }
func downLeft(b BitBoard) BitBoard  { return down(left(b)) }

func (b BitBoard) String() string {
	s := "("
	first := true
	b.Iter(func(sq Square) {
		if !first {
			s += ","
		}
		first = false
		s += sq.String()
	})
	return s + ")"
}
