// Package eval scores a position from the side to move's perspective
// using material balance plus static piece-square tables.
package eval

import "github.com/talon-chess/talon/pkg/chess"

// centiPawns gives the material worth of each piece kind; kings are
// priceless and never looked up here.
var centiPawns = [7]int{
	chess.Empty:  0,
	chess.Pawn:   100,
	chess.Knight: 325,
	chess.Bishop: 350,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// pieceSquareTables holds one 64-entry table per non-king piece kind,
// oriented for White with a8 at the visual top; fromTopDown converts the
// row-major literals below (written the way a board is printed, rank 8
// first) into tables indexed by the engine's a1=0 square numbering.
var pieceSquareTables [7][64]int

func fromTopDown(rows [64]int) [64]int {
	var out [64]int
	for row := 0; row < 8; row++ {
		rank := 7 - row
		for file := 0; file < 8; file++ {
			out[rank*8+file] = rows[row*8+file]
		}
	}
	return out
}

func init() {
	pieceSquareTables[chess.Pawn] = fromTopDown([64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	})
	pieceSquareTables[chess.Knight] = fromTopDown([64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	})
	pieceSquareTables[chess.Bishop] = fromTopDown([64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	})
	pieceSquareTables[chess.Rook] = fromTopDown([64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	})
	pieceSquareTables[chess.Queen] = fromTopDown([64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	})
}

// nonKingPieces fixes evaluation's iteration order.
var nonKingPieces = [5]chess.Piece{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen}

// Evaluate scores pos in centipawns from the side to move's perspective:
// positive means the mover stands better.
func Evaluate(pos *chess.Position) int {
	us := pos.SideToMove()
	opp := us.Opponent()
	score := 0

	for _, piece := range nonKingPieces {
		ours := pos.PieceBB(piece) & pos.ColorBB(us)
		theirs := pos.PieceBB(piece) & pos.ColorBB(opp)

		diff := ours.PopCount() - theirs.PopCount()
		score += diff * centiPawns[piece]

		table := &pieceSquareTables[piece]
		ours.Iter(func(sq chess.Square) {
			oriented := sq
			if us == chess.Black {
				oriented = sq.FlipRank()
			}
			score += table[oriented]
		})
		theirs.Iter(func(sq chess.Square) {
			oriented := sq
			if opp == chess.Black {
				oriented = sq.FlipRank()
			}
			score -= table[oriented]
		})
	}

	return score
}
