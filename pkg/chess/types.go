// Package chess implements the bit-parallel board representation, magic
// move generation and legal move generator that drive a fixed-depth
// alpha-beta chess engine.
package chess

import "strings"

// Color identifies the side to move.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return 1 - c
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Piece identifies a kind of chess piece, or the absence of one.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const pieceLetters = "-PNBRQK"

func (p Piece) String() string {
	return string(pieceLetters[p])
}

// CastlingRights is a 4-bit mask over the four castling privileges.
type CastlingRights int

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// Square is an index in [0,63], a1=0, h1=7, a8=56, h8=63. NoSquare is the
// sentinel used for an absent en-passant target.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// File returns sq's file in [0,7].
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns sq's rank in [0,7].
func (sq Square) Rank() int { return int(sq) >> 3 }

// FlipRank mirrors a square vertically, used to orient piece-square
// tables for Black.
func (sq Square) FlipRank() Square { return sq ^ 56 }

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string(fileNames[sq.File()]) + string(rankNames[sq.Rank()])
}

// MakeSquare builds a Square from file and rank in [0,7].
func MakeSquare(file, rank int) Square {
	return Square(rank<<3 | file)
}

// ParseSquare parses algebraic square notation, or "-" for NoSquare.
func ParseSquare(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	if len(s) != 2 {
		return NoSquare, errMalformedSquare(s)
	}
	file := strings.IndexByte(fileNames, s[0])
	rank := strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return NoSquare, errMalformedSquare(s)
	}
	return MakeSquare(file, rank), nil
}

func errMalformedSquare(s string) error {
	return &parseError{kind: "square", text: s}
}

const MaxMoves = 256
