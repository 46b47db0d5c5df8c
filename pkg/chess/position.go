package chess

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// MoveKind classifies an applied move for undo purposes.
type MoveKind int

const (
	Normal MoveKind = iota
	CastleWK
	CastleWQ
	CastleBK
	CastleBQ
	EnPassant
	Promotion
)

// UndoRecord holds everything needed to reverse one applied move.
type UndoRecord struct {
	Mover         Piece
	Captured      Piece
	From, To      Square
	PriorEP       Square
	PriorCastling CastlingRights
	PriorHalfmove int
	PriorFullmove int
	PriorKey      uint64
	Kind          MoveKind
	Promotion     Piece
}

// Position is the complete, mutable game state. Zero value is not valid;
// build one with NewPosition or NewPositionFromFEN.
type Position struct {
	pieces [7]BitBoard // indexed by Piece; pieces[Empty] is unused
	colors [2]BitBoard

	sideToMove    Color
	castling      CastlingRights
	epTarget      Square
	halfmoveClock int
	fullmove      int

	key uint64

	undoStack []UndoRecord
}

// InitialFEN is the standard chess starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// occupancy returns the union of both color bitboards. §9 calls out a
// draft that computed this with AND instead of OR; it must be a union.
func (p *Position) occupancy() BitBoard {
	return p.colors[White] | p.colors[Black]
}

func (p *Position) empty() BitBoard { return ^p.occupancy() }

// PieceBB returns the bitboard for a piece kind, both colors.
func (p *Position) PieceBB(pc Piece) BitBoard { return p.pieces[pc] }

// ColorBB returns the bitboard for a color.
func (p *Position) ColorBB(c Color) BitBoard { return p.colors[c] }

// PieceAt scans the piece bitboards for the occupant of sq, returning
// (Empty, White) if unoccupied.
func (p *Position) PieceAt(sq Square) (Piece, Color) {
	if !p.occupancy().Test(sq) {
		return Empty, White
	}
	color := White
	if p.colors[Black].Test(sq) {
		color = Black
	}
	for pc := Pawn; pc <= King; pc++ {
		if p.pieces[pc].Test(sq) {
			return pc, color
		}
	}
	return Empty, color
}

func (p *Position) SideToMove() Color            { return p.sideToMove }
func (p *Position) Castling() CastlingRights      { return p.castling }
func (p *Position) EpTarget() Square              { return p.epTarget }
func (p *Position) HalfmoveClock() int            { return p.halfmoveClock }
func (p *Position) Key() uint64                   { return p.key }
func (p *Position) KingSquare(c Color) Square {
	return (p.pieces[King] & p.colors[c]).Lsb()
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	us := p.sideToMove
	return !p.attackersTo(p.KingSquare(us), us.Opponent(), p.occupancy()).IsEmpty()
}

// NewPosition builds the standard starting position.
func NewPosition() *Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic("chess: invalid built-in initial FEN: " + err.Error())
	}
	return pos
}

var fenPieceToKind = map[byte]Piece{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// NewPositionFromFEN parses a standard six-field FEN record. The side to
// move must have exactly one king; the other side may have none or one.
func NewPositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenError("expected at least 4 fields, got %d", len(fields))
	}

	p := &Position{epTarget: NoSquare, fullmove: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				lower := byte(ch)
				if lower >= 'A' && lower <= 'Z' {
					lower += 'a' - 'A'
				}
				kind, ok := fenPieceToKind[lower]
				if !ok {
					return nil, fenError("unknown piece char %q", ch)
				}
				if file > 7 {
					return nil, fenError("rank %d overflows the board", i)
				}
				color := Black
				if ch >= 'A' && ch <= 'Z' {
					color = White
				}
				sq := MakeSquare(file, rank)
				p.pieces[kind] = p.pieces[kind].Set(sq)
				p.colors[color] = p.colors[color].Set(sq)
				file++
			}
		}
		if file != 8 {
			return nil, fenError("rank %d does not sum to 8 files", i)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fenError("bad side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= WhiteKingSide
			case 'Q':
				p.castling |= WhiteQueenSide
			case 'k':
				p.castling |= BlackKingSide
			case 'q':
				p.castling |= BlackQueenSide
			default:
				return nil, fenError("bad castling char %q", ch)
			}
		}
	}

	ep, err := ParseSquare(fields[3])
	if err != nil {
		return nil, err
	}
	p.epTarget = ep

	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fenError("bad halfmove clock %q", fields[4])
		}
		p.halfmoveClock = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fenError("bad fullmove number %q", fields[5])
		}
		p.fullmove = fm
	}

	if (p.pieces[King] & p.colors[p.sideToMove]).PopCount() != 1 ||
		(p.pieces[King] & p.colors[p.sideToMove.Opponent()]).PopCount() > 1 {
		return nil, fenError("side to move needs exactly one king, the other side at most one")
	}

	p.key = p.computeKey()
	return p, nil
}

// String renders the position as a FEN record.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			pc, color := p.PieceAt(sq)
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pc.String()
			if color == Black {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&WhiteKingSide != 0 {
			sb.WriteByte('K')
		}
		if p.castling&WhiteQueenSide != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&BlackKingSide != 0 {
			sb.WriteByte('k')
		}
		if p.castling&BlackQueenSide != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.epTarget.String())

	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmove)
	return sb.String()
}

// Zobrist hashing. Grounded on the teacher's fixed-seed rand.Source for
// reproducible keys; keys are used only to distinguish positions in tests
// and are not consulted by search (no transposition table, per scope).
var (
	zobristPieceSquare [2][7][64]uint64
	zobristCastling    [16]uint64
	zobristEpFile      [8]uint64
	zobristSideToMove  uint64
)

func init() {
	rng := rand.New(rand.NewSource(0))
	for c := 0; c < 2; c++ {
		for pc := Pawn; pc <= King; pc++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieceSquare[c][pc][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEpFile {
		zobristEpFile[i] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

func (p *Position) computeKey() uint64 {
	var key uint64
	for c := Color(White); c <= Black; c++ {
		for pc := Pawn; pc <= King; pc++ {
			(p.pieces[pc] & p.colors[c]).Iter(func(sq Square) {
				key ^= zobristPieceSquare[c][pc][sq]
			})
		}
	}
	key ^= zobristCastling[p.castling]
	if p.epTarget != NoSquare {
		key ^= zobristEpFile[p.epTarget.File()]
	}
	if p.sideToMove == Black {
		key ^= zobristSideToMove
	}
	return key
}
