package chess

import "strings"

// Move packs from/to/promotion into a small value type; movingPiece and
// capturedPiece are not encoded since the generator and make/unmake share
// a Position and can look them up, keeping Move cheap to compare and copy.
type Move struct {
	From, To  Square
	Promotion Piece // Empty unless this move promotes
}

func (m Move) IsZero() bool { return m.From == 0 && m.To == 0 && m.Promotion == Empty }

// String renders long algebraic notation: e2e4, e7e8q.
func (m Move) String() string {
	if m.Promotion == Empty {
		return m.From.String() + m.To.String()
	}
	return m.From.String() + m.To.String() + strings.ToLower(m.Promotion.String())
}

var promotionLetters = map[byte]Piece{'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen}

// ParseMoveLAN parses long algebraic move text: four characters for
// from/to, an optional fifth promotion-piece character.
func ParseMoveLAN(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &parseError{kind: "move", text: s}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil || from == NoSquare {
		return Move{}, &parseError{kind: "move", text: s}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil || to == NoSquare {
		return Move{}, &parseError{kind: "move", text: s}
	}
	promo := Empty
	if len(s) == 5 {
		p, ok := promotionLetters[s[4]]
		if !ok {
			return Move{}, &parseError{kind: "move", text: s}
		}
		promo = p
	}
	return Move{From: from, To: to, Promotion: promo}, nil
}

// MoveList is a fixed-capacity, stack-friendly slice of moves sized to
// spec's MaxMoves bound on any single legal position.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

func (l *MoveList) add(m Move) { l.moves[l.n] = m; l.n++ }

func (l *MoveList) Len() int          { return l.n }
func (l *MoveList) At(i int) Move     { return l.moves[i] }
func (l *MoveList) Slice() []Move     { return l.moves[:l.n] }
