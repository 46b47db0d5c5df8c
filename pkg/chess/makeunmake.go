package chess

// canonical castling moves, used to classify a Move without threading an
// explicit "this is castling" flag through the generator.
var (
	whiteCastleK = Move{From: E1, To: G1}
	whiteCastleQ = Move{From: E1, To: C1}
	blackCastleK = Move{From: E8, To: G8}
	blackCastleQ = Move{From: E8, To: C8}
)

func classifyKind(pos *Position, m Move, mover Piece) MoveKind {
	if mover == Pawn && m.To == pos.epTarget && pos.epTarget != NoSquare {
		return EnPassant
	}
	if mover == King {
		switch m {
		case whiteCastleK:
			return CastleWK
		case whiteCastleQ:
			return CastleWQ
		case blackCastleK:
			return CastleBK
		case blackCastleQ:
			return CastleBQ
		}
	}
	if mover == Pawn {
		promoRank := Rank8
		if pos.sideToMove == Black {
			promoRank = Rank1
		}
		if m.To.Rank() == promoRank {
			return Promotion
		}
	}
	return Normal
}

// castleRookSquares maps a castling MoveKind to the rook's from/to.
func castleRookSquares(kind MoveKind) (from, to Square) {
	switch kind {
	case CastleWK:
		return H1, F1
	case CastleWQ:
		return A1, D1
	case CastleBK:
		return H8, F8
	case CastleBQ:
		return A8, D8
	}
	return NoSquare, NoSquare
}

func (p *Position) setPiece(pc Piece, c Color, sq Square) {
	p.pieces[pc] = p.pieces[pc].Set(sq)
	p.colors[c] = p.colors[c].Set(sq)
	p.key ^= zobristPieceSquare[c][pc][sq]
}

func (p *Position) clearPiece(pc Piece, c Color, sq Square) {
	p.pieces[pc] = p.pieces[pc].Clear(sq)
	p.colors[c] = p.colors[c].Clear(sq)
	p.key ^= zobristPieceSquare[c][pc][sq]
}

func (p *Position) movePieceBB(pc Piece, c Color, from, to Square) {
	p.clearPiece(pc, c, from)
	p.setPiece(pc, c, to)
}

// castleRightsLost returns the mask of rights to clear because sq (either
// a from- or to-square of the move) is a king or rook home square. The
// conservative rule of stripping on any touch is correct even for a
// square that never held a right in the first place.
func castleRightsLost(sq Square) CastlingRights {
	switch sq {
	case E1:
		return WhiteKingSide | WhiteQueenSide
	case H1:
		return WhiteKingSide
	case A1:
		return WhiteQueenSide
	case E8:
		return BlackKingSide | BlackQueenSide
	case H8:
		return BlackKingSide
	case A8:
		return BlackQueenSide
	}
	return 0
}

// Make applies m to p in place, pushing an UndoRecord that Unmake later
// consumes. m is assumed to be a member of GenerateLegalMoves(p); Make
// does not itself validate legality.
func (p *Position) Make(m Move) {
	us := p.sideToMove
	opp := us.Opponent()
	mover, _ := p.PieceAt(m.From)
	captured, _ := p.PieceAt(m.To)
	kind := classifyKind(p, m, mover)

	rec := UndoRecord{
		Mover:         mover,
		Captured:      captured,
		From:          m.From,
		To:            m.To,
		PriorEP:       p.epTarget,
		PriorCastling: p.castling,
		PriorHalfmove: p.halfmoveClock,
		PriorFullmove: p.fullmove,
		PriorKey:      p.key,
		Kind:          kind,
		Promotion:     m.Promotion,
	}
	if kind == EnPassant {
		rec.Captured = Pawn
	}

	if mover == Pawn || captured != Empty || kind == EnPassant {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.castling &^= castleRightsLost(m.From) | castleRightsLost(m.To)

	p.key ^= zobristCastling[rec.PriorCastling]
	p.key ^= zobristCastling[p.castling]
	if rec.PriorEP != NoSquare {
		p.key ^= zobristEpFile[rec.PriorEP.File()]
	}

	newEP := NoSquare
	if mover == Pawn {
		isDouble := (m.To - m.From == 16) || (m.From - m.To == 16)
		if isDouble {
			transit := (m.From + m.To) / 2
			if !(pawnAttacks[us][transit] & p.pieces[Pawn] & p.colors[opp]).IsEmpty() {
				newEP = transit
			}
		}
	}
	p.epTarget = newEP
	if p.epTarget != NoSquare {
		p.key ^= zobristEpFile[p.epTarget.File()]
	}

	switch kind {
	case EnPassant:
		var victim Square
		if us == White {
			victim = m.To - 8
		} else {
			victim = m.To + 8
		}
		p.clearPiece(Pawn, opp, victim)
		p.movePieceBB(Pawn, us, m.From, m.To)
	case Promotion:
		p.clearPiece(Pawn, us, m.From)
		if captured != Empty {
			p.clearPiece(captured, opp, m.To)
		}
		p.setPiece(m.Promotion, us, m.To)
	case CastleWK, CastleWQ, CastleBK, CastleBQ:
		p.movePieceBB(King, us, m.From, m.To)
		rookFrom, rookTo := castleRookSquares(kind)
		p.movePieceBB(Rook, us, rookFrom, rookTo)
	default:
		if captured != Empty {
			p.clearPiece(captured, opp, m.To)
		}
		p.movePieceBB(mover, us, m.From, m.To)
	}

	if us == Black {
		p.fullmove++
	}

	p.sideToMove = opp
	p.key ^= zobristSideToMove

	p.undoStack = append(p.undoStack, rec)
}

// Unmake reverses the most recent Make call.
func (p *Position) Unmake() {
	n := len(p.undoStack)
	rec := p.undoStack[n-1]
	p.undoStack = p.undoStack[:n-1]

	p.sideToMove = p.sideToMove.Opponent()
	us := p.sideToMove
	opp := us.Opponent()

	switch rec.Kind {
	case EnPassant:
		var victim Square
		if us == White {
			victim = rec.To - 8
		} else {
			victim = rec.To + 8
		}
		p.movePieceBB(Pawn, us, rec.To, rec.From)
		p.setPiece(Pawn, opp, victim)
	case Promotion:
		p.clearPiece(rec.Promotion, us, rec.To)
		p.setPiece(Pawn, us, rec.From)
		if rec.Captured != Empty {
			p.setPiece(rec.Captured, opp, rec.To)
		}
	case CastleWK, CastleWQ, CastleBK, CastleBQ:
		p.movePieceBB(King, us, rec.To, rec.From)
		rookFrom, rookTo := castleRookSquares(rec.Kind)
		p.movePieceBB(Rook, us, rookTo, rookFrom)
	default:
		p.movePieceBB(rec.Mover, us, rec.To, rec.From)
		if rec.Captured != Empty {
			p.setPiece(rec.Captured, opp, rec.To)
		}
	}

	p.castling = rec.PriorCastling
	p.epTarget = rec.PriorEP
	p.halfmoveClock = rec.PriorHalfmove
	p.fullmove = rec.PriorFullmove
	p.key = rec.PriorKey
}
