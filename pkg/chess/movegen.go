package chess

// generator holds the per-call state gathered before any move is emitted:
// which squares give check, which squares a non-king piece may move to,
// and which of our pieces are pinned along which ray. This is the
// direct-legal-generation design: checks and pins are classified up
// front instead of generating pseudo-legal moves and filtering them by
// trial application.
type generator struct {
	pos *Position
	us  Color
	opp Color
	occ BitBoard

	kingSq        Square
	attacksOnKing int
	targets       BitBoard
	pins          BitBoard
	pinRay        [64]BitBoard

	list *MoveList
}

// pieceOrder fixes the square/piece iteration order so move-generation
// output is deterministic, matching the fixed order search and perft
// depend on for reproducible sub-counts.
var pieceOrder = [5]Piece{Pawn, Knight, Bishop, Rook, Queen}

// GenerateLegalMoves produces the exact set of legal moves for the side
// to move in pos.
func GenerateLegalMoves(pos *Position) *MoveList {
	g := &generator{
		pos:     pos,
		us:      pos.sideToMove,
		opp:     pos.sideToMove.Opponent(),
		occ:     pos.occupancy(),
		targets: All,
		list:    &MoveList{},
	}
	g.kingSq = pos.KingSquare(g.us)

	g.handleLeaperAttacks(Pawn)
	g.handleLeaperAttacks(Knight)
	g.handleSliderAttacks()

	if g.attacksOnKing <= 1 {
		g.standardNonPins()
	}
	if g.attacksOnKing == 0 {
		g.generateCastling()
	}
	if pos.epTarget != NoSquare {
		g.enPassantCaptures()
	}
	g.generatePlainKingMoves()

	return g.list
}

func (g *generator) handleLeaperAttacks(piece Piece) {
	var attacks BitBoard
	switch piece {
	case Pawn:
		attacks = pawnCapturePattern(g.us, g.kingSq) & g.pos.pieces[Pawn] & g.pos.colors[g.opp]
	case Knight:
		attacks = knightAttacks[g.kingSq] & g.pos.pieces[Knight] & g.pos.colors[g.opp]
	}
	if attacks != 0 {
		g.attacksOnKing += attacks.PopCount()
		g.targets &= attacks
	}
}

var rookDirs = [4]func(BitBoard) BitBoard{up, down, left, right}
var bishopDirs = [4]func(BitBoard) BitBoard{upRight, upLeft, downRight, downLeft}

func (g *generator) handleSliderAttacks() {
	occOpp := g.pos.colors[g.opp]

	rookQueens := (g.pos.pieces[Rook] | g.pos.pieces[Queen]) & g.pos.colors[g.opp]
	for _, dir := range rookDirs {
		ray := slideRay(g.kingSq, []func(BitBoard) BitBoard{dir}, occOpp)
		g.handleSliderRay(ray, rookQueens)
	}

	bishopQueens := (g.pos.pieces[Bishop] | g.pos.pieces[Queen]) & g.pos.colors[g.opp]
	for _, dir := range bishopDirs {
		ray := slideRay(g.kingSq, []func(BitBoard) BitBoard{dir}, occOpp)
		g.handleSliderRay(ray, bishopQueens)
	}
}

func (g *generator) handleSliderRay(ray, opponentSliders BitBoard) {
	if ray == 0 {
		return
	}
	rayAttackers := ray & opponentSliders
	ourBlockers := ray & g.pos.colors[g.us]

	switch {
	case rayAttackers != 0 && ourBlockers == 0:
		g.attacksOnKing += rayAttackers.PopCount()
		g.targets &= ray
	case rayAttackers != 0 && ourBlockers.PopCount() == 1:
		pinnedSq := ourBlockers.Lsb()
		g.pins = g.pins.Set(pinnedSq)
		g.pinRay[pinnedSq] = ray
	}
}

func (g *generator) standardNonPins() {
	for _, piece := range pieceOrder {
		bb := g.pos.pieces[piece] & g.pos.colors[g.us]
		bb.Iter(func(from Square) {
			dests := attacksFrom(piece, g.us, from, g.occ, g.pos.colors[g.us]) & g.targets
			if g.pins.Test(from) {
				dests &= g.pinRay[from]
			}
			g.emitMoves(piece, from, dests)
		})
	}
}

func (g *generator) emitMoves(piece Piece, from Square, dests BitBoard) {
	promoRank := Rank8
	if g.us == Black {
		promoRank = Rank1
	}
	dests.Iter(func(to Square) {
		if piece == Pawn && to.Rank() == promoRank {
			g.list.add(Move{From: from, To: to, Promotion: Knight})
			g.list.add(Move{From: from, To: to, Promotion: Bishop})
			g.list.add(Move{From: from, To: to, Promotion: Rook})
			g.list.add(Move{From: from, To: to, Promotion: Queen})
			return
		}
		g.list.add(Move{From: from, To: to})
	})
}

var (
	whiteKingsideEmpty  = squareBB(F1) | squareBB(G1)
	whiteQueensideEmpty = squareBB(B1) | squareBB(C1) | squareBB(D1)
	blackKingsideEmpty  = squareBB(F8) | squareBB(G8)
	blackQueensideEmpty = squareBB(B8) | squareBB(C8) | squareBB(D8)
)

func (g *generator) generateCastling() {
	if g.us == White {
		if g.pos.castling&WhiteKingSide != 0 &&
			g.occ&whiteKingsideEmpty == 0 &&
			g.pos.isSafe(F1, g.opp, g.occ) && g.pos.isSafe(G1, g.opp, g.occ) {
			g.list.add(Move{From: E1, To: G1})
		}
		if g.pos.castling&WhiteQueenSide != 0 &&
			g.occ&whiteQueensideEmpty == 0 &&
			g.pos.isSafe(D1, g.opp, g.occ) && g.pos.isSafe(C1, g.opp, g.occ) {
			g.list.add(Move{From: E1, To: C1})
		}
		return
	}
	if g.pos.castling&BlackKingSide != 0 &&
		g.occ&blackKingsideEmpty == 0 &&
		g.pos.isSafe(F8, g.opp, g.occ) && g.pos.isSafe(G8, g.opp, g.occ) {
		g.list.add(Move{From: E8, To: G8})
	}
	if g.pos.castling&BlackQueenSide != 0 &&
		g.occ&blackQueensideEmpty == 0 &&
		g.pos.isSafe(D8, g.opp, g.occ) && g.pos.isSafe(C8, g.opp, g.occ) {
		g.list.add(Move{From: E8, To: C8})
	}
}

func (g *generator) enPassantCaptures() {
	ep := g.pos.epTarget
	var victimSquare Square
	if g.us == White {
		victimSquare = ep - 8
	} else {
		victimSquare = ep + 8
	}

	capturingPawns := pawnAttacks[g.opp][ep] & g.pos.pieces[Pawn] & g.pos.colors[g.us]
	if capturingPawns == 0 {
		return
	}

	effectiveTargets := g.targets
	if g.targets.Test(victimSquare) {
		effectiveTargets = effectiveTargets.Set(ep)
	}
	if !effectiveTargets.Test(ep) {
		return
	}

	if g.kingSq.Rank() == victimSquare.Rank() && capturingPawns.PopCount() == 1 {
		capturer := capturingPawns.Lsb()
		occAfter := g.occ.Clear(victimSquare).Clear(capturer)

		var ray BitBoard
		if capturer > g.kingSq {
			ray = slideRay(g.kingSq, []func(BitBoard) BitBoard{right}, occAfter)
		} else {
			ray = slideRay(g.kingSq, []func(BitBoard) BitBoard{left}, occAfter)
		}
		rankAttackers := ray & (g.pos.pieces[Rook] | g.pos.pieces[Queen]) & g.pos.colors[g.opp]
		if rankAttackers != 0 && !ray.Test(ep) {
			return
		}
		if g.pins.Test(capturer) && !g.pinRay[capturer].Test(ep) {
			return
		}
		g.list.add(Move{From: capturer, To: ep})
		return
	}

	capturingPawns.Iter(func(from Square) {
		if g.pins.Test(from) && !g.pinRay[from].Test(ep) {
			return
		}
		g.list.add(Move{From: from, To: ep})
	})
}

func (g *generator) generatePlainKingMoves() {
	occWithoutKing := g.occ.Clear(g.kingSq)
	dests := kingAttacks[g.kingSq] &^ g.pos.colors[g.us]
	dests.Iter(func(to Square) {
		if g.pos.isSafe(to, g.opp, occWithoutKing) {
			g.list.add(Move{From: g.kingSq, To: to})
		}
	})
}
