package search

import "github.com/notnil/chess"

// PieceValue returns the material value of a piece type.
func PieceValue(pt chess.PieceType) int {
	switch pt {
	case chess.Pawn:
		return 100
	case chess.Knight, chess.Bishop:
		return 300
	case chess.Rook:
		return 500
	case chess.Queen:
		return 900
	case chess.King:
		return 10000
	}
	return 0
}

// Evaluator scores single moves without searching.
type Evaluator struct {
	w Weights
}

func NewEvaluator(w Weights) Evaluator { return Evaluator{w: w} }

// Evaluate returns the static weight of m for the side to move. m is applied
// and undone to inspect the resulting position; r is unchanged on return.
func (e Evaluator) Evaluate(r Rules, m *chess.Move) int {
	moved := r.PieceAt(m.S1())
	score := PieceValue(r.PieceAt(m.S2()).Type())

	if moved.Type() == chess.Pawn {
		score += abs(int(m.S2().Rank())-int(m.S1().Rank())) * e.w.PawnAdvance
		if promo := m.Promo(); promo != chess.NoPieceType {
			score += PieceValue(promo) - PieceValue(chess.Pawn)
		}
	}

	castle := isCastle(m)
	if castle {
		score += e.w.Castle
	}
	if isCapture(m) {
		score += e.w.Capture
	}
	if moved.Type() == chess.Queen && r.PlyCount() < e.w.EarlyQueenPly {
		score += e.w.EarlyQueen
	}
	score -= r.FiftyMoveCounter()

	if !castle && forfeitsCastling(r, moved, m.S1()) {
		score += e.w.CastleRightsLoss
	}

	withMove(r, m, func() {
		if r.InCheck() {
			score += e.w.Check
			if r.InCheckmate() {
				score += e.w.Checkmate
			}
		}
		if r.IsDraw() {
			score += e.w.Draw
		}
	})
	return score
}

// forfeitsCastling reports whether moving piece from sq gives up a castling
// right the side to move still holds.
func forfeitsCastling(r Rules, piece chess.Piece, from chess.Square) bool {
	switch piece.Type() {
	case chess.King:
		return r.CanCastle(chess.KingSide) || r.CanCastle(chess.QueenSide)
	case chess.Rook:
		kingSide, queenSide := chess.H1, chess.A1
		if piece.Color() == chess.Black {
			kingSide, queenSide = chess.H8, chess.A8
		}
		switch from {
		case kingSide:
			return r.CanCastle(chess.KingSide)
		case queenSide:
			return r.CanCastle(chess.QueenSide)
		}
	}
	return false
}
