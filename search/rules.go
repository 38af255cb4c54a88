package search

import "github.com/notnil/chess"

// Rules is the rules engine the search runs on. It owns a single mutable
// position; Apply and Undo must be paired in LIFO order and Undo must
// restore the previous position exactly.
type Rules interface {
	LegalMoves() []*chess.Move
	Apply(m *chess.Move)
	Undo(m *chess.Move)

	InCheck() bool
	InCheckmate() bool
	IsDraw() bool

	// Identity is a practically unique key of the current position.
	Identity() uint64
	// CanCastle reports the castling right of the side to move.
	CanCastle(side chess.Side) bool
	PlyCount() int
	FiftyMoveCounter() int
	PieceAt(sq chess.Square) chess.Piece

	// ParseMove resolves a UCI move string against the legal moves.
	ParseMove(s string) (*chess.Move, error)
}

// withMove applies m, runs fn and undoes m on every exit path of fn.
func withMove(r Rules, m *chess.Move, fn func()) {
	r.Apply(m)
	defer r.Undo(m)
	fn()
}

func isCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

func isCastle(m *chess.Move) bool {
	return m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle)
}
