package game

import "github.com/notnil/chess"

const (
	// StartFEN is the standard initial position.
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Ended reports whether g is over and, if so, who won. A draw reports
// chess.NoColor.
func Ended(g *chess.Game) (ended bool, winner chess.Color) {
	switch g.Outcome() {
	case chess.WhiteWon:
		return true, chess.White
	case chess.BlackWon:
		return true, chess.Black
	case chess.Draw:
		return true, chess.NoColor
	}
	return false, chess.NoColor
}

// Winner returns the outcome that credits c with a win.
func Winner(c chess.Color) chess.Outcome {
	if c == chess.White {
		return chess.WhiteWon
	}
	return chess.BlackWon
}
