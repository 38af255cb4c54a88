package game

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// parseCounters reads the halfmove clock and fullmove number of a FEN string
// and converts the latter to a ply count.
func parseCounters(fen string) (fifty, ply int, err error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return 0, 0, errors.Errorf("fen %q: expected 6 fields, got %d", fen, len(fields))
	}
	if fifty, err = strconv.Atoi(fields[4]); err != nil {
		return 0, 0, errors.Wrapf(err, "fen %q: halfmove clock", fen)
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "fen %q: fullmove number", fen)
	}
	if full < 1 {
		full = 1
	}
	ply = (full - 1) * 2
	if fields[1] == "b" {
		ply++
	}
	return fifty, ply, nil
}

var (
	knightJumps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	straightRay = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalRay = [4][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
)

// pieceAt returns the piece on file f, rank r, or chess.NoPiece off the
// board.
func pieceAt(b *chess.Board, f, r int) chess.Piece {
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return chess.NoPiece
	}
	return b.Piece(chess.Square(r*8 + f))
}

// kingAttacked reports whether the king of the side to move is attacked.
// Attacks are read straight off the board, so a checker pinned to its own
// king still gives check.
func kingAttacked(pos *chess.Position) bool {
	b := pos.Board()
	us := pos.Turn()
	them := us.Other()

	king := chess.NoSquare
	for sq, p := range b.SquareMap() {
		if p.Type() == chess.King && p.Color() == us {
			king = sq
			break
		}
	}
	if king == chess.NoSquare {
		return false
	}
	kf, kr := int(king.File()), int(king.Rank())

	is := func(p chess.Piece, types ...chess.PieceType) bool {
		if p.Color() != them {
			return false
		}
		for _, t := range types {
			if p.Type() == t {
				return true
			}
		}
		return false
	}

	// enemy pawns attack towards us
	forward := 1
	if us == chess.Black {
		forward = -1
	}
	for _, df := range []int{-1, 1} {
		if is(pieceAt(b, kf+df, kr+forward), chess.Pawn) {
			return true
		}
	}
	for _, d := range knightJumps {
		if is(pieceAt(b, kf+d[0], kr+d[1]), chess.Knight) {
			return true
		}
	}
	for _, d := range kingSteps {
		if is(pieceAt(b, kf+d[0], kr+d[1]), chess.King) {
			return true
		}
	}
	slide := func(rays [4][2]int, types ...chess.PieceType) bool {
		for _, d := range rays {
			for f, r := kf+d[0], kr+d[1]; f >= 0 && f < 8 && r >= 0 && r < 8; f, r = f+d[0], r+d[1] {
				p := pieceAt(b, f, r)
				if p == chess.NoPiece {
					continue
				}
				if is(p, types...) {
					return true
				}
				break
			}
		}
		return false
	}
	return slide(straightRay, chess.Rook, chess.Queen) || slide(diagonalRay, chess.Bishop, chess.Queen)
}

// insufficientMaterial reports whether neither side can possibly mate:
// bare kings, a single minor piece, or bishops that all share one square
// color.
func insufficientMaterial(b *chess.Board) bool {
	var minors, knights int
	bishopColors := make(map[int]struct{})
	for sq, p := range b.SquareMap() {
		switch p.Type() {
		case chess.King:
		case chess.Knight:
			minors++
			knights++
		case chess.Bishop:
			minors++
			bishopColors[(int(sq.File())+int(sq.Rank()))%2] = struct{}{}
		default:
			return false
		}
	}
	switch {
	case minors <= 1:
		return true
	case knights == 0 && len(bishopColors) == 1:
		return true
	}
	return false
}
