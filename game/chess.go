package game

import (
	"fmt"
	"hash/fnv"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// frame is one entry of the position stack.
type frame struct {
	pos   *chess.Position
	move  *chess.Move // move that led to pos; nil for the root frame
	id    uint64
	ply   int
	fifty int
	check bool
}

// Chess is a mutable chess position backed by notnil/chess.
// Moves are applied and reverted in strict LIFO order; each applied move
// pushes a frame, each undo pops one, so undo restores the exact previous
// position.
type Chess struct {
	frames []frame

	// history holds identities of positions reached before the root frame,
	// used for repetition detection.
	history []uint64
}

// NewChess returns the standard starting position.
func NewChess() *Chess {
	return newChess(chess.NewGame().Position(), 0, 0, false)
}

// FromFEN returns the position described by fen.
func FromFEN(fen string) (*Chess, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "parse fen %q", fen)
	}
	pos := chess.NewGame(opt).Position()
	fifty, ply, err := parseCounters(fen)
	if err != nil {
		return nil, err
	}
	return newChess(pos, ply, fifty, kingAttacked(pos)), nil
}

// FromGame returns the current position of g. Earlier positions of the game
// are remembered for repetition detection.
func FromGame(g *chess.Game) (*Chess, error) {
	pos := g.Position()
	fifty, ply, err := parseCounters(pos.String())
	if err != nil {
		return nil, err
	}
	var check bool
	if moves := g.Moves(); len(moves) > 0 {
		check = moves[len(moves)-1].HasTag(chess.Check)
	}
	c := newChess(pos, ply, fifty, check)
	positions := g.Positions()
	for _, p := range positions[:len(positions)-1] {
		c.history = append(c.history, identity(p))
	}
	return c, nil
}

func newChess(pos *chess.Position, ply, fifty int, check bool) *Chess {
	if pos.Status() == chess.Checkmate {
		check = true
	}
	return &Chess{
		frames: []frame{{
			pos:   pos,
			id:    identity(pos),
			ply:   ply,
			fifty: fifty,
			check: check,
		}},
	}
}

// identity hashes the parts of a position that matter for repetition:
// placement, side to move, castling rights and en passant square. The move
// counters are left out, unlike chess.Position.Hash.
func identity(pos *chess.Position) uint64 {
	h := fnv.New64a()
	b, _ := pos.Board().MarshalBinary()
	h.Write(b)
	var tail [2]byte
	tail[0] = byte(pos.Turn())
	tail[1] = byte(pos.EnPassantSquare())
	h.Write(tail[:])
	h.Write([]byte(pos.CastleRights().String()))
	return h.Sum64()
}

func (c *Chess) top() *frame { return &c.frames[len(c.frames)-1] }

// Position returns the current notnil/chess position.
func (c *Chess) Position() *chess.Position { return c.top().pos }

// FEN returns the current position in FEN.
func (c *Chess) FEN() string { return c.top().pos.String() }

// Depth returns the number of moves currently applied on top of the root.
func (c *Chess) Depth() int { return len(c.frames) - 1 }

// Turn returns the color to move.
func (c *Chess) Turn() chess.Color { return c.top().pos.Turn() }

// LegalMoves returns the legal moves of the current position.
func (c *Chess) LegalMoves() []*chess.Move { return c.top().pos.ValidMoves() }

// Apply plays m on the current position. m must be legal.
func (c *Chess) Apply(m *chess.Move) {
	cur := c.top()
	piece := cur.pos.Board().Piece(m.S1())
	next := cur.pos.Update(m)

	fifty := cur.fifty + 1
	if piece.Type() == chess.Pawn || m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) {
		fifty = 0
	}
	c.frames = append(c.frames, frame{
		pos:   next,
		move:  m,
		id:    identity(next),
		ply:   cur.ply + 1,
		fifty: fifty,
		check: m.HasTag(chess.Check),
	})
}

// Undo reverts m, which must be the last applied move.
func (c *Chess) Undo(m *chess.Move) {
	if len(c.frames) == 1 {
		panic("game: undo without a matching apply")
	}
	if last := c.top().move; last != m && last.String() != m.String() {
		panic(fmt.Sprintf("game: undo %v but last applied move is %v", m, last))
	}
	c.frames[len(c.frames)-1] = frame{}
	c.frames = c.frames[:len(c.frames)-1]
}

// InCheck reports whether the side to move is in check.
func (c *Chess) InCheck() bool { return c.top().check }

// InCheckmate reports whether the side to move is checkmated.
func (c *Chess) InCheckmate() bool { return c.top().pos.Status() == chess.Checkmate }

// IsDraw reports whether the current position is drawn by stalemate, the
// fifty-move rule, threefold repetition or insufficient material.
func (c *Chess) IsDraw() bool {
	cur := c.top()
	switch {
	case cur.pos.Status() == chess.Stalemate:
		return true
	case cur.fifty >= 100:
		return true
	case c.repetitions() >= 3:
		return true
	}
	return insufficientMaterial(cur.pos.Board())
}

func (c *Chess) repetitions() int {
	id := c.top().id
	var n int
	for _, h := range c.history {
		if h == id {
			n++
		}
	}
	for i := range c.frames {
		if c.frames[i].id == id {
			n++
		}
	}
	return n
}

// Identity returns a practically unique key for the current position.
func (c *Chess) Identity() uint64 { return c.top().id }

// CanCastle reports whether the side to move still holds the castling right
// on the given side.
func (c *Chess) CanCastle(side chess.Side) bool {
	pos := c.top().pos
	return pos.CastleRights().CanCastle(pos.Turn(), side)
}

// PlyCount returns the number of half moves played since the start of the
// game.
func (c *Chess) PlyCount() int { return c.top().ply }

// FiftyMoveCounter returns the number of half moves since the last capture or
// pawn move.
func (c *Chess) FiftyMoveCounter() int { return c.top().fifty }

// PieceAt returns the piece on sq, or chess.NoPiece.
func (c *Chess) PieceAt(sq chess.Square) chess.Piece { return c.top().pos.Board().Piece(sq) }

// ParseMove returns the legal move whose UCI notation is s.
func (c *Chess) ParseMove(s string) (*chess.Move, error) {
	for _, m := range c.LegalMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return nil, errors.Errorf("%s is not a legal move in %s", s, c.FEN())
}
