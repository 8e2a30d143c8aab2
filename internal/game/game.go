// Package game runs the turn loop: it asks the side to move for a choice from
// the current move set, applies it and keeps the clocks.
package game

import (
	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/engine"
	"github.com/lgbarn/nibblechess/internal/errors"
)

// FiftyMoveLimit is the half-move clock value at which a draw could be claimed.
const FiftyMoveLimit = 100

// VerifyFunc checks a freshly generated move set before a player sees it.
type VerifyFunc func(board *chess.Board, side chess.Colour, set *engine.MoveSet) error

// ObserverFunc is called after every applied move.
type ObserverFunc func(g *Game, m chess.Move)

// Game owns a board and the state around it.
type Game struct {
	board    *chess.Board
	side     chess.Colour
	halfmove int
	fullmove int
	ply      int
	number   int

	players [2]Player
	safety  engine.SafetyMode
	history []chess.Move

	verify    VerifyFunc
	observers []ObserverFunc
}

// Option configures a Game.
type Option func(*Game)

// WithSafety selects the king-safety mode for move generation.
func WithSafety(mode engine.SafetyMode) Option {
	return func(g *Game) {
		g.safety = mode
	}
}

// WithPosition starts the game from pos instead of the initial position.
// The board is copied.
func WithPosition(pos *engine.Position) Option {
	return func(g *Game) {
		g.board = pos.Board.Copy()
		g.side = pos.Side
		g.halfmove = pos.HalfmoveClock
		g.fullmove = pos.FullMove
	}
}

// WithVerifier runs fn on every move set. Errors wrapping ErrUnverifiable are
// ignored; any other error stops the game.
func WithVerifier(fn VerifyFunc) Option {
	return func(g *Game) {
		g.verify = fn
	}
}

// WithObserver registers fn to be called after each move.
func WithObserver(fn ObserverFunc) Option {
	return func(g *Game) {
		g.observers = append(g.observers, fn)
	}
}

// WithNumber tags errors and records with a batch game number.
func WithNumber(n int) Option {
	return func(g *Game) {
		g.number = n
	}
}

// New creates a game between white and black from the initial position.
func New(white, black Player, opts ...Option) *Game {
	g := &Game{
		board:    chess.NewBoard(),
		side:     chess.White,
		fullmove: 1,
		players:  [2]Player{white, black},
		safety:   engine.SafetyFull,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Side returns the colour to move.
func (g *Game) Side() chess.Colour {
	return g.side
}

// HalfmoveClock returns the plies since the last capture or pawn move.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return g.ply
}

// Number returns the batch game number, or 0.
func (g *Game) Number() int {
	return g.number
}

// Safety returns the king-safety mode in use.
func (g *Game) Safety() engine.SafetyMode {
	return g.safety
}

// History returns the applied moves in order.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	copy(moves, g.history)
	return moves
}

// Position returns the current position with its clocks.
func (g *Game) Position() *engine.Position {
	return &engine.Position{
		Board:         g.board.Copy(),
		Side:          g.side,
		HalfmoveClock: g.halfmove,
		FullMove:      g.fullmove,
	}
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return g.Position().FEN()
}

// MoveSet generates the moves available to the side to move.
func (g *Game) MoveSet() *engine.MoveSet {
	return engine.NewMoveSet(g.board, g.side, engine.WithSafety(g.safety))
}

// Advance plays one half-move. It returns ErrNoMoves when the side to move
// has nothing to play and ErrIllegalMove when the player picks a move outside
// the set; both arrive wrapped in a *errors.MoveError and leave the game
// unchanged.
func (g *Game) Advance() (chess.Move, error) {
	set := g.MoveSet()
	if g.verify != nil {
		if err := g.verify(g.board, g.side, set); err != nil && !errors.Is(err, errors.ErrUnverifiable) {
			return chess.Move{}, g.moveError(err, chess.Move{})
		}
	}
	if set.Empty() {
		return chess.Move{}, g.moveError(errors.ErrNoMoves, chess.Move{})
	}

	m, err := g.players[g.side].ChooseMove(set)
	if err != nil {
		return chess.Move{}, g.moveError(err, chess.Move{})
	}
	if !set.Contains(m) {
		return m, g.moveError(errors.ErrIllegalMove, m)
	}

	resetClock := m.IsCapture(g.board) || g.board.Piece(m.From).Type() == chess.Pawn
	if err := g.board.Apply(m); err != nil {
		return m, g.moveError(err, m)
	}
	if resetClock {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if g.side == chess.Black {
		g.fullmove++
	}
	g.ply++
	g.history = append(g.history, m)
	g.side = g.side.Opposite()

	for _, fn := range g.observers {
		fn(g, m)
	}
	return m, nil
}

func (g *Game) moveError(err error, m chess.Move) error {
	moveErr := &errors.MoveError{
		Err:  err,
		Game: g.number,
		Ply:  g.ply + 1,
		Side: g.side.String(),
	}
	if m != (chess.Move{}) {
		moveErr.Move = m.String()
	}
	return moveErr
}
