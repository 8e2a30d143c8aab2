package engine

import "github.com/lgbarn/nibblechess/internal/chess"

// MoveSet is the set of moves available to one side in one position, stored
// as a destination mask per origin square. It is a snapshot: applying a move
// to the board afterwards does not change it.
type MoveSet struct {
	side      chess.Colour
	mode      SafetyMode
	masks     [chess.NumSquares]Bitboard
	promoting Bitboard // origins of pawns whose moves promote
	moves     []chess.Move
}

// Option configures move-set construction.
type Option func(*moveSetOptions)

type moveSetOptions struct {
	safety SafetyMode
}

// WithSafety selects the king-safety mode. The default is SafetyFull.
func WithSafety(mode SafetyMode) Option {
	return func(o *moveSetOptions) {
		o.safety = mode
	}
}

// NewMoveSet generates the moves available to side on board. A side without
// a king has no moves.
func NewMoveSet(board *chess.Board, side chess.Colour, opts ...Option) *MoveSet {
	o := moveSetOptions{safety: SafetyFull}
	for _, opt := range opts {
		opt(&o)
	}

	s := &MoveSet{side: side, mode: o.safety}
	king := board.KingSquare(side)
	if king == chess.NoSquare {
		return s
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if board.Piece(sq).Colour() != side {
			continue
		}
		s.masks[sq] = PseudoMoves(board, sq)
	}
	filterSafety(board, side, king, &s.masks, o.safety)

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		for _, to := range s.masks[from].Squares() {
			m := chess.NewMove(from, to)
			if isPromotion(board, from, to) {
				s.promoting.Set(from)
				m.Promotion = chess.PromoteQueen
			}
			s.moves = append(s.moves, m)
		}
	}
	return s
}

// PseudoMoves returns the destinations of the piece on sq without regard to
// king safety.
func PseudoMoves(board *chess.Board, sq chess.Square) Bitboard {
	switch board.Piece(sq).Type() {
	case chess.Pawn:
		return PawnMoves(board, sq)
	case chess.Knight:
		return KnightMoves(board, sq)
	case chess.Bishop:
		return SlidingMoves(board, sq, true, false)
	case chess.Rook:
		return SlidingMoves(board, sq, false, true)
	case chess.Queen:
		return SlidingMoves(board, sq, true, true)
	case chess.King:
		return KingMoves(board, sq)
	}
	return 0
}

// Side returns the colour the set was generated for.
func (s *MoveSet) Side() chess.Colour {
	return s.side
}

// Safety returns the safety mode the set was generated with.
func (s *MoveSet) Safety() SafetyMode {
	return s.mode
}

// Contains reports whether m is in the set. A promotion kind is accepted only
// on a pawn move to the far rank, where any kind (or none) matches.
func (s *MoveSet) Contains(m chess.Move) bool {
	if !m.Valid() || !s.masks[m.From].Has(m.To) {
		return false
	}
	if m.Promotion != chess.PromoteNone {
		return s.promoting.Has(m.From)
	}
	return true
}

// IsPromotion reports whether the (from, to) pair in the set promotes a pawn.
func (s *MoveSet) IsPromotion(m chess.Move) bool {
	return m.Valid() && s.masks[m.From].Has(m.To) && s.promoting.Has(m.From)
}

// Destinations returns the destination mask for the piece on from.
func (s *MoveSet) Destinations(from chess.Square) Bitboard {
	if !from.Valid() {
		return 0
	}
	return s.masks[from]
}

// Len returns the number of (from, to) pairs in the set.
func (s *MoveSet) Len() int {
	return len(s.moves)
}

// Empty reports whether the side has no moves.
func (s *MoveSet) Empty() bool {
	return len(s.moves) == 0
}

// Moves returns the moves in increasing origin, then destination, order.
// Promotions carry PromoteQueen.
func (s *MoveSet) Moves() []chess.Move {
	moves := make([]chess.Move, len(s.moves))
	copy(moves, s.moves)
	return moves
}

// Iterator returns a cursor over the set, positioned before the first move.
func (s *MoveSet) Iterator() *Iterator {
	return &Iterator{set: s}
}

// Iterator walks a MoveSet in order. Reset rewinds it.
type Iterator struct {
	set *MoveSet
	pos int
}

// Next returns the next move, or false when the set is exhausted.
func (it *Iterator) Next() (chess.Move, bool) {
	if it.pos >= len(it.set.moves) {
		return chess.Move{}, false
	}
	m := it.set.moves[it.pos]
	it.pos++
	return m, true
}

// Reset rewinds the iterator to the first move.
func (it *Iterator) Reset() {
	it.pos = 0
}
