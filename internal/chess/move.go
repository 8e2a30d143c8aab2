package chess

import (
	"fmt"

	"github.com/lgbarn/nibblechess/internal/errors"
)

// Move is a (from, to) pair with an optional promotion choice. The zero
// promotion resolves to a queen when a pawn reaches the far rank.
type Move struct {
	From      Square
	To        Square
	Promotion PromotionKind
}

// NewMove creates a plain move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a pawn move that promotes to the given kind.
func NewPromotion(from, to Square, kind PromotionKind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// Valid reports whether both squares are on the board.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// IsCapture reports whether the destination currently holds a piece of the
// colour opposite to the mover. An en-passant capture lands on the marker
// and is therefore not reported.
func (m Move) IsCapture(board *Board) bool {
	mover := board.Piece(m.From).Colour()
	target := board.Piece(m.To).Colour()
	return mover != NoColour && target == mover.Opposite()
}

// String returns coordinate text such as "e2e4" or "e7e8n".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if c := m.Promotion.Letter(); c != 0 {
		s += string(c)
	}
	return s
}

// ParseMove reads coordinate text: two squares and an optional promotion letter.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}
	m := NewMove(from, to)
	if len(text) == 5 {
		kind, ok := PromotionFromLetter(text[4])
		if !ok {
			return Move{}, fmt.Errorf("move %q: bad promotion letter: %w", text, errors.ErrInvalidMoveText)
		}
		m.Promotion = kind
	}
	return m, nil
}

// Band order of the legacy promotion encoding, counted from the far rank
// back towards the mover's side.
var bandKinds = [4]PromotionKind{PromoteQueen, PromoteKnight, PromoteRook, PromoteBishop}

// DecodeBandMove translates the legacy compact encoding, in which the
// promotion choice is folded into the destination index, into a Move.
//
// Bands apply only to a pawn standing one step from its far rank. A
// destination on the far rank (the base band) selects a queen; the same file
// 8, 16 or 24 squares back towards the pawn selects knight, rook or bishop.
// Every other pair decodes as a plain move.
func DecodeBandMove(board *Board, from, to uint8) (Move, error) {
	fromSq, toSq := Square(from), Square(to)
	if !fromSq.Valid() || !toSq.Valid() {
		return Move{}, fmt.Errorf("band move %d-%d: %w", from, to, errors.ErrInvalidSquare)
	}

	piece := board.Piece(fromSq)
	if piece.Type() != Pawn {
		return NewMove(fromSq, toSq), nil
	}
	colour := piece.Colour()
	far := PromotionRank(colour)
	dir := PawnDirection(colour)
	if fromSq.Rank()+dir != far {
		return NewMove(fromSq, toSq), nil
	}

	band := (far - toSq.Rank()) * dir
	if band < 0 || band >= len(bandKinds) {
		return NewMove(fromSq, toSq), nil
	}
	return NewPromotion(fromSq, NewSquare(toSq.File(), far), bandKinds[band]), nil
}

// BandEncoded translates the move back into the legacy compact encoding.
// Moves without an under-promotion are returned unchanged.
func (m Move) BandEncoded() (from, to uint8) {
	band := 0
	switch m.Promotion {
	case PromoteKnight:
		band = 1
	case PromoteRook:
		band = 2
	case PromoteBishop:
		band = 3
	default:
		return uint8(m.From), uint8(m.To)
	}
	dir := 1
	if m.To.Rank() == PromotionRank(Black) {
		dir = -1
	}
	encoded := NewSquare(m.To.File(), m.To.Rank()-band*dir)
	return uint8(m.From), uint8(encoded)
}
