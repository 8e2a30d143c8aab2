// Package engine generates move sets for the packed board: per-piece
// pseudo-legal destination masks, attack tracing and the king-safety filter.
package engine

import (
	"math/bits"

	"github.com/lgbarn/nibblechess/internal/chess"
)

// Bitboard is a 64-bit square set; bit n is set when square n is a member.
type Bitboard uint64

// SquareMask returns the bitboard holding only sq, or 0 for an off-board square.
func SquareMask(sq chess.Square) Bitboard {
	if !sq.Valid() {
		return 0
	}
	return 1 << uint(sq)
}

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq chess.Square) bool {
	return b&SquareMask(sq) != 0
}

// Set adds sq to the set.
func (b *Bitboard) Set(sq chess.Square) {
	*b |= SquareMask(sq)
}

// Clear removes sq from the set.
func (b *Bitboard) Clear(sq chess.Square) {
	*b &^= SquareMask(sq)
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Squares returns the members in increasing square order.
func (b Bitboard) Squares() []chess.Square {
	squares := make([]chess.Square, 0, b.Count())
	for rest := uint64(b); rest != 0; rest &= rest - 1 {
		squares = append(squares, chess.Square(bits.TrailingZeros64(rest)))
	}
	return squares
}

// String renders the set as eight rows of 'x' and '.', rank 8 first.
func (b Bitboard) String() string {
	buf := make([]byte, 0, 72)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			if b.Has(chess.NewSquare(file, rank)) {
				buf = append(buf, 'x')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
