package chess

import (
	"fmt"

	"github.com/lgbarn/nibblechess/internal/errors"
)

// Square is a board index 0-63: a1 = 0, h1 = 7, a8 = 56, h8 = 63.
// File is index mod 8 and rank is index div 8.
type Square uint8

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// NoSquare is returned when a square cannot be determined.
	NoSquare Square = NumSquares
)

// Named squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square for a 0-based file and rank, or NoSquare when
// either coordinate is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s < NumSquares
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Offset returns the square df files and dr ranks away, or NoSquare if that
// would leave the board. Deltas never wrap across a rank edge.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// String returns the algebraic name, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare reads an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	file := int(text[0]) - 'a'
	if text[0] >= 'A' && text[0] <= 'H' {
		file = int(text[0]) - 'A'
	}
	rank := int(text[1]) - '1'
	sq := NewSquare(file, rank)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// HomeRank returns the rank (0-based) on which the colour's pieces start.
func HomeRank(colour Colour) int {
	if colour == Black {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the rank (0-based) on which the colour's pawns start.
func PawnRank(colour Colour) int {
	if colour == Black {
		return BoardSize - 2
	}
	return 1
}

// PromotionRank returns the far rank (0-based) for the colour's pawns.
func PromotionRank(colour Colour) int {
	if colour == Black {
		return 0
	}
	return BoardSize - 1
}

// PawnDirection returns +1 for White and -1 for Black (rank delta of a pawn step).
func PawnDirection(colour Colour) int {
	if colour == Black {
		return -1
	}
	return 1
}
