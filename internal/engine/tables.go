package engine

import "github.com/lgbarn/nibblechess/internal/chess"

// direction is a (file, rank) step.
type direction struct {
	df, dr int
}

var (
	diagonalDirs = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4]direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	knightDeltas = [8]direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDeltas   = [8]direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Jump tables, indexed by origin square.
var (
	knightJumps [chess.NumSquares]Bitboard
	kingSteps   [chess.NumSquares]Bitboard

	// pawnAttacks[c][sq] is the set of squares a pawn of colour c on sq attacks.
	pawnAttacks [2][chess.NumSquares]Bitboard
)

func init() {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		knightJumps[sq] = jumpMask(sq, knightDeltas[:])
		kingSteps[sq] = jumpMask(sq, kingDeltas[:])
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			dr := chess.PawnDirection(colour)
			pawnAttacks[colour][sq] = jumpMask(sq, []direction{{-1, dr}, {1, dr}})
		}
	}
}

// jumpMask collects the on-board squares reached by single steps from sq.
// Offset discards steps that would cross a board edge.
func jumpMask(sq chess.Square, deltas []direction) Bitboard {
	var mask Bitboard
	for _, d := range deltas {
		mask.Set(sq.Offset(d.df, d.dr))
	}
	return mask
}
