package engine

import "github.com/lgbarn/nibblechess/internal/chess"

// SlidingMoves returns the pseudo-legal destinations of a bishop, rook or
// queen on from. Each ray stops before a friendly piece and on an enemy piece.
func SlidingMoves(board *chess.Board, from chess.Square, diagonal, straight bool) Bitboard {
	colour := board.Piece(from).Colour()
	if colour == chess.NoColour {
		return 0
	}

	var mask Bitboard
	for _, d := range slidingDirs(diagonal, straight) {
		for sq := from.Offset(d.df, d.dr); sq.Valid(); sq = sq.Offset(d.df, d.dr) {
			target := board.Piece(sq)
			if target.Colour() == colour {
				break
			}
			mask.Set(sq)
			if target.IsPiece() {
				break
			}
		}
	}
	return mask
}

func slidingDirs(diagonal, straight bool) []direction {
	var dirs []direction
	if diagonal {
		dirs = append(dirs, diagonalDirs[:]...)
	}
	if straight {
		dirs = append(dirs, straightDirs[:]...)
	}
	return dirs
}

// between returns the squares strictly between a and b when they share a
// rank, file or diagonal, and an empty set otherwise.
func between(a, b chess.Square) Bitboard {
	stepF, sizeF := unitStep(b.File() - a.File())
	stepR, sizeR := unitStep(b.Rank() - a.Rank())
	if a == b || (sizeF != 0 && sizeR != 0 && sizeF != sizeR) {
		return 0
	}

	var mask Bitboard
	for sq := a.Offset(stepF, stepR); sq != b; sq = sq.Offset(stepF, stepR) {
		mask.Set(sq)
	}
	return mask
}

// unitStep splits d into its direction (-1, 0 or 1) and magnitude.
func unitStep(d int) (unit, size int) {
	switch {
	case d > 0:
		return 1, d
	case d < 0:
		return -1, -d
	}
	return 0, 0
}

// firstPiece walks from sq in direction d and returns the first square holding
// a piece, or NoSquare when the ray reaches the edge. Markers do not block.
func firstPiece(board *chess.Board, sq chess.Square, d direction) chess.Square {
	for sq = sq.Offset(d.df, d.dr); sq.Valid(); sq = sq.Offset(d.df, d.dr) {
		if board.Piece(sq).IsPiece() {
			return sq
		}
	}
	return chess.NoSquare
}

// slidesAlong reports whether the piece moves along rays of the given kind.
func slidesAlong(piece chess.Piece, diagonal bool) bool {
	switch piece.Type() {
	case chess.Queen:
		return true
	case chess.Bishop:
		return diagonal
	case chess.Rook:
		return !diagonal
	}
	return false
}
