package engine

import "github.com/lgbarn/nibblechess/internal/chess"

// PawnMoves returns the pseudo-legal destinations of the pawn on from:
// one step forward onto an empty square, two from the starting rank when both
// squares are empty, and the diagonals holding an enemy piece or the
// en-passant marker. Far-rank destinations are promotions.
func PawnMoves(board *chess.Board, from chess.Square) Bitboard {
	pawn := board.Piece(from)
	colour := pawn.Colour()
	if pawn.Type() != chess.Pawn {
		return 0
	}
	dir := chess.PawnDirection(colour)

	var mask Bitboard
	if one := from.Offset(0, dir); one.Valid() && !board.Piece(one).IsPiece() {
		mask.Set(one)
		if from.Rank() == chess.PawnRank(colour) {
			if two := from.Offset(0, 2*dir); !board.Piece(two).IsPiece() {
				mask.Set(two)
			}
		}
	}

	enemy := colour.Opposite()
	for _, sq := range pawnAttacks[colour][from].Squares() {
		target := board.Piece(sq)
		if target.Colour() == enemy || (target == chess.EnPassant && sq.Rank() == markerRank(enemy)) {
			mask.Set(sq)
		}
	}
	return mask
}

// markerRank returns the rank on which a double advance by colour leaves the
// en-passant marker.
func markerRank(colour chess.Colour) int {
	return chess.PawnRank(colour) + chess.PawnDirection(colour)
}

// isEnPassant reports whether moving the piece on from to to is an en-passant capture.
func isEnPassant(board *chess.Board, from, to chess.Square) bool {
	return board.Piece(from).Type() == chess.Pawn &&
		board.Piece(to) == chess.EnPassant &&
		from.File() != to.File()
}

// isPromotion reports whether moving the piece on from to to promotes a pawn.
func isPromotion(board *chess.Board, from, to chess.Square) bool {
	pawn := board.Piece(from)
	return pawn.Type() == chess.Pawn && to.Rank() == chess.PromotionRank(pawn.Colour())
}
