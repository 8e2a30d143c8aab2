package engine

import "github.com/lgbarn/nibblechess/internal/chess"

// Attackers returns the squares of by's pieces that attack sq. It traces the
// knight jumps, king steps and pawn diagonals around sq, then the four
// diagonal and four straight rays up to the first piece on each.
func Attackers(board *chess.Board, sq chess.Square, by chess.Colour) Bitboard {
	if !sq.Valid() || (by != chess.White && by != chess.Black) {
		return 0
	}

	var attackers Bitboard
	collect := func(candidates Bitboard, kind chess.PieceType) {
		piece := chess.MakePiece(by, kind)
		for _, from := range candidates.Squares() {
			if board.Piece(from) == piece {
				attackers.Set(from)
			}
		}
	}
	collect(knightJumps[sq], chess.Knight)
	collect(kingSteps[sq], chess.King)
	// A pawn of colour by attacks sq from the squares an opposing pawn on sq would attack.
	collect(pawnAttacks[by.Opposite()][sq], chess.Pawn)

	for _, diagonal := range []bool{true, false} {
		for _, d := range slidingDirs(diagonal, !diagonal) {
			from := firstPiece(board, sq, d)
			if !from.Valid() {
				continue
			}
			piece := board.Piece(from)
			if piece.Colour() == by && slidesAlong(piece, diagonal) {
				attackers.Set(from)
			}
		}
	}
	return attackers
}

// IsSquareAttacked reports whether any piece of colour by attacks sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	return Attackers(board, sq, by) != 0
}

// IsInCheck reports whether the colour's king is attacked. A side without a
// king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}
