package engine

import "github.com/lgbarn/nibblechess/internal/chess"

// castleMoves returns the castling destinations available to the king on
// from. Castling needs the king on its home square, an unmoved rook in the
// corner and every square between them empty. Attacks are the safety
// filter's concern.
func castleMoves(board *chess.Board, from chess.Square, colour chess.Colour) Bitboard {
	if colour != chess.White && colour != chess.Black {
		return 0
	}
	if from != chess.KingHome[colour] {
		return 0
	}

	var mask Bitboard
	for _, side := range [2]int{chess.KingSide, chess.QueenSide} {
		if !board.CanCastle(colour, side) {
			continue
		}
		if pathClear(board, from, chess.CastleRookSrc[colour][side]) {
			mask.Set(chess.CastleKingTo[colour][side])
		}
	}
	return mask
}

func pathClear(board *chess.Board, a, b chess.Square) bool {
	for _, sq := range between(a, b).Squares() {
		if board.Piece(sq).IsPiece() {
			return false
		}
	}
	return true
}

// isCastle reports whether the king move from..to is a castle, returning the side.
func isCastle(board *chess.Board, from, to chess.Square) (int, bool) {
	king := board.Piece(from)
	if king.Type() != chess.King {
		return 0, false
	}
	colour := king.Colour()
	if from != chess.KingHome[colour] {
		return 0, false
	}
	for _, side := range [2]int{chess.KingSide, chess.QueenSide} {
		if to == chess.CastleKingTo[colour][side] {
			return side, true
		}
	}
	return 0, false
}

// castleSafe reports whether the castle on the given side passes the attack
// conditions: king not in check and the square it crosses not attacked. The
// landing square is checked with every other king destination.
func castleSafe(board *chess.Board, colour chess.Colour, side int) bool {
	enemy := colour.Opposite()
	home := chess.KingHome[colour]
	if IsSquareAttacked(board, home, enemy) {
		return false
	}
	transit := chess.CastleRookDst[colour][side]
	return !IsSquareAttacked(board, transit, enemy)
}
