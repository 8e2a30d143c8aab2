package engine

import "github.com/lgbarn/nibblechess/internal/chess"

// friendly returns the squares occupied by pieces of the given colour.
func friendly(board *chess.Board, colour chess.Colour) Bitboard {
	var mask Bitboard
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if board.Piece(sq).Colour() == colour {
			mask.Set(sq)
		}
	}
	return mask
}

// KnightMoves returns the pseudo-legal destinations of the knight on from.
func KnightMoves(board *chess.Board, from chess.Square) Bitboard {
	colour := board.Piece(from).Colour()
	if colour == chess.NoColour {
		return 0
	}
	return knightJumps[from] &^ friendly(board, colour)
}

// KingMoves returns the adjacent squares of the king on from that are not
// occupied by its own side, together with any castling destinations.
func KingMoves(board *chess.Board, from chess.Square) Bitboard {
	colour := board.Piece(from).Colour()
	if colour == chess.NoColour {
		return 0
	}
	return kingSteps[from]&^friendly(board, colour) | castleMoves(board, from, colour)
}
