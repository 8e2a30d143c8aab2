package chess

import "strings"

// Board is the packed 64-square piece grid: one uint32 row per rank, four
// bits per square, file a in the lowest nibble. It holds piece placement
// only; side to move and clocks belong to the game loop.
//
// Board has value semantics; assigning a Board copies the position.
type Board struct {
	rows [BoardSize]uint32
}

// initialRows is the standard starting position, rank 1 first.
var initialRows = [BoardSize]uint32{
	0x23475432, // rank 1: R N B Q K B N R (a..h, low nibble first)
	0x11111111, // rank 2
	0x00000000,
	0x00000000,
	0x00000000,
	0x00000000,
	0x99999999, // rank 7
	0xABCFDCBA, // rank 8
}

// Castling geometry for the standard start squares.
var (
	KingHome = [2]Square{White: E1, Black: E8}

	// Index 0 is king-side, 1 is queen-side.
	CastleKingTo  = [2][2]Square{White: {G1, C1}, Black: {G8, C8}}
	CastleRookSrc = [2][2]Square{White: {H1, A1}, Black: {H8, A8}}
	CastleRookDst = [2][2]Square{White: {F1, D1}, Black: {F8, D8}}
)

// Castling sides, used to index the castling tables.
const (
	KingSide  = 0
	QueenSide = 1
)

// NewBoard returns a board holding the standard starting position.
func NewBoard() *Board {
	return &Board{rows: initialRows}
}

// NewEmptyBoard returns a board with every square empty.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Piece returns the piece on the square. Off-board squares read as Empty.
func (b *Board) Piece(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	shift := uint(sq.File()) * PieceShift
	return Piece((b.rows[sq.Rank()] >> shift) & pieceMask)
}

// PieceAt returns the piece on the 0-based file and rank.
func (b *Board) PieceAt(file, rank int) Piece {
	return b.Piece(NewSquare(file, rank))
}

// Set places a piece on a square without any side effects. It is meant for
// position setup; game play mutates the board only through Apply.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	row := &b.rows[sq.Rank()]
	shift := uint(sq.File()) * PieceShift
	*row &^= pieceMask << shift
	*row |= uint32(piece&pieceMask) << shift
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Find returns the first square (in index order) holding the piece, or NoSquare.
func (b *Board) Find(piece Piece) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Piece(sq) == piece {
			return sq
		}
	}
	return NoSquare
}

// KingSquare returns the square of the colour's king, or NoSquare if absent.
func (b *Board) KingSquare(colour Colour) Square {
	return b.Find(MakePiece(colour, King))
}

// Count returns how many squares hold the piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Piece(sq) == piece {
			n++
		}
	}
	return n
}

// CanCastle reports whether the colour still holds the structural right to
// castle on the given side: king on its home square and an unmoved rook in the
// matching corner. Emptiness and attacks of the squares between are not checked.
func (b *Board) CanCastle(colour Colour, side int) bool {
	if colour != White && colour != Black {
		return false
	}
	return b.Piece(KingHome[colour]) == MakePiece(colour, King) &&
		b.Piece(CastleRookSrc[colour][side]) == RookUnmovedFor(colour)
}

// EnPassantSquare returns the square holding the en-passant marker, or NoSquare.
func (b *Board) EnPassantSquare() Square {
	for _, rank := range [2]int{2, 5} {
		for file := 0; file < BoardSize; file++ {
			sq := NewSquare(file, rank)
			if b.Piece(sq) == EnPassant {
				return sq
			}
		}
	}
	return NoSquare
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.PieceAt(file, rank).Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
