// Package chess provides core chess types: squares, pieces, moves and the packed board.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
	NoColour
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Piece is the 4-bit kind stored on a board square.
//
// Bit 3 selects black; a zero in the low three bits marks a square without a
// piece (Empty, or the en-passant marker). Castling rights live in the kind
// itself: a rook that has never moved is RookUnmoved, every other rook is
// RookMoved.
type Piece uint8

const (
	Empty            Piece = 0x00
	WhitePawn        Piece = 0x01
	WhiteRookUnmoved Piece = 0x02
	WhiteKnight      Piece = 0x03
	WhiteBishop      Piece = 0x04
	WhiteQueen       Piece = 0x05
	WhiteRookMoved   Piece = 0x06
	WhiteKing        Piece = 0x07
	EnPassant        Piece = 0x08
	BlackPawn        Piece = 0x09
	BlackRookUnmoved Piece = 0x0A
	BlackKnight      Piece = 0x0B
	BlackBishop      Piece = 0x0C
	BlackQueen       Piece = 0x0D
	BlackRookMoved   Piece = 0x0E
	BlackKing        Piece = 0x0F
)

const (
	pieceMask  = 0x0F
	kindMask   = 0x07
	blackBit   = 0x08
	NumPieces  = 16
	PieceShift = 4 // bits per packed square
)

// Colour returns the colour of the piece, or NoColour for Empty and EnPassant.
func (p Piece) Colour() Colour {
	if p&kindMask == 0 {
		return NoColour
	}
	if p&blackBit != 0 {
		return Black
	}
	return White
}

// IsPiece reports whether the square value holds a real piece.
func (p Piece) IsPiece() bool {
	return p&kindMask != 0
}

// PieceType is the colour-independent kind of a piece.
type PieceType uint8

const (
	NoType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// typeOf maps the low three bits of a Piece onto its type.
var typeOf = [8]PieceType{NoType, Pawn, Rook, Knight, Bishop, Queen, Rook, King}

// Type returns the colour-independent type. Both rook variants are Rook.
func (p Piece) Type() PieceType {
	return typeOf[p&kindMask]
}

// IsUnmovedRook reports whether the piece is a rook still carrying castling rights.
func (p Piece) IsUnmovedRook() bool {
	return p == WhiteRookUnmoved || p == BlackRookUnmoved
}

// Moved returns the kind a piece becomes once it has left its square.
// Only an unmoved rook changes.
func (p Piece) Moved() Piece {
	switch p {
	case WhiteRookUnmoved:
		return WhiteRookMoved
	case BlackRookUnmoved:
		return BlackRookMoved
	}
	return p
}

// MakePiece builds a coloured piece. Rook yields the moved variant; use
// RookUnmovedFor for a rook that still carries castling rights.
func MakePiece(colour Colour, t PieceType) Piece {
	var p Piece
	switch t {
	case Pawn:
		p = WhitePawn
	case Knight:
		p = WhiteKnight
	case Bishop:
		p = WhiteBishop
	case Rook:
		p = WhiteRookMoved
	case Queen:
		p = WhiteQueen
	case King:
		p = WhiteKing
	default:
		return Empty
	}
	switch colour {
	case White:
		return p
	case Black:
		return p | blackBit
	}
	return Empty
}

// RookUnmovedFor returns the unmoved rook of the given colour.
func RookUnmovedFor(colour Colour) Piece {
	if colour == Black {
		return BlackRookUnmoved
	}
	return WhiteRookUnmoved
}

// Letter returns the FEN letter for the piece: upper case for White, lower case
// for Black, '.' for Empty and '*' for the en-passant marker.
func (p Piece) Letter() byte {
	const letters = ".PRNBQRK*prnbqrk"
	return letters[p&pieceMask]
}

// String returns a descriptive name such as "WhiteRookUnmoved".
func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case EnPassant:
		return "EnPassant"
	case WhiteRookUnmoved, BlackRookUnmoved:
		return p.Colour().String() + "RookUnmoved"
	case WhiteRookMoved, BlackRookMoved:
		return p.Colour().String() + "RookMoved"
	}
	return p.Colour().String() + p.Type().String()
}

// PromotionKind selects the piece a pawn becomes on the far rank.
// PromoteNone resolves to a queen.
type PromotionKind uint8

const (
	PromoteNone PromotionKind = iota
	PromoteQueen
	PromoteKnight
	PromoteRook
	PromoteBishop
)

// PieceType returns the piece type the promotion produces.
func (k PromotionKind) PieceType() PieceType {
	switch k {
	case PromoteKnight:
		return Knight
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	}
	return Queen
}

// Letter returns the lower-case coordinate suffix for the promotion, or 0 for none.
func (k PromotionKind) Letter() byte {
	switch k {
	case PromoteQueen:
		return 'q'
	case PromoteKnight:
		return 'n'
	case PromoteRook:
		return 'r'
	case PromoteBishop:
		return 'b'
	}
	return 0
}

// PromotionFromLetter maps 'q', 'n', 'r', 'b' (either case) to a PromotionKind.
func PromotionFromLetter(c byte) (PromotionKind, bool) {
	switch c {
	case 'q', 'Q':
		return PromoteQueen, true
	case 'n', 'N':
		return PromoteKnight, true
	case 'r', 'R':
		return PromoteRook, true
	case 'b', 'B':
		return PromoteBishop, true
	}
	return PromoteNone, false
}
