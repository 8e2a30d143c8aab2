package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		// White back rank
		{"white rook a1", A1, WhiteRookUnmoved},
		{"white knight b1", B1, WhiteKnight},
		{"white bishop c1", C1, WhiteBishop},
		{"white queen d1", D1, WhiteQueen},
		{"white king e1", E1, WhiteKing},
		{"white bishop f1", F1, WhiteBishop},
		{"white knight g1", G1, WhiteKnight},
		{"white rook h1", H1, WhiteRookUnmoved},
		// Pawns
		{"white pawn a2", A2, WhitePawn},
		{"white pawn e2", E2, WhitePawn},
		{"black pawn a7", A7, BlackPawn},
		{"black pawn h7", H7, BlackPawn},
		// Black back rank
		{"black rook a8", A8, BlackRookUnmoved},
		{"black knight b8", B8, BlackKnight},
		{"black bishop c8", C8, BlackBishop},
		{"black queen d8", D8, BlackQueen},
		{"black king e8", E8, BlackKing},
		{"black bishop f8", F8, BlackBishop},
		{"black knight g8", G8, BlackKnight},
		{"black rook h8", H8, BlackRookUnmoved},
		// Empty squares
		{"empty e3", E3, Empty},
		{"empty d4", D4, Empty},
		{"empty c6", C6, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Piece(tt.sq); got != tt.piece {
				t.Errorf("Piece(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}
}

func TestNewBoard_Counts(t *testing.T) {
	b := NewBoard()

	pieces, pawns, empty := 0, 0, 0
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.Piece(sq)
		switch {
		case !p.IsPiece():
			empty++
		case p.Type() == Pawn:
			pawns++
		default:
			pieces++
		}
	}
	if pieces != 16 {
		t.Errorf("non-pawn pieces = %d; want 16", pieces)
	}
	if pawns != 16 {
		t.Errorf("pawns = %d; want 16", pawns)
	}
	if empty != 32 {
		t.Errorf("empty squares = %d; want 32", empty)
	}
}

func TestPieceAt_MatchesPiece(t *testing.T) {
	b := NewBoard()
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if got, want := b.PieceAt(file, rank), b.Piece(NewSquare(file, rank)); got != want {
				t.Errorf("PieceAt(%d, %d) = %v; want %v", file, rank, got, want)
			}
		}
	}
	if got := b.PieceAt(8, 0); got != Empty {
		t.Errorf("PieceAt(8, 0) = %v; want Empty", got)
	}
}

func TestBoard_SetDoesNotDisturbNeighbours(t *testing.T) {
	b := NewBoard()
	b.Set(D1, BlackKing)

	if got := b.Piece(D1); got != BlackKing {
		t.Errorf("Piece(d1) = %v; want BlackKing", got)
	}
	if got := b.Piece(C1); got != WhiteBishop {
		t.Errorf("Piece(c1) = %v; want WhiteBishop", got)
	}
	if got := b.Piece(E1); got != WhiteKing {
		t.Errorf("Piece(e1) = %v; want WhiteKing", got)
	}

	b.Set(NoSquare, WhiteQueen) // ignored
	if got := b.Piece(NoSquare); got != Empty {
		t.Errorf("Piece(NoSquare) = %v; want Empty", got)
	}
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()
	c.Clear(E2)

	if b.Piece(E2) != WhitePawn {
		t.Error("clearing the copy changed the original")
	}
	if c.Piece(E2) != Empty {
		t.Error("copy was not modified")
	}
}

func TestBoard_KingSquareAndCastleRights(t *testing.T) {
	b := NewBoard()

	if got := b.KingSquare(White); got != E1 {
		t.Errorf("KingSquare(White) = %v; want e1", got)
	}
	if got := b.KingSquare(Black); got != E8 {
		t.Errorf("KingSquare(Black) = %v; want e8", got)
	}
	for _, colour := range []Colour{White, Black} {
		for _, side := range []int{KingSide, QueenSide} {
			if !b.CanCastle(colour, side) {
				t.Errorf("CanCastle(%v, %d) = false; want true", colour, side)
			}
		}
	}

	b.Set(H1, WhiteRookMoved)
	if b.CanCastle(White, KingSide) {
		t.Error("CanCastle(White, KingSide) with a moved rook = true; want false")
	}

	empty := NewEmptyBoard()
	if got := empty.KingSquare(White); got != NoSquare {
		t.Errorf("KingSquare on empty board = %v; want NoSquare", got)
	}
}

func TestBoard_String(t *testing.T) {
	want := "8 rnbqkbnr\n" +
		"7 pppppppp\n" +
		"6 ........\n" +
		"5 ........\n" +
		"4 ........\n" +
		"3 ........\n" +
		"2 PPPPPPPP\n" +
		"1 RNBQKBNR\n" +
		"  abcdefgh\n"
	if got := NewBoard().String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestPiece_Colour(t *testing.T) {
	tests := []struct {
		piece Piece
		want  Colour
	}{
		{Empty, NoColour},
		{EnPassant, NoColour},
		{WhitePawn, White},
		{WhiteRookUnmoved, White},
		{WhiteKing, White},
		{BlackPawn, Black},
		{BlackRookMoved, Black},
		{BlackKing, Black},
	}
	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Colour(); got != tt.want {
				t.Errorf("Colour() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPiece_TypeAndMake(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
			p := MakePiece(colour, pt)
			if p.Type() != pt {
				t.Errorf("MakePiece(%v, %v).Type() = %v", colour, pt, p.Type())
			}
			if p.Colour() != colour {
				t.Errorf("MakePiece(%v, %v).Colour() = %v", colour, pt, p.Colour())
			}
		}
	}
	if WhiteRookUnmoved.Type() != Rook || BlackRookMoved.Type() != Rook {
		t.Error("rook variants should both report Rook")
	}
	if MakePiece(White, Rook) != WhiteRookMoved {
		t.Error("MakePiece(White, Rook) should be the moved variant")
	}
	if MakePiece(NoColour, Queen) != Empty {
		t.Error("MakePiece(NoColour, ...) should be Empty")
	}
	if WhiteRookUnmoved.Moved() != WhiteRookMoved || BlackRookUnmoved.Moved() != BlackRookMoved {
		t.Error("Moved() should turn an unmoved rook into the moved variant")
	}
	if WhiteQueen.Moved() != WhiteQueen {
		t.Error("Moved() should not change a queen")
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		text       string
		sq         Square
		file, rank int
	}{
		{"a1", A1, 0, 0},
		{"h1", H1, 7, 0},
		{"e2", E2, 4, 1},
		{"e4", E4, 4, 3},
		{"a8", A8, 0, 7},
		{"h8", H8, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sq, err := ParseSquare(tt.text)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.text, err)
			}
			if sq != tt.sq {
				t.Errorf("ParseSquare(%q) = %d; want %d", tt.text, sq, tt.sq)
			}
			if sq.File() != tt.file || sq.Rank() != tt.rank {
				t.Errorf("File/Rank = %d/%d; want %d/%d", sq.File(), sq.Rank(), tt.file, tt.rank)
			}
			if sq.String() != tt.text {
				t.Errorf("String() = %q; want %q", sq.String(), tt.text)
			}
		})
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) succeeded; want error", bad)
		}
	}
}

func TestSquare_OffsetDoesNotWrap(t *testing.T) {
	tests := []struct {
		name   string
		sq     Square
		df, dr int
		want   Square
	}{
		{"h1 east", H1, 1, 0, NoSquare},
		{"a2 west", A2, -1, 0, NoSquare},
		{"h4 north-east", H4, 1, 1, NoSquare},
		{"a4 south-west", A4, -1, -1, NoSquare},
		{"a1 south", A1, 0, -1, NoSquare},
		{"h8 north", H8, 0, 1, NoSquare},
		{"d4 knight", D4, 1, 2, E6},
		{"b1 knight west", B1, -2, 1, NoSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.Offset(tt.df, tt.dr); got != tt.want {
				t.Errorf("Offset(%d, %d) = %v; want %v", tt.df, tt.dr, got, tt.want)
			}
		})
	}
}
