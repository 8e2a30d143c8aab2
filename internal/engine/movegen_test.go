package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/nibblechess/internal/chess"
)

// mask builds a bitboard from square names.
func mask(t *testing.T, names ...string) Bitboard {
	t.Helper()
	var b Bitboard
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", name, err)
		}
		b.Set(sq)
	}
	return b
}

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return pos
}

func TestBitboard(t *testing.T) {
	var b Bitboard
	b.Set(chess.A1)
	b.Set(chess.E4)
	b.Set(chess.H8)
	b.Set(chess.NoSquare)

	if got := b.Count(); got != 3 {
		t.Errorf("Count() = %d; want 3", got)
	}
	if !b.Has(chess.E4) || b.Has(chess.E5) {
		t.Errorf("Has: unexpected membership in %064b", uint64(b))
	}
	if diff := cmp.Diff([]chess.Square{chess.A1, chess.E4, chess.H8}, b.Squares()); diff != "" {
		t.Errorf("Squares() mismatch (-want +got):\n%s", diff)
	}

	b.Clear(chess.E4)
	if b.Has(chess.E4) || b.Count() != 2 {
		t.Errorf("Clear(e4) left %v", b.Squares())
	}
}

func TestJumpTables(t *testing.T) {
	tests := []struct {
		name  string
		table *[chess.NumSquares]Bitboard
		sq    chess.Square
		want  []string
	}{
		{"knight corner a1", &knightJumps, chess.A1, []string{"b3", "c2"}},
		{"knight edge h4", &knightJumps, chess.H4, []string{"g2", "f3", "f5", "g6"}},
		{"knight centre d4", &knightJumps, chess.D4, []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}},
		{"king corner h8", &kingSteps, chess.H8, []string{"g8", "g7", "h7"}},
		{"king edge a5", &kingSteps, chess.A5, []string{"a4", "a6", "b4", "b5", "b6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.table[tt.sq], mask(t, tt.want...); got != want {
				t.Errorf("table[%v] =\n%vwant\n%v", tt.sq, got, want)
			}
		})
	}

	if got, want := pawnAttacks[chess.White][chess.A2], mask(t, "b3"); got != want {
		t.Errorf("white pawn attacks from a2 =\n%vwant\n%v", got, want)
	}
	if got, want := pawnAttacks[chess.Black][chess.E7], mask(t, "d6", "f6"); got != want {
		t.Errorf("black pawn attacks from e7 =\n%vwant\n%v", got, want)
	}
}

func TestPseudoMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from chess.Square
		want []string
	}{
		{
			name: "knight excludes friendly squares",
			fen:  InitialFEN,
			from: chess.B1,
			want: []string{"a3", "c3"},
		},
		{
			name: "pawn single and double push",
			fen:  InitialFEN,
			from: chess.E2,
			want: []string{"e3", "e4"},
		},
		{
			name: "pawn double push blocked by first square",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			from: chess.E2,
			want: nil,
		},
		{
			name: "pawn double push blocked on second square",
			fen:  "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1",
			from: chess.E2,
			want: []string{"e3"},
		},
		{
			name: "pawn captures enemies only",
			fen:  "4k3/8/8/8/8/3p1N2/4P3/4K3 w - - 0 1",
			from: chess.E2,
			want: []string{"d3", "e3", "e4"},
		},
		{
			name: "black pawn captures downwards",
			fen:  "4k3/3p4/2N1B3/8/8/8/8/4K3 b - - 0 1",
			from: chess.D7,
			want: []string{"c6", "d6", "d5", "e6"},
		},
		{
			name: "pawn captures onto marker",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			from: chess.E5,
			want: []string{"d6", "e6"},
		},
		{
			name: "pawn on far-minus-one rank reaches promotion squares",
			fen:  "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			from: chess.A7,
			want: []string{"a8", "b8"},
		},
		{
			name: "bishop stops before friendly piece two squares away",
			fen:  "4k3/8/8/8/8/4P3/8/2B1K3 w - - 0 1",
			from: chess.C1,
			want: []string{"b2", "a3", "d2"},
		},
		{
			name: "rook includes first enemy",
			fen:  "4k3/8/8/8/8/8/8/R2n1K2 w - - 0 1",
			from: chess.A1,
			want: []string{"b1", "c1", "d1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"},
		},
		{
			name: "queen from the centre of an empty board",
			fen:  "k7/8/8/8/3Q4/8/8/7K w - - 0 1",
			from: chess.D4,
			want: []string{
				"a1", "b2", "c3", "e5", "f6", "g7", "h8",
				"a7", "b6", "c5", "e3", "f2", "g1",
				"d1", "d2", "d3", "d5", "d6", "d7", "d8",
				"a4", "b4", "c4", "e4", "f4", "g4", "h4",
			},
		},
		{
			name: "king with both castles",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: chess.E1,
			want: []string{"c1", "d1", "d2", "e2", "f2", "f1", "g1"},
		},
		{
			name: "castling needs every square between empty",
			fen:  "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1",
			from: chess.E1,
			want: []string{"d1", "d2", "e2", "f2", "f1"},
		},
		{
			name: "castling needs an unmoved rook",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Q - 0 1",
			from: chess.E1,
			want: []string{"c1", "d1", "d2", "e2", "f2", "f1"},
		},
		{
			name: "black castles",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b kq - 0 1",
			from: chess.E8,
			want: []string{"c8", "d8", "d7", "e7", "f7", "f8", "g8"},
		},
		{
			name: "empty square",
			fen:  InitialFEN,
			from: chess.E4,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			got := PseudoMoves(pos.Board, tt.from)
			if want := mask(t, tt.want...); got != want {
				t.Errorf("PseudoMoves(%v) =\n%vwant\n%v", tt.from, got, want)
			}
		})
	}
}

func TestAttackers(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   chess.Square
		by   chess.Colour
		want []string
	}{
		{
			name: "knight and pawn",
			fen:  "4k3/8/8/8/8/3p1n2/8/4K3 w - - 0 1",
			sq:   chess.E1,
			by:   chess.Black,
			want: []string{"f3"},
		},
		{
			name: "pawn diagonal",
			fen:  "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1",
			sq:   chess.E1,
			by:   chess.Black,
			want: []string{"d2"},
		},
		{
			name: "rays stop at the first piece",
			fen:  "4r3/8/8/8/4P3/8/8/b3K2q w - - 0 1",
			sq:   chess.E1,
			by:   chess.Black,
			want: []string{"h1"},
		},
		{
			name: "rook variants and queens on every line",
			fen:  "k3r3/8/8/q7/8/8/8/4K2r w - - 0 1",
			sq:   chess.E1,
			by:   chess.Black,
			want: []string{"e8", "a5", "h1"},
		},
		{
			name: "white pawn attacks upwards",
			fen:  "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1",
			sq:   chess.E4,
			by:   chess.White,
			want: []string{"d3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			got := Attackers(pos.Board, tt.sq, tt.by)
			if want := mask(t, tt.want...); got != want {
				t.Errorf("Attackers(%v, %v) =\n%vwant\n%v", tt.sq, tt.by, got, want)
			}
		})
	}
}

func TestAttackers_ThroughMarker(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	pos.Board.Set(chess.E3, chess.EnPassant)
	pos.Board.Set(chess.E5, chess.BlackQueen)

	if got, want := Attackers(pos.Board, chess.E1, chess.Black), mask(t, "e5"); got != want {
		t.Errorf("Attackers through marker =\n%vwant\n%v", got, want)
	}
	if !IsInCheck(pos.Board, chess.White) {
		t.Error("IsInCheck(White) = false; want true")
	}
	if IsInCheck(pos.Board, chess.Black) {
		t.Error("IsInCheck(Black) = true; want false")
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b chess.Square
		want []string
	}{
		{"file", chess.E1, chess.E5, []string{"e2", "e3", "e4"}},
		{"rank reversed", chess.H1, chess.D1, []string{"e1", "f1", "g1"}},
		{"diagonal", chess.A1, chess.D4, []string{"b2", "c3"}},
		{"adjacent", chess.E1, chess.F2, nil},
		{"not aligned", chess.E1, chess.F3, nil},
		{"same square", chess.E1, chess.E1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := between(tt.a, tt.b), mask(t, tt.want...); got != want {
				t.Errorf("between(%v, %v) =\n%vwant\n%v", tt.a, tt.b, got, want)
			}
		})
	}
}
