package testutil

import (
	"testing"

	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/engine"
)

// MustPosition parses a FEN string and calls t.Fatal if parsing fails.
func MustPosition(t testing.TB, fen string) *engine.Position {
	t.Helper()
	pos, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return pos
}

// MustMoves parses coordinate moves such as "e2e4" and "a7a8n".
func MustMoves(t testing.TB, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		m, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		moves = append(moves, m)
	}
	return moves
}

// PlayMoves applies coordinate moves to board in order, failing the test on
// the first error.
func PlayMoves(t testing.TB, board *chess.Board, texts ...string) {
	t.Helper()
	for _, m := range MustMoves(t, texts...) {
		if err := board.Apply(m); err != nil {
			t.Fatalf("Apply(%v): %v", m, err)
		}
	}
}

// MoveStrings renders moves as coordinate text for readable diffs.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
