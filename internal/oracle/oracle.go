// Package oracle cross-checks generated move sets against the dragontoothmg
// move generator.
package oracle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/engine"
	"github.com/lgbarn/nibblechess/internal/errors"
)

// Pair is a (from, to) square pair. Promotion choices collapse onto one pair.
type Pair struct {
	From chess.Square
	To   chess.Square
}

func (p Pair) String() string {
	return p.From.String() + p.To.String()
}

func comparePairs(a, b Pair) int {
	if a.From != b.From {
		return int(a.From) - int(b.From)
	}
	return int(a.To) - int(b.To)
}

// Mismatch describes how a move set differs from the reference.
type Mismatch struct {
	FEN     string
	Missing []Pair // legal according to the reference, absent from the set
	Extra   []Pair // in the set, illegal according to the reference
}

// Error implements error.
func (m *Mismatch) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v at %q", errors.ErrOracleMismatch, m.FEN)
	if len(m.Missing) > 0 {
		fmt.Fprintf(&sb, "; missing %v", m.Missing)
	}
	if len(m.Extra) > 0 {
		fmt.Fprintf(&sb, "; extra %v", m.Extra)
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrOracleMismatch.
func (m *Mismatch) Unwrap() error {
	return errors.ErrOracleMismatch
}

// LegalPairs returns the legal (from, to) pairs of the FEN position according
// to dragontoothmg, in increasing origin then destination order.
func LegalPairs(fen string) []Pair {
	board := dragontoothmg.ParseFen(fen)
	legal := board.GenerateLegalMoves()

	pairs := make([]Pair, 0, len(legal))
	for i := range legal {
		m := &legal[i]
		pairs = append(pairs, Pair{From: chess.Square(m.From()), To: chess.Square(m.To())})
	}
	slices.SortFunc(pairs, comparePairs)
	return slices.Compact(pairs)
}

// SetPairs returns the (from, to) pairs of a move set in order.
func SetPairs(set *engine.MoveSet) []Pair {
	moves := set.Moves()
	pairs := make([]Pair, 0, len(moves))
	for _, m := range moves {
		pairs = append(pairs, Pair{From: m.From, To: m.To})
	}
	return pairs
}

// Verify compares set, generated for side on board, with the reference. It
// returns nil on agreement, a *Mismatch otherwise, and ErrUnverifiable for
// positions the reference cannot evaluate.
func Verify(board *chess.Board, side chess.Colour, set *engine.MoveSet) error {
	if set.Safety() != engine.SafetyFull {
		return fmt.Errorf("safety mode %v: %w", set.Safety(), errors.ErrUnverifiable)
	}
	if board.KingSquare(chess.White) == chess.NoSquare || board.KingSquare(chess.Black) == chess.NoSquare {
		return fmt.Errorf("missing king: %w", errors.ErrUnverifiable)
	}
	if board.Count(chess.WhiteKing) > 1 || board.Count(chess.BlackKing) > 1 {
		return fmt.Errorf("extra king: %w", errors.ErrUnverifiable)
	}

	fen := engine.BoardToFEN(board, side)
	want := LegalPairs(fen)
	got := SetPairs(set)

	missing, extra := diffPairs(want, got)
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	return &Mismatch{FEN: fen, Missing: missing, Extra: extra}
}

// diffPairs merges two sorted pair lists.
func diffPairs(want, got []Pair) (missing, extra []Pair) {
	i, j := 0, 0
	for i < len(want) || j < len(got) {
		switch {
		case j == len(got):
			missing = append(missing, want[i])
			i++
		case i == len(want):
			extra = append(extra, got[j])
			j++
		default:
			c := comparePairs(want[i], got[j])
			switch {
			case c < 0:
				missing = append(missing, want[i])
				i++
			case c > 0:
				extra = append(extra, got[j])
				j++
			default:
				i++
				j++
			}
		}
	}
	return missing, extra
}
