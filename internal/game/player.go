package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/engine"
	"github.com/lgbarn/nibblechess/internal/errors"
)

// Player chooses a move from the set available to its side.
type Player interface {
	ChooseMove(set *engine.MoveSet) (chess.Move, error)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(set *engine.MoveSet) (chess.Move, error)

// ChooseMove calls f.
func (f PlayerFunc) ChooseMove(set *engine.MoveSet) (chess.Move, error) {
	return f(set)
}

var promotionKinds = [...]chess.PromotionKind{
	chess.PromoteQueen, chess.PromoteKnight, chess.PromoteRook, chess.PromoteBishop,
}

// RandomPlayer picks uniformly among the available moves, and uniformly among
// the four kinds when the move promotes.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer creates a RandomPlayer drawing from rng. A game owns its
// players, so rng must not be shared with another goroutine.
func NewRandomPlayer(rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{rng: rng}
}

// ChooseMove implements Player.
func (p *RandomPlayer) ChooseMove(set *engine.MoveSet) (chess.Move, error) {
	moves := set.Moves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrNoMoves
	}
	m := moves[p.rng.Intn(len(moves))]
	if set.IsPromotion(m) {
		m.Promotion = promotionKinds[p.rng.Intn(len(promotionKinds))]
	}
	return m, nil
}

// ScriptedPlayer plays a fixed list of moves in order.
type ScriptedPlayer struct {
	moves []chess.Move
	next  int
}

// NewScriptedPlayer creates a player from coordinate text such as "e2e4".
func NewScriptedPlayer(texts ...string) (*ScriptedPlayer, error) {
	p := &ScriptedPlayer{moves: make([]chess.Move, 0, len(texts))}
	for _, text := range texts {
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, err
		}
		p.moves = append(p.moves, m)
	}
	return p, nil
}

// ChooseMove returns the next scripted move without checking it against the
// set; the game does that. It returns io.EOF when the script runs out.
func (p *ScriptedPlayer) ChooseMove(*engine.MoveSet) (chess.Move, error) {
	if p.next >= len(p.moves) {
		return chess.Move{}, io.EOF
	}
	m := p.moves[p.next]
	p.next++
	return m, nil
}

// Remaining returns the number of moves not yet played.
func (p *ScriptedPlayer) Remaining() int {
	return len(p.moves) - p.next
}

// TerminalPlayer reads coordinate moves, one per line, and asks again until
// the line names a move in the set. A line of "?" lists the available moves.
type TerminalPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminalPlayer creates a TerminalPlayer reading from in and prompting on out.
func NewTerminalPlayer(in io.Reader, out io.Writer) *TerminalPlayer {
	return &TerminalPlayer{in: bufio.NewScanner(in), out: out}
}

// ChooseMove implements Player. It returns io.EOF when input ends.
func (p *TerminalPlayer) ChooseMove(set *engine.MoveSet) (chess.Move, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", strings.ToLower(set.Side().String()))
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return chess.Move{}, err
			}
			return chess.Move{}, io.EOF
		}

		text := strings.TrimSpace(p.in.Text())
		switch text {
		case "":
			continue
		case "?":
			p.listMoves(set)
			continue
		}

		m, err := chess.ParseMove(strings.ToLower(text))
		if err != nil {
			fmt.Fprintf(p.out, "cannot read %q, expected a move such as e2e4 or e7e8q\n", text)
			continue
		}
		if !set.Contains(m) {
			fmt.Fprintf(p.out, "%s is not available\n", m)
			continue
		}
		return m, nil
	}
}

func (p *TerminalPlayer) listMoves(set *engine.MoveSet) {
	moves := set.Moves()
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = chess.NewMove(m.From, m.To).String()
	}
	fmt.Fprintln(p.out, strings.Join(texts, " "))
}
