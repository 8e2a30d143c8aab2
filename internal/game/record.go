package game

import (
	"fmt"

	"github.com/lgbarn/nibblechess/internal/errors"
)

// EndReason says why Play stopped.
type EndReason int

const (
	EndNoMoves     EndReason = iota // Side to move had an empty move set
	EndPlyLimit                     // The ply limit was reached
	EndPlayerError                  // A player failed or chose a move outside the set
	EndMismatch                     // The verifier rejected a move set
)

var endReasonNames = map[EndReason]string{
	EndNoMoves:     "no-moves",
	EndPlyLimit:    "ply-limit",
	EndPlayerError: "player-error",
	EndMismatch:    "mismatch",
}

// String returns the hyphenated name of the reason.
func (r EndReason) String() string {
	if name, ok := endReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("EndReason(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r EndReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *EndReason) UnmarshalText(text []byte) error {
	for reason, name := range endReasonNames {
		if name == string(text) {
			*r = reason
			return nil
		}
	}
	return fmt.Errorf("unknown end reason %q", text)
}

// Record summarises a finished game.
type Record struct {
	ID            int       `json:"id"`
	Seed          int64     `json:"seed"`
	Safety        string    `json:"safety"`
	Moves         []string  `json:"moves"`
	Plies         int       `json:"plies"`
	End           EndReason `json:"end"`
	Error         string    `json:"error,omitempty"`
	FinalFEN      string    `json:"final_fen"`
	HalfmoveClock int       `json:"halfmove_clock"`
	Hash          uint64    `json:"hash,omitempty"`

	Err error `json:"-"`
}

// Play advances the game until the side to move has no moves, maxPlies
// plies have been played in this call, or an error occurs. A non-positive
// maxPlies means no limit.
func (g *Game) Play(maxPlies int) *Record {
	rec := &Record{ID: g.number, Safety: g.safety.String(), End: EndPlyLimit}
	for played := 0; maxPlies <= 0 || played < maxPlies; played++ {
		if _, err := g.Advance(); err != nil {
			rec.End = endReasonFor(err)
			if rec.End != EndNoMoves {
				rec.Err = err
				rec.Error = err.Error()
			}
			break
		}
	}

	rec.Moves = make([]string, len(g.history))
	for i, m := range g.history {
		rec.Moves[i] = m.String()
	}
	rec.Plies = g.ply
	rec.FinalFEN = g.FEN()
	rec.HalfmoveClock = g.halfmove
	return rec
}

func endReasonFor(err error) EndReason {
	switch {
	case errors.Is(err, errors.ErrNoMoves):
		return EndNoMoves
	case errors.Is(err, errors.ErrOracleMismatch):
		return EndMismatch
	}
	return EndPlayerError
}
