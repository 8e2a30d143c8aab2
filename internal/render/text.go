package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/game"
)

const (
	ansiClear = "\x1b[H\x1b[J"
	ansiLight = "\x1b[47m\x1b[30m"
	ansiDark  = "\x1b[40m\x1b[37m"
	ansiReset = "\x1b[0m"

	fileLabels = "  a b c d e f g h\n"
)

// TextRenderer writes the board as text, rank 8 at the top.
type TextRenderer struct {
	w       io.Writer
	colour  bool
	unicode bool
	clear   bool
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// WithColour paints light and dark squares with ANSI backgrounds.
func WithColour(on bool) TextOption {
	return func(r *TextRenderer) { r.colour = on }
}

// WithUnicode draws chess symbols instead of FEN letters.
func WithUnicode(on bool) TextOption {
	return func(r *TextRenderer) { r.unicode = on }
}

// WithClear homes the cursor and clears the terminal before each board.
func WithClear(on bool) TextOption {
	return func(r *TextRenderer) { r.clear = on }
}

// NewTextRenderer creates a renderer writing to w. By default it draws plain
// FEN letters without escape sequences.
func NewTextRenderer(w io.Writer, opts ...TextOption) *TextRenderer {
	r := &TextRenderer{w: w}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes board and the side to move.
func (r *TextRenderer) Render(board *chess.Board, side chess.Colour) error {
	var sb strings.Builder
	if r.clear {
		sb.WriteString(ansiClear)
	}
	sb.WriteString(fileLabels)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		label := byte('1' + rank)
		sb.WriteByte(label)
		sb.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			if r.colour {
				if isDark(file, rank) {
					sb.WriteString(ansiDark)
				} else {
					sb.WriteString(ansiLight)
				}
			}
			sb.WriteRune(Glyph(board.PieceAt(file, rank), r.unicode))
			sb.WriteByte(' ')
		}
		if r.colour {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte(label)
		sb.WriteByte('\n')
	}
	sb.WriteString(fileLabels)
	sb.WriteString(sideToMove(side))
	sb.WriteByte('\n')

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// Observer returns a game observer that prints the last move and the board
// after every ply.
func (r *TextRenderer) Observer() game.ObserverFunc {
	return func(g *game.Game, m chess.Move) {
		fmt.Fprintf(r.w, "ply %d: %s\n", g.Ply(), m)
		r.Render(g.Board(), g.Side()) //nolint:errcheck // best effort display
	}
}
