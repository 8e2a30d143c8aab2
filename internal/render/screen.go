package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/game"
)

// Screen layout: file labels on rows 0 and 9, ranks on rows 1-8, the status
// line on row 11. Each square is two cells wide.
const (
	boardLeft  = 2
	statusRow  = 11
	squareSize = 2
)

var (
	lightStyle  = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	darkStyle   = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack)
	lastStyle   = tcell.StyleDefault.Background(tcell.ColorOlive).Foreground(tcell.ColorBlack)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	statusStyle = tcell.StyleDefault
)

// ScreenRenderer draws the board into a tcell screen and highlights the
// squares of the last move.
type ScreenRenderer struct {
	screen  tcell.Screen
	unicode bool
	last    chess.Move
	hasLast bool
}

// NewScreenRenderer wraps an initialised screen.
func NewScreenRenderer(screen tcell.Screen, unicode bool) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, unicode: unicode}
}

// OpenScreen creates and initialises the terminal screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// SetLastMove highlights m on the next Render.
func (r *ScreenRenderer) SetLastMove(m chess.Move) {
	r.last = m
	r.hasLast = true
}

// Render draws board with status text under it and shows the screen.
func (r *ScreenRenderer) Render(board *chess.Board, status string) {
	r.screen.Clear()
	r.drawText(0, 0, fileLabels[:len(fileLabels)-1], labelStyle)
	r.drawText(0, chess.BoardSize+1, fileLabels[:len(fileLabels)-1], labelStyle)

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		y := chess.BoardSize - rank
		label := string(rune('1' + rank))
		r.drawText(0, y, label, labelStyle)
		r.drawText(boardLeft+chess.BoardSize*squareSize, y, label, labelStyle)

		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			style := lightStyle
			if isDark(file, rank) {
				style = darkStyle
			}
			if r.hasLast && (sq == r.last.From || sq == r.last.To) {
				style = lastStyle
			}
			x := boardLeft + file*squareSize
			r.screen.SetContent(x, y, Glyph(board.Piece(sq), r.unicode), nil, style)
			r.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}

	r.drawText(0, statusRow, status, statusStyle)
	r.screen.Show()
}

// Observer returns a game observer that redraws after every ply.
func (r *ScreenRenderer) Observer() game.ObserverFunc {
	return func(g *game.Game, m chess.Move) {
		r.SetLastMove(m)
		r.Render(g.Board(), Status(g, m))
	}
}

// Close restores the terminal.
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}

// Quit reports whether ev asks to leave: Escape, Ctrl-C or 'q'.
func Quit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q' || key.Rune() == 'Q'
	}
	return false
}

// Status describes the position after m for the status line.
func Status(g *game.Game, m chess.Move) string {
	return fmt.Sprintf("ply %d  %s  last %s  50-move clock %d", g.Ply(), sideToMove(g.Side()), m, g.HalfmoveClock())
}

func (r *ScreenRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}
