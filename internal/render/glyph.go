// Package render draws boards for people: ANSI text for any terminal and a
// full-screen tcell view.
package render

import "github.com/lgbarn/nibblechess/internal/chess"

var (
	whiteGlyphs = [...]rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}
	blackGlyphs = [...]rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}
)

// Glyph returns the character for the piece on a square. Unicode selects the
// chess symbols, otherwise FEN letters are used. Empty squares and the
// en-passant marker render as blank (unicode) or '.' (letters).
func Glyph(p chess.Piece, unicode bool) rune {
	if !p.IsPiece() {
		if unicode {
			return ' '
		}
		return '.'
	}
	if !unicode {
		return rune(p.Letter())
	}
	if p.Colour() == chess.Black {
		return blackGlyphs[p.Type()]
	}
	return whiteGlyphs[p.Type()]
}

// isDark reports whether a square is a dark square; a1 is dark.
func isDark(file, rank int) bool {
	return (file+rank)%2 == 0
}

// sideToMove returns the status line for side.
func sideToMove(side chess.Colour) string {
	switch side {
	case chess.White:
		return "white to move"
	case chess.Black:
		return "black to move"
	}
	return ""
}
