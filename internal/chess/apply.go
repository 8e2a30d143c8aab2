package chess

import (
	"fmt"

	"github.com/lgbarn/nibblechess/internal/errors"
)

// Ranks (0-based) on which en-passant markers can appear.
var markerRanks = [2]int{2, 5}

// Apply commits a move, including all of its side effects: rook rights,
// en-passant markers and captures, promotion and castling.
//
// Apply does not check that the move is legal; that is the move set's job.
// It refuses, without touching the board, moves it cannot apply sensibly:
// squares off the board, an origin without a piece, and a destination that is
// the origin or holds a friendly piece.
func (b *Board) Apply(m Move) error {
	if !m.Valid() {
		return fmt.Errorf("apply %s: %w", m, errors.ErrInvalidSquare)
	}
	moved := b.Piece(m.From)
	colour := moved.Colour()
	if colour == NoColour {
		return fmt.Errorf("apply %s: %w", m, errors.ErrEmptySquare)
	}
	if m.From == m.To || b.Piece(m.To).Colour() == colour {
		return fmt.Errorf("apply %s: %w", m, errors.ErrIllegalMove)
	}

	// The marker must be recognised before the sweep below removes it.
	enPassantCapture := moved.Type() == Pawn &&
		b.Piece(m.To) == EnPassant &&
		m.From.File() != m.To.File()

	b.clearEnPassantMarkers()

	switch moved.Type() {
	case Rook:
		moved = moved.Moved()
	case Pawn:
		moved = b.applyPawn(m, moved, enPassantCapture)
	case King:
		b.applyKing(m, colour)
	}

	b.Set(m.To, moved)
	b.Clear(m.From)
	return nil
}

// applyPawn handles the double advance, en-passant capture and promotion. It
// returns the piece to place on the destination.
func (b *Board) applyPawn(m Move, pawn Piece, enPassantCapture bool) Piece {
	colour := pawn.Colour()
	dir := PawnDirection(colour)

	if m.From.Rank() == PawnRank(colour) && m.To.Rank() == m.From.Rank()+2*dir && m.From.File() == m.To.File() {
		if skipped := m.From.Offset(0, dir); !b.Piece(skipped).IsPiece() {
			b.Set(skipped, EnPassant)
		}
		return pawn
	}

	if enPassantCapture {
		victim := m.To.Offset(0, -dir)
		if b.Piece(victim) == MakePiece(colour.Opposite(), Pawn) {
			b.Clear(victim)
		}
	}

	if m.To.Rank() == PromotionRank(colour) {
		return MakePiece(colour, m.Promotion.PieceType())
	}
	return pawn
}

// applyKing relocates the rook when castling and otherwise forfeits both
// castling rights once the king leaves its home square.
func (b *Board) applyKing(m Move, colour Colour) {
	if m.From != KingHome[colour] {
		return
	}
	for _, side := range [2]int{KingSide, QueenSide} {
		if m.To == CastleKingTo[colour][side] &&
			b.Piece(CastleRookSrc[colour][side]) == RookUnmovedFor(colour) &&
			!b.Piece(CastleRookDst[colour][side]).IsPiece() {
			b.Clear(CastleRookSrc[colour][side])
			b.Set(CastleRookDst[colour][side], MakePiece(colour, Rook))
			break
		}
	}
	for _, side := range [2]int{KingSide, QueenSide} {
		src := CastleRookSrc[colour][side]
		if b.Piece(src) == RookUnmovedFor(colour) {
			b.Set(src, MakePiece(colour, Rook))
		}
	}
}

// clearEnPassantMarkers removes every marker from ranks 3 and 6.
func (b *Board) clearEnPassantMarkers() {
	for _, rank := range markerRanks {
		for file := 0; file < BoardSize; file++ {
			sq := NewSquare(file, rank)
			if b.Piece(sq) == EnPassant {
				b.Clear(sq)
			}
		}
	}
}
