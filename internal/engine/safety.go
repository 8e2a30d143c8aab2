package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/errors"
)

// SafetyMode selects how destinations that expose the king are treated.
type SafetyMode int

const (
	// SafetyFull removes every destination that leaves the mover's king
	// attacked, and castling through or out of check.
	SafetyFull SafetyMode = iota

	// SafetyStub treats every square as safe: the move set is the
	// pseudo-legal one.
	SafetyStub
)

// String returns the flag name of the mode.
func (m SafetyMode) String() string {
	switch m {
	case SafetyFull:
		return "full"
	case SafetyStub:
		return "stub"
	}
	return fmt.Sprintf("SafetyMode(%d)", int(m))
}

// ParseSafetyMode reads "full" or "stub".
func ParseSafetyMode(s string) (SafetyMode, error) {
	switch strings.ToLower(s) {
	case "full", "":
		return SafetyFull, nil
	case "stub":
		return SafetyStub, nil
	}
	return SafetyFull, fmt.Errorf("safety mode %q: %w", s, errors.ErrInvalidConfig)
}

// filterSafety restricts the pseudo-legal masks in place. king is the
// mover's king square and must be valid.
func filterSafety(board *chess.Board, side chess.Colour, king chess.Square, masks *[chess.NumSquares]Bitboard, mode SafetyMode) {
	if mode == SafetyStub {
		return
	}
	enemy := side.Opposite()

	// En-passant captures remove a pawn that is not on the destination, so
	// they are settled by playing them out on a copy.
	var enPassant []chess.Move
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if from == king {
			continue
		}
		for _, to := range masks[from].Squares() {
			if !isEnPassant(board, from, to) {
				continue
			}
			masks[from].Clear(to)
			if enPassantSafe(board, side, from, to) {
				enPassant = append(enPassant, chess.NewMove(from, to))
			}
		}
	}

	checkers := Attackers(board, king, enemy)
	switch checkers.Count() {
	case 0:
	case 1:
		checker := checkers.Squares()[0]
		allowed := checkers | between(king, checker)
		for sq := range masks {
			if chess.Square(sq) != king {
				masks[sq] &= allowed
			}
		}
	default:
		for sq := range masks {
			if chess.Square(sq) != king {
				masks[sq] = 0
			}
		}
	}

	restrictPins(board, side, king, masks)
	filterKingMoves(board, side, king, masks)

	for _, m := range enPassant {
		masks[m.From].Set(m.To)
	}
}

// restrictPins limits every pinned piece to the line between its king and the pinner.
func restrictPins(board *chess.Board, side chess.Colour, king chess.Square, masks *[chess.NumSquares]Bitboard) {
	enemy := side.Opposite()
	for _, diagonal := range []bool{true, false} {
		for _, d := range slidingDirs(diagonal, !diagonal) {
			pinned := firstPiece(board, king, d)
			if !pinned.Valid() || board.Piece(pinned).Colour() != side {
				continue
			}
			pinner := firstPiece(board, pinned, d)
			if !pinner.Valid() {
				continue
			}
			if p := board.Piece(pinner); p.Colour() == enemy && slidesAlong(p, diagonal) {
				masks[pinned] &= between(king, pinner) | SquareMask(pinner)
			}
		}
	}
}

// filterKingMoves drops king destinations that are attacked once the king has
// left its origin, and castles that start in or pass through check.
func filterKingMoves(board *chess.Board, side chess.Colour, king chess.Square, masks *[chess.NumSquares]Bitboard) {
	enemy := side.Opposite()
	without := *board
	without.Clear(king)

	for _, to := range masks[king].Squares() {
		if castleSide, ok := isCastle(board, king, to); ok && !castleSafe(board, side, castleSide) {
			masks[king].Clear(to)
			continue
		}
		if IsSquareAttacked(&without, to, enemy) {
			masks[king].Clear(to)
		}
	}
}

// enPassantSafe plays the capture on a copy and reports whether the mover's
// king is left unattacked.
func enPassantSafe(board *chess.Board, side chess.Colour, from, to chess.Square) bool {
	trial := *board
	if err := trial.Apply(chess.NewMove(from, to)); err != nil {
		return false
	}
	return !IsInCheck(&trial, side)
}
