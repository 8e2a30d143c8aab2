// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a square index outside 0-63.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrEmptySquare indicates a move whose origin holds no piece.
	ErrEmptySquare = errors.New("no piece on origin square")

	// ErrIllegalMove indicates a move that is not in the current move set,
	// or one the board refuses because it would destroy a friendly piece.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoMoves indicates the side to move has no available move.
	ErrNoMoves = errors.New("no available moves")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMoveText indicates coordinate input that could not be read as a move.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound indicates a missing archived game.
	ErrNotFound = errors.New("not found")

	// ErrOracleMismatch indicates the generated move set disagrees with the reference generator.
	ErrOracleMismatch = errors.New("move set differs from reference generator")

	// ErrUnverifiable indicates a position the reference generator cannot
	// evaluate, such as one with a king missing.
	ErrUnverifiable = errors.New("position cannot be verified")

	// ErrStopped indicates the user ended a game before it finished.
	ErrStopped = errors.New("stopped by user")
)

// MoveError wraps errors with game context: the ply, the side to move and the
// offending move. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Game int    // 1-based game number in a batch (0 if not applicable)
	Ply  int    // 1-based ply at which the error occurred (0 if not applicable)
	Side string // Side to move ("White" or "Black")
	Move string // Coordinate text of the move (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Game > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.Game))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
