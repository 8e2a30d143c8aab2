package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board together with the FEN fields the board does not carry.
type Position struct {
	Board         *chess.Board
	Side          chess.Colour
	HalfmoveClock int
	FullMove      int
}

// FEN returns the position as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	writeBoardFields(&sb, p.Board, p.Side)
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullMove)
	return sb.String()
}

// ConvertFENCharToPiece converts a FEN letter to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoType
	}
}

// NewBoardFromFEN parses a FEN string. Rooks named by the castling field
// become unmoved rooks; the en-passant field becomes a marker on the board.
// Missing trailing fields default to white to move, no castling, no marker
// and clocks of 0 and 1.
func NewBoardFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &Position{Board: chess.NewEmptyBoard(), Side: chess.White, FullMove: 1}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos.Board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos.Board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts); err != nil {
		return nil, err
	}
	return pos, nil
}

// MustParseFEN is NewBoardFromFEN for known-good constants; it panics on error.
func MustParseFEN(fen string) *Position {
	pos, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pt := ConvertFENCharToPiece(byte(c))
				if pt == chess.NoType {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.MakePiece(colour, pt))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.Side = chess.White
	case "b":
		pos.Side = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights marks the named corner rooks as unmoved. A letter whose
// corner holds no rook of that colour grants nothing.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var side int
		switch c {
		case 'K':
			colour, side = chess.White, chess.KingSide
		case 'Q':
			colour, side = chess.White, chess.QueenSide
		case 'k':
			colour, side = chess.Black, chess.KingSide
		case 'q':
			colour, side = chess.Black, chess.QueenSide
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		corner := chess.CastleRookSrc[colour][side]
		if board.Piece(corner) == chess.MakePiece(colour, chess.Rook) {
			board.Set(corner, chess.RookUnmovedFor(colour))
		}
	}
	return nil
}

// parseEnPassant places the marker named by the en-passant field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	if sq.Rank() != markerRank(chess.White) && sq.Rank() != markerRank(chess.Black) {
		return fmt.Errorf("en passant %q not on rank 3 or 6: %w", parts[3], errors.ErrInvalidFEN)
	}
	if board.Piece(sq).IsPiece() {
		return fmt.Errorf("en passant %q is occupied: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.Set(sq, chess.EnPassant)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.FullMove = n
	}
	return nil
}

// BoardToFEN converts a board and side to move to a FEN string with clocks
// of 0 and 1.
func BoardToFEN(board *chess.Board, side chess.Colour) string {
	var sb strings.Builder
	writeBoardFields(&sb, board, side)
	sb.WriteString(" 0 1")
	return sb.String()
}

func writeBoardFields(sb *strings.Builder, board *chess.Board, side chess.Colour) {
	writePiecePositions(sb, board)
	sb.WriteByte(' ')
	writeSideToMove(sb, side)
	sb.WriteByte(' ')
	writeCastlingRights(sb, board)
	sb.WriteByte(' ')
	writeEnPassant(sb, board)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(file, rank)
			if !piece.IsPiece() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, side chess.Colour) {
	if side == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
}

// writeCastlingRights writes the castling availability derived from the rooks.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := []struct {
		colour chess.Colour
		side   int
		letter byte
	}{
		{chess.White, chess.KingSide, 'K'},
		{chess.White, chess.QueenSide, 'Q'},
		{chess.Black, chess.KingSide, 'k'},
		{chess.Black, chess.QueenSide, 'q'},
	}
	hasCastling := false
	for _, r := range rights {
		if board.CanCastle(r.colour, r.side) {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the marker square, if any.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if sq := board.EnPassantSquare(); sq != chess.NoSquare {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}
