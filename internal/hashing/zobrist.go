package hashing

import "github.com/lgbarn/nibblechess/internal/chess"

// Keys are indexed by the 4-bit square kind. Unmoved rooks and the en-passant
// marker have their own kinds, so castling and en-passant state need no
// separate keys. Empty squares contribute nothing.
var (
	zobristKind [chess.NumPieces][chess.NumSquares]uint64
	zobristSide uint64 // XOR when black to move
)

func init() {
	rng := prng{state: 0x6E6962626C652A}
	for kind := chess.Piece(1); kind < chess.NumPieces; kind++ {
		for sq := 0; sq < chess.NumSquares; sq++ {
			zobristKind[kind][sq] = rng.next()
		}
	}
	zobristSide = rng.next()
}

// prng is xorshift64*, seeded with a constant so hashes are stable across runs.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Hash returns the Zobrist hash of board with side to move.
func Hash(board *chess.Board, side chess.Colour) uint64 {
	var h uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if kind := board.Piece(sq); kind != chess.Empty {
			h ^= zobristKind[kind][sq]
		}
	}
	if side == chess.Black {
		h ^= zobristSide
	}
	return h
}

// WeakHash is a cheap positional checksum used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		h = h*31 + uint32(board.Piece(sq))
	}
	return h
}
