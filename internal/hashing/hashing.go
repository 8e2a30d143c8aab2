// Package hashing provides Zobrist position hashing and duplicate detection
// for finished games.
package hashing

import "github.com/lgbarn/nibblechess/internal/chess"

// Signature identifies a finished game by its final position.
type Signature struct {
	// ID is the caller's game number, reported back on a duplicate
	ID int
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Weak is a second, independent checksum of the final position
	Weak uint32
	// Plies is the number of half-moves in the game
	Plies int
}

// NewSignature computes the signature of a game ending on board with side to
// move after plies half-moves.
func NewSignature(id int, board *chess.Board, side chess.Colour, plies int) Signature {
	return Signature{
		ID:    id,
		Hash:  Hash(board, side),
		Weak:  WeakHash(board),
		Plies: plies,
	}
}

// DuplicateDetector tracks final positions of finished games.
type DuplicateDetector struct {
	hashTable map[uint64][]Signature
	// exactMatch also requires equal ply counts
	exactMatch     bool
	maxCapacity    int
	size           int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With exactMatch two games match
// only if they also took the same number of plies. maxCapacity of 0 means
// unlimited; once full, new games are checked but not remembered.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether sig matches a game seen before, returning the
// earlier game's ID if so. Unmatched signatures are remembered.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (firstID int, duplicate bool) {
	for _, seen := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, seen) {
			d.duplicateCount++
			return seen.ID, true
		}
	}
	if d.IsFull() {
		return 0, false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return 0, false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.Weak != b.Weak {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of remembered games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}
