package worker

import (
	"math/rand"
	"slices"

	"github.com/lgbarn/nibblechess/internal/archive"
	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/game"
	"github.com/lgbarn/nibblechess/internal/hashing"
	"github.com/lgbarn/nibblechess/internal/oracle"
)

// Runner plays one self-play game per work item with random players.
type Runner struct {
	play      *config.PlayConfig
	detector  *hashing.DuplicateDetector
	store     *archive.Store
	verify    game.VerifyFunc
	observers []game.ObserverFunc
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithDuplicateDetector reports games ending in an already seen position.
// The detector is only used from PlayBatch's calling goroutine.
func WithDuplicateDetector(d *hashing.DuplicateDetector) RunnerOption {
	return func(r *Runner) {
		r.detector = d
	}
}

// WithArchive saves every finished game to store.
func WithArchive(store *archive.Store) RunnerOption {
	return func(r *Runner) {
		r.store = store
	}
}

// WithVerifier checks every move set with fn instead of the reference
// generator. It applies whether or not play.Verify is set.
func WithVerifier(fn game.VerifyFunc) RunnerOption {
	return func(r *Runner) {
		r.verify = fn
	}
}

// WithGameObserver is called after every move of every game. It runs on the
// worker goroutines, so it must be safe for concurrent use.
func WithGameObserver(fn game.ObserverFunc) RunnerOption {
	return func(r *Runner) {
		r.observers = append(r.observers, fn)
	}
}

// NewRunner creates a Runner for the play settings.
func NewRunner(play *config.PlayConfig, opts ...RunnerOption) *Runner {
	r := &Runner{play: play}
	if play.Verify {
		r.verify = oracle.Verify
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Items returns the work items for a batch: game n is seeded with Seed+n-1.
func (r *Runner) Items() []WorkItem {
	items := make([]WorkItem, r.play.Games)
	for i := range items {
		items[i] = WorkItem{Index: i + 1, Seed: r.play.Seed + int64(i)}
	}
	return items
}

// Process implements ProcessFunc. It plays the game and signs its final
// position; duplicate checks and archiving are left to PlayBatch.
func (r *Runner) Process(item WorkItem) ProcessResult {
	rng := rand.New(rand.NewSource(item.Seed))
	opts := []game.Option{
		game.WithSafety(r.play.Safety),
		game.WithNumber(item.Index),
	}
	pos, err := r.play.StartPosition()
	if err != nil {
		return ProcessResult{Index: item.Index, Error: err}
	}
	if pos != nil {
		opts = append(opts, game.WithPosition(pos))
	}
	if r.verify != nil {
		opts = append(opts, game.WithVerifier(r.verify))
	}
	for _, fn := range r.observers {
		opts = append(opts, game.WithObserver(fn))
	}

	g := game.New(game.NewRandomPlayer(rng), game.NewRandomPlayer(rng), opts...)
	rec := g.Play(r.play.MaxPlies)
	rec.Seed = item.Seed

	board := g.Board()
	sig := hashing.NewSignature(item.Index, board, g.Side(), rec.Plies)
	rec.Hash = sig.Hash
	return ProcessResult{Index: item.Index, Record: rec, Signature: sig}
}

// PlayBatch plays every item of the batch on pool and returns the results
// in game order. Duplicate checks and archive saves run in that order
// after the pool drains, so both are the same for any worker count. With
// FailFast set, the first mismatch stops the pool and skipped games are
// missing from the results.
func (r *Runner) PlayBatch(pool *Pool) []ProcessResult {
	results := make([]ProcessResult, 0, r.play.Games)
	pool.Run(r.Items(), func(res ProcessResult) {
		if r.play.FailFast && res.Record != nil && res.Record.End == game.EndMismatch {
			pool.Stop()
		}
		results = append(results, res)
	})
	slices.SortFunc(results, func(a, b ProcessResult) int { return a.Index - b.Index })

	for i := range results {
		r.settle(&results[i])
	}
	return results
}

func (r *Runner) settle(res *ProcessResult) {
	if res.Error != nil {
		return
	}
	if r.detector != nil {
		res.DuplicateOf, res.Duplicate = r.detector.CheckAndAdd(res.Signature)
	}
	if r.store != nil {
		id, err := r.store.Save(res.Record)
		if err != nil {
			res.Error = err
			return
		}
		res.ArchiveID = id
	}
}
