// Package worker plays batches of independent games on a pool of goroutines.
// Each game, with its board and players, belongs to exactly one worker.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/nibblechess/internal/game"
	"github.com/lgbarn/nibblechess/internal/hashing"
)

// WorkItem describes one game to play.
type WorkItem struct {
	Index int   // 1-based game number in the batch
	Seed  int64 // Seed for the game's players
}

// ProcessResult is the outcome of one game.
type ProcessResult struct {
	Index     int
	Record    *game.Record
	Signature hashing.Signature // Final position, for duplicate checks

	Duplicate   bool   // Final position already seen earlier in the batch
	DuplicateOf int    // Game number of the earlier game
	ArchiveID   uint64 // Archive key, 0 when not archived
	Error       error  // Infrastructure failure; game errors live in Record
}

// ProcessFunc plays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool plays work items on a fixed set of goroutines. Once stopped, items
// still queued are counted as skipped instead of played.
type Pool struct {
	workers int
	buffer  int
	play    ProcessFunc

	queue   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	stopped atomic.Bool
	played  atomic.Int64
	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines; values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the queue and result buffer size; values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool running play. The default is one worker and a
// buffer of 10.
func NewPool(play ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, buffer: 10, play: play}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for item := range p.queue {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue
		}
		res := p.play(item)
		p.played.Add(1)
		p.results <- res
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.queue <- item
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends the queue, waits for the workers and then closes the result
// channel. Results must be drained concurrently.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished games.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Played returns the number of items played so far.
func (p *Pool) Played() int {
	return int(p.played.Load())
}

// Skipped returns the number of items dropped after Stop.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// Run starts the pool, submits items and calls handle for each result in
// completion order. handle may call Stop. Run returns once every item has
// been played or skipped and every result handled.
func (p *Pool) Run(items []WorkItem, handle func(ProcessResult)) {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()
	for res := range p.results {
		handle(res)
	}
}
