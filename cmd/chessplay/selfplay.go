package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/lgbarn/nibblechess/internal/archive"
	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/errors"
	"github.com/lgbarn/nibblechess/internal/game"
	"github.com/lgbarn/nibblechess/internal/hashing"
	"github.com/lgbarn/nibblechess/internal/output"
	"github.com/lgbarn/nibblechess/internal/render"
	"github.com/lgbarn/nibblechess/internal/worker"
)

// batchSummary counts the outcomes of a batch.
type batchSummary struct {
	played     int
	skipped    int
	failed     int
	duplicates int
	archived   int
	ends       map[game.EndReason]int
}

// newBatchSummary starts a summary for a batch whose pool played and
// skipped the given numbers of games.
func newBatchSummary(played, skipped int) *batchSummary {
	return &batchSummary{played: played, skipped: skipped, ends: make(map[game.EndReason]int)}
}

func (s *batchSummary) add(res worker.ProcessResult) {
	if res.Error != nil {
		s.failed++
		return
	}
	s.ends[res.Record.End]++
	if res.Duplicate {
		s.duplicates++
	}
	if res.ArchiveID != 0 {
		s.archived++
	}
}

// String renders the summary as one line, end reasons in name order.
func (s *batchSummary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d game(s) played", s.played)

	reasons := make([]game.EndReason, 0, len(s.ends))
	for r := range s.ends {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i].String() < reasons[j].String() })
	for _, r := range reasons {
		fmt.Fprintf(&sb, ", %d %s", s.ends[r], r)
	}

	if s.duplicates > 0 {
		fmt.Fprintf(&sb, ", %d duplicate(s)", s.duplicates)
	}
	if s.archived > 0 {
		fmt.Fprintf(&sb, ", %d archived", s.archived)
	}
	if s.failed > 0 {
		fmt.Fprintf(&sb, ", %d failed", s.failed)
	}
	if s.skipped > 0 {
		fmt.Fprintf(&sb, ", %d skipped", s.skipped)
	}
	return sb.String()
}

// playBatch plays cfg.Play.Games self-play games on the worker pool and writes
// their records in game order.
func playBatch(cfg *config.Config, store *archive.Store, display io.Writer) error {
	var opts []worker.RunnerOption
	if cfg.Duplicate.Detect {
		opts = append(opts, worker.WithDuplicateDetector(hashing.NewDuplicateDetector(true, 0)))
	}
	if store != nil {
		opts = append(opts, worker.WithArchive(store))
	}
	if cfg.Output.Render == config.RenderText {
		opts = append(opts, worker.WithGameObserver(lockedObserver(textObserver(cfg, display))))
	}

	runner := worker.NewRunner(cfg.Play, opts...)
	pool := worker.NewPool(runner.Process, worker.WithWorkers(cfg.Play.Workers))

	results := runner.PlayBatch(pool)

	w := output.NewRecordWriter(cfg.OutputFile, cfg)
	summary := newBatchSummary(pool.Played(), pool.Skipped())
	var firstErr error
	for _, res := range results {
		summary.add(res)
		if res.Error != nil {
			cfg.Logf(0, "game %d: %v", res.Index, res.Error)
			if firstErr == nil {
				firstErr = fmt.Errorf("game %d: %w", res.Index, res.Error)
			}
			continue
		}
		rec := res.Record
		cfg.Logf(2, "game %d: %s after %d plies", rec.ID, rec.End, rec.Plies)
		if rec.End == game.EndMismatch {
			cfg.Logf(0, "game %d: %s", rec.ID, rec.Error)
		}
		if res.Duplicate {
			reportDuplicate(cfg, res)
		}
		if err := w.WriteRecord(rec); err != nil {
			return errors.Wrap(err, "writing records")
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "writing records")
	}

	cfg.Logf(1, "%s.", summary)
	if n := summary.ends[game.EndMismatch]; n > 0 && firstErr == nil {
		firstErr = fmt.Errorf("%d game(s): %w", n, errors.ErrOracleMismatch)
	}
	return firstErr
}

func reportDuplicate(cfg *config.Config, res worker.ProcessResult) {
	if cfg.Duplicate.DuplicateFile != nil {
		fmt.Fprintf(cfg.Duplicate.DuplicateFile, "game %d duplicates game %d: %s\n",
			res.Index, res.DuplicateOf, res.Record.FinalFEN)
		return
	}
	cfg.Logf(1, "game %d duplicates game %d", res.Index, res.DuplicateOf)
}

// textObserver prints each move of a batch game with its game number.
func textObserver(cfg *config.Config, w io.Writer) game.ObserverFunc {
	r := render.NewTextRenderer(w, render.WithColour(cfg.Output.Colour), render.WithUnicode(cfg.Output.Unicode))
	show := r.Observer()
	return func(g *game.Game, m chess.Move) {
		fmt.Fprintf(w, "game %d ", g.Number())
		show(g, m)
	}
}

// lockedObserver serialises calls to fn from the worker goroutines.
func lockedObserver(fn game.ObserverFunc) game.ObserverFunc {
	var mu sync.Mutex
	return func(g *game.Game, m chess.Move) {
		mu.Lock()
		defer mu.Unlock()
		fn(g, m)
	}
}

// printArchive writes every archived record with the configured writer.
func printArchive(cfg *config.Config, store *archive.Store) error {
	if store == nil {
		return fmt.Errorf("-list needs -archive: %w", errors.ErrInvalidConfig)
	}
	w := output.NewRecordWriter(cfg.OutputFile, cfg)
	err := store.ForEach(func(id uint64, rec *game.Record) error {
		cfg.Logf(2, "archive entry %d", id)
		return w.WriteRecord(rec)
	})
	if err != nil {
		return errors.Wrap(err, "listing archive")
	}
	return w.Close()
}
