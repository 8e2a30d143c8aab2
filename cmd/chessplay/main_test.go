package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/errors"
	"github.com/lgbarn/nibblechess/internal/game"
	"github.com/lgbarn/nibblechess/internal/output"
	"github.com/lgbarn/nibblechess/internal/testutil"
	"github.com/lgbarn/nibblechess/internal/worker"
)

// testConfig returns a quick batch configuration writing into buffers.
func testConfig(out, log *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithGames(4, 2).
		WithMaxPlies(40).
		WithSeed(7).
		WithOutput(out).
		WithLog(log)
}

func TestRun_Batch(t *testing.T) {
	var out, log, display bytes.Buffer
	cfg := testConfig(&out, &log).Build()

	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &display))

	text := out.String()
	last := -1
	for _, tag := range []string{`[Game "1"]`, `[Game "2"]`, `[Game "3"]`, `[Game "4"]`} {
		i := strings.Index(text, tag)
		testutil.AssertTrue(t, i > last, "%s missing or out of order", tag)
		last = i
	}
	testutil.AssertContains(t, text, `[Seed "10"]`)
	testutil.AssertContains(t, log.String(), "4 game(s) played")
	testutil.AssertEqual(t, display.Len(), 0, "nothing displayed without -render")
}

func TestRun_BatchIsReproducible(t *testing.T) {
	var first, second, log bytes.Buffer
	testutil.AssertNoError(t, run(testConfig(&first, &log).Build(), strings.NewReader(""), &bytes.Buffer{}))

	// A different worker count must not change the records.
	cfg := testConfig(&second, &log).WithGames(4, 1).Build()
	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &bytes.Buffer{}))
	testutil.AssertEqual(t, second.String(), first.String())
}

func TestRun_BatchJSON(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithJSONOutput(true).WithVerify(true).Build()
	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &bytes.Buffer{}))

	var doc output.JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &doc))
	testutil.AssertEqual(t, len(doc.Games), 4)
	for i, rec := range doc.Games {
		testutil.AssertEqual(t, rec.ID, i+1)
		testutil.AssertTrue(t, rec.End != game.EndMismatch, "game %d: %s", rec.ID, rec.Error)
	}
}

func TestRun_BatchTextRender(t *testing.T) {
	var out, log, display bytes.Buffer
	cfg := testConfig(&out, &log).WithGames(2, 2).WithMaxPlies(3).WithRender(config.RenderText).Build()
	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &display))

	testutil.AssertContains(t, display.String(), "game 1 ply 1: ")
	testutil.AssertContains(t, display.String(), "game 2 ply 3: ")
	testutil.AssertEqual(t, strings.Count(display.String(), "  a b c d e f g h\n"), 2*3*2)
}

func TestRun_Duplicates(t *testing.T) {
	var out, log, dupes bytes.Buffer
	cfg := testConfig(&out, &log).WithGames(2, 1).WithMaxPlies(6).Build()
	cfg.Play.StartFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	cfg.Duplicate.Detect = true
	cfg.Duplicate.DuplicateFile = &dupes

	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &bytes.Buffer{}))
	testutil.AssertEqual(t, dupes.String(), "game 2 duplicates game 1: 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\n")
	testutil.AssertContains(t, log.String(), "2 no-moves, 1 duplicate(s)")
}

func TestRun_ArchiveAndList(t *testing.T) {
	dir := t.TempDir()

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithGames(3, 2).WithArchive(dir).Build()
	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &bytes.Buffer{}))
	testutil.AssertContains(t, log.String(), "3 archived")

	defer saveRestoreBool(listArchive, true)()
	var listed bytes.Buffer
	cfg = testConfig(&listed, &log).WithArchive(dir).Build()
	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &bytes.Buffer{}))
	testutil.AssertEqual(t, strings.Count(listed.String(), "[Game "), 3)
}

func TestRun_ListWithoutArchive(t *testing.T) {
	defer saveRestoreBool(listArchive, true)()
	var out, log bytes.Buffer
	err := run(testConfig(&out, &log).Build(), strings.NewReader(""), &bytes.Buffer{})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestRun_TerminalPlayer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		render   config.RenderMode
		end      string
		contains []string
	}{
		{
			name:     "plays typed move",
			input:    "e2e5\ne2e4\n",
			end:      `[End "ply-limit"]`,
			contains: []string{"white: ", "e2e5 is not available", "1. e2e4"},
		},
		{
			name:     "text board",
			input:    "g1f3\n",
			render:   config.RenderText,
			end:      `[End "ply-limit"]`,
			contains: []string{"ply 1: g1f3", "3 . . . . . N . . 3"},
		},
		{
			name:  "input ends",
			input: "",
			end:   `[End "player-error"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, log, display bytes.Buffer
			cfg := testConfig(&out, &log).
				WithGames(1, 1).
				WithMaxPlies(2).
				WithPlayers(config.TerminalPlayer, config.RandomPlayer).
				WithRender(tt.render).
				Build()

			testutil.AssertNoError(t, run(cfg, strings.NewReader(tt.input), &display))
			testutil.AssertContains(t, out.String(), tt.end)
			for _, s := range tt.contains {
				testutil.AssertContains(t, display.String()+out.String(), s)
			}
		})
	}
}

func TestRun_Screen(t *testing.T) {
	old := openScreen
	defer func() { openScreen = old }()
	openScreen = func() (tcell.Screen, error) {
		screen := tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			return nil, err
		}
		screen.SetSize(40, 14)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		return screen, nil
	}

	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithGames(1, 1).WithMaxPlies(20).WithRender(config.RenderScreen).Build()
	cfg.Output.Delay = time.Millisecond

	testutil.AssertNoError(t, run(cfg, strings.NewReader(""), &bytes.Buffer{}))
	testutil.AssertContains(t, out.String(), `[Game "1"]`)
}

func TestSingleGame(t *testing.T) {
	tests := []struct {
		name  string
		build func(*config.ConfigBuilder) *config.ConfigBuilder
		want  bool
	}{
		{"batch", func(b *config.ConfigBuilder) *config.ConfigBuilder { return b }, false},
		{"text render", func(b *config.ConfigBuilder) *config.ConfigBuilder { return b.WithRender(config.RenderText) }, false},
		{"screen", func(b *config.ConfigBuilder) *config.ConfigBuilder { return b.WithRender(config.RenderScreen) }, true},
		{"terminal", func(b *config.ConfigBuilder) *config.ConfigBuilder {
			return b.WithPlayers(config.RandomPlayer, config.TerminalPlayer)
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, singleGame(tt.build(config.NewConfigBuilder()).Build()), tt.want)
		})
	}
}

func TestBatchSummary(t *testing.T) {
	s := newBatchSummary(4, 0)
	s.add(worker.ProcessResult{Index: 1, Record: &game.Record{End: game.EndPlyLimit}, ArchiveID: 1})
	s.add(worker.ProcessResult{Index: 2, Record: &game.Record{End: game.EndNoMoves}, Duplicate: true, ArchiveID: 2})
	s.add(worker.ProcessResult{Index: 3, Record: &game.Record{End: game.EndNoMoves}, ArchiveID: 3})
	s.add(worker.ProcessResult{Index: 4, Error: errors.ErrNotFound})

	testutil.AssertEqual(t, s.String(),
		"4 game(s) played, 2 no-moves, 1 ply-limit, 1 duplicate(s), 3 archived, 1 failed")

	s = newBatchSummary(2, 8)
	s.add(worker.ProcessResult{Index: 1, Record: &game.Record{End: game.EndMismatch}})
	s.add(worker.ProcessResult{Index: 2, Record: &game.Record{End: game.EndMismatch}})
	testutil.AssertEqual(t, s.String(), "2 game(s) played, 2 mismatch, 8 skipped")
}
