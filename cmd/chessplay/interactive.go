package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/nibblechess/internal/archive"
	"github.com/lgbarn/nibblechess/internal/chess"
	"github.com/lgbarn/nibblechess/internal/config"
	"github.com/lgbarn/nibblechess/internal/engine"
	"github.com/lgbarn/nibblechess/internal/errors"
	"github.com/lgbarn/nibblechess/internal/game"
	"github.com/lgbarn/nibblechess/internal/hashing"
	"github.com/lgbarn/nibblechess/internal/oracle"
	"github.com/lgbarn/nibblechess/internal/output"
	"github.com/lgbarn/nibblechess/internal/render"
)

// defaultScreenDelay paces random players in the screen view when no delay is set.
const defaultScreenDelay = 300 * time.Millisecond

// openScreen is replaced in tests with a simulation screen.
var openScreen = render.OpenScreen

// playSingle plays one game with board display and terminal players, then
// writes its record.
func playSingle(cfg *config.Config, store *archive.Store, in io.Reader, display io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.Play.Seed))
	var terminal *game.TerminalPlayer
	newPlayer := func(kind config.PlayerKind) game.Player {
		if kind != config.TerminalPlayer {
			return game.NewRandomPlayer(rng)
		}
		// Both sides share one reader when two people play.
		if terminal == nil {
			terminal = game.NewTerminalPlayer(in, display)
		}
		return terminal
	}
	white, black := newPlayer(cfg.White), newPlayer(cfg.Black)

	opts := []game.Option{game.WithSafety(cfg.Play.Safety), game.WithNumber(1)}
	pos, err := cfg.Play.StartPosition()
	if err != nil {
		return err
	}
	if pos != nil {
		opts = append(opts, game.WithPosition(pos))
	}
	if cfg.Play.Verify {
		opts = append(opts, game.WithVerifier(oracle.Verify))
	}

	quit := make(chan struct{})
	delay := cfg.Output.Delay
	var show func(g *game.Game)
	var finish func(g *game.Game, rec *game.Record)

	switch cfg.Output.Render {
	case config.RenderScreen:
		screen, err := openScreen()
		if err != nil {
			return errors.Wrap(err, "opening screen")
		}
		sr := render.NewScreenRenderer(screen, cfg.Output.Unicode)
		go watchQuit(screen, quit)
		opts = append(opts, game.WithObserver(sr.Observer()))
		if delay == 0 {
			delay = defaultScreenDelay
		}
		show = func(g *game.Game) { sr.Render(g.Board(), g.FEN()) }
		finish = func(g *game.Game, rec *game.Record) {
			if !errors.Is(rec.Err, errors.ErrStopped) {
				sr.Render(g.Board(), fmt.Sprintf("game over: %s after %d plies, press q", rec.End, rec.Plies))
				<-quit
			}
			sr.Close()
		}
	case config.RenderText:
		tr := render.NewTextRenderer(display, render.WithColour(cfg.Output.Colour), render.WithUnicode(cfg.Output.Unicode))
		opts = append(opts, game.WithObserver(tr.Observer()))
		show = func(g *game.Game) { tr.Render(g.Board(), g.Side()) } //nolint:errcheck // best effort display
	}

	g := game.New(pacedPlayer(white, delay, quit), pacedPlayer(black, delay, quit), opts...)
	if show != nil {
		show(g)
	}
	rec := g.Play(cfg.Play.MaxPlies)
	rec.Seed = cfg.Play.Seed
	rec.Hash = hashing.Hash(g.Board(), g.Side())
	if finish != nil {
		finish(g, rec)
	}

	if store != nil {
		id, err := store.Save(rec)
		if err != nil {
			return errors.Wrap(err, "archiving game")
		}
		cfg.Logf(2, "archived as %d", id)
	}

	w := output.NewRecordWriter(cfg.OutputFile, cfg)
	if err := w.WriteRecord(rec); err != nil {
		return errors.Wrap(err, "writing record")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "writing record")
	}
	cfg.Logf(1, "game over: %s after %d plies", rec.End, rec.Plies)

	switch {
	case rec.Err == nil, errors.Is(rec.Err, errors.ErrStopped), errors.Is(rec.Err, io.EOF):
		return nil
	}
	return rec.Err
}

// pacedPlayer waits delay before asking p for a move and gives up once quit
// is closed.
func pacedPlayer(p game.Player, delay time.Duration, quit <-chan struct{}) game.Player {
	return game.PlayerFunc(func(set *engine.MoveSet) (chess.Move, error) {
		if delay > 0 {
			select {
			case <-quit:
				return chess.Move{}, errors.ErrStopped
			case <-time.After(delay):
			}
		}
		select {
		case <-quit:
			return chess.Move{}, errors.ErrStopped
		default:
		}
		return p.ChooseMove(set)
	})
}

// watchQuit closes quit when the user presses a quit key. It returns when the
// screen is finalised.
func watchQuit(screen tcell.Screen, quit chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if render.Quit(ev) {
			close(quit)
			return
		}
	}
}
