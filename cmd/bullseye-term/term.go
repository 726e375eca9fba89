package main

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/bullseye"
)

var errQuit = errors.New("quit")

const maxNameLen = 16

// termGame drives a Simulation from a tcell screen. One goroutine blocks in
// PollEvent and forwards events; the frame loop owns the simulation and the
// screen's drawing.
type termGame struct {
	screen tcell.Screen
	sim    *bullseye.Simulation
	script *bullseye.Script
	log    *slog.Logger

	view viewport
	grid *grid

	name      []rune
	mouseDown bool
}

func newTermGame(screen tcell.Screen, sim *bullseye.Simulation, log *slog.Logger) *termGame {
	g := &termGame{screen: screen, sim: sim, log: log}
	g.resize()
	sim.OnEvent(func(e bullseye.Event) {
		if e.Type == bullseye.EventPhaseChanged && e.Phase == bullseye.PhaseMenu {
			g.name = g.name[:0]
		}
		if e.Type == bullseye.EventHit && !sim.Muted() {
			screen.Beep()
		}
	})
	return g
}

func (g *termGame) resize() {
	w, h := g.screen.Size()
	g.view = newViewport(g.sim.Layout(), w, h)
	g.grid = newGrid(max(w, 1), max(h, 1))
}

// run blocks until the player quits or ctx is cancelled.
func (g *termGame) run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return g.pollLoop(ctx, events)
	})
	eg.Go(func() error {
		// Fini unblocks PollEvent so the poller can exit.
		defer g.screen.Fini()
		return g.frameLoop(ctx, events)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (g *termGame) pollLoop(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (g *termGame) frameLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.sim.TickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := g.handleEvent(ev); err != nil {
				return err
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *termGame) tick() {
	if g.script != nil {
		g.script.Step(g.sim)
		if g.script.Done() {
			g.log.Info("script finished", slog.Uint64("tick", g.sim.Tick()))
			g.script = nil
		}
	}
	g.sim.Update()
	render(g.grid, g.view, g.sim.Frame(), string(g.name))
	g.grid.blit(g.screen)
	g.screen.Show()
}

// handleEvent applies one terminal event. It returns errQuit when the
// player asks to leave.
func (g *termGame) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		if g.script == nil {
			g.handleMouse(ev)
		}
	}
	return nil
}

func (g *termGame) handleKey(ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyCtrlC {
		return errQuit
	}
	if g.sim.Phase() == bullseye.PhaseMenu {
		switch ev.Key() {
		case tcell.KeyEscape:
			return errQuit
		case tcell.KeyEnter:
			g.sim.StartGame(string(g.name))
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(g.name) > 0 {
				g.name = g.name[:len(g.name)-1]
			}
		case tcell.KeyRune:
			r := ev.Rune()
			if len(g.name) < maxNameLen && r >= ' ' && r != utf8.RuneError {
				g.name = append(g.name, r)
			}
		}
		return nil
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		g.sim.ResetToMenu()
	case tcell.KeyEnter:
		if !g.sim.AdvanceLevel() {
			g.sim.RetryLevel()
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'n', 'N':
			g.sim.AdvanceLevel()
		case 'r', 'R':
			g.sim.RetryLevel()
		case 'p', 'P':
			g.sim.PlayAgain()
		case 'm', 'M':
			g.sim.ToggleMute()
		case 'q', 'Q':
			return errQuit
		}
	}
	return nil
}

func (g *termGame) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := g.view.toField(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !g.mouseDown:
		g.sim.PointerDown(x, y)
	case down:
		g.sim.PointerMove(x, y)
	case g.mouseDown:
		g.sim.PointerMove(x, y)
		g.sim.PointerUp()
	default:
		g.sim.PointerMove(x, y)
	}
	g.mouseDown = down
}
