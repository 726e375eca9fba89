package main

import (
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/bullseye"
)

// errQuit ends the game loop cleanly.
var errQuit = errors.New("quit")

const maxNameLen = 16

// game adapts a Simulation to ebiten.Game.
type game struct {
	sim    *bullseye.Simulation
	script *bullseye.Script
	hud    *hud
	shots  *screenshotQueue

	pointer pointerTracker
	name    []rune

	// pendingW/H hold an outside size seen in Layout until the next Update.
	// appliedW/H is the last window size pushed into the simulation, so a
	// scripted layout is not undone while the window keeps its size.
	pendingW, pendingH int
	appliedW, appliedH int

	// snap springs the bow string back after a release.
	snap     *gween.Tween
	snapPull float64
	// flash briefly tints the screen on a hit.
	flash      *gween.Tween
	flashAlpha float64
}

func newGame(sim *bullseye.Simulation, cfg bullseye.Config, shotDir string) *game {
	g := &game{
		sim:   sim,
		hud:   newHUD(cfg.Debug),
		shots: newScreenshotQueue(shotDir),
	}
	sim.OnEvent(g.handleEvent)
	return g
}

func (g *game) handleEvent(e bullseye.Event) {
	switch e.Type {
	case bullseye.EventHit:
		g.flash = gween.New(0.35, 0, 0.4, ease.OutQuad)
		g.flashAlpha = 0.35
	case bullseye.EventPhaseChanged:
		if e.Phase == bullseye.PhaseMenu {
			g.name = g.name[:0]
		}
	}
}

func (g *game) Update() error {
	if g.pendingW > 0 && g.pendingH > 0 && (g.pendingW != g.appliedW || g.pendingH != g.appliedH) {
		g.appliedW, g.appliedH = g.pendingW, g.pendingH
		l := g.sim.Layout()
		if int(l.Width) != g.pendingW || int(l.Height) != g.pendingH {
			g.sim.SetLayout(float64(g.pendingW), float64(g.pendingH))
		}
	}

	if g.script != nil {
		g.script.Step(g.sim)
		if g.script.Done() {
			slog.Info("script finished", slog.Uint64("tick", g.sim.Tick()))
			g.script = nil
		}
	} else {
		if err := g.handleKeys(); err != nil {
			return err
		}
		g.handlePointer()
	}

	g.sim.Update()
	g.updateTweens()
	g.hud.update(g.sim.TickDuration().Seconds())
	return nil
}

func (g *game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.queue("f12")
	}
	if g.sim.Phase() == bullseye.PhaseMenu {
		g.name = appendName(g.name, ebiten.AppendInputChars(nil))
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.name) > 0 {
			g.name = g.name[:len(g.name)-1]
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
			g.sim.StartGame(string(g.name))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return errQuit
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sim.ResetToMenu()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sim.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if !g.sim.AdvanceLevel() {
			g.sim.RetryLevel()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sim.RetryLevel()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.sim.PlayAgain()
	}
	return nil
}

// appendName adds typed characters to the menu name, dropping control
// characters and anything past maxNameLen.
func appendName(name []rune, typed []rune) []rune {
	for _, r := range typed {
		if len(name) >= maxNameLen {
			break
		}
		if r < ' ' || r == utf8.RuneError || r == 0x7f {
			continue
		}
		name = append(name, r)
	}
	return name
}

func (g *game) handlePointer() {
	x, y, down := pollPointer(&g.pointer)
	switch g.pointer.transition(down) {
	case pointerPressed:
		g.sim.PointerDown(x, y)
	case pointerDragged:
		g.sim.PointerMove(x, y)
	case pointerReleased:
		pull := g.sim.Aim().Strength
		g.sim.PointerMove(x, y)
		if g.sim.PointerUp() {
			g.snapPull = stringPull(pull)
			g.snap = gween.New(float32(g.snapPull), 0, 0.25, ease.OutElastic)
		}
	case pointerHover:
		g.sim.PointerMove(x, y)
	}
}

func (g *game) updateTweens() {
	dt := float32(g.sim.TickDuration().Seconds())
	if g.snap != nil {
		v, done := g.snap.Update(dt)
		g.snapPull = float64(v)
		if done {
			g.snap = nil
			g.snapPull = 0
		}
	}
	if g.flash != nil {
		v, done := g.flash.Update(dt)
		g.flashAlpha = float64(v)
		if done {
			g.flash = nil
			g.flashAlpha = 0
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.sim.Frame()
	drawScene(screen, f, g.snapPull)
	if g.flashAlpha > 0 {
		drawFlash(screen, g.flashAlpha)
	}
	drawHUD(screen, f)
	drawOverlay(screen, f, string(g.name))
	g.hud.draw(screen, f)
	g.shots.flush(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
