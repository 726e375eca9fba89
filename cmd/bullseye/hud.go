package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/bullseye"
)

// hud is the debug overlay: FPS, TPS, tick and particle count. Its text is
// refreshed every ~0.5 seconds into a small cached image.
type hud struct {
	enabled    bool
	img        *ebiten.Image
	lastUpdate float64
	text       string
	dirty      bool
}

func newHUD(enabled bool) *hud {
	return &hud{enabled: enabled}
}

func (h *hud) update(dt float64) {
	if !h.enabled {
		return
	}
	h.lastUpdate += dt
	if h.lastUpdate < 0.5 {
		return
	}
	h.lastUpdate = 0
	h.dirty = true
}

func debugText(fps, tps float64, f bullseye.Frame) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTick: %d\nParticles: %d",
		fps, tps, f.Tick, len(f.Particles))
}

func (h *hud) draw(screen *ebiten.Image, f bullseye.Frame) {
	if !h.enabled {
		return
	}
	if h.img == nil {
		// 120x64 is enough for four short lines
		h.img = ebiten.NewImage(120, 64)
		h.dirty = true
	}
	if h.dirty {
		h.dirty = false
		h.text = debugText(ebiten.ActualFPS(), ebiten.ActualTPS(), f)
		h.img.Clear()
		// Semi-transparent background for readability
		h.img.Fill(color.RGBA{A: 128})
		ebitenutil.DebugPrint(h.img, h.text)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-120-8), 8)
	screen.DrawImage(h.img, op)
}
