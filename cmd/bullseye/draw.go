package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/bullseye"
)

const (
	bowRadius     = 40.0
	bowSpan       = math.Pi / 2.4 // half-angle of the limb arc
	arrowLength   = 40.0
	maxStringDraw = 30.0
	starCount     = 40

	// debug font cell
	glyphW, glyphH = 6, 16
	bannerScale    = 4
)

var (
	skyColor    = color.NRGBA{R: 20, G: 24, B: 48, A: 255}
	starColor   = nrgba(bullseye.ColorWhite.WithAlpha(0.55))
	groundColor = color.NRGBA{R: 46, G: 94, B: 46, A: 255}
	bowColor    = color.NRGBA{R: 139, G: 90, B: 43, A: 255}
	stringColor = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	shaftColor  = color.NRGBA{R: 200, G: 170, B: 120, A: 255}
	headColor   = color.NRGBA{R: 180, G: 180, B: 190, A: 255}
	aimColor    = nrgba(bullseye.ColorWhite.WithAlpha(0.25))
	ringColors  = [...]color.NRGBA{
		nrgba(bullseye.ColorWhite),
		{R: 30, G: 30, B: 30, A: 255},
		{R: 40, G: 110, B: 220, A: 255},
		{R: 220, G: 40, B: 40, A: 255},
		{R: 250, G: 210, B: 40, A: 255},
	}
)

// nrgba converts a straight-alpha Color for the vector package.
func nrgba(c bullseye.Color) color.NRGBA {
	rgba := c.RGBA()
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}

// stringPull maps pull strength to how far the string is drawn back, in
// playfield units.
func stringPull(strength float64) float64 {
	return strength / bullseye.MaxStrength * maxStringDraw
}

// bowGeometry returns the limb tips and the nock point for a bow facing
// angle with the string drawn back by pull.
func bowGeometry(bow bullseye.Vec2, angle, pull float64) (top, bottom, nock bullseye.Vec2) {
	top = bullseye.Vec2{
		X: bow.X + math.Cos(angle-bowSpan)*bowRadius,
		Y: bow.Y + math.Sin(angle-bowSpan)*bowRadius,
	}
	bottom = bullseye.Vec2{
		X: bow.X + math.Cos(angle+bowSpan)*bowRadius,
		Y: bow.Y + math.Sin(angle+bowSpan)*bowRadius,
	}
	mid := bullseye.Vec2{X: (top.X + bottom.X) / 2, Y: (top.Y + bottom.Y) / 2}
	nock = bullseye.Vec2{
		X: mid.X - math.Cos(angle)*pull,
		Y: mid.Y - math.Sin(angle)*pull,
	}
	return top, bottom, nock
}

// ringRadii returns the target's ring radii, outermost first.
func ringRadii(radius float64) []float64 {
	out := make([]float64, len(ringColors))
	for i := range out {
		out[i] = radius * float64(len(ringColors)-i) / float64(len(ringColors))
	}
	return out
}

func drawScene(screen *ebiten.Image, f bullseye.Frame, snapPull float64) {
	w, h := float32(f.Layout.Width), float32(f.Layout.Height)
	screen.Fill(skyColor)
	for i := range starCount {
		x := float32((i*7919)%max(int(w), 1))
		y := float32((i*104729)%max(int(f.Layout.GroundY()), 1)) * 0.7
		vector.DrawFilledCircle(screen, x, y, 1, starColor, false)
	}
	groundY := float32(f.Layout.GroundY())
	vector.DrawFilledRect(screen, 0, groundY, w, h-groundY, groundColor, false)

	drawTarget(screen, f.Target)
	drawBow(screen, f, snapPull)
	if f.Arrow != nil {
		drawArrow(screen, f.Arrow.X, f.Arrow.Y, f.Arrow.Angle)
	}
	for _, p := range f.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), nrgba(p.Color()), true)
	}
	drawBanner(screen, f)
}

func drawTarget(screen *ebiten.Image, t bullseye.Target) {
	for i, r := range ringRadii(t.Radius) {
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(r), ringColors[i], true)
	}
}

func drawBow(screen *ebiten.Image, f bullseye.Frame, snapPull float64) {
	pull := snapPull
	if f.Aim.Pulling {
		pull = stringPull(f.Aim.Strength)
	}
	top, bottom, nock := bowGeometry(f.Bow, f.Aim.Angle, pull)

	// limb arc
	const segments = 12
	prev := top
	for i := 1; i <= segments; i++ {
		a := f.Aim.Angle - bowSpan + 2*bowSpan*float64(i)/segments
		p := bullseye.Vec2{X: f.Bow.X + math.Cos(a)*bowRadius, Y: f.Bow.Y + math.Sin(a)*bowRadius}
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), 4, bowColor, true)
		prev = p
	}
	vector.StrokeLine(screen, float32(top.X), float32(top.Y), float32(nock.X), float32(nock.Y), 1, stringColor, true)
	vector.StrokeLine(screen, float32(bottom.X), float32(bottom.Y), float32(nock.X), float32(nock.Y), 1, stringColor, true)

	if f.Phase != bullseye.PhaseAiming || f.Arrow != nil {
		return
	}
	// nocked arrow and, while pulling, a faint aim guide
	tipX := nock.X + math.Cos(f.Aim.Angle)*arrowLength
	tipY := nock.Y + math.Sin(f.Aim.Angle)*arrowLength
	drawArrow(screen, tipX, tipY, f.Aim.Angle)
	if f.Aim.Pulling {
		guide := f.Aim.Strength * 2
		vector.StrokeLine(screen, float32(tipX), float32(tipY),
			float32(tipX+math.Cos(f.Aim.Angle)*guide), float32(tipY+math.Sin(f.Aim.Angle)*guide), 1, aimColor, true)
	}
}

// drawArrow draws an arrow whose tip is at (x, y), pointing along angle.
func drawArrow(screen *ebiten.Image, x, y, angle float64) {
	tx := x - math.Cos(angle)*arrowLength
	ty := y - math.Sin(angle)*arrowLength
	vector.StrokeLine(screen, float32(tx), float32(ty), float32(x), float32(y), 2, shaftColor, true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), 3, headColor, true)
}

var bannerCache struct {
	text string
	img  *ebiten.Image
}

func drawBanner(screen *ebiten.Image, f bullseye.Frame) {
	if f.Banner == "" || f.BannerAlpha <= 0 {
		return
	}
	if bannerCache.text != f.Banner || bannerCache.img == nil {
		if bannerCache.img != nil {
			bannerCache.img.Deallocate()
		}
		bannerCache.text = f.Banner
		bannerCache.img = ebiten.NewImage(len(f.Banner)*glyphW, glyphH)
		ebitenutil.DebugPrintAt(bannerCache.img, f.Banner, 0, 0)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	x := (f.Layout.Width - float64(len(f.Banner)*glyphW*bannerScale)) / 2
	op.GeoM.Translate(x, f.Layout.Height/4)
	op.ColorScale.ScaleAlpha(float32(f.BannerAlpha))
	screen.DrawImage(bannerCache.img, op)
}

func drawFlash(screen *ebiten.Image, alpha float64) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.NRGBA{R: 255, G: 240, B: 180, A: uint8(alpha * 255)}, false)
}

func drawHUD(screen *ebiten.Image, f bullseye.Frame) {
	if line := f.StatusLine(); line != "" {
		ebitenutil.DebugPrintAt(screen, line, 8, 8)
	}
}

func drawOverlay(screen *ebiten.Image, f bullseye.Frame, name string) {
	lines := f.Prompt(name)
	if len(lines) == 0 {
		return
	}
	w, h := float32(f.Layout.Width), float32(f.Layout.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.NRGBA{A: 150}, false)
	y := int(f.Layout.Height/2) - len(lines)*glyphH/2
	for _, line := range lines {
		x := int(f.Layout.Width/2) - len(line)*glyphW/2
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += glyphH
	}
}
