package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bullseye"
)

// viewport maps the playfield onto a cols x rows block of terminal cells
// starting at row top. Cells are not square, so the two axes scale
// independently.
type viewport struct {
	field      bullseye.Layout
	cols, rows int
	top        int
}

func newViewport(field bullseye.Layout, screenW, screenH int) viewport {
	return viewport{
		field: field,
		cols:  max(screenW, 1),
		rows:  max(screenH-hudRows, 1),
		top:   hudRows,
	}
}

// toCell returns the screen cell containing playfield point (x, y) and
// whether it falls inside the view.
func (v viewport) toCell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / v.field.Width * float64(v.cols)))
	row = int(math.Floor(y / v.field.Height * float64(v.rows)))
	ok = col >= 0 && col < v.cols && row >= 0 && row < v.rows
	return col, row + v.top, ok
}

// toField returns the playfield point at the center of screen cell (col, row).
func (v viewport) toField(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.field.Width / float64(v.cols)
	y = (float64(row-v.top) + 0.5) * v.field.Height / float64(v.rows)
	return x, y
}

const hudRows = 1

// cell is one rendered character.
type cell struct {
	r     rune
	style tcell.Style
}

// grid is an off-screen cell buffer. Rendering into it keeps drawing
// independent of the terminal.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	g.clear()
	return g
}

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
}

func (g *grid) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{r: r, style: style}
}

func (g *grid) at(x, y int) cell {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return cell{}
	}
	return g.cells[y*g.w+x]
}

func (g *grid) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.set(x, y, r, style)
		x++
	}
}

func (g *grid) centered(y int, s string, style tcell.Style) {
	g.text((g.w-len([]rune(s)))/2, y, s, style)
}

func (g *grid) blit(screen tcell.Screen) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cells[y*g.w+x]
			screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
}

var (
	skyStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 24, 48))
	groundStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 150, 80)).Background(tcell.NewRGBColor(46, 94, 46))
	bowStyle    = skyStyle.Foreground(tcell.NewRGBColor(139, 90, 43)).Bold(true)
	arrowStyle  = skyStyle.Foreground(tcell.NewRGBColor(200, 170, 120))
	aimStyle    = skyStyle.Foreground(tcell.ColorGray)
	hudStyle    = tcell.StyleDefault.Reverse(true)
	bannerStyle = skyStyle.Foreground(tcell.ColorYellow).Bold(true)
	promptStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	ringStyles  = [...]tcell.Style{
		tcell.StyleDefault.Background(tcell.ColorWhite),
		tcell.StyleDefault.Background(tcell.NewRGBColor(30, 30, 30)),
		tcell.StyleDefault.Background(tcell.NewRGBColor(40, 110, 220)),
		tcell.StyleDefault.Background(tcell.NewRGBColor(220, 40, 40)),
		tcell.StyleDefault.Background(tcell.NewRGBColor(250, 210, 40)),
	}
)

// arrowGlyph picks the line character closest to a heading. Y grows
// downward, so a positive angle slopes down to the right.
func arrowGlyph(angle float64) rune {
	a := math.Mod(angle, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch int(math.Round(a/(math.Pi/4))) % 4 {
	case 0:
		return '-'
	case 1:
		return '\\'
	case 2:
		return '|'
	default:
		return '/'
	}
}

// ringIndex returns which ring of a target with the given radius a point at
// distance d from the center lies in, outermost 0, or -1 outside.
func ringIndex(d, radius float64) int {
	if radius <= 0 || d > radius {
		return -1
	}
	n := len(ringStyles)
	i := int((1 - d/radius) * float64(n))
	return min(i, n-1)
}

func colorStyle(c bullseye.Color) tcell.Style {
	rgba := c.RGBA()
	// blend toward the sky by alpha; terminals have no translucency
	a := c.A
	r := int32(float64(rgba.R)*a + 20*(1-a))
	g := int32(float64(rgba.G)*a + 24*(1-a))
	b := int32(float64(rgba.B)*a + 48*(1-a))
	return skyStyle.Foreground(tcell.NewRGBColor(r, g, b))
}

// render draws a frame into gr.
func render(gr *grid, v viewport, f bullseye.Frame, name string) {
	gr.clear()

	// sky, ground and target, cell by cell
	for row := v.top; row < v.top+v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			x, y := v.toField(col, row)
			if y > f.Layout.GroundY() {
				gr.set(col, row, '▒', groundStyle)
				continue
			}
			if i := ringIndex(math.Hypot(x-f.Target.X, y-f.Target.Y), f.Target.Radius); i >= 0 {
				gr.set(col, row, ' ', ringStyles[i])
				continue
			}
			gr.set(col, row, ' ', skyStyle)
		}
	}

	if f.Phase == bullseye.PhaseAiming && f.Aim.Pulling {
		// dotted guide whose length follows the pull
		steps := int(f.Aim.Strength / 10)
		for i := 1; i <= steps; i++ {
			d := float64(i) * 20
			if col, row, ok := v.toCell(f.Bow.X+math.Cos(f.Aim.Angle)*d, f.Bow.Y+math.Sin(f.Aim.Angle)*d); ok {
				gr.set(col, row, '·', aimStyle)
			}
		}
	}
	if col, row, ok := v.toCell(f.Bow.X, f.Bow.Y); ok {
		gr.set(col, row, ')', bowStyle)
	}
	if f.Arrow != nil {
		if col, row, ok := v.toCell(f.Arrow.X, f.Arrow.Y); ok {
			gr.set(col, row, arrowGlyph(f.Arrow.Angle), arrowStyle)
		}
	}
	for _, p := range f.Particles {
		col, row, ok := v.toCell(p.X, p.Y)
		if !ok {
			continue
		}
		r := '*'
		if p.Kind == bullseye.ParticleDust {
			r = '.'
		}
		gr.set(col, row, r, colorStyle(p.Color()))
	}

	if f.Banner != "" && f.BannerAlpha > 0.15 {
		gr.centered(v.top+v.rows/4, f.Banner, bannerStyle)
	}

	hud := f.StatusLine()
	gr.text(0, 0, hud+strings.Repeat(" ", max(gr.w-len([]rune(hud)), 0)), hudStyle)

	lines := f.Prompt(name)
	y := v.top + v.rows/2 - len(lines)/2
	for _, line := range lines {
		gr.centered(y, line, promptStyle)
		y++
	}
}
