package main

import (
	"image/color"
	"math"
	"testing"

	"github.com/phanxgames/bullseye"
)

func TestStringPull(t *testing.T) {
	if got := stringPull(bullseye.MaxStrength); got != maxStringDraw {
		t.Errorf("stringPull(max) = %v, want %v", got, maxStringDraw)
	}
	if got := stringPull(0); got != 0 {
		t.Errorf("stringPull(0) = %v, want 0", got)
	}
}

func TestBowGeometryFacingRight(t *testing.T) {
	bow := bullseye.Vec2{X: 100, Y: 250}
	top, bottom, nock := bowGeometry(bow, 0, 10)
	if top.Y >= bow.Y || bottom.Y <= bow.Y {
		t.Errorf("limbs top=%v bottom=%v should straddle the bow", top, bottom)
	}
	if math.Abs(top.X-bottom.X) > 1e-9 {
		t.Errorf("limb tips not symmetric: %v vs %v", top.X, bottom.X)
	}
	if math.Abs(nock.X-(top.X-10)) > 1e-9 || math.Abs(nock.Y-bow.Y) > 1e-9 {
		t.Errorf("nock = %v, want 10 units behind the string line", nock)
	}
}

func TestRingRadii(t *testing.T) {
	got := ringRadii(50)
	want := []float64{50, 40, 30, 20, 10}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("ring %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNRGBA(t *testing.T) {
	c := nrgba(bullseye.Color{R: 1, G: 0, B: 0, A: 0.5})
	if c.R != 255 || c.G != 0 || c.A != 127 {
		t.Errorf("nrgba = %v", c)
	}
}

func TestWhiteTintsFromColorWhite(t *testing.T) {
	if want := (color.NRGBA{R: 255, G: 255, B: 255, A: 255}); ringColors[0] != want {
		t.Errorf("ringColors[0] = %v, want %v", ringColors[0], want)
	}
	if starColor.R != 255 || starColor.A != 140 {
		t.Errorf("starColor = %v, want white at alpha 140", starColor)
	}
	if aimColor.R != 255 || aimColor.A != 63 {
		t.Errorf("aimColor = %v, want white at alpha 63", aimColor)
	}
}
