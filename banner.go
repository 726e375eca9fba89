package bullseye

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BullseyeText is the banner shown while a hit resolves.
const BullseyeText = "BULLSEYE!"

// Banner is a transient message whose alpha is tweened from opaque to clear
// over its display time. The text stays set until Clear; the fade only
// drives how strongly it is drawn.
type Banner struct {
	Text  string
	Alpha float64
	tween *gween.Tween
}

// Show replaces the banner text and restarts the fade over d.
func (b *Banner) Show(text string, d time.Duration) {
	b.Text = text
	b.Alpha = 1
	b.tween = gween.New(1, 0, float32(d.Seconds()), ease.InCubic)
}

// Update advances the fade by dt.
func (b *Banner) Update(dt time.Duration) {
	if b.tween == nil {
		return
	}
	val, finished := b.tween.Update(float32(dt.Seconds()))
	b.Alpha = clamp01(float64(val))
	if finished {
		b.tween = nil
	}
}

// Clear hides the banner.
func (b *Banner) Clear() {
	b.Text = ""
	b.Alpha = 0
	b.tween = nil
}

// Visible reports whether there is a message to draw.
func (b Banner) Visible() bool {
	return b.Text != ""
}
