package bullseye

import (
	"fmt"
	"strings"
)

// Frame is the per-frame snapshot a render surface draws from. It is
// detached from the simulation except for Particles, which aliases the live
// slice and is only valid until the next Update.
type Frame struct {
	Tick      uint64
	Phase     Phase
	Player    string
	SessionID string
	Level     int
	LevelName string
	Score     int
	Arrows    int
	Muted     bool

	Layout    Layout
	Bow       Vec2
	Aim       Aim
	Target    Target
	Arrow     *Projectile // nil when no arrow is live
	Particles []Particle

	Banner      string
	BannerAlpha float64
}

// Frame returns the render snapshot for the current tick.
func (s *Simulation) Frame() Frame {
	cfg, _ := Level(s.progress.Level)
	return Frame{
		Tick:        s.tick,
		Phase:       s.progress.Phase,
		Player:      s.progress.Player,
		SessionID:   s.sessionID,
		Level:       s.progress.Level,
		LevelName:   cfg.Name,
		Score:       s.progress.Score,
		Arrows:      s.progress.Arrows,
		Muted:       s.muted,
		Layout:      s.layout,
		Bow:         s.bow,
		Aim:         s.aim,
		Target:      s.target,
		Arrow:       s.Arrow(),
		Particles:   s.particles.Particles(),
		Banner:      s.banner.Text,
		BannerAlpha: s.banner.Alpha,
	}
}

// StatusLine is the one-line summary shown during play; empty in the menu.
func (f Frame) StatusLine() string {
	if f.Phase == PhaseMenu {
		return ""
	}
	line := fmt.Sprintf("%s  Level %d: %s  Score %d  Arrows %s",
		f.Player, f.Level, f.LevelName, f.Score, strings.Repeat("|", f.Arrows))
	if f.Muted {
		line += "  [muted]"
	}
	return line
}

// Prompt returns the lines to show over the playfield for phases that wait on
// the player, with name as the text typed so far in the menu. It is nil while
// aiming or in flight.
func (f Frame) Prompt(name string) []string {
	switch f.Phase {
	case PhaseMenu:
		return []string{
			"BULLSEYE",
			"",
			"Enter your name: " + name + "_",
			"Press Enter to start",
		}
	case PhaseLevelComplete:
		return []string{
			fmt.Sprintf("Level %d complete!", f.Level),
			fmt.Sprintf("Score %d", f.Score),
			"N: next level   Esc: menu",
		}
	case PhaseGameOver:
		return []string{
			"Out of arrows",
			fmt.Sprintf("Score %d", f.Score),
			"R: retry level   Esc: menu",
		}
	case PhaseChampion:
		return []string{
			fmt.Sprintf("Champion, %s!", f.Player),
			fmt.Sprintf("Final score %d", f.Score),
			"P: play again   Esc: menu",
		}
	}
	return nil
}
