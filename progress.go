package bullseye

import "strings"

const (
	// ArrowsPerLevel is the quiver size at the start of every level attempt.
	ArrowsPerLevel = 5

	// PointsPerHit is awarded for every arrow that strikes the target.
	PointsPerHit = 100
)

// Progress is the authoritative record of one playthrough. Its methods are
// the only transitions between phases; each returns false and leaves the
// record untouched when the transition is not valid from the current state.
type Progress struct {
	Player string
	Level  int
	Score  int
	Arrows int
	Phase  Phase
}

// NewProgress returns the menu baseline.
func NewProgress() Progress {
	return Progress{
		Level:  FirstLevel,
		Arrows: ArrowsPerLevel,
		Phase:  PhaseMenu,
	}
}

// StartGame leaves the menu for level 1 with a fresh score and quiver.
// Blank names are rejected.
func (p *Progress) StartGame(name string) bool {
	name = strings.TrimSpace(name)
	if p.Phase != PhaseMenu || name == "" {
		return false
	}
	p.Player = name
	p.Level = FirstLevel
	p.Score = 0
	p.Arrows = ArrowsPerLevel
	p.Phase = PhaseAiming
	return true
}

// CanShoot reports whether a pull may begin or an arrow may be released.
func (p *Progress) CanShoot() bool {
	return p.Phase == PhaseAiming && p.Arrows > 0
}

// Release moves from aiming to flight when an arrow is loosed.
func (p *Progress) Release() bool {
	if !p.CanShoot() {
		return false
	}
	p.Phase = PhaseFlight
	return true
}

// RecordHit awards the points for a hit. The quiver is not touched.
func (p *Progress) RecordHit() bool {
	if p.Phase != PhaseFlight {
		return false
	}
	p.Score += PointsPerHit
	return true
}

// RecordMiss spends one arrow for a shot that landed in the ground.
func (p *Progress) RecordMiss() bool {
	if p.Phase != PhaseFlight || p.Arrows <= 0 {
		return false
	}
	p.Arrows--
	return true
}

// FinishHit closes a hit after its resolution window. A hit on the last
// arrow completes the level; otherwise the player aims again.
func (p *Progress) FinishHit() bool {
	if p.Phase != PhaseFlight {
		return false
	}
	if p.Arrows-1 <= 0 {
		p.Phase = PhaseLevelComplete
	} else {
		p.Phase = PhaseAiming
	}
	return true
}

// FinishMiss closes a miss after its resolution window. An empty quiver ends
// the game.
func (p *Progress) FinishMiss() bool {
	if p.Phase != PhaseFlight {
		return false
	}
	if p.Arrows <= 0 {
		p.Phase = PhaseGameOver
	} else {
		p.Phase = PhaseAiming
	}
	return true
}

// Escape returns to aiming after an arrow left the playfield without score
// or ammunition effects.
func (p *Progress) Escape() bool {
	if p.Phase != PhaseFlight {
		return false
	}
	p.Phase = PhaseAiming
	return true
}

// AdvanceLevel moves on from a completed level, or crowns the player after
// the last one.
func (p *Progress) AdvanceLevel() bool {
	if p.Phase != PhaseLevelComplete {
		return false
	}
	if p.Level < LastLevel {
		p.Level++
		p.Arrows = ArrowsPerLevel
		p.Phase = PhaseAiming
	} else {
		p.Phase = PhaseChampion
	}
	return true
}

// RetryLevel refills the quiver after a game over. Level and score stay.
func (p *Progress) RetryLevel() bool {
	if p.Phase != PhaseGameOver {
		return false
	}
	p.Arrows = ArrowsPerLevel
	p.Phase = PhaseAiming
	return true
}

// PlayAgain restarts from level 1 after winning.
func (p *Progress) PlayAgain() bool {
	if p.Phase != PhaseChampion {
		return false
	}
	p.Level = FirstLevel
	p.Score = 0
	p.Arrows = ArrowsPerLevel
	p.Phase = PhaseAiming
	return true
}

// ResetToMenu wipes the record back to the menu baseline from any phase.
func (p *Progress) ResetToMenu() {
	*p = NewProgress()
}
