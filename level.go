package bullseye

// LevelConfig describes the target for one level.
type LevelConfig struct {
	Name         string
	TargetRadius float64
	Moving       bool
	Speed        float64 // vertical units per tick when Moving
	Distance     float64 // target x on the reference playfield
}

const (
	FirstLevel = 1
	LastLevel  = 5
)

var levels = [LastLevel]LevelConfig{
	{Name: "Beginner", TargetRadius: 60, Moving: false, Speed: 0, Distance: 650},
	{Name: "Novice", TargetRadius: 50, Moving: false, Speed: 0, Distance: 700},
	{Name: "Skilled", TargetRadius: 45, Moving: true, Speed: 1, Distance: 700},
	{Name: "Expert", TargetRadius: 40, Moving: true, Speed: 1.5, Distance: 750},
	{Name: "Master", TargetRadius: 35, Moving: true, Speed: 2, Distance: 800},
}

// Level returns the configuration for level n (1-based) and whether n is valid.
func Level(n int) (LevelConfig, bool) {
	if n < FirstLevel || n > LastLevel {
		return LevelConfig{}, false
	}
	return levels[n-1], true
}

// Levels returns a copy of the level table in order.
func Levels() []LevelConfig {
	out := make([]LevelConfig, len(levels))
	copy(out, levels[:])
	return out
}
