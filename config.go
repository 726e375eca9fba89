package bullseye

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds the settings a Simulation is created with. Frontends build one
// from DefaultConfig or ConfigFromEnv and override fields from flags.
type Config struct {
	// Title is the window or terminal title.
	Title string
	// Width and Height are the playfield size in units.
	Width, Height float64
	// TPS is the number of simulation ticks per second; it fixes the tick
	// duration that resolution delays are measured against.
	TPS int
	// Seed seeds particle randomness. Zero picks a time-based seed.
	Seed uint64
	// Debug enables periodic tick stats in the log.
	Debug bool
	// Logger receives simulation logs. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the reference 900x500 playfield at 60 TPS.
func DefaultConfig() Config {
	return Config{
		Title:  "Bullseye",
		Width:  ReferenceWidth,
		Height: ReferenceHeight,
		TPS:    60,
	}
}

// Environment variables read by ConfigFromEnv.
const (
	EnvWidth  = "BULLSEYE_WIDTH"
	EnvHeight = "BULLSEYE_HEIGHT"
	EnvTPS    = "BULLSEYE_TPS"
	EnvSeed   = "BULLSEYE_SEED"
	EnvDebug  = "BULLSEYE_DEBUG"
)

// ConfigFromEnv returns DefaultConfig overlaid with any BULLSEYE_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfg.Width, err = envFloat(EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envFloat(EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if cfg.TPS, err = envInt(EnvTPS, cfg.TPS); err != nil {
		return cfg, err
	}
	if v := getEnvDefault(EnvSeed, ""); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
	}
	if v := getEnvDefault(EnvDebug, ""); v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvDebug, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate reports whether the config can drive a simulation.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid playfield %gx%g", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return errors.New("tps must be positive")
	}
	return nil
}

// Layout returns the playfield described by the config.
func (c Config) Layout() Layout {
	return Layout{Width: c.Width, Height: c.Height}
}

// TickDuration returns the simulation time covered by one Update.
func (c Config) TickDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}

// Ticks returns how many whole ticks cover d, rounding up. Counting in ticks
// keeps a delay from slipping a frame when the tick duration is truncated.
func (c Config) Ticks(d time.Duration) int {
	tps := time.Duration(c.TPS)
	if tps <= 0 {
		tps = 60
	}
	return int((d*tps + time.Second - 1) / time.Second)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func getEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func envFloat(key string, def float64) (float64, error) {
	v := getEnvDefault(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, def int) (int, error) {
	v := getEnvDefault(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
