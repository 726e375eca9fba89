// Command bullseye runs the archery game in an Ebitengine window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bullseye"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bullseye: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := bullseye.ConfigFromEnv()
	if err != nil {
		return err
	}

	width := flag.Int("width", int(cfg.Width), "window width")
	height := flag.Int("height", int(cfg.Height), "window height")
	tps := flag.Int("tps", cfg.TPS, "simulation ticks per second")
	seed := flag.Uint64("seed", cfg.Seed, "particle seed (0 = time based)")
	debug := flag.Bool("debug", cfg.Debug, "log tick stats and show the FPS overlay")
	scriptPath := flag.String("script", "", "JSON input script to play back")
	shotDir := flag.String("screenshots", "screenshots", "directory for F12 and scripted screenshots")
	flag.Parse()

	cfg.Width, cfg.Height = float64(*width), float64(*height)
	cfg.TPS = *tps
	cfg.Seed = *seed
	cfg.Debug = *debug

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(cfg.Logger)

	sim, err := bullseye.NewSimulation(cfg)
	if err != nil {
		return err
	}

	g := newGame(sim, cfg, *shotDir)
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := bullseye.LoadScript(data)
		if err != nil {
			return err
		}
		script.OnScreenshot = g.shots.queue
		g.script = script
		slog.Info("script loaded", slog.String("path", *scriptPath))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && err != errQuit {
		return err
	}
	return nil
}
