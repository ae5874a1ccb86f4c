//go:build ebiten

package main

import (
	"errors"
	"flag"

	"tileworld/internal/app"
	"tileworld/internal/world"
	"tileworld/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wcfg, err := cfg.World(flag.CommandLine)
	if err != nil {
		logger.Log.Fatalf("config: %v", err)
	}
	w, err := world.New(wcfg)
	if err != nil {
		logger.Log.Fatalf("generate world: %v", err)
	}

	game := app.New(w, cfg)
	width, height := game.Layout(0, 0)

	ebiten.SetWindowTitle("tileworld: " + wcfg.Recipe)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(width*cfg.Scale, height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
}
