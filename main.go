package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"whacamole/internal/assets"
	"whacamole/internal/clock"
	"whacamole/internal/config"
	"whacamole/internal/input"
	"whacamole/internal/logging"
	"whacamole/internal/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger, err := logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	presets, err := cfg.Presets()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load round presets")
	}

	if missing := assets.Missing(cfg.AssetDir); len(missing) > 0 {
		logger.Fatal().Str("dir", cfg.AssetDir).Strs("missing", missing).Msg("required assets not found")
	}
	textures, err := assets.NewLoader(cfg.AssetDir, logging.Component(logger, "assets")).LoadTextures()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load textures")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Int("presets", len(presets.Rounds)).Msg("starting")

	app := scene.NewApp(scene.Options{
		Presets:  presets,
		Textures: textures,
		Clock:    clock.NewWall(),
		Input:    input.Ebiten{},
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      logger,
	})

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Whac-A-Mole")
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal().Err(err).Msg("game loop exited")
	}
}
