package main

import (
	"log"
	"path/filepath"

	"chosenoffset.com/embervale/internal/audio"
	"chosenoffset.com/embervale/internal/config"
	"chosenoffset.com/embervale/internal/game"
	"chosenoffset.com/embervale/internal/logger"
	ebitenrender "chosenoffset.com/embervale/internal/render/ebiten"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	cues := audio.NewCues(cfg.AudioEnabled, filepath.Join(cfg.DataDir, "sounds"))

	manager := game.NewManager(renderer, inputMgr, loader, cues, cfg)

	engine.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	engine.SetWindowTitle("Embervale")
	engine.SetWindowResizable(false)

	logger.Log.Infof("starting embervale at %dx%d, data dir %s", cfg.WindowWidth, cfg.WindowHeight, cfg.DataDir)
	if err := engine.RunGame(manager); err != nil {
		logger.Log.Fatalf("game loop ended with error: %v", err)
	}
}
