package main

import (
	"flag"
	"os"

	"chosenoffset.com/dungeon/internal/game"
	"chosenoffset.com/dungeon/internal/gamescanner"
	"chosenoffset.com/dungeon/internal/logger"
	ebitenrender "chosenoffset.com/dungeon/internal/render/ebiten"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/ui/menu"
)

func main() {
	dataDir := flag.String("data", "data", "data directory holding levels/ and rules.yaml")
	rulesPath := flag.String("rules", "", "simulation rules file (default <data>/rules.yaml)")
	levelName := flag.String("level", "", "start this level directly, \"builtin\" for the compiled-in dungeon")
	screenWidth := flag.Int("width", 1280, "window width")
	screenHeight := flag.Int("height", 512, "window height")
	flag.Parse()

	logger.Init(os.Stdout)
	log := logger.Component("main")

	if *rulesPath == "" {
		*rulesPath = *dataDir + "/rules.yaml"
	}
	rules, err := simulation.LoadConfig(*rulesPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load rules")
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Scan data directory for available levels
	log.WithField("data", *dataDir).Info("scanning data directory for levels")
	levels, err := gamescanner.ScanDataDirectory(*dataDir)
	if err != nil {
		log.WithError(err).Warn("no level directory, only the built-in dungeon is available")
	}
	levels = append([]gamescanner.LevelEntry{menu.BuiltinEntry}, levels...)

	mainMenu := menu.NewMainMenu(levels, renderer, inputMgr, *screenWidth, *screenHeight)

	gameManager := game.NewManager(renderer, inputMgr, rules, *screenWidth, *screenHeight)
	gameManager.SetMainMenu(mainMenu)

	if *levelName != "" {
		selection := menu.Selection{Name: *levelName}
		if *levelName != "builtin" {
			entry, ok := gamescanner.Find(levels, *levelName)
			if !ok {
				log.WithField("level", *levelName).Fatal("level not found")
			}
			selection.Path = entry.Path
		}
		if err := gameManager.LoadGame(selection); err != nil {
			log.WithError(err).Fatal("failed to start level")
		}
		gameManager.State = menu.StatePlaying
	}

	// Set up the window
	engine.SetWindowSize(*screenWidth, *screenHeight)
	engine.SetWindowTitle("Dungeon")
	engine.SetWindowResizable(true)
	engine.SetTPS(rules.Timing.TicksPerSecond)

	log.Info("starting game")
	if err := engine.RunGame(gameManager); err != nil {
		log.WithError(err).Fatal("game exited with error")
	}
}
