package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/dungeon/internal/game"
	"chosenoffset.com/dungeon/internal/gamescanner"
	"chosenoffset.com/dungeon/internal/logger"
	"chosenoffset.com/dungeon/internal/render/terminal"
	"chosenoffset.com/dungeon/internal/simulation"
	"chosenoffset.com/dungeon/internal/world/maploader"
)

func main() {
	dataDir := flag.String("data", "data", "data directory holding levels/ and rules.yaml")
	rulesPath := flag.String("rules", "", "simulation rules file (default <data>/rules.yaml)")
	levelName := flag.String("level", "builtin", "level name, \"builtin\" for the compiled-in dungeon")
	latch := flag.Int("latch", 8, "ticks a key stays held after its last press")
	logPath := flag.String("log", "dungeon-tty.log", "log file; the terminal is taken by the game")
	flag.Parse()

	if err := run(*dataDir, *rulesPath, *levelName, *latch, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "dungeon-tty: %v\n", err)
		os.Exit(1)
	}
}

func run(dataDir, rulesPath, levelName string, latch int, logPath string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger.Init(logFile)

	if rulesPath == "" {
		rulesPath = filepath.Join(dataDir, "rules.yaml")
	}
	rules, err := simulation.LoadConfig(rulesPath)
	if err != nil {
		return err
	}

	lvl, err := loadLevel(dataDir, levelName, int(rules.Physics.TileSize))
	if err != nil {
		return err
	}

	session, err := game.NewSession(lvl, rules)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := terminal.NewHost(screen, session, latch)
	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func loadLevel(dataDir, name string, tileSize int) (*maploader.Level, error) {
	if name == "builtin" {
		return maploader.Builtin(tileSize), nil
	}

	levels, err := gamescanner.ScanDataDirectory(dataDir)
	if err != nil {
		return nil, err
	}
	entry, ok := gamescanner.Find(levels, name)
	if !ok {
		return nil, fmt.Errorf("level %q not found in %s", name, dataDir)
	}
	return maploader.LoadLevel(entry.Path)
}
