package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gatefall/internal/application/game"
	"github.com/younwookim/gatefall/internal/application/scene/playing"
	"github.com/younwookim/gatefall/internal/infrastructure/config"
)

const (
	screenW = 640
	screenH = 480
)

func main() {
	configsPath := flag.String("configs", "configs", "Path to configs directory")
	recordPath := flag.String("record", "", "Record input to file for replay")
	replayPath := flag.String("replay", "", "Replay a recorded session headless")
	watch := flag.Bool("watch", false, "Reload the level when config files change")
	flag.Parse()

	if *replayPath != "" {
		if err := runReplay(*configsPath, *replayPath); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	loader := config.NewLoader(*configsPath)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load configs: %v", err)
	}

	session, err := game.NewSession(cfg, loader)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	playingScene := playing.New(session, screenW, screenH, *recordPath)

	if *watch {
		watcher, err := config.NewWatcher(*configsPath, filepath.Join(*configsPath, "levels"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		playingScene.ReloadCh = watcher.Events
		go func() {
			for err := range watcher.Errors {
				log.Printf("Watcher error: %v", err)
			}
		}()
	}

	g := game.New(playingScene, screenW, screenH)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("gatefall")

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
