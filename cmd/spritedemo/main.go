package main

import (
	"flag"
	"log"

	"chosenoffset.com/spritemask/internal/arena"
	"chosenoffset.com/spritemask/internal/game"
	ebitenrender "chosenoffset.com/spritemask/internal/render/ebiten"
	"chosenoffset.com/spritemask/internal/simulation"
	"chosenoffset.com/spritemask/internal/sprite"
)

func main() {
	configPath := flag.String("config", "spritedemo.json", "JSON or YAML settings file")
	spritePath := flag.String("sprite", "", "raw sprite sheet, overrides the config")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *spritePath != "" {
		cfg.Sprite.Path = *spritePath
	}

	// Every resource buffer comes from one arena sized up front.
	mem := arena.New(cfg.ArenaBytes)
	sheet, err := sprite.LoadSheet(cfg.Sprite.Path, cfg.Sprite.FrameWidth, cfg.Sprite.FrameHeight, cfg.Sprite.FrameCount, mem)
	if err != nil {
		log.Fatalf("Failed to load sprite sheet: %v", err)
	}
	log.Printf("Loaded %s: %d frames of %dx%d (%d/%d arena bytes)",
		cfg.Sprite.Path, sheet.FrameCount, sheet.FrameWidth, sheet.FrameHeight, mem.Used(), mem.Cap())

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	demo, err := game.NewSpriteDemo(renderer, inputMgr, cfg, sheet)
	if err != nil {
		log.Fatalf("Failed to create sprite demo: %v", err)
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting sprite demo... M cycles masks, H and V flip")
	if err := engine.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
