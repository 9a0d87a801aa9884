package main

import (
	"flag"
	"log"

	"chosenoffset.com/spritemask/internal/game"
	ebitenrender "chosenoffset.com/spritemask/internal/render/ebiten"
	"chosenoffset.com/spritemask/internal/simulation"
	"chosenoffset.com/spritemask/internal/world/tilegrid"
)

func main() {
	configPath := flag.String("config", "collidedemo.json", "JSON or YAML settings file")
	mapPath := flag.String("map", "", "JSON tile map, overrides the config")
	flag.Parse()

	cfg, err := simulation.LoadConfigWithDefaults(*configPath, simulation.DefaultCollisionConfig())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mapPath != "" {
		cfg.Collision.MapPath = *mapPath
	}

	grid := tilegrid.Default()
	if cfg.Collision.MapPath != "" {
		grid, err = tilegrid.Load(cfg.Collision.MapPath)
		if err != nil {
			log.Fatalf("Failed to load map: %v", err)
		}
	}
	log.Printf("Loaded map %q (%dx%d)", grid.Name(), grid.Width(), grid.Height())

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	demo := game.NewCollisionDemo(renderer, inputMgr, cfg, grid)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting collision demo... arrows or WASD move, F shows the field")
	if err := engine.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
