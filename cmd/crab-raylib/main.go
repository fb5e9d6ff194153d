package main

import (
	"log"

	"github.com/plus3/crab/config"
	"github.com/plus3/crab/frontend/raylibgame"
	"github.com/plus3/crab/input"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	for _, line := range input.Banner {
		log.Println(line)
	}

	if err := raylibgame.Run(settings); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
