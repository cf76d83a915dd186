package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/navdisplay/internal/config"
	"github.com/relabs-tech/navdisplay/internal/simulator"
)

func main() {
	configPath := flag.String("config", "", "optional configuration file")
	replayPath := flag.String("replay", "", "raw receiver capture to play back instead of the synthetic track")
	flag.Parse()

	log.Println("starting navdisplay simulator (space: next page, esc: quit)")

	if *configPath != "" {
		if err := config.InitGlobal(*configPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	if err := simulator.Run(*replayPath); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
