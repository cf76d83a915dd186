package main

import (
	"log"

	"github.com/relabs-tech/navdisplay/internal/app"
	"github.com/relabs-tech/navdisplay/internal/config"
)

func main() {
	log.Println("starting navdisplay console (MQTT subscriber)")

	// Load configuration
	if err := config.InitGlobal("navdisplay.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsoleMQTT(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
