// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"log"

	"github.com/relabs-tech/navdisplay/internal/app"
	"github.com/relabs-tech/navdisplay/internal/config"
)

func main() {
	log.Println("starting navdisplay web server (MQTT subscriber)")

	// Load configuration
	if err := config.InitGlobal("navdisplay.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Println("Note: live data requires a publisher (navdisplay with TELEMETRY_ENABLE=true, or gps_producer)")

	if err := app.RunWeb(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
