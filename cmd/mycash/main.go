package main

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mycash/internal/config"
	"mycash/internal/finance"
	"mycash/internal/seed"
	"mycash/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	now := time.Now()
	store := finance.NewStoreAt(now)
	if cfg.Data.Seed {
		seed.Populate(store, now)
	}

	program := tea.NewProgram(ui.New(store, cfg, now), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("ui: %v", err)
	}
}
