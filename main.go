package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"strava-wrapped/internal/api"
	"strava-wrapped/internal/config"
	"strava-wrapped/internal/service"
	"strava-wrapped/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nA default config was written to:\n  %s/config.json\n\n", configDir)
		fmt.Println("Point backend.base_url at your year-in-motion backend and run again.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	filter, err := api.ParseFilter(cfg.Display.DefaultFilter)
	if err != nil {
		filter = api.FilterAll
	}

	// Create the backend client
	client, err := api.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("creating backend client: %w", err)
	}

	// Create the data orchestrator
	provider := service.NewProvider(client, filter)

	// Launch TUI
	app := tui.NewApp(client, provider, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
