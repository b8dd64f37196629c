package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"spincube/internal/config"
	"spincube/internal/view"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "YAML config file")
	width := flag.Int("width", 0, "window width (overrides config)")
	height := flag.Int("height", 0, "window height (overrides config)")
	fps := flag.Int("fps", -1, "target FPS, 0 for uncapped (overrides config)")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *fps >= 0 {
		cfg.TargetFPS = *fps
	}

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			log.Fatalf("Config: %v", err)
		}
		log.Printf("Config: wrote %s", *configPath)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := view.New(cfg).Run(ctx); err != nil {
		log.Printf("View: %v", err)
		stop()
		os.Exit(1)
	}
}
