package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/Carmen-Shannon/oxy-playground/config"
	"github.com/Carmen-Shannon/oxy-playground/logger"
	"github.com/Carmen-Shannon/oxy-playground/page"
	"github.com/Carmen-Shannon/oxy-playground/platform"
)

// CLI is the command-line surface. Flags override the config file.
var CLI struct {
	Config  string `help:"Path to the YAML config file." type:"path" default:"playground.yaml"`
	Debug   bool   `help:"Enable debug logging."`
	Profile bool   `help:"Log tick rate and memory statistics."`
	Seed    int64  `help:"Scene population seed (0 keeps the config value)." default:"0"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("oxy-playground"),
		kong.Description("A kinematic character playground on the oxy engine."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if CLI.Profile {
		cfg.Engine.Profiling = true
	}
	if CLI.Seed != 0 {
		cfg.Scene.Seed = CLI.Seed
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = platform.DataDir()
	}
	log, err := logger.New(filepath.Join(dataDir, "logs"), cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	p := page.NewPage(
		page.WithConfig(cfg),
		page.WithLogger(log),
	)
	if err := p.Run(); err != nil {
		log.Fatalw("playground exited", "error", err)
	}
}
