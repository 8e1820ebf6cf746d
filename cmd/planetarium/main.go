package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"planetarium/internal/cli"
	"planetarium/internal/config"
	"planetarium/internal/domain"
	"planetarium/internal/loader"
	"planetarium/internal/service"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Configuration file path (default: search standard locations)")
	scenarioPath := flag.String("scenario", "", "YAML scenario describing the initial system")
	format := flag.String("format", "", "System listing format: text, json or yaml")
	logFile := flag.String("log", "", "Write diagnostic logs to this file")
	verbose := flag.Bool("verbose", false, "Write diagnostic logs to stderr")
	askStar := flag.Bool("ask-star", false, "Ask for the star position and mass at startup")
	initConfig := flag.Bool("init-config", false, "Write the default configuration file and exit")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	if *initConfig {
		path := *configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Wrote default configuration to %s\n", path)
		return
	}

	cfg, source, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags win over the file and the environment
	if *scenarioPath != "" {
		cfg.Scenario = *scenarioPath
	}
	if *format != "" {
		cfg.Display.Format = *format
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid flags: %v", err)
		}
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *verbose {
		cfg.Log.Verbose = true
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	log.Println("Starting Planetarium...")
	if source != "" {
		log.Printf("Configuration loaded from %s", source)
	}
	log.Printf("Configuration:\n%s", cfg.Summary())

	system, err := initialSystem(cfg)
	if err != nil {
		log.Fatalf("Failed to create the system: %v", err)
	}

	// Initialize event bus
	eventBus := service.NewEventBus()
	eventBus.Subscribe(func(event service.Event) {
		log.Printf("Event %s: %v", event.Type, event.Payload)
	})

	// Initialize services
	systemSvc := service.NewSystemService(system, eventBus)

	session := cli.NewSession(systemSvc, os.Stdin, os.Stdout, cli.Options{
		Format:    cfg.Display.Format,
		Generator: cfg.GeneratorOptions(),
	})
	if *askStar && cfg.Scenario == "" {
		if err := session.AskStar(); err != nil {
			log.Fatalf("Failed to read the star: %v", err)
		}
	}
	if err := session.Run(); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
	log.Println("Planetarium stopped")
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// setupLogging sends diagnostics to the configured file, to stderr when
// verbose, and nowhere otherwise so the menu stays readable
func setupLogging(cfg config.LogConfig) (func(), error) {
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		if cfg.Verbose {
			log.SetOutput(io.MultiWriter(f, os.Stderr))
		} else {
			log.SetOutput(f)
		}
		return func() { f.Close() }, nil
	case cfg.Verbose:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

// initialSystem loads the scenario if one is configured, otherwise it creates
// a bare star from the configuration
func initialSystem(cfg *config.Config) (*domain.SolarSystem, error) {
	if cfg.Scenario != "" {
		system, err := loader.LoadYAML(cfg.Scenario)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded scenario %s with %d bodies", cfg.Scenario, system.Size())
		return system, nil
	}

	return domain.NewSolarSystem(domain.NewPosition(cfg.Star.X, cfg.Star.Y), cfg.Star.Mass), nil
}
