package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"pano/internal/config"
	"pano/internal/storage"
	"pano/internal/store"
	"pano/internal/ui"
	"pano/internal/ui/styles"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion = flag.BoolP("version", "v", false, "print version and exit")
		debug       = flag.Bool("debug", false, "enable debug logging")
		configPath  = flag.StringP("config", "c", "", "config file (default: ~/.config/pano/config.json)")
		backend     = flag.String("backend", "", "blob store backend: sqlite, redis or memory")
		dbPath      = flag.String("db", "", "sqlite database path")
		redisAddr   = flag.String("redis", "", "redis address (host:port)")
		theme       = flag.String("theme", "", "color theme: dark, light or ocean")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pano %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	// Keep log output off the TUI's screen
	if *debug {
		log.SetLevel(log.DebugLevel)
		if f, err := os.OpenFile("pano.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	} else if devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0); err == nil {
		log.SetOutput(devnull)
	}

	path := *configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *redisAddr != "" {
		cfg.RedisAddr = *redisAddr
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	blob, err := openBlob(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer blob.Close()

	s := store.New(storage.NewAdapter(blob))

	app := ui.NewApp(s, styles.ByName(cfg.Theme), cfg.WeeklyGoal)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func openBlob(cfg config.Config) (storage.Blob, error) {
	switch cfg.Backend {
	case "", "sqlite":
		path := cfg.DBPath
		if path == "" {
			var err error
			path, err = storage.DefaultDBPath()
			if err != nil {
				return nil, err
			}
		}
		return storage.OpenSQLite(path)
	case "redis":
		return storage.NewRedis(cfg.RedisAddr), nil
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
