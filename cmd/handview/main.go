package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"github.com/ayusman/handview/internal/app"
	"github.com/ayusman/handview/internal/capture"
	"github.com/ayusman/handview/internal/config"
	"github.com/ayusman/handview/internal/detector"
	"github.com/ayusman/handview/internal/display"
	"github.com/ayusman/handview/internal/store"
)

func main() {
	session := uuid.New().String()[:8]
	log.SetPrefix(fmt.Sprintf("[%s] ", session))

	flagCfg := config.Default()
	flagCfg.RegisterFlags(flag.CommandLine)
	dbPath := flag.String("db", defaultDBPath(), "settings database path (empty disables remembered settings)")
	remember := flag.Bool("remember", false, "save the effective settings for the next run")
	flag.Parse()

	cfg := config.Default()

	// Remembered settings first, then flags given on the command line
	var st *store.Store
	if *dbPath != "" {
		var err error
		st, err = openStore(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		defer st.Close()

		stored, err := st.Settings().All()
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		if err := cfg.ApplySettings(stored); err != nil {
			log.Printf("Ignoring remembered settings: %v", err)
			cfg = config.Default()
		}
	}

	explicit := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})
	if err := cfg.ApplySettings(explicit); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *remember {
		if st == nil {
			log.Fatalf("-remember needs a settings database (-db)")
		}
		if err := st.Settings().SetAll(cfg.Settings()); err != nil {
			log.Fatalf("Failed to save settings: %v", err)
		}
		log.Printf("Settings saved to %s", st.Path())
	}

	det, err := detector.NewMediaPipeDetector(cfg.Detector)
	if err != nil {
		log.Fatalf("Hand detector unavailable: %v", err)
	}

	viewer := app.New(app.Config{
		Viewer:   cfg,
		Camera:   capture.NewCamera(cfg.CameraID, cfg.Width, cfg.Height),
		Detector: det,
		Window:   display.NewWindow(config.WindowTitle),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := viewer.Run(ctx); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}

// openStore creates the settings directory if needed and opens the database.
func openStore(dbPath string) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return store.New(dbPath)
}

// defaultDBPath returns ~/.handview/handview.db, or "" when there is no home directory.
func defaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".handview", "handview.db")
}
