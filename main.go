package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-catalog/internal/config"
	"pdf-catalog/internal/extract"
	"pdf-catalog/internal/logging"
	"pdf-catalog/internal/scan"
	"pdf-catalog/internal/server"
	"pdf-catalog/internal/store"
)

func main() {
	var (
		rootFlag    = flag.String("root", "", "directory tree to scan (overrides config and saved folder)")
		configFlag  = flag.String("config", "", "path to YAML config file")
		workersFlag = flag.Int("workers", -1, "extraction worker count (0 or 1 = sequential)")
		serveFlag   = flag.String("serve", "", "address for the HTTP status server, e.g. :8080 (empty = no server)")
		verboseFlag = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verboseFlag {
		logging.SetLevel(logging.LevelDebug)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logging.Fatal("Configuration error: %v", err)
	}
	cfg.ApplyEnv()
	if *rootFlag != "" {
		cfg.Root = *rootFlag
	}
	if *workersFlag >= 0 {
		cfg.Workers = *workersFlag
	}

	// No root anywhere: fall back to the folder from the last session.
	if cfg.Root == "" {
		cfg.Root = config.LoadLastFolder(config.DefaultConfigFile)
	}
	if cfg.Root == "" {
		logging.Fatal("No scan root: pass -root, set SCAN_ROOT, or configure one")
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal("Configuration error: %v", err)
	}

	if cfg.Thumbnail.Enabled {
		if err := extract.InitVips(); err != nil {
			logging.Warn("Image engine unavailable, thumbnails disabled: %v", err)
			cfg.Thumbnail.Enabled = false
		} else {
			defer extract.ShutdownVips()
		}
	}

	var srv *server.Server
	if *serveFlag != "" {
		srv = server.New(*serveFlag)
		go func() {
			if err := srv.Start(); err != nil {
				logging.Error("HTTP server error: %v", err)
			}
		}()
	}

	pipeline := scan.New(cfg)
	pipeline.SetThumbnailer(extract.NewThumbnailer(
		cfg.PreviewDir, cfg.Thumbnail.Zoom, cfg.Thumbnail.Quality, cfg.Thumbnail.Enabled))
	pipeline.SetProgress(func(current, total int) {
		logging.Info("Progress: %d/%d", current, total)
		if srv != nil {
			srv.SetProgress(current, total)
		}
	})

	if srv != nil {
		srv.SetScanning(true)
	}
	cat, err := pipeline.Run()
	if err != nil {
		logging.Fatal("Scan failed: %v", err)
	}
	if srv != nil {
		srv.SetScanning(false)
		srv.SetCatalog(cat)
	}

	catalogDir := cfg.CatalogDir
	if catalogDir == "" {
		catalogDir = cfg.Root
	}
	st := store.New(catalogDir)
	if err := st.Save(cat); err != nil {
		logging.Error("Catalog save incomplete: %v", err)
	} else {
		logging.Info("Catalog saved to %s (%d rows)", st.Dir(), len(cat))
	}

	if err := config.SaveLastFolder(config.DefaultConfigFile, cfg.Root); err != nil {
		logging.Warn("Could not remember scan folder: %v", err)
	}

	if srv == nil {
		return
	}

	// Serving mode: stay up until interrupted, then drain connections.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logging.Info("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	}
}
