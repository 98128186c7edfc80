package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/config"
	"github.com/jonathan/university-match/internal/db"
	"github.com/jonathan/university-match/internal/logger"
	"go.uber.org/zap"
)

const asOfLayout = "2006-01-02"

// loadSettings resolves the effective configuration and a logger from it.
// Command-line logging flags win over the file and environment.
func loadSettings() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if jsonLogs {
		cfg.LogJSON = true
	}
	if debugLogs {
		cfg.Debug = true
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

// openCatalog returns the program source the configuration selects: the
// database when a URL is set, else the catalog file, else the built-in
// catalog. The returned DB is nil unless the database is in use.
func openCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (catalog.Source, *db.DB, error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		log.Info("using database catalog")
		return db.NewProgramSource(database), database, nil
	}

	if cfg.CatalogPath != "" {
		programs, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using catalog file", zap.String("path", cfg.CatalogPath), zap.Int("programs", len(programs)))
		return catalog.NewStaticSource(programs), nil, nil
	}

	log.Debug("using built-in catalog")
	return catalog.NewStaticSource(catalog.Default()), nil, nil
}

// parseAsOf parses a YYYY-MM-DD reference date. Empty means now.
func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(asOfLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// writeJSON writes v to out as indented JSON.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
