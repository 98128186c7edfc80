package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/university-match/internal/ingestion"
	"github.com/jonathan/university-match/internal/server"
	"github.com/jonathan/university-match/internal/server/ratelimit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for matching profiles, parsing CVs and browsing the program catalog.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, database, err := openCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}

	deps := server.Deps{
		Catalog: source,
		Extractor: ingestion.NewExtractor(ingestion.Options{
			DisablePDF:  cfg.DisablePDF,
			DisableDOCX: cfg.DisableDOCX,
		}),
		Logger: log,
	}
	if database != nil {
		defer database.Close()
		deps.Runs = database
	}

	rl := ratelimit.NewConfig(cfg.RateLimit.Enabled, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst,
		cfg.RateLimit.Whitelist, cfg.RateLimit.Blacklist)

	srv, err := server.New(server.Config{
		Port:                  cfg.Port,
		MaxUploadBytes:        cfg.MaxUploadBytes(),
		IncludeExpiredDefault: cfg.IncludeExpiredDefault,
		RateLimit:             rl,
	}, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.Bool("database", database != nil),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled))
	return srv.Start(ctx)
}
