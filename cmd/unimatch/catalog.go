package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/db"
	"github.com/jonathan/university-match/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and manage the program catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List programs with their deadline status",
	RunE:  runCatalogList,
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog programs into the database",
	Long:  "Upsert every program from a catalog file (or the built-in catalog) into the database named by DATABASE_URL.",
	RunE:  runCatalogSeed,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or replace a single program in the database",
	Long:  "Read one catalog entry from a JSON file and upsert it into the database named by DATABASE_URL.",
	RunE:  runCatalogAdd,
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a program from the database",
	RunE:  runCatalogRemove,
}

var (
	listCountry        string
	listIncludeExpired bool
	listAsOf           string
	listJSON           bool

	seedFile string

	addFile  string
	removeID int
)

func init() {
	catalogListCmd.Flags().StringVar(&listCountry, "country", "", "Only list programs in this country")
	catalogListCmd.Flags().BoolVar(&listIncludeExpired, "include-expired", false, "Also list programs whose deadlines have passed")
	catalogListCmd.Flags().StringVar(&listAsOf, "as-of", "", "Reference date for deadlines (YYYY-MM-DD, default today)")
	catalogListCmd.Flags().BoolVar(&listJSON, "json", false, "Print the listing as JSON")

	catalogSeedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Catalog JSON file to seed (default: built-in catalog)")

	catalogAddCmd.Flags().StringVarP(&addFile, "file", "f", "", "JSON file holding one catalog entry (required)")
	_ = catalogAddCmd.MarkFlagRequired("file")

	catalogRemoveCmd.Flags().IntVar(&removeID, "id", 0, "ID of the program to remove (required)")
	_ = catalogRemoveCmd.MarkFlagRequired("id")

	catalogCmd.AddCommand(catalogListCmd, catalogSeedCmd, catalogAddCmd, catalogRemoveCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	asOf, err := parseAsOf(listAsOf)
	if err != nil {
		return err
	}

	ctx := context.Background()
	source, database, err := openCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	programs, err := source.Programs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	listing := catalog.List(programs, catalog.Filter{
		Country:        listCountry,
		IncludeExpired: listIncludeExpired || cfg.IncludeExpiredDefault,
		AsOf:           asOf,
	})
	if listJSON {
		return writeJSON(cmd.OutOrStdout(), listing)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintListing(listing)
	return nil
}

func runCatalogSeed(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		return errDatabaseRequired
	}

	records, err := seedRecords(seedFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := connectStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	n, err := database.SeedPrograms(ctx, records)
	if err != nil {
		return err
	}

	log.Info("catalog seeded", zap.Int("programs", n))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d programs\n", n)
	return nil
}

// seedRecords reads the catalog to seed. An empty path selects the built-in catalog.
func seedRecords(path string) ([]catalog.Record, error) {
	if path == "" {
		return catalog.DefaultRecords(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return catalog.ParseRecords(data)
}

func runCatalogAdd(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		return errDatabaseRequired
	}

	record, err := singleRecord(addFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := connectStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.UpsertProgram(ctx, record); err != nil {
		return err
	}

	log.Info("program stored", zap.Int("id", record.ID), zap.String("name", record.Name))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored program %d (%s)\n", record.ID, record.Name)
	return nil
}

func runCatalogRemove(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		return errDatabaseRequired
	}

	ctx := context.Background()
	database, err := connectStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteProgram(ctx, removeID); err != nil {
		return err
	}

	log.Info("program removed", zap.Int("id", removeID))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed program %d\n", removeID)
	return nil
}

var errDatabaseRequired = errors.New("DATABASE_URL environment variable is required")

// connectStore opens the database and makes sure the catalog tables exist.
func connectStore(ctx context.Context, databaseURL string) (*db.DB, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// singleRecord reads one catalog entry and validates it against the catalog schema.
func singleRecord(path string) (catalog.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Record{}, fmt.Errorf("failed to read program file: %w", err)
	}

	wrapped := make([]byte, 0, len(data)+2)
	wrapped = append(wrapped, '[')
	wrapped = append(wrapped, bytes.TrimSpace(data)...)
	wrapped = append(wrapped, ']')

	records, err := catalog.ParseRecords(wrapped)
	if err != nil {
		return catalog.Record{}, err
	}
	if len(records) != 1 {
		return catalog.Record{}, fmt.Errorf("program file must hold exactly one catalog entry, got %d", len(records))
	}
	return records[0], nil
}
