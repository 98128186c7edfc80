package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/university-match/internal/matching"
	"github.com/jonathan/university-match/internal/observability"
	"github.com/jonathan/university-match/internal/schemas"
	"github.com/jonathan/university-match/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate profile against the program catalog",
	Long:  "Score a candidate profile JSON file against every program in the catalog and print the results grouped by match band.",
	RunE:  runMatch,
}

var (
	matchProfileFile    string
	matchIncludeExpired bool
	matchAsOf           string
	matchJSON           bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	matchCmd.Flags().BoolVar(&matchIncludeExpired, "include-expired", false, "Also score programs whose deadlines have passed")
	matchCmd.Flags().StringVar(&matchAsOf, "as-of", "", "Reference date for deadlines (YYYY-MM-DD, default today)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")

	if err := matchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	asOf, err := parseAsOf(matchAsOf)
	if err != nil {
		return err
	}

	req, err := loadMatchRequest(matchProfileFile)
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

	run, err := matching.MatchCatalog(ctx, &req.CandidateProfile, programs, matching.Options{
		IncludeExpired: matchIncludeExpired || req.IncludeExpired || cfg.IncludeExpiredDefault,
		AsOf:           asOf,
	})
	if err != nil {
		return fmt.Errorf("failed to match profile: %w", err)
	}
	log.Debug("match complete", zap.Int("scored", len(run.Ranked)), zap.Int("expired_hidden", run.ExpiredHidden))

	if matchJSON {
		return writeJSON(cmd.OutOrStdout(), run.Buckets)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintMatchRun(run)
	return nil
}

// loadMatchRequest reads a profile file, checks it against the profile schema
// and decodes it.
func loadMatchRequest(path string) (*types.MatchRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := schemas.ValidateProfile(data); err != nil {
		return nil, fmt.Errorf("profile does not validate against schema: %w", err)
	}

	var req types.MatchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &req, nil
}
