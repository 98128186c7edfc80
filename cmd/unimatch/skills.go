package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/university-match/internal/observability"
	"github.com/jonathan/university-match/internal/skills"
	"github.com/jonathan/university-match/internal/types"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Normalize and extract skills",
}

var skillsNormalizeCmd = &cobra.Command{
	Use:   "normalize SKILL...",
	Short: "Map skill names to their canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSkillsNormalize,
}

var skillsExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Find known skills in free text",
	RunE:  runSkillsExtract,
}

var skillsSynonymsCmd = &cobra.Command{
	Use:   "synonyms",
	Short: "Print the skill synonym table as JSON",
	RunE:  runSkillsSynonyms,
}

var (
	skillsJSON        bool
	skillsExtractFile string
	skillsExtractText string
)

func init() {
	skillsCmd.PersistentFlags().BoolVar(&skillsJSON, "json", false, "Print results as JSON")
	skillsExtractCmd.Flags().StringVarP(&skillsExtractFile, "file", "f", "", "Path to a text file to scan")
	skillsExtractCmd.Flags().StringVarP(&skillsExtractText, "text", "t", "", "Text to scan")

	skillsCmd.AddCommand(skillsNormalizeCmd, skillsExtractCmd, skillsSynonymsCmd)
	rootCmd.AddCommand(skillsCmd)
}

func runSkillsNormalize(cmd *cobra.Command, args []string) error {
	unique, mapping := skills.NormalizeAll(args)
	if skillsJSON {
		return writeJSON(cmd.OutOrStdout(), types.NormalizeSkillsResponse{
			Success:    true,
			Original:   args,
			Normalized: unique,
			Mapping:    mapping,
		})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSkillMapping(args, mapping)
	return nil
}

func runSkillsExtract(cmd *cobra.Command, _ []string) error {
	text, err := extractInput(skillsExtractFile, skillsExtractText)
	if err != nil {
		return err
	}

	extraction := skills.ExtractFromText(text)
	if skillsJSON {
		return writeJSON(cmd.OutOrStdout(), extraction)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSkillExtraction(extraction)
	return nil
}

func runSkillsSynonyms(cmd *cobra.Command, _ []string) error {
	return writeJSON(cmd.OutOrStdout(), skills.SynonymMap())
}

// extractInput returns the text to scan from exactly one of file or text.
func extractInput(file, text string) (string, error) {
	switch {
	case file != "" && text != "":
		return "", fmt.Errorf("cannot use --file with --text")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case strings.TrimSpace(text) != "":
		return text, nil
	default:
		return "", fmt.Errorf("must provide either --file or --text")
	}
}
