package main

import (
	"fmt"
	"os"

	"github.com/jonathan/university-match/internal/extraction"
	"github.com/jonathan/university-match/internal/ingestion"
	"github.com/jonathan/university-match/internal/logger"
	"github.com/jonathan/university-match/internal/observability"
	"github.com/jonathan/university-match/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseCVCmd = &cobra.Command{
	Use:   "parse-cv",
	Short: "Extract a candidate profile from a CV document",
	Long:  "Extract text from a PDF, DOCX or plain text CV and derive a candidate profile from it.",
	RunE:  runParseCV,
}

var (
	parseCVFile string
	parseCVJSON bool
)

func init() {
	parseCVCmd.Flags().StringVarP(&parseCVFile, "file", "f", "", "Path to CV document (required)")
	parseCVCmd.Flags().BoolVar(&parseCVJSON, "json", false, "Print the extracted profile as JSON")

	if err := parseCVCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCVCmd)
}

// parsedCV is the JSON output of parse-cv.
type parsedCV struct {
	ExtractedData *types.ExtractedProfile `json:"extracted_data"`
	Assessment    *ingestion.Assessment   `json:"assessment"`
	Metadata      *ingestion.Metadata     `json:"metadata"`
}

func runParseCV(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(parseCVFile)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	result, err := parseCVDocument(ingestion.NewExtractor(ingestion.Options{
		DisablePDF:  cfg.DisablePDF,
		DisableDOCX: cfg.DisableDOCX,
	}), parseCVFile, data)
	if err != nil {
		return err
	}
	log.Debug("cv parsed",
		zap.String(logger.FieldMIMEType, result.Metadata.MIMEType),
		zap.Float64("confidence", result.Assessment.Confidence))

	if parseCVJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintExtractedProfile(result.ExtractedData)
	return nil
}

// parseCVDocument runs the CV pipeline over raw document bytes.
func parseCVDocument(extractor *ingestion.Extractor, name string, data []byte) (*parsedCV, error) {
	mimeType := ingestion.DetectType(data, "")
	text, err := extractor.ExtractText(data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	assessment, err := ingestion.AssessCV(text)
	if err != nil {
		return nil, err
	}

	profile := extraction.Extract(text)
	return &parsedCV{
		ExtractedData: &profile,
		Assessment:    assessment,
		Metadata:      ingestion.NewMetadata(name, mimeType, data, text),
	}, nil
}
