// Package catalog loads the graduate program catalog and evaluates program
// deadlines against a reference date.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/university-match/internal/schemas"
	"github.com/jonathan/university-match/internal/types"
)

//go:embed data/programs.json
var defaultCatalog []byte

// Record is the stored form of a catalog entry. Document lists are derived
// from RecommendationCount, GRERequired and OptionalDocuments when the record
// is turned into a program.
type Record struct {
	ID                  int                   `json:"id"`
	Name                string                `json:"name"`
	Program             string                `json:"program"`
	Country             string                `json:"country"`
	MinGPA              float64               `json:"min_gpa"`
	MinLanguageScore    float64               `json:"min_language_score"`
	RequiredBackground  []string              `json:"required_background"`
	Deadlines           map[string]string     `json:"deadlines"`
	ApplicationFee      *types.ApplicationFee `json:"application_fee,omitempty"`
	ApplicationURL      string                `json:"application_url,omitempty"`
	RecommendationCount int                   `json:"recommendation_count,omitempty"`
	GRERequired         bool                  `json:"gre_required,omitempty"`
	OptionalDocuments   []string              `json:"optional_documents,omitempty"`
}

// Requirement builds the catalog entry for r, including its document requirements.
func (r Record) Requirement() types.ProgramRequirement {
	recCount := r.RecommendationCount
	if recCount != 2 && recCount != 3 {
		recCount = 2
	}

	p := types.ProgramRequirement{
		ID:                  r.ID,
		Name:                r.Name,
		Program:             r.Program,
		Country:             r.Country,
		MinGPA:              r.MinGPA,
		MinLanguageScore:    r.MinLanguageScore,
		RequiredBackground:  append([]string(nil), r.RequiredBackground...),
		Deadlines:           make(map[string]string, len(r.Deadlines)),
		ApplicationURL:      r.ApplicationURL,
		RecommendationCount: recCount,
		GRERequired:         r.GRERequired,
		RequiredDocuments:   StandardDocuments(r.Country, recCount, r.GRERequired),
		OptionalDocuments:   Documents(r.OptionalDocuments),
	}
	if p.RequiredBackground == nil {
		p.RequiredBackground = []string{}
	}
	for term, date := range r.Deadlines {
		p.Deadlines[term] = date
	}
	if r.ApplicationFee != nil {
		p.ApplicationFee = *r.ApplicationFee
	}
	return p
}

// ParseRecords validates data against the catalog schema and decodes it.
func ParseRecords(data []byte) ([]Record, error) {
	if err := schemas.ValidateCatalog(data); err != nil {
		return nil, &LoadError{Message: "catalog does not match schema", Cause: err}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Message: "failed to decode catalog", Cause: err}
	}

	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate program id %d", r.ID)}
		}
		seen[r.ID] = true
	}
	return records, nil
}

// Parse validates and decodes a catalog document into programs.
func Parse(data []byte) ([]types.ProgramRequirement, error) {
	records, err := ParseRecords(data)
	if err != nil {
		return nil, err
	}
	return Programs(records), nil
}

// Programs converts records into catalog entries, preserving order.
func Programs(records []Record) []types.ProgramRequirement {
	programs := make([]types.ProgramRequirement, 0, len(records))
	for _, r := range records {
		programs = append(programs, r.Requirement())
	}
	return programs
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) ([]types.ProgramRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read catalog file %s", path), Cause: err}
	}
	return Parse(data)
}

// DefaultRecords returns the records of the built-in catalog.
func DefaultRecords() []Record {
	records, err := ParseRecords(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in catalog is invalid: %v", err))
	}
	return records
}

// Default returns the built-in catalog of graduate programs.
func Default() []types.ProgramRequirement {
	return Programs(DefaultRecords())
}
