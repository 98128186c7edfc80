// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/matching"
	"github.com/jonathan/university-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintMatchRun outputs the score bands of a match run, best programs first.
func (p *Printer) PrintMatchRun(run *matching.Run) {
	if run == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Programs scored: %d", len(run.Ranked)))
	if run.ExpiredHidden > 0 {
		sb.WriteString(fmt.Sprintf(" (%d with passed deadlines hidden)", run.ExpiredHidden))
	}
	sb.WriteString("\n")

	bands := []struct {
		label   string
		results []types.MatchResult
	}{
		{"High match (70+)", run.Buckets.HighMatch},
		{"Medium match (50-70)", run.Buckets.MediumMatch},
		{"Low match (30-50)", run.Buckets.LowMatch},
		{"Extra options (<30)", run.Buckets.ExtraOptions},
	}
	for _, band := range bands {
		if len(band.results) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s: %d\n", band.label, len(band.results)))
		count := min(len(band.results), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(formatResult(band.results[i]))
		}
		if len(band.results) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(band.results)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

func formatResult(r types.MatchResult) string {
	line := fmt.Sprintf("  %6.2f  %s, %s", r.MatchScore, r.Name, r.Program)
	if r.DeadlineStatus.NextDeadline != nil {
		line += fmt.Sprintf("\n          next deadline %s", *r.DeadlineStatus.NextDeadline)
		if r.DeadlineStatus.DaysRemaining != nil {
			line += fmt.Sprintf(" (%d days, %s)", *r.DeadlineStatus.DaysRemaining, r.DeadlineStatus.Urgency)
		}
	}
	return line + "\n"
}

// PrintExtractedProfile outputs the fields extracted from a CV.
func (p *Printer) PrintExtractedProfile(profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.GPA != nil {
		sb.WriteString(fmt.Sprintf("GPA:         %.2f (%s scale)\n", *profile.GPA, profile.GradingSystem))
	} else {
		sb.WriteString("GPA:         not found\n")
	}
	if testType, score, ok := profile.LanguageTest(); ok {
		sb.WriteString(fmt.Sprintf("Language:    %s %g\n", strings.ToUpper(testType), score))
	} else {
		sb.WriteString("Language:    no test found\n")
	}
	sb.WriteString(fmt.Sprintf("Research:    %g years\n", profile.ResearchExperience))
	sb.WriteString(fmt.Sprintf("Work:        %g years\n", profile.WorkExperience))
	sb.WriteString(fmt.Sprintf("Publications: %d\n", profile.Publications))
	sb.WriteString(fmt.Sprintf("Country:     %s\n", profile.Country))

	if len(profile.Background) > 0 {
		sb.WriteString(fmt.Sprintf("Background:  %s\n", strings.Join(profile.Background, ", ")))
	}
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:      %s\n", strings.Join(profile.Skills, ", ")))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintListing outputs catalog programs with their next deadline.
func (p *Printer) PrintListing(listing catalog.Listing) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Programs: %d", listing.Total))
	if listing.ExpiredHidden > 0 {
		sb.WriteString(fmt.Sprintf(" (%d with passed deadlines hidden)", listing.ExpiredHidden))
	}
	sb.WriteString("\n\n")

	for _, ps := range listing.Programs {
		sb.WriteString(fmt.Sprintf("#%-3d %s, %s (%s)\n", ps.ID, ps.Name, ps.Program, ps.Country))
		status := ps.DeadlineStatus
		switch {
		case status.NextDeadline != nil && status.DaysRemaining != nil:
			sb.WriteString(fmt.Sprintf("     deadline %s, %d days left [%s]\n", *status.NextDeadline, *status.DaysRemaining, status.Urgency))
		case !status.HasActive:
			sb.WriteString("     all deadlines passed\n")
		default:
			sb.WriteString("     no published deadline\n")
		}
	}

	p.printBox("PROGRAM CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillMapping outputs the canonical name of each token, in input order.
func (p *Printer) PrintSkillMapping(tokens []string, mapping map[string]string) {
	if len(tokens) == 0 {
		return
	}

	var sb strings.Builder
	for _, token := range tokens {
		norm := mapping[token]
		if norm == "" {
			norm = "(empty)"
		}
		sb.WriteString(fmt.Sprintf("%-24s → %s\n", truncate(token, 24), norm))
	}

	p.printBox("NORMALIZED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillExtraction outputs extracted skills grouped by category.
func (p *Printer) PrintSkillExtraction(extraction types.SkillExtraction) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(extraction.NormalizedSkills)))

	categories := make([]string, 0, len(extraction.Categories))
	for category, found := range extraction.Categories {
		if len(found) > 0 {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	for _, category := range categories {
		sb.WriteString(fmt.Sprintf("\n%s:\n  %s\n", category, strings.Join(extraction.Categories[category], ", ")))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
