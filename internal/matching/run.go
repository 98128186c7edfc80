package matching

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/types"
	"golang.org/x/sync/errgroup"
)

// Score band lower bounds.
const (
	HighMatchThreshold   = 70.0
	MediumMatchThreshold = 50.0
	LowMatchThreshold    = 30.0
)

// Options controls a catalog match run.
type Options struct {
	// IncludeExpired scores programs whose deadlines have all passed.
	IncludeExpired bool
	// AsOf is the reference date for deadlines. Zero means now.
	AsOf time.Time
}

// Run is the outcome of matching a profile against a catalog.
type Run struct {
	// Ranked holds every scored program, best first.
	Ranked            []types.MatchResult
	Buckets           types.MatchBuckets
	ExpiredHidden     int
	ShowingActiveOnly bool
}

// MatchCatalog scores profile against every eligible program in parallel.
// Results are ordered by score descending, ties broken by program ID.
func MatchCatalog(ctx context.Context, profile *types.CandidateProfile, programs []types.ProgramRequirement, opts Options) (*Run, error) {
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	run := &Run{ShowingActiveOnly: !opts.IncludeExpired}

	type candidate struct {
		program *types.ProgramRequirement
		status  types.DeadlineStatus
	}
	eligible := make([]candidate, 0, len(programs))
	for i := range programs {
		status := catalog.Status(&programs[i], asOf)
		if !status.HasActive && !opts.IncludeExpired {
			run.ExpiredHidden++
			continue
		}
		eligible = append(eligible, candidate{program: &programs[i], status: status})
	}

	results := make([]types.MatchResult, len(eligible))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range eligible {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			score, err := CalculateMatchScore(profile, c.program)
			if err != nil {
				return fmt.Errorf("scoring program %d: %w", c.program.ID, err)
			}
			// Each goroutine owns results[i].
			results[i] = types.MatchResult{
				ProgramRequirement: *c.program,
				MatchScore:         score,
				DeadlineStatus:     c.status,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].ID < results[j].ID
	})

	run.Ranked = results
	run.Buckets = Bucket(results)
	return run, nil
}

// Bucket splits ranked results into score bands, preserving order. Every band
// is non-nil.
func Bucket(results []types.MatchResult) types.MatchBuckets {
	buckets := types.MatchBuckets{
		HighMatch:    []types.MatchResult{},
		MediumMatch:  []types.MatchResult{},
		LowMatch:     []types.MatchResult{},
		ExtraOptions: []types.MatchResult{},
	}
	for _, r := range results {
		switch {
		case r.MatchScore >= HighMatchThreshold:
			buckets.HighMatch = append(buckets.HighMatch, r)
		case r.MatchScore >= MediumMatchThreshold:
			buckets.MediumMatch = append(buckets.MediumMatch, r)
		case r.MatchScore >= LowMatchThreshold:
			buckets.LowMatch = append(buckets.LowMatch, r)
		default:
			buckets.ExtraOptions = append(buckets.ExtraOptions, r)
		}
	}
	return buckets
}
