package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/university-match/internal/types"
)

// Filter selects which programs List returns.
type Filter struct {
	// Country keeps only programs in this country (case-insensitive). Empty keeps all.
	Country string
	// IncludeExpired keeps programs whose deadlines have all passed.
	IncludeExpired bool
	// AsOf is the reference date. Zero means now.
	AsOf time.Time
}

// Listing is the result of List.
type Listing struct {
	Programs          []types.ProgramStatus `json:"universities"`
	Total             int                   `json:"total"`
	ExpiredHidden     int                   `json:"expired_hidden"`
	ShowingActiveOnly bool                  `json:"showing_active_only"`
}

// List annotates programs with their deadline status and applies f. Programs
// are returned in catalog order.
func List(programs []types.ProgramRequirement, f Filter) Listing {
	asOf := f.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	listing := Listing{
		Programs:          make([]types.ProgramStatus, 0, len(programs)),
		ShowingActiveOnly: !f.IncludeExpired,
	}
	for i := range programs {
		p := &programs[i]
		if f.Country != "" && !strings.EqualFold(p.Country, strings.TrimSpace(f.Country)) {
			continue
		}

		status := Status(p, asOf)
		if !status.HasActive && !f.IncludeExpired {
			listing.ExpiredHidden++
			continue
		}
		listing.Programs = append(listing.Programs, types.ProgramStatus{
			ProgramRequirement: *p,
			DeadlineStatus:     status,
		})
	}
	listing.Total = len(listing.Programs)
	return listing
}

// Source supplies catalog programs.
type Source interface {
	Programs(ctx context.Context) ([]types.ProgramRequirement, error)
}

// Finder is implemented by sources that can look up one program without
// loading the whole catalog.
type Finder interface {
	Program(ctx context.Context, id int) (*types.ProgramRequirement, error)
}

// Find returns the program with the given ID from src, or nil when there is
// none. Sources implementing Finder are asked directly; others are scanned.
func Find(ctx context.Context, src Source, id int) (*types.ProgramRequirement, error) {
	if finder, ok := src.(Finder); ok {
		return finder.Program(ctx, id)
	}

	programs, err := src.Programs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range programs {
		if programs[i].ID == id {
			p := programs[i]
			return &p, nil
		}
	}
	return nil, nil
}

// StaticSource serves a fixed, in-memory catalog.
type StaticSource struct {
	programs []types.ProgramRequirement
}

// NewStaticSource returns a source serving programs.
func NewStaticSource(programs []types.ProgramRequirement) *StaticSource {
	return &StaticSource{programs: programs}
}

// Programs returns the catalog. The returned slice must not be modified.
func (s *StaticSource) Programs(_ context.Context) ([]types.ProgramRequirement, error) {
	return s.programs, nil
}
