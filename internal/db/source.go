package db

import (
	"context"

	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/types"
)

type programStore interface {
	ListPrograms(ctx context.Context) ([]catalog.Record, error)
	GetProgram(ctx context.Context, id int) (*catalog.Record, error)
}

// ProgramSource serves the catalog stored in Postgres.
type ProgramSource struct {
	store programStore
}

// NewProgramSource returns a catalog source reading from db.
func NewProgramSource(db *DB) *ProgramSource {
	return &ProgramSource{store: db}
}

// Programs reads the stored catalog on every call.
func (s *ProgramSource) Programs(ctx context.Context) ([]types.ProgramRequirement, error) {
	records, err := s.store.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Programs(records), nil
}

// Program reads a single stored program. Returns nil when it does not exist.
func (s *ProgramSource) Program(ctx context.Context, id int) (*types.ProgramRequirement, error) {
	r, err := s.store.GetProgram(ctx, id)
	if err != nil || r == nil {
		return nil, err
	}
	p := r.Requirement()
	return &p, nil
}

var (
	_ catalog.Source = (*ProgramSource)(nil)
	_ catalog.Finder = (*ProgramSource)(nil)
)
