package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/types"
)

// handleListUniversities lists catalog programs with their deadline status.
// Programs whose deadlines have all passed are hidden unless include_expired is set.
func (s *Server) handleListUniversities(w http.ResponseWriter, r *http.Request) {
	includeExpired, err := parseQueryBool(r, "include_expired", s.cfg.IncludeExpiredDefault)
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}
	asOf, err := s.parseAsOf(r)
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}

	programs, err := s.catalog.Programs(r.Context())
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}

	listing := catalog.List(programs, catalog.Filter{
		Country:        r.URL.Query().Get("country"),
		IncludeExpired: includeExpired,
		AsOf:           asOf,
	})
	s.jsonResponse(w, http.StatusOK, listing)
}

// handleGetUniversity retrieves a single program by ID.
func (s *Server) handleGetUniversity(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid university ID")
		return
	}
	asOf, err := s.parseAsOf(r)
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}

	program, err := catalog.Find(r.Context(), s.catalog, id)
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if program == nil {
		s.errorFrom(w, r, &ErrNotFound{Resource: "university", ID: idStr})
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ProgramStatus{
		ProgramRequirement: *program,
		DeadlineStatus:     catalog.Status(program, asOf),
	})
}
