package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/university-match/internal/db"
	"github.com/jonathan/university-match/internal/matching"
	"github.com/jonathan/university-match/internal/types"
	"go.uber.org/zap"
)

// FilteredInfo reports what a match run left out.
type FilteredInfo struct {
	ExpiredHidden     int    `json:"expired_universities_hidden"`
	ShowingActiveOnly bool   `json:"showing_active_deadlines_only"`
	Tip               string `json:"tip,omitempty"`
}

// MatchResponse is the body returned by POST /api/match.
type MatchResponse struct {
	Success      bool                   `json:"success"`
	RunID        string                 `json:"run_id,omitempty"`
	Results      types.MatchBuckets     `json:"results"`
	UserData     types.CandidateProfile `json:"user_data"`
	FilteredInfo FilteredInfo           `json:"filtered_info"`
}

// handleMatch scores a candidate profile against the catalog.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFrom(w, r, validationError(err))
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

	includeExpired := req.IncludeExpired || s.cfg.IncludeExpiredDefault
	run, err := matching.MatchCatalog(r.Context(), &req.CandidateProfile, programs, matching.Options{
		IncludeExpired: includeExpired,
		AsOf:           asOf,
	})
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}

	resp := MatchResponse{
		Success:  true,
		Results:  run.Buckets,
		UserData: req.CandidateProfile,
		FilteredInfo: FilteredInfo{
			ExpiredHidden:     run.ExpiredHidden,
			ShowingActiveOnly: run.ShowingActiveOnly,
		},
	}
	if run.ShowingActiveOnly {
		resp.FilteredInfo.Tip = "Add 'include_expired': true to see all universities"
	}

	if s.runs != nil {
		id, err := s.runs.SaveMatchRun(r.Context(), &db.MatchRun{
			Profile:        req.CandidateProfile,
			Results:        run.Ranked,
			IncludeExpired: includeExpired,
			ExpiredHidden:  run.ExpiredHidden,
		})
		if err != nil {
			// The scores are still valid; only history is lost.
			s.requestLogger(r).Warn("failed to store match run", zap.Error(err))
		} else {
			resp.RunID = id.String()
		}
	}

	s.requestLogger(r).Debug("match completed",
		zap.Int("scored", len(run.Ranked)),
		zap.Int("expired_hidden", run.ExpiredHidden),
	)
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetMatchRun retrieves a stored match run.
func (s *Server) handleGetMatchRun(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		s.errorResponse(w, http.StatusNotImplemented, "Match history requires a database")
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match run ID")
		return
	}

	run, err := s.runs.GetMatchRun(r.Context(), id)
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if run == nil {
		s.errorFrom(w, r, &ErrNotFound{Resource: "match run", ID: idStr})
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}
