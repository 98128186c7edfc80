package server

import (
	"net/http"

	"github.com/jonathan/university-match/internal/skills"
	"github.com/jonathan/university-match/internal/types"
)

// handleNormalizeSkills maps skill tokens to canonical names.
func (s *Server) handleNormalizeSkills(w http.ResponseWriter, r *http.Request) {
	var req types.NormalizeSkillsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFrom(w, r, validationError(err))
		return
	}

	normalized, mapping := skills.NormalizeAll(req.Skills)
	s.jsonResponse(w, http.StatusOK, types.NormalizeSkillsResponse{
		Success:    true,
		Original:   req.Skills,
		Normalized: normalized,
		Mapping:    mapping,
	})
}

// handleExtractSkills finds known skills in free text.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractSkillsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFrom(w, r, validationError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"skills":  skills.ExtractFromText(req.Text),
	})
}

// handleSynonyms returns the synonym table.
func (s *Server) handleSynonyms(w http.ResponseWriter, _ *http.Request) {
	table := skills.Synonyms()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":        true,
		"synonyms":       skills.SynonymMap(),
		"table":          table,
		"total_skills":   len(table),
		"total_synonyms": skills.TotalAliases(),
	})
}
