package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchRequest is the body of a match call: a candidate profile plus
// listing options.
type MatchRequest struct {
	CandidateProfile
	IncludeExpired bool `json:"include_expired,omitempty"`
}

// NormalizeSkillsRequest asks for a list of skill tokens to be normalized.
type NormalizeSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
}

// NormalizeSkillsResponse reports the canonical form of each requested token.
type NormalizeSkillsResponse struct {
	Success    bool              `json:"success"`
	Original   []string          `json:"original"`
	Normalized []string          `json:"normalized"`
	Mapping    map[string]string `json:"mapping"`
}

// ExtractSkillsRequest asks for skills to be extracted from free text.
type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the NormalizeSkillsRequest using the validator.
func (r *NormalizeSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExtractSkillsRequest using the validator.
func (r *ExtractSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
