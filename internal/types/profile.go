// Package types provides type definitions for structured data used throughout the university-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Grading systems understood by the GPA converter. Any other label is treated
// as a percentage scale.
const (
	GradingSystem4_0    = "4.0"
	GradingSystemUK     = "uk"
	GradingSystemGerman = "german"
	GradingSystemFrench = "french"
)

// University ranking tiers used for undergraduate and master's institutions.
const (
	RankingTop100  = "top100"
	RankingTop500  = "top500"
	RankingTop1000 = "top1000"
)

// Project experience levels.
const (
	ProjectNone          = "none"
	ProjectNational      = "national"
	ProjectEU            = "eu"
	ProjectInternational = "international"
	ProjectMultiple      = "multiple"
)

// Competition achievement levels.
const (
	CompetitionNone     = "none"
	CompetitionBronze   = "bronze"
	CompetitionSilver   = "silver"
	CompetitionGold     = "gold"
	CompetitionMultiple = "multiple"
)

// CandidateProfile is the normalized representation of an applicant.
// Optional scalars are pointers; a nil pointer means the value is unknown.
type CandidateProfile struct {
	GPA               *float64 `json:"gpa"`
	GradingSystem     string   `json:"grading_system,omitempty"`
	LanguageTestType  *string  `json:"language_test_type"`
	LanguageTestScore *float64 `json:"language_test_score"`
	Background        []string `json:"background"`

	ResearchExperience    float64 `json:"research_experience" validate:"gte=0"`
	WorkExperience        float64 `json:"work_experience" validate:"gte=0"`
	Publications          int     `json:"publications" validate:"gte=0"`
	RecommendationLetters int     `json:"recommendation_letters" validate:"gte=0"`

	GREScore  *int `json:"gre_score,omitempty" validate:"omitempty,gte=0"`
	GMATScore *int `json:"gmat_score,omitempty" validate:"omitempty,gte=0"`

	UndergraduateRanking    string `json:"undergraduate_university_ranking,omitempty"`
	MastersRanking          string `json:"masters_university_ranking,omitempty"`
	HasMastersDegree        bool   `json:"has_masters_degree,omitempty"`
	ProjectExperience       string `json:"project_experience,omitempty"`
	CompetitionAchievements string `json:"competition_achievements,omitempty"`

	Country string   `json:"country,omitempty"`
	Skills  []string `json:"skills"`
}

// GPAValue returns the raw GPA or 0 when absent.
func (p *CandidateProfile) GPAValue() float64 {
	if p == nil || p.GPA == nil {
		return 0
	}
	return *p.GPA
}

// LanguageTest returns the test type and score, and whether both are present
// and non-zero.
func (p *CandidateProfile) LanguageTest() (string, float64, bool) {
	if p == nil || p.LanguageTestType == nil || p.LanguageTestScore == nil {
		return "", 0, false
	}
	if *p.LanguageTestType == "" || *p.LanguageTestScore == 0 {
		return "", 0, false
	}
	return *p.LanguageTestType, *p.LanguageTestScore, true
}

// ExtractedProfile is the output of CV extraction: a fully populated profile
// plus the skill breakdown and document-level defaults.
type ExtractedProfile struct {
	CandidateProfile
	RawSkills       []string            `json:"raw_skills"`
	SkillCategories map[string][]string `json:"skill_categories"`
	Language        string              `json:"language"`
}
