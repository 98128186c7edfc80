package types

// Deadline urgency levels derived from the days remaining until the next deadline.
const (
	UrgencyCritical = "critical"
	UrgencyWarning  = "warning"
	UrgencyNormal   = "normal"
)

// ApplicationFee is the fee charged by a program at application time.
type ApplicationFee struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// DocumentRequirement describes a single document an application must (or may) include.
type DocumentRequirement struct {
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	Formats       []string   `json:"formats"`
	MaxSizeMB     int        `json:"max_size_mb"`
	Required      bool       `json:"required"`
	Count         int        `json:"count,omitempty"`
	WordLimit     *WordLimit `json:"word_limit,omitempty"`
	AcceptedTests []string   `json:"accepted_tests,omitempty"`
	Tips          string     `json:"tips,omitempty"`
}

// WordLimit bounds the length of a written document.
type WordLimit struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ProgramRequirement is a catalog entry: a university program with its
// eligibility thresholds and application deadlines. Entries are immutable once loaded.
type ProgramRequirement struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	Program            string            `json:"program"`
	Country            string            `json:"country"`
	MinGPA             float64           `json:"min_gpa"`
	MinLanguageScore   float64           `json:"min_language_score"`
	RequiredBackground []string          `json:"required_background"`
	Deadlines          map[string]string `json:"deadlines"`

	ApplicationFee      ApplicationFee        `json:"application_fee"`
	ApplicationURL      string                `json:"application_url,omitempty"`
	RecommendationCount int                   `json:"recommendation_count,omitempty"`
	GRERequired         bool                  `json:"gre_required,omitempty"`
	RequiredDocuments   []DocumentRequirement `json:"required_documents,omitempty"`
	OptionalDocuments   []DocumentRequirement `json:"optional_documents,omitempty"`
}

// DeadlineStatus reports whether a program still accepts applications.
type DeadlineStatus struct {
	HasActive     bool    `json:"has_active"`
	NextDeadline  *string `json:"next_deadline"`
	DaysRemaining *int    `json:"days_remaining"`
	Urgency       string  `json:"urgency"`
}

// ProgramStatus pairs a catalog entry with its current deadline status.
type ProgramStatus struct {
	ProgramRequirement
	DeadlineStatus DeadlineStatus `json:"deadline_status"`
}

// MatchResult is a scored program. It is derived per request and never persisted.
type MatchResult struct {
	ProgramRequirement
	MatchScore     float64        `json:"match_score"`
	DeadlineStatus DeadlineStatus `json:"deadline_status"`
}

// MatchBuckets groups match results by score band.
type MatchBuckets struct {
	HighMatch    []MatchResult `json:"high_match"`
	MediumMatch  []MatchResult `json:"medium_match"`
	LowMatch     []MatchResult `json:"low_match"`
	ExtraOptions []MatchResult `json:"extra_options"`
}
