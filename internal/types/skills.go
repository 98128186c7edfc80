package types

// Skill categories used to group extracted skills.
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryFrameworks           = "frameworks"
	CategoryDatabases            = "databases"
	CategoryCloudDevOps          = "cloud_devops"
	CategoryAIML                 = "ai_ml"
	CategorySoftSkills           = "soft_skills"
	CategoryOther                = "other"
)

// SynonymEntry maps a canonical skill name to its known textual variants.
type SynonymEntry struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

// SkillExtraction is the result of scanning free text for known skills.
type SkillExtraction struct {
	RawSkills        []string            `json:"raw_skills"`
	NormalizedSkills []string            `json:"normalized_skills"`
	Categories       map[string][]string `json:"skill_categories"`
}
