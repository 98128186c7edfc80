package skills

import "github.com/jonathan/university-match/internal/types"

// categoryMembers lists the canonical skills of each category. A skill is
// assigned to the first category in categoryOrder that contains it.
var categoryMembers = map[string][]string{
	types.CategoryProgrammingLanguages: {
		"javascript", "typescript", "python", "java", "c++", "c#", "c", "go",
		"rust", "ruby", "php", "scala", "r", "kotlin", "swift",
	},
	types.CategoryFrameworks: {
		"react", "vue.js", "angular", "next.js", "node.js", "express.js", "django",
		"flask", "fastapi", "spring", ".net", "react native", "flutter",
	},
	types.CategoryDatabases: {
		"sql", "mysql", "postgresql", "mongodb", "redis", "firebase", "supabase",
	},
	types.CategoryCloudDevOps: {
		"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "git",
	},
	types.CategoryAIML: {
		"machine learning", "deep learning", "artificial intelligence", "nlp",
		"computer vision", "llm", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
	},
	types.CategorySoftSkills: {
		"problem solving", "teamwork", "communication", "leadership", "agile",
	},
}

var categoryOrder = []string{
	types.CategoryProgrammingLanguages,
	types.CategoryFrameworks,
	types.CategoryDatabases,
	types.CategoryCloudDevOps,
	types.CategoryAIML,
	types.CategorySoftSkills,
}

var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]string {
	index := make(map[string]string)
	for _, category := range categoryOrder {
		for _, skill := range categoryMembers[category] {
			if _, exists := index[skill]; !exists {
				index[skill] = category
			}
		}
	}
	return index
}

// CategoryOf returns the category of a canonical skill, or "other".
func CategoryOf(skill string) string {
	if category, ok := categoryIndex[skill]; ok {
		return category
	}
	return types.CategoryOther
}

// Categories returns all category names, "other" last.
func Categories() []string {
	return append(append([]string(nil), categoryOrder...), types.CategoryOther)
}

func emptyCategories() map[string][]string {
	out := make(map[string][]string, len(categoryOrder)+1)
	for _, category := range Categories() {
		out[category] = []string{}
	}
	return out
}
