package skills

import (
	"strings"

	"github.com/jonathan/university-match/internal/types"
)

// Normalize maps a skill token to its canonical name.
// Groups are walked top to bottom and the first alias that equals the token,
// or occurs in it as a whole word, decides the result. Tokens such as
// "node.js" therefore resolve through the "js" alias of the first group.
// Unknown tokens come back lowercased and trimmed. Empty input returns "".
func Normalize(token string) string {
	lower := strings.ToLower(strings.TrimSpace(token))
	if lower == "" {
		return ""
	}

	for _, entry := range synonymTable {
		for _, alias := range entry.Aliases {
			if lower == alias || ContainsWord(lower, alias) {
				return entry.Canonical
			}
		}
	}

	return lower
}

// ExtractFromText scans text for every known alias and returns the skills found.
// Each canonical group contributes at most one raw alias: the first one that matches.
// Results follow synonym table order.
func ExtractFromText(text string) types.SkillExtraction {
	result := types.SkillExtraction{
		RawSkills:        []string{},
		NormalizedSkills: []string{},
		Categories:       emptyCategories(),
	}
	if strings.TrimSpace(text) == "" {
		return result
	}

	lower := strings.ToLower(text)
	for _, entry := range synonymTable {
		for _, alias := range entry.Aliases {
			if ContainsWord(lower, strings.ToLower(alias)) {
				result.RawSkills = append(result.RawSkills, alias)
				result.NormalizedSkills = append(result.NormalizedSkills, entry.Canonical)
				break
			}
		}
	}

	for _, skill := range result.NormalizedSkills {
		category := CategoryOf(skill)
		result.Categories[category] = append(result.Categories[category], skill)
	}

	return result
}

// MatchScore returns the share of required skills the user has, after
// normalizing both sides: |user ∩ required| / |required|.
// An empty requirement is vacuously satisfied.
func MatchScore(userSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 1.0
	}
	if len(userSkills) == 0 {
		return 0.0
	}

	user := normalizeSet(userSkills)
	required := normalizeSet(requiredSkills)
	if len(required) == 0 {
		return 1.0
	}

	matches := 0
	for skill := range required {
		if user[skill] {
			matches++
		}
	}
	return float64(matches) / float64(len(required))
}

// NormalizeAll normalizes each token and returns the unique canonical names in
// first-seen order, along with the per-token mapping.
func NormalizeAll(tokens []string) ([]string, map[string]string) {
	unique := make([]string, 0, len(tokens))
	mapping := make(map[string]string, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		norm := Normalize(token)
		mapping[token] = norm
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		unique = append(unique, norm)
	}
	return unique, mapping
}

func normalizeSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		if norm := Normalize(token); norm != "" {
			set[norm] = true
		}
	}
	return set
}
