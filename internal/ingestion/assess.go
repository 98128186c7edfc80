package ingestion

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinCVLength is the shortest text, in characters, accepted as a CV.
	MinCVLength = 50
	// MinCVKeywords is how many distinct CV keywords the text must contain.
	MinCVKeywords = 3

	previewLength = 500
)

// cvKeywords are section words found in nearly every CV.
var cvKeywords = []string{"education", "experience", "skill", "university", "gpa", "grade", "work", "employment"}

// Assessment describes how CV-like a text is.
type Assessment struct {
	Keywords   []string `json:"keywords"`
	Confidence float64  `json:"confidence"`
	Preview    string   `json:"preview"`
}

// AssessCV checks that text is long enough and contains enough CV keywords.
// Confidence is the share of keywords found.
func AssessCV(text string) (*Assessment, error) {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < MinCVLength {
		return nil, ErrTooShort
	}

	lower := strings.ToLower(trimmed)
	found := make([]string, 0, len(cvKeywords))
	for _, kw := range cvKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	if len(found) < MinCVKeywords {
		return nil, ErrNotACV
	}

	return &Assessment{
		Keywords:   found,
		Confidence: float64(len(found)) / float64(len(cvKeywords)),
		Preview:    Preview(text, previewLength),
	}, nil
}

// Preview returns at most n runes of text.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}
