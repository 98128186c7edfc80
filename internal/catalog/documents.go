package catalog

import (
	"strings"

	"github.com/jonathan/university-match/internal/types"
)

// Document template keys usable in a record's optional_documents.
const (
	DocCV              = "cv"
	DocTranscript      = "transcript"
	DocMotivation      = "motivation"
	DocRecommendation2 = "recommendation_2"
	DocRecommendation3 = "recommendation_3"
	DocLanguageCert    = "toefl"
	DocPassport        = "passport"
	DocGRE             = "gre"
	DocPortfolio       = "portfolio"
)

func documentTemplate(key string) (types.DocumentRequirement, bool) {
	switch key {
	case DocCV:
		return types.DocumentRequirement{
			Type: "cv", Name: "Curriculum Vitae", Formats: []string{"pdf"}, MaxSizeMB: 2,
			Required: true, Tips: "Academic CV format, 1-2 pages",
		}, true
	case DocTranscript:
		return types.DocumentRequirement{
			Type: "transcript", Name: "Official Transcript", Formats: []string{"pdf"}, MaxSizeMB: 5,
			Required: true, Tips: "Must be officially sealed",
		}, true
	case DocMotivation:
		return types.DocumentRequirement{
			Type: "motivation_letter", Name: "Statement of Purpose", Formats: []string{"pdf", "docx"}, MaxSizeMB: 1,
			Required: true, WordLimit: &types.WordLimit{Min: 500, Max: 1000},
			Tips: "Explain why this program and your goals",
		}, true
	case DocRecommendation2:
		return types.DocumentRequirement{
			Type: "recommendation", Name: "Letters of Recommendation", Formats: []string{"pdf"}, MaxSizeMB: 2,
			Required: true, Count: 2, Tips: "From professors or employers",
		}, true
	case DocRecommendation3:
		return types.DocumentRequirement{
			Type: "recommendation", Name: "Letters of Recommendation", Formats: []string{"pdf"}, MaxSizeMB: 2,
			Required: true, Count: 3, Tips: "At least 2 academic references",
		}, true
	case DocLanguageCert:
		return types.DocumentRequirement{
			Type: "language_cert", Name: "English Proficiency (TOEFL/IELTS)", Formats: []string{"pdf"}, MaxSizeMB: 2,
			Required: true, AcceptedTests: []string{"TOEFL iBT", "IELTS Academic"},
			Tips: "Must be valid (within 2 years)",
		}, true
	case DocPassport:
		return types.DocumentRequirement{
			Type: "passport", Name: "Passport Copy", Formats: []string{"pdf", "jpg"}, MaxSizeMB: 3,
			Required: true, Tips: "Bio page, valid for program duration",
		}, true
	case DocGRE:
		return types.DocumentRequirement{
			Type: "gre", Name: "GRE Score", Formats: []string{"pdf"}, MaxSizeMB: 2,
			Tips: "Recommended but not always required",
		}, true
	case DocPortfolio:
		return types.DocumentRequirement{
			Type: "portfolio", Name: "Portfolio/Projects", Formats: []string{"pdf", "url"}, MaxSizeMB: 10,
			Tips: "GitHub or personal website",
		}, true
	}
	return types.DocumentRequirement{}, false
}

// StandardDocuments returns the required documents for a program. A count
// other than 2 or 3 recommendation letters falls back to 2. The GRE score
// becomes required for programs in the USA or when greRequired is set.
func StandardDocuments(country string, recommendationCount int, greRequired bool) []types.DocumentRequirement {
	recommendation := DocRecommendation2
	if recommendationCount == 3 {
		recommendation = DocRecommendation3
	}

	docs := Documents([]string{DocCV, DocTranscript, DocMotivation, recommendation, DocLanguageCert, DocPassport})
	if strings.EqualFold(country, "usa") || greRequired {
		gre, _ := documentTemplate(DocGRE)
		gre.Required = true
		docs = append(docs, gre)
	}
	return docs
}

// Documents resolves template keys into document requirements. Unknown keys
// are skipped.
func Documents(keys []string) []types.DocumentRequirement {
	docs := make([]types.DocumentRequirement, 0, len(keys))
	for _, key := range keys {
		if doc, ok := documentTemplate(key); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}
