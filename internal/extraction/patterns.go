package extraction

import "regexp"

// Patterns are matched against lower-cased text and ordered most specific first.
// Each captures the value in group 1.

var gpaPatterns = compile(
	`gpa[:\s]*([0-9]+\.[0-9]+)`,
	`grade point average[:\s]*([0-9]+\.[0-9]+)`,
	`not ortalaması[:\s]*([0-9]+\.[0-9]+)`,
	`not[:\s]*([0-9]+\.[0-9]+)`,
	`([0-9]\.[0-9]+)\s*/\s*4\.0`,
	`([0-9]\.[0-9]+)\s*out of\s*4\.0`,
	`([0-9]\.[0-9]+)\s*\(4\.0`,
	`cgpa[:\s]*([0-9]+\.[0-9]+)`,
	`cumulative gpa[:\s]*([0-9]+\.[0-9]+)`,
)

var toeflPatterns = compile(
	`toefl[:\s]*(\d{2,3})`,
	`toefl ibt[:\s]*(\d{2,3})`,
	`toefl.*?(\d{2,3})`,
	`(\d{2,3})\s*toefl`,
)

var ieltsPatterns = compile(
	`ielts[:\s]*(\d\.\d)`,
	`ielts academic[:\s]*(\d\.\d)`,
	`ielts.*?(\d\.\d)`,
	`(\d\.\d)\s*ielts`,
)

var ydsPatterns = compile(
	`yds[:\s]*(\d{2,3})`,
	`eyds[:\s]*(\d{2,3})`,
	`yökdil[:\s]*(\d{2,3})`,
	`e-yökdil[:\s]*(\d{2,3})`,
)

var researchPatterns = compile(
	`research[:\s]*(\d+\.?\d*)\s*(?:year|yıl|yr)`,
	`araştırma[:\s]*(\d+\.?\d*)\s*(?:year|yıl|yr)`,
	`(\d+\.?\d*)\s*(?:year|yıl|yr).*research`,
	`research assistant[:\s]*(\d+\.?\d*)`,
	`ra[:\s]*(\d+\.?\d*)`,
)

var workPatterns = compile(
	`work experience[:\s]*(\d+\.?\d*)\s*(?:year|yıl|yr)`,
	`experience[:\s]*(\d+\.?\d*)\s*(?:year|yıl|yr)`,
	`(\d+\.?\d*)\s*(?:year|yıl|yr).*experience`,
	`(\d+)\s*(?:year|yıl|yr).*work`,
	`professional experience[:\s]*(\d+\.?\d*)`,
	`employment[:\s]*(\d+\.?\d*)`,
)

var publicationPatterns = compile(
	`(\d+)\s*(?:publication|yayın|paper|makale)`,
	`publication[:\s]+(\d+)`,
	`(\d+)\s*published`,
)

// backgroundField maps a field of study to the keywords that indicate it.
type backgroundField struct {
	field    string
	keywords []string
}

var backgroundKeywords = []backgroundField{
	{"computer science", []string{"computer science", "cs", "bilgisayar", "bilgisayar bilimi", "computer engineering"}},
	{"engineering", []string{"engineering", "mühendislik", "engineer"}},
	{"robotics", []string{"robotics", "robotik", "robot"}},
	{"data science", []string{"data science", "veri bilimi", "data scientist", "machine learning", "ml"}},
	{"mechanical engineering", []string{"mechanical engineering", "makine mühendisliği", "mechanical"}},
	{"electrical engineering", []string{"electrical engineering", "elektrik mühendisliği", "electrical", "ee"}},
	{"mathematics", []string{"mathematics", "matematik", "math", "applied math"}},
	{"physics", []string{"physics", "fizik"}},
	{"software engineering", []string{"software engineering", "yazılım mühendisliği", "software"}},
	{"artificial intelligence", []string{"artificial intelligence", "ai", "yapay zeka"}},
	{"control systems", []string{"control systems", "kontrol sistemleri", "control engineering"}},
	{"statistics", []string{"statistics", "istatistik"}},
}

// countryKeywords are checked in order as plain substrings; the first hit wins.
var countryKeywords = []struct {
	country  string
	keywords []string
}{
	{"turkey", []string{"türkiye", "turkey"}},
	{"usa", []string{"usa", "united states"}},
	{"germany", []string{"germany", "almanya"}},
	{"france", []string{"france", "fransa"}},
	{"uk", []string{"uk", "united kingdom"}},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		out[i] = regexp.MustCompile(expr)
	}
	return out
}
