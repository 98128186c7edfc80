// Package extraction pulls a structured candidate profile out of free CV text
// using ordered regular expression families.
package extraction

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/university-match/internal/scoring"
	"github.com/jonathan/university-match/internal/skills"
	"github.com/jonathan/university-match/internal/types"
)

// Defaults applied to every extracted profile.
const (
	DefaultCountry  = "turkey"
	DefaultLanguage = "english"
)

// languageFamily is a group of patterns identifying one language test.
type languageFamily struct {
	testType string
	patterns []*regexp.Regexp
	max      float64
	integer  bool
}

// Families are tried in order and the first one producing a score wins.
var languageFamilies = []languageFamily{
	{testType: scoring.TestTOEFL, patterns: toeflPatterns, max: 120, integer: true},
	{testType: scoring.TestIELTS, patterns: ieltsPatterns, max: 9},
	{testType: scoring.TestYDS, patterns: ydsPatterns, max: 100, integer: true},
}

// Extract builds a fully populated profile from raw CV text. Fields that
// cannot be found keep their defaults: nil for optional scalars, zero for
// counts, empty slices for collections.
func Extract(raw string) types.ExtractedProfile {
	text := strings.ToLower(raw)
	found := skills.ExtractFromText(raw)

	profile := types.ExtractedProfile{
		CandidateProfile: types.CandidateProfile{
			GradingSystem: types.GradingSystem4_0,
			Background:    extractBackground(text),
			Country:       extractCountry(text),
			Skills:        found.NormalizedSkills,
		},
		RawSkills:       found.RawSkills,
		SkillCategories: found.Categories,
		Language:        DefaultLanguage,
	}

	if gpa, ok := firstFloat(gpaPatterns, text, 0, 4.0); ok {
		profile.GPA = &gpa
	}

	for _, family := range languageFamilies {
		score, ok := family.find(text)
		if !ok {
			continue
		}
		testType := family.testType
		profile.LanguageTestType = &testType
		profile.LanguageTestScore = &score
		break
	}

	if years, ok := firstFloat(researchPatterns, text, 0, -1); ok {
		profile.ResearchExperience = years
	}
	if years, ok := firstFloat(workPatterns, text, 0, -1); ok {
		profile.WorkExperience = years
	}
	if n, ok := firstInt(publicationPatterns, text); ok {
		profile.Publications = n
	}

	return profile
}

func (f languageFamily) find(text string) (float64, bool) {
	if f.integer {
		for _, re := range f.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 0 || float64(n) > f.max {
				continue
			}
			return float64(n), true
		}
		return 0, false
	}
	return firstFloat(f.patterns, text, 0, f.max)
}

// firstFloat returns the capture of the first pattern whose value parses and
// lies in [lo, hi]. A negative hi disables the upper bound.
func firstFloat(patterns []*regexp.Regexp, text string, lo, hi float64) (float64, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v < lo || (hi >= 0 && v > hi) {
			continue
		}
		return v, true
	}
	return 0, false
}

// firstInt returns the capture of the first matching pattern. Counts too large
// for an int are clamped rather than skipped, so the first match always wins.
func firstInt(patterns []*regexp.Regexp, text string) (int, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if errors.Is(err, strconv.ErrRange) {
			n, err = math.MaxInt, nil
		}
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// extractBackground collects every field with at least one whole-word keyword
// hit, in table order.
func extractBackground(text string) []string {
	fields := []string{}
	for _, bf := range backgroundKeywords {
		for _, kw := range bf.keywords {
			if skills.ContainsWord(text, kw) {
				fields = append(fields, bf.field)
				break
			}
		}
	}
	return fields
}

func extractCountry(text string) string {
	for _, c := range countryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(text, kw) {
				return c.country
			}
		}
	}
	return DefaultCountry
}
