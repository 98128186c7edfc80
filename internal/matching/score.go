// Package matching scores candidate profiles against catalog programs.
package matching

import (
	"errors"
	"math"

	"github.com/jonathan/university-match/internal/scoring"
	"github.com/jonathan/university-match/internal/types"
)

const (
	// IneligibleScore is returned for profiles below the minimum GPA requirement.
	IneligibleScore = 20.0

	// MaxScore is the ceiling of a match score: 100 base points plus the bonus overlay.
	MaxScore = 110.0

	// gpaWaiverYears of work experience waive the minimum GPA requirement.
	gpaWaiverYears = 10.0

	gpaWeight        = 30.0
	gpaPartialWeight = 15.0
	backgroundWeight = 15.0
	bonusMultiplier  = 10.0
)

// ErrNilProgram is returned when a match score is requested without a program.
var ErrNilProgram = errors.New("matching: program is nil")

// CalculateMatchScore scores profile against program on a 0-110 scale,
// rounded to two decimals. A nil profile scores like an empty one.
func CalculateMatchScore(profile *types.CandidateProfile, program *types.ProgramRequirement) (float64, error) {
	if program == nil {
		return 0, ErrNilProgram
	}
	if profile == nil {
		profile = &types.CandidateProfile{}
	}

	gpa := scoring.ConvertGPA(profile.GPAValue(), profile.GradingSystem)
	if profile.WorkExperience < gpaWaiverYears && gpa < scoring.MinimumGPARequirement(profile) {
		return IneligibleScore, nil
	}

	score := gpaPoints(gpa, program.MinGPA) +
		rankingPoints(profile.UndergraduateRanking) +
		languagePoints(profile) +
		backgroundPoints(profile.Background, program.RequiredBackground) +
		researchPoints(profile.ResearchExperience) +
		workPoints(profile.WorkExperience) +
		publicationPoints(profile.Publications) +
		recommendationPoints(profile.RecommendationLetters) +
		testPoints(profile.GREScore, 320, 310, 300) +
		testPoints(profile.GMATScore, 700, 650, 600) +
		scoring.BonusPoints(profile)*bonusMultiplier

	return round2(math.Max(0, math.Min(score, MaxScore))), nil
}

func gpaPoints(gpa, minGPA float64) float64 {
	if gpa >= minGPA {
		return math.Min(gpaWeight, (gpa/4.0)*gpaWeight)
	}
	return (gpa / minGPA) * gpaPartialWeight
}

// rankingPoints is added on top of the GPA points and may push them past 30.
func rankingPoints(ranking string) float64 {
	switch ranking {
	case types.RankingTop100:
		return 2.0
	case types.RankingTop500:
		return 1.5
	case types.RankingTop1000:
		return 1.0
	}
	return 0
}

func languagePoints(p *types.CandidateProfile) float64 {
	testType, score, ok := p.LanguageTest()
	if !ok {
		return 0
	}

	switch normalized := scoring.NormalizeLanguageScore(testType, score); {
	case normalized >= 90:
		return 20
	case normalized >= 80:
		return 18
	case normalized >= 70:
		return 15
	case normalized >= 60:
		return 10
	default:
		return 5
	}
}

// backgroundPoints awards the share of required fields the candidate covers.
// Programs without required fields award full points.
func backgroundPoints(background, required []string) float64 {
	if len(required) == 0 {
		return backgroundWeight
	}

	have := make(map[string]bool, len(background))
	for _, field := range background {
		have[field] = true
	}
	common := make(map[string]bool)
	for _, field := range required {
		if have[field] {
			common[field] = true
		}
	}
	return math.Min(backgroundWeight, float64(len(common))/float64(len(required))*backgroundWeight)
}

func researchPoints(years float64) float64 {
	switch {
	case years >= 2:
		return 10
	case years >= 1:
		return 7
	case years >= 0.5:
		return 4
	}
	return 0
}

func workPoints(years float64) float64 {
	switch {
	case years >= 10:
		return 8
	case years >= 5:
		return 6
	case years >= 2:
		return 4
	case years >= 1:
		return 2
	}
	return 0
}

func publicationPoints(n int) float64 {
	switch {
	case n >= 5:
		return 5
	case n >= 3:
		return 3
	case n >= 1:
		return 2
	}
	return 0
}

func recommendationPoints(n int) float64 {
	switch {
	case n >= 3:
		return 5
	case n >= 2:
		return 3
	case n >= 1:
		return 2
	}
	return 0
}

// testPoints awards 3, 2 or 1 points for a standardized test score at or above
// the given thresholds.
func testPoints(score *int, high, mid, low int) float64 {
	if score == nil {
		return 0
	}
	switch s := *score; {
	case s >= high:
		return 3
	case s >= mid:
		return 2
	case s >= low:
		return 1
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
