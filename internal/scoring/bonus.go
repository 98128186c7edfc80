package scoring

import "github.com/jonathan/university-match/internal/types"

const (
	// maxBonusPoints caps the accumulated bonus.
	maxBonusPoints = 1.0

	// baseMinimumGPA is the eligibility floor on the 4.0 scale before bonuses.
	baseMinimumGPA = 2.50

	defaultCountry = "turkey"
)

// minimumGPAByCountry overrides baseMinimumGPA for specific countries. No
// country currently differs from the base floor.
var minimumGPAByCountry = map[string]float64{}

// BonusPoints accumulates the qualitative bonuses of a profile. Every category
// is evaluated independently and the sum is capped at 1.0.
func BonusPoints(p *types.CandidateProfile) float64 {
	if p == nil {
		return 0
	}

	bonus := 0.0

	switch work := p.WorkExperience; {
	case work >= 10:
		bonus += 0.6
	case work >= 5:
		bonus += 0.4
	case work >= 2:
		bonus += 0.2
	}

	if p.HasMastersDegree {
		if isRanked(p.MastersRanking) {
			bonus += 0.2
		} else {
			bonus += 0.1
		}
	}

	switch p.ProjectExperience {
	case types.ProjectNational:
		bonus += 0.1
	case types.ProjectEU, types.ProjectInternational:
		bonus += 0.15
	case types.ProjectMultiple:
		bonus += 0.2
	}

	if p.Publications >= 1 {
		bonus += 0.1
	}

	if p.GREScore != nil {
		switch gre := *p.GREScore; {
		case gre >= 320:
			bonus += 0.1
		case gre >= 310:
			bonus += 0.05
		}
	}
	if p.GMATScore != nil {
		switch gmat := *p.GMATScore; {
		case gmat >= 700:
			bonus += 0.1
		case gmat >= 650:
			bonus += 0.05
		}
	}

	switch p.CompetitionAchievements {
	case types.CompetitionBronze:
		bonus += 0.05
	case types.CompetitionSilver:
		bonus += 0.08
	case types.CompetitionGold:
		bonus += 0.1
	case types.CompetitionMultiple:
		bonus += 0.15
	}

	return min(bonus, maxBonusPoints)
}

// MinimumGPARequirement returns the 4.0-scale GPA a profile must reach to be
// eligible at all. Bonuses lower the bar. The threshold is currently the same
// for every country; the country is read so per-country floors can be added
// without changing callers.
func MinimumGPARequirement(p *types.CandidateProfile) float64 {
	country := defaultCountry
	if p != nil && p.Country != "" {
		country = p.Country
	}

	floor, ok := minimumGPAByCountry[country]
	if !ok {
		floor = baseMinimumGPA
	}
	return floor - BonusPoints(p)
}

func isRanked(ranking string) bool {
	switch ranking {
	case types.RankingTop100, types.RankingTop500, types.RankingTop1000:
		return true
	}
	return false
}
