package scoring

import (
	"testing"

	"github.com/jonathan/university-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestNormalizeLanguageScore(t *testing.T) {
	tests := []struct {
		name     string
		testType string
		score    float64
		expected float64
	}{
		{"TOEFL max", TestTOEFL, 120, 100},
		{"TOEFL 110", TestTOEFL, 110, 91.6666666667},
		{"IELTS max", TestIELTS, 9, 100},
		{"IELTS 7.5", TestIELTS, 7.5, 83.3333333333},
		{"CAE", TestCambridgeCAE, 210, 100},
		{"CPE", TestCambridgeCPE, 230, 100},
		{"PTE", TestPTE, 90, 100},
		{"Duolingo", TestDuolingo, 120, 75},
		{"TOEIC", TestTOEIC, 990, 100},
		{"TestDaF", TestTestDaF, 4, 80},
		{"DSH", TestDSH, 3, 100},
		{"TCF", TestTCF, 699, 100},
		{"YDS passes through", TestYDS, 85, 85},
		{"YOKDIL passes through", TestYOKDIL, 72.5, 72.5},
		{"Goethe passes through", TestGoethe, 90, 90},
		{"DELF passes through", TestDELF, 65, 65},
		{"DALF passes through", TestDALF, 70, 70},
		{"above nominal max is not capped", TestTOEFL, 132, 110},
		{"unknown test", "klingon", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeLanguageScore(tt.testType, tt.score), 1e-6)
		})
	}
}

func TestNormalizeLanguageScore_MonotonicWithinRange(t *testing.T) {
	for testType, nominal := range languageTestMax {
		prev := -1.0
		for i := 0; i <= 100; i++ {
			score := nominal * float64(i) / 100
			got := NormalizeLanguageScore(testType, score)
			assert.Greater(t, got, prev, "%s should increase at %v", testType, score)
			prev = got
		}
		assert.InDelta(t, 100.0, NormalizeLanguageScore(testType, nominal), 1e-9)
	}
}

func TestConvertGPA(t *testing.T) {
	tests := []struct {
		name     string
		gpa      float64
		system   string
		expected float64
	}{
		{"4.0 passes through", 3.6, types.GradingSystem4_0, 3.6},
		{"empty system means 4.0", 3.2, "", 3.2},
		{"uk first upper bound", 100, types.GradingSystemUK, 4.0},
		{"uk first", 70, types.GradingSystemUK, 3.7},
		{"uk first capped", 110, types.GradingSystemUK, 4.0},
		{"uk upper second", 65, types.GradingSystemUK, 3.3},
		{"uk lower second", 55, types.GradingSystemUK, 2.45},
		{"uk third", 40, types.GradingSystemUK, 1.52},
		{"german best", 1.0, types.GradingSystemGerman, 4.0},
		{"german worst", 4.0, types.GradingSystemGerman, 1.0},
		{"german out of range is not clamped", 5.0, types.GradingSystemGerman, 0.0},
		{"french", 15, types.GradingSystemFrench, 3.0},
		{"percent default", 85, "percent", 3.4},
		{"malformed label falls back to percent", 50, "???", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ConvertGPA(tt.gpa, tt.system), 1e-9)
		})
	}
}

func TestConvertGPA_ZeroShortCircuits(t *testing.T) {
	for _, system := range []string{"", "4.0", "uk", "german", "french", "percent"} {
		assert.Equal(t, 0.0, ConvertGPA(0, system), "system %q", system)
	}
}

func TestBonusPoints(t *testing.T) {
	tests := []struct {
		name     string
		profile  types.CandidateProfile
		expected float64
	}{
		{"empty profile", types.CandidateProfile{}, 0},
		{"work 1 year", types.CandidateProfile{WorkExperience: 1}, 0},
		{"work 3 years", types.CandidateProfile{WorkExperience: 3}, 0.2},
		{"work 5 years", types.CandidateProfile{WorkExperience: 5}, 0.4},
		{"work 10 years", types.CandidateProfile{WorkExperience: 10}, 0.6},
		{"unranked masters", types.CandidateProfile{HasMastersDegree: true}, 0.1},
		{"ranked masters", types.CandidateProfile{HasMastersDegree: true, MastersRanking: types.RankingTop500}, 0.2},
		{"ranking without degree", types.CandidateProfile{MastersRanking: types.RankingTop100}, 0},
		{"national project", types.CandidateProfile{ProjectExperience: types.ProjectNational}, 0.1},
		{"eu project", types.CandidateProfile{ProjectExperience: types.ProjectEU}, 0.15},
		{"international project", types.CandidateProfile{ProjectExperience: types.ProjectInternational}, 0.15},
		{"multiple projects", types.CandidateProfile{ProjectExperience: types.ProjectMultiple}, 0.2},
		{"publication", types.CandidateProfile{Publications: 2}, 0.1},
		{"gre 320", types.CandidateProfile{GREScore: intPtr(320)}, 0.1},
		{"gre 315", types.CandidateProfile{GREScore: intPtr(315)}, 0.05},
		{"gre 300", types.CandidateProfile{GREScore: intPtr(300)}, 0},
		{"gmat 700", types.CandidateProfile{GMATScore: intPtr(700)}, 0.1},
		{"gmat 650", types.CandidateProfile{GMATScore: intPtr(650)}, 0.05},
		{"gre and gmat add up", types.CandidateProfile{GREScore: intPtr(325), GMATScore: intPtr(710)}, 0.2},
		{"bronze", types.CandidateProfile{CompetitionAchievements: types.CompetitionBronze}, 0.05},
		{"silver", types.CandidateProfile{CompetitionAchievements: types.CompetitionSilver}, 0.08},
		{"gold", types.CandidateProfile{CompetitionAchievements: types.CompetitionGold}, 0.1},
		{"multiple competitions", types.CandidateProfile{CompetitionAchievements: types.CompetitionMultiple}, 0.15},
		{"categories sum", types.CandidateProfile{WorkExperience: 3, Publications: 1, ProjectExperience: types.ProjectNational}, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BonusPoints(&tt.profile), 1e-9)
		})
	}
}

func TestBonusPoints_CappedAtOne(t *testing.T) {
	profile := types.CandidateProfile{
		WorkExperience:          12,
		HasMastersDegree:        true,
		MastersRanking:          types.RankingTop100,
		ProjectExperience:       types.ProjectMultiple,
		Publications:            10,
		GREScore:                intPtr(335),
		GMATScore:               intPtr(760),
		CompetitionAchievements: types.CompetitionMultiple,
	}

	assert.Equal(t, 1.0, BonusPoints(&profile))
}

func TestBonusPoints_NilProfile(t *testing.T) {
	assert.Equal(t, 0.0, BonusPoints(nil))
}

func TestMinimumGPARequirement(t *testing.T) {
	t.Run("base floor", func(t *testing.T) {
		assert.InDelta(t, 2.5, MinimumGPARequirement(&types.CandidateProfile{}), 1e-9)
	})

	t.Run("bonus lowers the floor", func(t *testing.T) {
		profile := types.CandidateProfile{WorkExperience: 6, Publications: 1}
		assert.InDelta(t, 2.0, MinimumGPARequirement(&profile), 1e-9)
	})

	t.Run("same floor for every country", func(t *testing.T) {
		turkey := types.CandidateProfile{Country: "turkey", WorkExperience: 3}
		usa := types.CandidateProfile{Country: "usa", WorkExperience: 3}
		assert.Equal(t, MinimumGPARequirement(&turkey), MinimumGPARequirement(&usa))
	})
}
