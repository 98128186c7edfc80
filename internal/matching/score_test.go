package matching

import (
	"math"
	"testing"

	"github.com/jonathan/university-match/internal/scoring"
	"github.com/jonathan/university-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func roboticsProgram() *types.ProgramRequirement {
	return &types.ProgramRequirement{
		ID:                 1,
		Name:               "ETH Zurich",
		MinGPA:             3.5,
		MinLanguageScore:   100,
		RequiredBackground: []string{"engineering", "robotics"},
	}
}

func strongProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		GPA:                floatPtr(3.8),
		GradingSystem:      types.GradingSystem4_0,
		LanguageTestType:   strPtr(scoring.TestTOEFL),
		LanguageTestScore:  floatPtr(110),
		Background:         []string{"engineering", "robotics"},
		ResearchExperience: 1,
		WorkExperience:     3,
	}
}

func TestCalculateMatchScore_StrongCandidate(t *testing.T) {
	// 28.5 gpa + 20 language + 15 background + 7 research + 4 work + 2 bonus
	score, err := CalculateMatchScore(strongProfile(), roboticsProgram())
	require.NoError(t, err)
	assert.Equal(t, 76.5, score)
}

func TestCalculateMatchScore_PartialBackground(t *testing.T) {
	program := roboticsProgram()
	program.RequiredBackground = []string{"engineering", "robotics", "control systems"}

	score, err := CalculateMatchScore(strongProfile(), program)
	require.NoError(t, err)
	assert.Equal(t, 71.5, score)
}

func TestCalculateMatchScore_Gate(t *testing.T) {
	tests := []struct {
		name     string
		profile  *types.CandidateProfile
		expected float64
	}{
		{"low gpa", &types.CandidateProfile{GPA: floatPtr(2.0)}, IneligibleScore},
		{"missing gpa", &types.CandidateProfile{LanguageTestType: strPtr("toefl"), LanguageTestScore: floatPtr(120)}, IneligibleScore},
		{"nil profile", nil, IneligibleScore},
		{"gate ignores strong language score", &types.CandidateProfile{
			GPA: floatPtr(2.2), LanguageTestType: strPtr("ielts"), LanguageTestScore: floatPtr(9), Publications: 9,
		}, IneligibleScore},
		// 2.0/3.5*15 + 8 work + 6 bonus
		{"ten years of work waives the gate", &types.CandidateProfile{GPA: floatPtr(2.0), WorkExperience: 10}, 22.57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := CalculateMatchScore(tt.profile, roboticsProgram())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestCalculateMatchScore_BonusLowersGate(t *testing.T) {
	// Bonus 0.4 + 0.1 lowers the floor to 2.0.
	profile := &types.CandidateProfile{GPA: floatPtr(2.1), WorkExperience: 5, Publications: 1}
	score, err := CalculateMatchScore(profile, roboticsProgram())
	require.NoError(t, err)
	assert.Greater(t, score, IneligibleScore)
}

func TestCalculateMatchScore_Factors(t *testing.T) {
	base := func() *types.CandidateProfile {
		return &types.CandidateProfile{GPA: floatPtr(4.0)}
	}
	open := &types.ProgramRequirement{ID: 9, MinGPA: 3.0}

	// 30 gpa + 15 background for every case below.
	tests := []struct {
		name     string
		mutate   func(p *types.CandidateProfile)
		expected float64
	}{
		{"baseline", func(p *types.CandidateProfile) {}, 45},
		{"top100 ranking exceeds gpa weight", func(p *types.CandidateProfile) { p.UndergraduateRanking = types.RankingTop100 }, 47},
		{"top500 ranking", func(p *types.CandidateProfile) { p.UndergraduateRanking = types.RankingTop500 }, 46.5},
		{"top1000 ranking", func(p *types.CandidateProfile) { p.UndergraduateRanking = types.RankingTop1000 }, 46},
		{"ielts 8", func(p *types.CandidateProfile) { p.LanguageTestType, p.LanguageTestScore = strPtr("ielts"), floatPtr(8) }, 63},
		{"ielts 6.5", func(p *types.CandidateProfile) { p.LanguageTestType, p.LanguageTestScore = strPtr("ielts"), floatPtr(6.5) }, 60},
		{"toefl 80", func(p *types.CandidateProfile) { p.LanguageTestType, p.LanguageTestScore = strPtr("toefl"), floatPtr(80) }, 55},
		{"toefl 60", func(p *types.CandidateProfile) { p.LanguageTestType, p.LanguageTestScore = strPtr("toefl"), floatPtr(60) }, 50},
		{"unknown test scores the floor tier", func(p *types.CandidateProfile) { p.LanguageTestType, p.LanguageTestScore = strPtr("klingon"), floatPtr(99) }, 50},
		{"zero test score is absent", func(p *types.CandidateProfile) { p.LanguageTestType, p.LanguageTestScore = strPtr("toefl"), floatPtr(0) }, 45},
		{"research half year", func(p *types.CandidateProfile) { p.ResearchExperience = 0.5 }, 49},
		{"research two years", func(p *types.CandidateProfile) { p.ResearchExperience = 2 }, 55},
		{"work one year", func(p *types.CandidateProfile) { p.WorkExperience = 1 }, 47},
		{"work five years with bonus", func(p *types.CandidateProfile) { p.WorkExperience = 5 }, 55},
		{"three publications with bonus", func(p *types.CandidateProfile) { p.Publications = 3 }, 49},
		{"five publications with bonus", func(p *types.CandidateProfile) { p.Publications = 5 }, 51},
		{"one letter", func(p *types.CandidateProfile) { p.RecommendationLetters = 1 }, 47},
		{"two letters", func(p *types.CandidateProfile) { p.RecommendationLetters = 2 }, 48},
		{"three letters", func(p *types.CandidateProfile) { p.RecommendationLetters = 3 }, 50},
		{"gre 305", func(p *types.CandidateProfile) { p.GREScore = intPtr(305) }, 46},
		{"gre and gmat are additive", func(p *types.CandidateProfile) { p.GREScore, p.GMATScore = intPtr(325), intPtr(705) }, 53},
		{"gmat 620", func(p *types.CandidateProfile) { p.GMATScore = intPtr(620) }, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(p)
			score, err := CalculateMatchScore(p, open)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

func TestCalculateMatchScore_BelowProgramMinimum(t *testing.T) {
	program := &types.ProgramRequirement{MinGPA: 3.8, RequiredBackground: []string{"physics"}}
	profile := &types.CandidateProfile{GPA: floatPtr(3.0), Background: []string{"mathematics"}}

	// 3.0/3.8*15 = 11.842...
	score, err := CalculateMatchScore(profile, program)
	require.NoError(t, err)
	assert.Equal(t, 11.84, score)
}

func TestCalculateMatchScore_ConvertsGradingSystem(t *testing.T) {
	program := &types.ProgramRequirement{MinGPA: 3.0}
	profile := &types.CandidateProfile{GPA: floatPtr(1.3), GradingSystem: types.GradingSystemGerman}

	// 3.7 on the 4.0 scale: 27.75 + 15
	score, err := CalculateMatchScore(profile, program)
	require.NoError(t, err)
	assert.Equal(t, 42.75, score)
}

func TestCalculateMatchScore_DuplicateBackgroundCountsOnce(t *testing.T) {
	program := &types.ProgramRequirement{MinGPA: 3.0, RequiredBackground: []string{"engineering", "engineering"}}
	profile := &types.CandidateProfile{GPA: floatPtr(4.0), Background: []string{"engineering"}}

	score, err := CalculateMatchScore(profile, program)
	require.NoError(t, err)
	assert.Equal(t, 37.5, score)
}

func TestCalculateMatchScore_CappedAtMax(t *testing.T) {
	profile := &types.CandidateProfile{
		GPA:                     floatPtr(4.0),
		LanguageTestType:        strPtr("toefl"),
		LanguageTestScore:       floatPtr(120),
		Background:              []string{"engineering"},
		ResearchExperience:      3,
		WorkExperience:          12,
		Publications:            6,
		RecommendationLetters:   3,
		GREScore:                intPtr(330),
		GMATScore:               intPtr(750),
		UndergraduateRanking:    types.RankingTop100,
		HasMastersDegree:        true,
		ProjectExperience:       types.ProjectMultiple,
		CompetitionAchievements: types.CompetitionGold,
	}
	program := &types.ProgramRequirement{MinGPA: 3.5, RequiredBackground: []string{"engineering"}}

	score, err := CalculateMatchScore(profile, program)
	require.NoError(t, err)
	assert.Equal(t, MaxScore, score)
}

func TestCalculateMatchScore_NilProgram(t *testing.T) {
	_, err := CalculateMatchScore(strongProfile(), nil)
	assert.ErrorIs(t, err, ErrNilProgram)
}

func TestCalculateMatchScore_Bounds(t *testing.T) {
	gpas := []*float64{nil, floatPtr(0), floatPtr(2.4), floatPtr(3.1), floatPtr(3.99), floatPtr(4.0)}
	tests := []*string{nil, strPtr("toefl"), strPtr("ielts"), strPtr("yds"), strPtr("duolingo")}
	years := []float64{0, 0.5, 1, 2.5, 7, 10, 15}
	rankings := []string{"", types.RankingTop100, types.RankingTop1000}
	programs := []*types.ProgramRequirement{
		{MinGPA: 2.0},
		{MinGPA: 3.9, RequiredBackground: []string{"robotics", "physics"}},
	}

	for _, gpa := range gpas {
		for _, test := range tests {
			for _, y := range years {
				for _, ranking := range rankings {
					for _, program := range programs {
						profile := &types.CandidateProfile{
							GPA:                  gpa,
							LanguageTestType:     test,
							LanguageTestScore:    floatPtr(100),
							ResearchExperience:   y,
							WorkExperience:       y,
							Publications:         int(y),
							UndergraduateRanking: ranking,
							Background:           []string{"robotics"},
						}
						score, err := CalculateMatchScore(profile, program)
						require.NoError(t, err)
						assert.GreaterOrEqual(t, score, 0.0)
						assert.LessOrEqual(t, score, MaxScore)
						assert.InDelta(t, score, math.Round(score*100)/100, 1e-9)
					}
				}
			}
		}
	}
}
