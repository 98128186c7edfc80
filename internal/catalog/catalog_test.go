package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/university-match/internal/schemas"
	"github.com/jonathan/university-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	programs := Default()
	require.Len(t, programs, 20)

	ids := make(map[int]bool)
	for _, p := range programs {
		assert.False(t, ids[p.ID], "duplicate id %d", p.ID)
		ids[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.RequiredBackground)
		assert.NotEmpty(t, p.Deadlines)
		assert.GreaterOrEqual(t, len(p.RequiredDocuments), 6)
	}

	eth := programs[0]
	assert.Equal(t, "ETH Zurich", eth.Name)
	assert.Equal(t, 3.5, eth.MinGPA)
	assert.Equal(t, 100.0, eth.MinLanguageScore)
	assert.Equal(t, []string{"engineering", "robotics", "control systems"}, eth.RequiredBackground)
	assert.Equal(t, types.ApplicationFee{Amount: 150, Currency: "CHF"}, eth.ApplicationFee)
	assert.Len(t, eth.RequiredDocuments, 6)
	require.Len(t, eth.OptionalDocuments, 1)
	assert.Equal(t, "portfolio", eth.OptionalDocuments[0].Type)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	first := Default()
	first[0].Deadlines["fall_2025"] = "1999-01-01"
	first[0].RequiredBackground[0] = "changed"

	second := Default()
	assert.Equal(t, "2024-12-15", second[0].Deadlines["fall_2025"])
	assert.Equal(t, "engineering", second[0].RequiredBackground[0])
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		programs, err := Parse([]byte(`[{"id": 7, "name": "KTH", "program": "MSc Systems", "country": "Sweden",
			"min_gpa": 3.0, "min_language_score": 90, "required_background": ["engineering"],
			"deadlines": {"fall_2025": "2025-01-15"}, "recommendation_count": 5}]`))
		require.NoError(t, err)
		require.Len(t, programs, 1)
		assert.Equal(t, 2, programs[0].RecommendationCount)
		assert.Empty(t, programs[0].OptionalDocuments)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := Parse([]byte(`[{"id": 1}]`))
		require.Error(t, err)

		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		var validationErr *schemas.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		entry := `{"id": 1, "name": "A", "program": "B", "country": "UK", "min_gpa": 3.0,
			"min_language_score": 90, "required_background": [], "deadlines": {}}`
		_, err := Parse([]byte("[" + entry + "," + entry + "]"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate program id 1")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0644))

	programs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, programs, 20)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestStandardDocuments(t *testing.T) {
	tests := []struct {
		name        string
		country     string
		recCount    int
		greRequired bool
		wantLen     int
		wantRecs    int
		wantGRE     bool
	}{
		{"europe two letters", "Switzerland", 2, false, 6, 2, false},
		{"three letters", "UK", 3, false, 6, 3, false},
		{"usa adds gre", "USA", 3, false, 7, 3, true},
		{"gre flag adds gre", "Canada", 2, true, 7, 2, true},
		{"unsupported count falls back to two", "Japan", 4, false, 6, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := StandardDocuments(tt.country, tt.recCount, tt.greRequired)
			require.Len(t, docs, tt.wantLen)
			assert.Equal(t, "cv", docs[0].Type)
			assert.Equal(t, "recommendation", docs[3].Type)
			assert.Equal(t, tt.wantRecs, docs[3].Count)

			last := docs[len(docs)-1]
			if tt.wantGRE {
				assert.Equal(t, "gre", last.Type)
				assert.True(t, last.Required)
			} else {
				assert.Equal(t, "passport", last.Type)
			}
			for _, d := range docs {
				assert.True(t, d.Required, d.Type)
			}
		})
	}
}

func TestDocuments(t *testing.T) {
	docs := Documents([]string{DocGRE, "unknown", DocPortfolio})
	require.Len(t, docs, 2)
	assert.Equal(t, "gre", docs[0].Type)
	assert.False(t, docs[0].Required)
	assert.Equal(t, "portfolio", docs[1].Type)

	motivation := Documents([]string{DocMotivation})[0]
	require.NotNil(t, motivation.WordLimit)
	motivation.WordLimit.Max = 1
	assert.Equal(t, 1000, Documents([]string{DocMotivation})[0].WordLimit.Max)
}
