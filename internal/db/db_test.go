package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/university-match/internal/catalog"
	"github.com/jonathan/university-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() catalog.Record {
	return catalog.Record{
		ID:                  42,
		Name:                "Test University",
		Program:             "MSc Robotics",
		Country:             "Germany",
		MinGPA:              3.0,
		MinLanguageScore:    90,
		RequiredBackground:  []string{"engineering", "robotics"},
		Deadlines:           map[string]string{"fall": "2030-01-15"},
		ApplicationFee:      &types.ApplicationFee{Amount: 75, Currency: "EUR"},
		ApplicationURL:      "https://example.edu/apply",
		RecommendationCount: 3,
		OptionalDocuments:   []string{"portfolio"},
	}
}

func TestRecordArgs_RoundTripsThroughJSONColumns(t *testing.T) {
	r := sampleRecord()

	args, err := recordArgs(r)
	require.NoError(t, err)
	require.Len(t, args, 13)

	assert.Equal(t, 42, args[0])
	assert.JSONEq(t, `["engineering","robotics"]`, string(args[6].([]byte)))
	assert.JSONEq(t, `{"fall":"2030-01-15"}`, string(args[7].([]byte)))
	assert.JSONEq(t, `{"amount":75,"currency":"EUR"}`, string(args[8].([]byte)))

	var decoded catalog.Record
	require.NoError(t, decodeRecordJSON(&decoded, args[6].([]byte), args[7].([]byte), args[8].([]byte), args[12].([]byte)))
	assert.Equal(t, r.RequiredBackground, decoded.RequiredBackground)
	assert.Equal(t, r.Deadlines, decoded.Deadlines)
	assert.Equal(t, r.ApplicationFee, decoded.ApplicationFee)
	assert.Equal(t, r.OptionalDocuments, decoded.OptionalDocuments)
}

func TestRecordArgs_EmptyCollections(t *testing.T) {
	args, err := recordArgs(catalog.Record{ID: 1})
	require.NoError(t, err)

	assert.Equal(t, "[]", string(args[6].([]byte)))
	assert.Equal(t, "{}", string(args[7].([]byte)))
	assert.Nil(t, args[8].([]byte), "missing fee is stored as NULL")
	assert.Equal(t, "[]", string(args[12].([]byte)))
}

func TestDecodeRecordJSON_Invalid(t *testing.T) {
	var r catalog.Record
	err := decodeRecordJSON(&r, []byte(`{`), nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required_background")
}

type fakeLister struct {
	records []catalog.Record
	err     error
}

func (f *fakeLister) ListPrograms(context.Context) ([]catalog.Record, error) {
	return f.records, f.err
}

func (f *fakeLister) GetProgram(_ context.Context, id int) (*catalog.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func TestProgramSource(t *testing.T) {
	t.Run("converts records", func(t *testing.T) {
		source := &ProgramSource{store: &fakeLister{records: []catalog.Record{sampleRecord()}}}

		programs, err := source.Programs(context.Background())
		require.NoError(t, err)
		require.Len(t, programs, 1)
		assert.Equal(t, "MSc Robotics", programs[0].Program)
		assert.Equal(t, 3, programs[0].RecommendationCount)
		assert.NotEmpty(t, programs[0].RequiredDocuments)
		require.Len(t, programs[0].OptionalDocuments, 1)
		assert.Equal(t, catalog.DocPortfolio, programs[0].OptionalDocuments[0].Type)
	})

	t.Run("propagates errors", func(t *testing.T) {
		source := &ProgramSource{store: &fakeLister{err: errors.New("connection refused")}}

		_, err := source.Programs(context.Background())
		assert.EqualError(t, err, "connection refused")

		_, err = source.Program(context.Background(), 1)
		assert.EqualError(t, err, "connection refused")
	})

	t.Run("looks up a single program", func(t *testing.T) {
		record := sampleRecord()
		source := &ProgramSource{store: &fakeLister{records: []catalog.Record{record}}}

		p, err := catalog.Find(context.Background(), source, record.ID)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "MSc Robotics", p.Program)
		assert.NotEmpty(t, p.RequiredDocuments)

		missing, err := source.Program(context.Background(), record.ID+1)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
