package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the unimatch binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "unimatch"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/unimatch ./cmd/unimatch'", binaryPath)
	}

	return binaryPath
}

// runCLI runs the binary without inheriting database or config settings.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinaryPath(t), args...)
	cmd.Env = append(os.Environ(), "DATABASE_URL=", "CATALOG_PATH=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func TestCommands_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"match without --profile", []string{"match"}, "required"},
		{"parse-cv without --file", []string{"parse-cv"}, "required"},
		{"normalize without skills", []string{"skills", "normalize"}, "requires at least 1 arg"},
		{"extract without input", []string{"skills", "extract"}, "must provide either --file or --text"},
		{"list with bad date", []string{"catalog", "list", "--as-of", "tomorrow"}, "expected YYYY-MM-DD"},
		{"seed without database", []string{"catalog", "seed"}, "DATABASE_URL"},
		{"add without --file", []string{"catalog", "add"}, "required flag(s) \"file\" not set"},
		{"add without database", []string{"catalog", "add", "--file", "program.json"}, "DATABASE_URL"},
		{"remove without --id", []string{"catalog", "remove"}, "required flag(s) \"id\" not set"},
		{"remove without database", []string{"catalog", "remove", "--id", "7"}, "DATABASE_URL"},
		{"validate without flags", []string{"validate"}, "required flag(s)"},
		{"validate missing schema", []string{"validate", "--schema", "missing.schema.json", "--json", "missing.json"}, "schema file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)
			assert.Error(t, err)
			assert.Contains(t, output, tt.errorString)
		})
	}
}

func TestMatchCommand_Success(t *testing.T) {
	profile := writeFile(t, "profile.json", `{"gpa": 3.8, "language_test_type": "toefl", "language_test_score": 110, "background": ["engineering"]}`)

	output, err := runCLI(t, "match", "--profile", profile, "--include-expired")
	require.NoError(t, err, output)
	assert.Contains(t, output, "MATCH RESULTS")
}

func TestParseCVCommand_Success(t *testing.T) {
	cv := writeFile(t, "cv.txt", testCV)

	output, err := runCLI(t, "parse-cv", "--file", cv)
	require.NoError(t, err, output)
	assert.Contains(t, output, "EXTRACTED PROFILE")
	assert.Contains(t, output, "3.65")
}

func TestSkillsNormalizeCommand(t *testing.T) {
	output, err := runCLI(t, "skills", "normalize", "JS", "py")
	require.NoError(t, err, output)
	assert.Contains(t, output, "javascript")
	assert.Contains(t, output, "python")
}

func TestCatalogListCommand(t *testing.T) {
	output, err := runCLI(t, "catalog", "list", "--include-expired")
	require.NoError(t, err, output)
	assert.Contains(t, output, "PROGRAM CATALOG")
}

func TestValidateCommand(t *testing.T) {
	schema := filepath.Join("..", "..", "schemas", "catalog.schema.json")

	t.Run("valid document", func(t *testing.T) {
		doc := writeFile(t, "catalog.json", "["+singleProgramJSON+"]")

		output, err := runCLI(t, "validate", "--schema", schema, "--json", doc)
		require.NoError(t, err, output)
		assert.Contains(t, output, "Validation passed")
	})

	t.Run("invalid document", func(t *testing.T) {
		doc := writeFile(t, "catalog.json", `[{"id": 1}]`)

		output, err := runCLI(t, "validate", "--schema", schema, "--json", doc)
		assert.Error(t, err)
		assert.Contains(t, output, "Validation failed")
		assert.Contains(t, output, "name")
	})
}
