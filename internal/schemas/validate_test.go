package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWeightConfigString_Valid(t *testing.T) {
	err := ValidateWeightConfigString(`{
		"skill_overlap": 1.5,
		"budget_fit": 1.0,
		"availability_fit": 1.0,
		"remote_fit": 0.5
	}`)

	assert.NoError(t, err)
}

func TestValidateWeightConfigString_PartialIsValid(t *testing.T) {
	assert.NoError(t, ValidateWeightConfigString(`{"skill_overlap": 2}`))
	assert.NoError(t, ValidateWeightConfigString(`{}`))
}

func TestValidateWeightConfigString_RejectsNegative(t *testing.T) {
	err := ValidateWeightConfigString(`{"budget_fit": -1}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "budget_fit", validationErr.Errors[0].Field)
}

func TestValidateWeightConfigString_RejectsUnknownKey(t *testing.T) {
	err := ValidateWeightConfigString(`{"github_activity": 1}`)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateWeightConfigString_RejectsNonNumeric(t *testing.T) {
	err := ValidateWeightConfigString(`{"remote_fit": "high"}`)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateWeightConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skill_overlap": 2.0}`), 0o600))

	assert.NoError(t, ValidateWeightConfigFile(path))

	assert.Error(t, ValidateWeightConfigFile(filepath.Join(t.TempDir(), "missing.json")))
}
