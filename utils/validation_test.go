package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("RUNNING", "COMPLETED", "FAILED")

	require.NoError(t, validate("COMPLETED"))

	err := validate("DONE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"DONE"`)
	assert.Contains(t, err.Error(), "RUNNING")
}
