package detect

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/constants"
)

func TestParseIdentifierPatternsObjectList(t *testing.T) {
	raw := json.RawMessage(`[
		{"type": "regex", "pattern": "INV-\\d+", "weight": 2.5, "case_sensitive": true},
		{"pattern": "ACME"}
	]`)

	patterns, err := ParseIdentifierPatterns(raw)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.Equal(t, constants.PatternRegex, patterns[0].Kind)
	assert.Equal(t, 2.5, patterns[0].Weight)
	assert.True(t, patterns[0].CaseSensitive)

	// type defaults to text, weight to 1.0
	assert.Equal(t, constants.PatternText, patterns[1].Kind)
	assert.Equal(t, 1.0, patterns[1].Weight)
}

func TestParseIdentifierPatternsStringList(t *testing.T) {
	patterns, err := ParseIdentifierPatterns(json.RawMessage(`["ACME", "PO Box 12"]`))
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	for _, p := range patterns {
		assert.Equal(t, constants.PatternText, p.Kind)
		assert.Equal(t, 1.0, p.Weight)
	}
}

func TestParseIdentifierPatternsLegacyMap(t *testing.T) {
	raw := json.RawMessage(`{"company_name": "ACME Industrial", "tax_id": "DE-991", "empty": "  "}`)

	patterns, err := ParseIdentifierPatterns(raw)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	byPattern := map[string]float64{}
	for _, p := range patterns {
		assert.Equal(t, constants.PatternText, p.Kind)
		byPattern[p.Pattern] = p.Weight
	}
	// keys containing "name" are weighted 2.0, others 1.0
	assert.Equal(t, 2.0, byPattern["ACME Industrial"])
	assert.Equal(t, 1.0, byPattern["DE-991"])
}

func TestParseIdentifierPatternsRejectsGarbage(t *testing.T) {
	_, err := ParseIdentifierPatterns(json.RawMessage(`"just a string"`))
	assert.Error(t, err)

	_, err = ParseIdentifierPatterns(json.RawMessage(`[{"type": "text"}]`))
	assert.Error(t, err)
}

func TestParseIdentifierPatternsEmpty(t *testing.T) {
	patterns, err := ParseIdentifierPatterns(nil)
	require.NoError(t, err)
	assert.Nil(t, patterns)
}
