package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adeolu-martins/docextract/internal/entity"
)

func TestApplyMappingsSubstring(t *testing.T) {
	mappings := []entity.HardcodedMapping{
		{FieldName: "vendor", SourcePattern: "acme", TargetValue: "ACME_CORP"},
	}

	got, ok := applyMappings(mappings, "vendor", "Acme Industries Ltd")
	assert.True(t, ok)
	assert.Equal(t, "ACME_CORP", got)

	// other fields are untouched even when the value would match
	_, ok = applyMappings(mappings, "description", "acme")
	assert.False(t, ok)

	_, ok = applyMappings(mappings, "vendor", "Globex")
	assert.False(t, ok)

	_, ok = applyMappings(mappings, "vendor", "")
	assert.False(t, ok)
}

func TestApplyMappingsGlob(t *testing.T) {
	mappings := []entity.HardcodedMapping{
		{FieldName: "charge_type", SourcePattern: "frei*", TargetValue: "SHIPPING_COST"},
		{FieldName: "charge_type", SourcePattern: "tax ?", TargetValue: "TAX"},
	}

	got, ok := applyMappings(mappings, "charge_type", "Freight charge")
	assert.True(t, ok)
	assert.Equal(t, "SHIPPING_COST", got)

	got, ok = applyMappings(mappings, "charge_type", "tax 1")
	assert.True(t, ok)
	assert.Equal(t, "TAX", got)

	// glob is anchored: "tax ?" needs exactly one trailing character
	_, ok = applyMappings(mappings, "charge_type", "tax 12")
	assert.False(t, ok)

	// anchored at the start too
	_, ok = applyMappings(mappings, "charge_type", "air freight")
	assert.False(t, ok)
}

func TestApplyMappingsPriority(t *testing.T) {
	mappings := sortedMappings([]entity.HardcodedMapping{
		{FieldName: "vendor", SourcePattern: "supplies", TargetValue: "GENERIC", Priority: 1},
		{FieldName: "vendor", SourcePattern: "office supplies", TargetValue: "OFFICE", Priority: 5},
	})

	got, ok := applyMappings(mappings, "vendor", "Office Supplies Inc")
	assert.True(t, ok)
	assert.Equal(t, "OFFICE", got)

	// lower-priority mapping still applies when it is the only match
	got, ok = applyMappings(mappings, "vendor", "Cleaning Supplies")
	assert.True(t, ok)
	assert.Equal(t, "GENERIC", got)
}

func TestSortedMappingsStable(t *testing.T) {
	in := []entity.HardcodedMapping{
		{FieldName: "a", SourcePattern: "one", Priority: 2},
		{FieldName: "a", SourcePattern: "two", Priority: 2},
		{FieldName: "a", SourcePattern: "three", Priority: 7},
	}
	out := sortedMappings(in)
	assert.Equal(t, "three", out[0].SourcePattern)
	assert.Equal(t, "one", out[1].SourcePattern)
	assert.Equal(t, "two", out[2].SourcePattern)
	// input untouched
	assert.Equal(t, "one", in[0].SourcePattern)
}

func TestGlobToRegex(t *testing.T) {
	re, err := globToRegex("inv-*.pdf")
	assert.NoError(t, err)
	assert.True(t, re.MatchString("inv-2024.pdf"))
	assert.False(t, re.MatchString("xinv-2024.pdf"))
	assert.False(t, re.MatchString("inv-2024.pdfx"))

	// regex metacharacters in the glob stay literal
	re, err = globToRegex("a+b")
	assert.NoError(t, err)
	assert.True(t, re.MatchString("a+b"))
	assert.False(t, re.MatchString("aab"))
}
