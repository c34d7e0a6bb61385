package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/extract"
)

func docFromText(text string) *extract.Document {
	return &extract.Document{
		Text: text,
		Pages: []extract.Page{{
			Number: 1,
			Text:   text,
			Tables: extract.DetectTables(text),
		}},
	}
}

func intp(i int) *int { return &i }

func TestExtractRegex(t *testing.T) {
	text := "Invoice Number: INV-2210\nTotal due $99"

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"capture group wins", `invoice number:\s*(\S+)`, "INV-2210"},
		{"whole match without group", `INV-\d+`, "INV-2210"},
		{"case insensitive", `TOTAL DUE`, "Total due"},
		{"no match yields empty", `purchase order (\d+)`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractRegex(entity.RuleConfig{Pattern: tt.pattern}, text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := extractRegex(entity.RuleConfig{Pattern: "([bad"}, text)
	assert.Error(t, err)
}

func TestExtractKeywordSameLine(t *testing.T) {
	text := "Invoice #INV-1001\nDate: 2024-01-05\nTotal: $250.00"

	got, err := extractKeyword(entity.RuleConfig{Keywords: []string{"Invoice #"}}, text)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", got)

	got, err = extractKeyword(entity.RuleConfig{Keywords: []string{"Date:"}}, text)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", got)

	got, err = extractKeyword(entity.RuleConfig{Keywords: []string{"Total:"}}, text)
	require.NoError(t, err)
	assert.Equal(t, "$250.00", got)
}

func TestExtractKeywordDirections(t *testing.T) {
	text := "Ship To\n\nWayne Enterprises\n1 Gotham Plaza\n\nAmount Due"

	got, err := extractKeyword(entity.RuleConfig{
		Keywords: []string{"ship to"}, Direction: "after", SearchRadius: 3,
	}, text)
	require.NoError(t, err)
	assert.Equal(t, "Wayne Enterprises", got)

	got, err = extractKeyword(entity.RuleConfig{
		Keywords: []string{"Amount Due"}, Direction: "before", SearchRadius: 2,
	}, text)
	require.NoError(t, err)
	assert.Equal(t, "1 Gotham Plaza", got)

	// radius exhausted
	got, err = extractKeyword(entity.RuleConfig{
		Keywords: []string{"Ship To"}, Direction: "after", SearchRadius: 1,
	}, text)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = extractKeyword(entity.RuleConfig{Keywords: []string{"Ship To"}, Direction: "sideways"}, text)
	assert.Error(t, err)

	_, err = extractKeyword(entity.RuleConfig{}, text)
	assert.Error(t, err)
}

func TestExtractTable(t *testing.T) {
	tables := []extract.Table{{
		Headers: []string{"Item", "Qty", "Price"},
		Rows: [][]string{
			{"Widget A", "2", "10.00"},
			{"Widget B", "1", "5.00"},
		},
	}}

	// header substring, first data row
	got, err := extractTable(entity.RuleConfig{TableIndex: 0, ColumnHeader: "price"}, tables)
	require.NoError(t, err)
	assert.Equal(t, "10.00", got)

	// explicit column/row index, row 2 = second data row
	got, err = extractTable(entity.RuleConfig{TableIndex: 0, ColumnIndex: intp(0), RowIndex: intp(2)}, tables)
	require.NoError(t, err)
	assert.Equal(t, "Widget B", got)

	// out-of-range lookups degrade to empty, not error
	got, err = extractTable(entity.RuleConfig{TableIndex: 5, ColumnHeader: "price"}, tables)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = extractTable(entity.RuleConfig{TableIndex: 0, ColumnHeader: "discount"}, tables)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = extractTable(entity.RuleConfig{TableIndex: 0, ColumnIndex: intp(0), RowIndex: intp(9)}, tables)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = extractTable(entity.RuleConfig{TableIndex: 0}, tables)
	assert.Error(t, err)
}

func TestExtractPosition(t *testing.T) {
	text := "line zero\nline one\nline two\nline three\nline four"

	// y=3 scans from line 1; first non-empty is line one
	got := extractPosition(entity.RuleConfig{Y: 3}, text)
	assert.Equal(t, "line one", got)

	// x/width slice the line horizontally
	got = extractPosition(entity.RuleConfig{Y: 2, X: 5, Width: 4}, "     value here\nrest")
	assert.Equal(t, "valu", got)

	// beyond the document
	got = extractPosition(entity.RuleConfig{Y: 99}, text)
	assert.Equal(t, "", got)
}

func TestExtractCalculationOperations(t *testing.T) {
	extracted := map[string]string{
		"subtotal": "$100.00",
		"tax":      "8.50",
		"qty":      "4",
	}

	tests := []struct {
		name string
		cfg  entity.RuleConfig
		want string
	}{
		{"sum", entity.RuleConfig{Operation: "sum", SourceFields: []string{"subtotal", "tax"}}, "108.5"},
		{"subtract left to right", entity.RuleConfig{Operation: "subtract", SourceFields: []string{"subtotal", "tax", "qty"}}, "87.5"},
		{"multiply", entity.RuleConfig{Operation: "multiply", SourceFields: []string{"qty", "tax"}}, "34"},
		{"divide left to right", entity.RuleConfig{Operation: "divide", SourceFields: []string{"subtotal", "qty"}}, "25"},
		{"formula", entity.RuleConfig{Formula: "{subtotal} + {tax} * 2"}, "117"},
		{"formula with parens", entity.RuleConfig{Formula: "({subtotal} + {tax}) / 2"}, "54.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractCalculation(tt.cfg, extracted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCalculationErrors(t *testing.T) {
	extracted := map[string]string{"total": "abc", "zero": "0", "amount": "10"}

	cases := []entity.RuleConfig{
		{Operation: "sum", SourceFields: []string{"missing"}},
		{Operation: "sum", SourceFields: []string{"total"}},
		{Operation: "divide", SourceFields: []string{"amount", "zero"}},
		{Operation: "modulo", SourceFields: []string{"amount"}},
		{Formula: "{missing} + 1"},
		{Formula: "{amount} +"},
		{Formula: "{amount"},
		{},
	}
	for _, cfg := range cases {
		_, err := extractCalculation(cfg, extracted)
		assert.Error(t, err, "config %+v", cfg)
	}
}

func TestExtractFieldUnknownType(t *testing.T) {
	_, err := extractField(entity.ExtractionRule{Type: constants.RuleType("magic")}, docFromText("x"), nil, nil)
	assert.Error(t, err)
}
