package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTables(t *testing.T) {
	text := `Invoice Summary

Item            Qty     Price
Widget A        2       10.00
Widget B        1       5.00

Notes: deliver to dock 4`

	tables := DetectTables(text)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Item", "Qty", "Price"}, tables[0].Headers)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, []string{"Widget A", "2", "10.00"}, tables[0].Rows[0])
}

func TestDetectTablesNeedsTwoRows(t *testing.T) {
	// one qualifying line is not a table
	assert.Empty(t, DetectTables("Item            Qty\nplain prose line"))
}

func TestDetectTablesTabSeparated(t *testing.T) {
	tables := DetectTables("Name\tAmount\nFreight\t12.50\nHandling\t3.00")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Name", "Amount"}, tables[0].Headers)
	assert.Len(t, tables[0].Rows, 2)
}

func TestDetectKeyValuePairs(t *testing.T) {
	text := "Invoice #: INV-9\nDate: 2024-01-05\nDate: 2024-02-06\nno pair on this line"
	pairs := DetectKeyValuePairs(text)
	require.Len(t, pairs, 2)
	assert.Equal(t, "Invoice #", pairs[0].Key)
	assert.Equal(t, "INV-9", pairs[0].Value)
	// duplicate key keeps the first value
	assert.Equal(t, "2024-01-05", pairs[1].Value)
}

func TestExtractDatesAndNumbers(t *testing.T) {
	text := "Paid 2024-01-05 and 12/31/2023, total $1,250.00 or 15%"
	assert.Equal(t, []string{"2024-01-05", "12/31/2023"}, ExtractDates(text))
	nums := ExtractNumbers(text)
	assert.Contains(t, nums, "$1,250.00")
	assert.Contains(t, nums, "15%")
}

func TestValueShapeHelpers(t *testing.T) {
	assert.True(t, LooksLikeCurrency("$1,250.00"))
	assert.True(t, LooksLikeCurrency("250"))
	assert.False(t, LooksLikeCurrency("12 USD"))

	assert.True(t, LooksLikePercentage("15%"))
	assert.False(t, LooksLikePercentage("15"))

	assert.True(t, LooksLikeDate("2024-01-05"))
	assert.False(t, LooksLikeDate("total 2024-01-05"))
}
