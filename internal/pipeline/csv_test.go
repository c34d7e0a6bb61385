package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/extract"
)

func TestInferDataType(t *testing.T) {
	tests := []struct {
		value string
		want  constants.DataType
	}{
		{"2024-01-05", constants.TypeDate},
		{"01/05/2024", constants.TypeDate},
		{"$250.00", constants.TypeCurrency},
		{"$1,250.00", constants.TypeCurrency},
		{"15%", constants.TypePercentage},
		{"1,234.56", constants.TypeNumber},
		{"250", constants.TypeNumber},
		{"ACME Corp", constants.TypeString},
		{"", constants.TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, inferDataType(tt.value))
		})
	}
}

func TestNormalizeFieldName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Invoice Number", "invoice_number"},
		{"Total:", "total"},
		{"  PO  #  ", "po"},
		{"Ship-To Address", "ship_to_address"},
		{"Ref.No", "ref_no"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeFieldName(tt.in), tt.in)
	}
}

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts", "out.csv")
	fields := map[string]string{
		"invoice_number": "INV-1001",
		"invoice_date":   "2024-01-05",
		"total_amount":   "$250.00",
	}
	order := []string{"invoice_number", "invoice_date", "total_amount"}

	require.NoError(t, writeArtifact(path, fields, order))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"field_name", "field_value", "data_type"}, rows[0])
	assert.Equal(t, []string{"invoice_number", "INV-1001", "string"}, rows[1])
	assert.Equal(t, []string{"invoice_date", "2024-01-05", "date"}, rows[2])
	assert.Equal(t, []string{"total_amount", "$250.00", "currency"}, rows[3])
}

func TestBasicFields(t *testing.T) {
	doc := &extract.Document{Text: "Invoice Number: INV-9\nDate: 2024-02-02\nTotal: $15.00"}

	fields, order := basicFields(doc)

	assert.Equal(t, "INV-9", fields["invoice_number"])
	assert.Equal(t, "2024-02-02", fields["date"])
	assert.Equal(t, "$15.00", fields["total"])
	assert.Equal(t, "2024-02-02", fields["date_1"])

	require.GreaterOrEqual(t, len(order), 3)
	assert.Equal(t, []string{"invoice_number", "date", "total"}, order[:3])

	// every ordered name resolves to a value
	for _, name := range order {
		assert.NotEmpty(t, fields[name], name)
	}
}
