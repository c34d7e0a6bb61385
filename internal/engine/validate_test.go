package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
)

func ruleWithSpec(spec *entity.ValidationSpec) entity.ExtractionRule {
	return entity.ExtractionRule{FieldName: "f", Type: constants.RuleRegex, Validation: spec}
}

func TestValidateFieldNoSpec(t *testing.T) {
	assert.Empty(t, validateField(entity.ExtractionRule{FieldName: "f"}, "anything"))
}

func TestValidateFieldLengths(t *testing.T) {
	rule := ruleWithSpec(&entity.ValidationSpec{MinLength: 3, MaxLength: 5})

	assert.Empty(t, validateField(rule, "abcd"))
	assert.Len(t, validateField(rule, "ab"), 1)
	assert.Len(t, validateField(rule, "abcdef"), 1)
}

func TestValidateFieldPattern(t *testing.T) {
	rule := ruleWithSpec(&entity.ValidationSpec{Pattern: `^INV-\d+$`})
	assert.Empty(t, validateField(rule, "INV-42"))
	assert.Len(t, validateField(rule, "PO-42"), 1)

	bad := ruleWithSpec(&entity.ValidationSpec{Pattern: `([`})
	assert.Len(t, validateField(bad, "x"), 1)
}

func TestValidateFieldDataTypes(t *testing.T) {
	tests := []struct {
		name     string
		dataType constants.DataType
		value    string
		ok       bool
	}{
		{"number ok", constants.TypeNumber, "1,234.56", true},
		{"number bad", constants.TypeNumber, "twelve", false},
		{"date iso", constants.TypeDate, "2024-01-05", true},
		{"date us", constants.TypeDate, "01/05/2024", true},
		{"date bad", constants.TypeDate, "yesterday", false},
		{"currency ok", constants.TypeCurrency, "$250.00", true},
		{"currency bad", constants.TypeCurrency, "250 USD", false},
		{"percentage ok", constants.TypePercentage, "15%", true},
		{"percentage plain", constants.TypePercentage, "99.5", true},
		{"percentage over", constants.TypePercentage, "150%", false},
		{"percentage bad", constants.TypePercentage, "high", false},
		{"string anything", constants.TypeString, "!!!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ruleWithSpec(&entity.ValidationSpec{DataType: tt.dataType})
			warnings := validateField(rule, tt.value)
			if tt.ok {
				assert.Empty(t, warnings)
			} else {
				assert.NotEmpty(t, warnings)
			}
		})
	}
}
