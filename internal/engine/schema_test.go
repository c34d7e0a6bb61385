package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adeolu-martins/docextract/internal/entity"
)

func TestValidateDefinition(t *testing.T) {
	rules := json.RawMessage(`[
		{"field_name": "invoice_number", "extraction_type": "keyword",
		 "config": {"keywords": ["Invoice #"]},
		 "validation": {"data_type": "string", "required": true}},
		{"field_name": "total", "extraction_type": "regex",
		 "config": {"pattern": "Total:\\s*(\\S+)"}}
	]`)
	mappings := json.RawMessage(`[
		{"field_name": "total", "source_pattern": "n/a", "target_value": "0", "priority": 5}
	]`)

	assert.NoError(t, ValidateDefinition(rules, mappings))
	assert.NoError(t, ValidateDefinition(rules, nil))
	assert.NoError(t, ValidateDefinition(nil, nil))
}

func TestValidateDefinitionRejects(t *testing.T) {
	tests := []struct {
		name     string
		rules    string
		mappings string
	}{
		{"unknown extraction type", `[{"field_name": "x", "extraction_type": "xpath"}]`, ""},
		{"missing field name", `[{"extraction_type": "regex"}]`, ""},
		{"empty field name", `[{"field_name": "", "extraction_type": "regex"}]`, ""},
		{"bad data type", `[{"field_name": "x", "extraction_type": "regex", "validation": {"data_type": "boolean"}}]`, ""},
		{"negative radius", `[{"field_name": "x", "extraction_type": "keyword", "config": {"search_radius": -1}}]`, ""},
		{"row index zero", `[{"field_name": "x", "extraction_type": "table", "config": {"row_index": 0}}]`, ""},
		{"bad operation", `[{"field_name": "x", "extraction_type": "calculation", "config": {"operation": "modulo"}}]`, ""},
		{"mapping missing target", "", `[{"field_name": "x", "source_pattern": "y"}]`},
		{"priority out of range", "", `[{"field_name": "x", "source_pattern": "y", "target_value": "z", "priority": 11}]`},
		{"rules not an array", `{"field_name": "x"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rules, mappings json.RawMessage
			if tt.rules != "" {
				rules = json.RawMessage(tt.rules)
			}
			if tt.mappings != "" {
				mappings = json.RawMessage(tt.mappings)
			}
			assert.Error(t, ValidateDefinition(rules, mappings))
		})
	}
}

func TestCheckMappings(t *testing.T) {
	ok := &entity.Template{HardcodedMappings: []entity.HardcodedMapping{
		{FieldName: "a", SourcePattern: "x", TargetValue: "1"},
		{FieldName: "a", SourcePattern: "y", TargetValue: "2"},
		{FieldName: "b", SourcePattern: "x", TargetValue: "3"},
	}}
	assert.NoError(t, CheckMappings(ok))

	dup := &entity.Template{HardcodedMappings: []entity.HardcodedMapping{
		{FieldName: "a", SourcePattern: "x", TargetValue: "1"},
		{FieldName: "a", SourcePattern: "x", TargetValue: "2"},
	}}
	assert.Error(t, CheckMappings(dup))
}
