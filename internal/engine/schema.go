package engine

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/adeolu-martins/docextract/internal/entity"
)

// templateDefinitionSchema constrains the JSON stored for a template's rules
// and hardcoded mappings. Validated once at load time so rule execution can
// trust its config.
const templateDefinitionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "rules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["field_name", "extraction_type"],
        "properties": {
          "field_name": {"type": "string", "minLength": 1},
          "extraction_type": {"enum": ["regex", "position", "table", "keyword", "calculation"]},
          "config": {
            "type": "object",
            "properties": {
              "pattern": {"type": "string"},
              "keywords": {"type": "array", "items": {"type": "string"}},
              "direction": {"enum": ["same_line", "after", "before"]},
              "search_radius": {"type": "integer", "minimum": 0},
              "table_index": {"type": "integer", "minimum": 0},
              "column_header": {"type": "string"},
              "column_index": {"type": "integer", "minimum": 0},
              "row_index": {"type": "integer", "minimum": 1},
              "x": {"type": "integer", "minimum": 0},
              "y": {"type": "integer", "minimum": 0},
              "width": {"type": "integer", "minimum": 0},
              "height": {"type": "integer", "minimum": 0},
              "formula": {"type": "string"},
              "operation": {"enum": ["sum", "multiply", "subtract", "divide"]},
              "source_fields": {"type": "array", "items": {"type": "string"}}
            }
          },
          "validation": {
            "type": "object",
            "properties": {
              "data_type": {"enum": ["string", "number", "date", "currency", "percentage"]},
              "required": {"type": "boolean"},
              "min_length": {"type": "integer", "minimum": 0},
              "max_length": {"type": "integer", "minimum": 0},
              "pattern": {"type": "string"}
            }
          }
        }
      }
    },
    "hardcoded_mappings": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["field_name", "source_pattern", "target_value"],
        "properties": {
          "field_name": {"type": "string", "minLength": 1},
          "source_pattern": {"type": "string", "minLength": 1},
          "target_value": {"type": "string"},
          "priority": {"type": "integer", "minimum": 0, "maximum": 10}
        }
      }
    }
  }
}`

var compiledDefinitionSchema = jsonschema.MustCompileString("template-definition.json", templateDefinitionSchema)

// ValidateDefinition checks the raw rules/mappings JSON of a template before
// it is parsed into entity types.
func ValidateDefinition(rulesJSON, mappingsJSON json.RawMessage) error {
	doc := map[string]json.RawMessage{}
	if len(rulesJSON) > 0 {
		doc["rules"] = rulesJSON
	}
	if len(mappingsJSON) > 0 {
		doc["hardcoded_mappings"] = mappingsJSON
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("template definition: %w", err)
	}
	if err := compiledDefinitionSchema.Validate(v); err != nil {
		return fmt.Errorf("template definition: %w", err)
	}
	return nil
}

// CheckMappings rejects duplicate (field_name, source_pattern) pairs; the
// first occurrence would otherwise silently shadow the rest.
func CheckMappings(tpl *entity.Template) error {
	type key struct{ field, pattern string }
	seen := make(map[key]struct{}, len(tpl.HardcodedMappings))
	for _, m := range tpl.HardcodedMappings {
		k := key{m.FieldName, m.SourcePattern}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate mapping for field %q pattern %q", m.FieldName, m.SourcePattern)
		}
		seen[k] = struct{}{}
	}
	return nil
}
