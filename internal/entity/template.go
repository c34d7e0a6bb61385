package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
)

// Template is a named, customer-scoped set of extraction rules plus
// value-remapping rules.
type Template struct {
	ID                uuid.UUID          `json:"id"`
	CustomerID        uuid.UUID          `json:"customer_id"`
	Name              string             `json:"name"`
	Version           int                `json:"version"`
	Rules             []ExtractionRule   `json:"rules"`
	HardcodedMappings []HardcodedMapping `json:"hardcoded_mappings"`
	IsActive          bool               `json:"is_active"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// ExtractionRule is one field's extraction strategy plus its validation spec.
// Rules are immutable members of a Template; ordering is insertion order.
type ExtractionRule struct {
	FieldName  string           `json:"field_name"`
	Type       constants.RuleType `json:"extraction_type"`
	Config     RuleConfig       `json:"config"`
	Validation *ValidationSpec  `json:"validation,omitempty"`
}

// RuleConfig carries the type-specific knobs for a rule. Only the fields
// relevant to the rule's Type are consulted.
type RuleConfig struct {
	// regex
	Pattern string `json:"pattern,omitempty"`

	// keyword
	Keywords     []string `json:"keywords,omitempty"`
	Direction    string   `json:"direction,omitempty"` // same_line | after | before
	SearchRadius int      `json:"search_radius,omitempty"`

	// table
	TableIndex   int    `json:"table_index,omitempty"`
	ColumnHeader string `json:"column_header,omitempty"`
	ColumnIndex  *int   `json:"column_index,omitempty"`
	RowIndex     *int   `json:"row_index,omitempty"`

	// position (line-number approximation of page coordinates)
	X      int `json:"x,omitempty"`
	Y      int `json:"y,omitempty"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// calculation
	Formula      string   `json:"formula,omitempty"`
	Operation    string   `json:"operation,omitempty"` // sum | multiply | subtract | divide
	SourceFields []string `json:"source_fields,omitempty"`
}

// ValidationSpec constrains an extracted field value.
type ValidationSpec struct {
	DataType  constants.DataType `json:"data_type,omitempty"`
	Required  bool               `json:"required,omitempty"`
	MinLength int                `json:"min_length,omitempty"`
	MaxLength int                `json:"max_length,omitempty"`
	Pattern   string             `json:"pattern,omitempty"`
}

// HardcodedMapping is a priority-ordered literal/wildcard substitution applied
// to an extracted field value before validation. Higher priority wins.
type HardcodedMapping struct {
	FieldName     string `json:"field_name"`
	SourcePattern string `json:"source_pattern"`
	TargetValue   string `json:"target_value"`
	Priority      int    `json:"priority"` // 0-10
}
