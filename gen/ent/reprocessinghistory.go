// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adeolu-martins/docextract/gen/ent/document"
	"github.com/adeolu-martins/docextract/gen/ent/reprocessinghistory"
	"github.com/google/uuid"
)

// ReprocessingHistory is the model entity for the ReprocessingHistory schema.
type ReprocessingHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// ChangesMade holds the value of the "changes_made" field.
	ChangesMade string `json:"changes_made,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy string `json:"triggered_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReprocessingHistoryQuery when eager-loading is set.
	Edges        ReprocessingHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReprocessingHistoryEdges holds the relations/edges for other nodes in the graph.
type ReprocessingHistoryEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReprocessingHistoryEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReprocessingHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reprocessinghistory.FieldVersion:
			values[i] = new(sql.NullInt64)
		case reprocessinghistory.FieldChangesMade, reprocessinghistory.FieldTriggeredBy:
			values[i] = new(sql.NullString)
		case reprocessinghistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case reprocessinghistory.FieldID, reprocessinghistory.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReprocessingHistory fields.
func (_m *ReprocessingHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reprocessinghistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reprocessinghistory.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case reprocessinghistory.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case reprocessinghistory.FieldChangesMade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changes_made", values[i])
			} else if value.Valid {
				_m.ChangesMade = value.String
			}
		case reprocessinghistory.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = value.String
			}
		case reprocessinghistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReprocessingHistory.
// This includes values selected through modifiers, order, etc.
func (_m *ReprocessingHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ReprocessingHistory entity.
func (_m *ReprocessingHistory) QueryDocument() *DocumentQuery {
	return NewReprocessingHistoryClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ReprocessingHistory.
// Note that you need to call ReprocessingHistory.Unwrap() before calling this method if this ReprocessingHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReprocessingHistory) Update() *ReprocessingHistoryUpdateOne {
	return NewReprocessingHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReprocessingHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReprocessingHistory) Unwrap() *ReprocessingHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReprocessingHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReprocessingHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ReprocessingHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("changes_made=")
	builder.WriteString(_m.ChangesMade)
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(_m.TriggeredBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReprocessingHistories is a parsable slice of ReprocessingHistory.
type ReprocessingHistories []*ReprocessingHistory
