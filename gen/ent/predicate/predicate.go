// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ProcessingJob is the predicate function for processingjob builders.
type ProcessingJob func(*sql.Selector)

// ReprocessingHistory is the predicate function for reprocessinghistory builders.
type ReprocessingHistory func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)
