// Code generated by ent, DO NOT EDIT.

package reprocessinghistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adeolu-martins/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldDocumentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldVersion, v))
}

// ChangesMade applies equality check predicate on the "changes_made" field. It's identical to ChangesMadeEQ.
func ChangesMade(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldChangesMade, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldTriggeredBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNotIn(FieldDocumentID, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLTE(FieldVersion, v))
}

// ChangesMadeEQ applies the EQ predicate on the "changes_made" field.
func ChangesMadeEQ(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldChangesMade, v))
}

// ChangesMadeNEQ applies the NEQ predicate on the "changes_made" field.
func ChangesMadeNEQ(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNEQ(FieldChangesMade, v))
}

// ChangesMadeIn applies the In predicate on the "changes_made" field.
func ChangesMadeIn(vs ...string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldIn(FieldChangesMade, vs...))
}

// ChangesMadeNotIn applies the NotIn predicate on the "changes_made" field.
func ChangesMadeNotIn(vs ...string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNotIn(FieldChangesMade, vs...))
}

// ChangesMadeGT applies the GT predicate on the "changes_made" field.
func ChangesMadeGT(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGT(FieldChangesMade, v))
}

// ChangesMadeGTE applies the GTE predicate on the "changes_made" field.
func ChangesMadeGTE(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGTE(FieldChangesMade, v))
}

// ChangesMadeLT applies the LT predicate on the "changes_made" field.
func ChangesMadeLT(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLT(FieldChangesMade, v))
}

// ChangesMadeLTE applies the LTE predicate on the "changes_made" field.
func ChangesMadeLTE(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLTE(FieldChangesMade, v))
}

// ChangesMadeContains applies the Contains predicate on the "changes_made" field.
func ChangesMadeContains(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldContains(FieldChangesMade, v))
}

// ChangesMadeHasPrefix applies the HasPrefix predicate on the "changes_made" field.
func ChangesMadeHasPrefix(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldHasPrefix(FieldChangesMade, v))
}

// ChangesMadeHasSuffix applies the HasSuffix predicate on the "changes_made" field.
func ChangesMadeHasSuffix(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldHasSuffix(FieldChangesMade, v))
}

// ChangesMadeEqualFold applies the EqualFold predicate on the "changes_made" field.
func ChangesMadeEqualFold(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEqualFold(FieldChangesMade, v))
}

// ChangesMadeContainsFold applies the ContainsFold predicate on the "changes_made" field.
func ChangesMadeContainsFold(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldContainsFold(FieldChangesMade, v))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReprocessingHistory) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReprocessingHistory) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReprocessingHistory) predicate.ReprocessingHistory {
	return predicate.ReprocessingHistory(sql.NotPredicates(p))
}
