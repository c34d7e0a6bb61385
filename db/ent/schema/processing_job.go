package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/utils"
)

type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_job"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("customer_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("template_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Float("confidence").Optional().Nillable(),
		field.JSON("extraction_log", json.RawMessage{}).Optional(),
	}
}

func (ProcessingJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "started_at"),
		index.Fields("status", "started_at"),
	}
}
