package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("customer_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").
			Default(string(constants.DocStatusUploaded)).
			Validate(utils.EnumValidator(constants.DocumentStatuses...)),
		field.String("artifact_path").Optional().Nillable(),
		field.Float("confidence").Optional().Nillable(),
		field.JSON("detection_log", json.RawMessage{}).Optional(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("documents").
			Field("customer_id").
			Unique(),
		edge.To("jobs", ProcessingJob.Type),
		edge.To("history", ReprocessingHistory.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("customer_id", "uploaded_at"),
		index.Fields("status", "uploaded_at"),
		index.Fields("content_hash"),
	}
}
