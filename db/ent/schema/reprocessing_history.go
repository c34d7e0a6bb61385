package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReprocessingHistory struct{ ent.Schema }

func (ReprocessingHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reprocessing_history"},
	}
}

func (ReprocessingHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.Int("version").Positive(),
		field.String("changes_made").NotEmpty(),
		field.String("triggered_by").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ReprocessingHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("history").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ReprocessingHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "version").Unique(),
	}
}
