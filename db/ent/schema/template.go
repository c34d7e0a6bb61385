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
)

type Template struct{ ent.Schema }

func (Template) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "templates"},
	}
}

func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so the customer scope can be indexed
		field.UUID("customer_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Int("version").Default(1).Positive(),
		field.JSON("rules", json.RawMessage{}).Optional(),
		field.JSON("hardcoded_mappings", json.RawMessage{}).Optional(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Template) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("customer", Customer.Type).
			Ref("templates").
			Field("customer_id").
			Unique().
			Required(),
	}
}

func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("customer_id", "is_active"),
	}
}
