package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type AuditLog struct{ ent.Schema }

func (AuditLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_logs"},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("actor").Optional(), // empty = system
		field.String("action").NotEmpty(),
		field.String("entity_kind").NotEmpty(),
		field.String("entity_id").Optional(),
		field.JSON("details", json.RawMessage{}).Optional(),
		// extraction events carry the full composed prompt and raw response
		// so prompt quality can be audited after the fact
		field.Text("prompt_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Text("model_response").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
		index.Fields("entity_kind", "entity_id"),
		index.Fields("created_at"),
	}
}
