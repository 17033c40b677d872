package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type PromptTemplate struct{ ent.Schema }

func (PromptTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "prompt_templates"},
	}
}

func (PromptTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.Int("version").Default(1).Positive(),
		field.Text("system_prompt").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// field key -> per-field instruction
		field.JSON("field_prompts", map[string]string{}),
		field.String("model_name").Default("gpt-4o-mini"),
		// at most one row is active; flipped only inside the activation Tx
		field.Bool("is_active").Default(false),
		field.String("created_by").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (PromptTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").Unique(),
		index.Fields("is_active"),
		index.Fields("created_at"),
	}
}
