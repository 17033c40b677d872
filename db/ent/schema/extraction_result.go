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

type ExtractionResult struct{ ent.Schema }

func (ExtractionResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_results"},
	}
}

func (ExtractionResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs; (document_id, field_def_id) is NOT unique on purpose:
		// re-extraction appends a new row and history is retained
		field.UUID("document_id", uuid.UUID{}),
		field.Int("field_def_id"),
		field.Text("value_raw"),
		field.Text("normalized_value").Optional(),
		field.Float("confidence").Default(0).Min(0).Max(1),
		field.Int("page_num").Optional().Nillable(),
		// [x0,y0,x1,y1]
		field.JSON("bbox", json.RawMessage{}).Optional(),
		field.String("model_name"),
		field.String("model_version"),
		field.Int("prompt_version"),
		field.Bool("verified").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractionResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("results").
			Field("document_id").
			Unique().
			Required(),
		edge.From("field_def", FieldDefinition.Type).
			Ref("results").
			Field("field_def_id").
			Unique().
			Required(),
		edge.To("verifications", VerificationRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ExtractionResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "field_def_id", "created_at"),
		index.Fields("verified"),
	}
}
