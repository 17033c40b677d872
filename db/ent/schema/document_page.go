package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type DocumentPage struct{ ent.Schema }

func (DocumentPage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_pages"},
	}
}

func (DocumentPage) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK so we can define the composite unique index
		field.UUID("document_id", uuid.UUID{}),
		field.Int("page_num").Positive(),
		field.Text("text"),
		field.String("image_path").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// ordered [{text,bbox,size?,confidence?}] spans
		field.JSON("layout", json.RawMessage{}).Optional(),
	}
}

func (DocumentPage) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY pages -> ONE document
		edge.From("document", Document.Type).
			Ref("pages").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (DocumentPage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "page_num").Unique(),
	}
}
