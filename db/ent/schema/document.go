package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("source_type").
			Validate(utils.EnumValidator(constants.SourceTypes...)),
		field.String("status").
			Default(string(constants.StatusUploaded)).
			Validate(utils.EnumValidator(constants.DocStatuses...)),
		// storage_path never changes after upload
		field.String("storage_path").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bytes("content_hash").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("uploaded_by").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY pages/results, removed together with the document
		edge.To("pages", DocumentPage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("results", ExtractionResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
