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

type VerificationRecord struct{ ent.Schema }

func (VerificationRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_records"},
	}
}

func (VerificationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("result_id", uuid.UUID{}),
		field.String("verifier").Optional(),
		field.String("action").
			Validate(utils.EnumValidator(constants.VerifyActions...)),
		field.Text("corrected_value").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Text("comment").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (VerificationRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE result; append-only history
		edge.From("result", ExtractionResult.Type).
			Ref("verifications").
			Field("result_id").
			Unique().
			Required(),
	}
}

func (VerificationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("result_id", "created_at"),
	}
}
