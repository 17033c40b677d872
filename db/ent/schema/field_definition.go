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

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/db/ent/schema/utils"
)

type FieldDefinition struct{ ent.Schema }

func (FieldDefinition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "field_definitions"},
	}
}

func (FieldDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").NotEmpty().Unique(),
		field.String("label").NotEmpty(),
		field.String("data_type").
			Default(string(constants.TypeString)).
			Validate(utils.EnumValidator(constants.DataTypes...)),
		// required iff data_type == enum; enforced at the repository layer
		field.JSON("enum_values", []string{}).Optional(),
		field.Bool("required").Default(false),
		field.Int("ui_order").Default(0),
		field.Text("custom_prompt").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FieldDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		// referenced, never owned, by extraction results
		edge.To("results", ExtractionResult.Type),
	}
}

func (FieldDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ui_order"),
	}
}
