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

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/db/ent/schema/utils"
)

type SystemLog struct{ ent.Schema }

func (SystemLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "system_logs"},
	}
}

func (SystemLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("level").
			Default(string(constants.LevelInfo)).
			Validate(utils.EnumValidator(
				string(constants.LevelDebug),
				string(constants.LevelInfo),
				string(constants.LevelWarning),
				string(constants.LevelError),
				string(constants.LevelCritical),
			)),
		field.Text("message").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("source").Optional(),
		field.JSON("context", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (SystemLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("source"),
		index.Fields("created_at"),
	}
}
