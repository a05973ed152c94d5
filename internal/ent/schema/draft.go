package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Draft holds in-progress form state saved server-side.
type Draft struct{ ent.Schema }

func (Draft) Fields() []ent.Field {
	return []ent.Field{
		field.String("draft_id").NotEmpty().Unique(),
		field.String("owner_id").NotEmpty(),
		field.String("kind").NotEmpty(),
		field.JSON("fields", map[string]any{}).Optional(),
		field.String("preview_thumbnail").Optional(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now).SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (Draft) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
