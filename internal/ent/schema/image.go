package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Image holds an uploaded image blob addressed by its external ID.
type Image struct{ ent.Schema }

func (Image) Fields() []ent.Field {
	return []ent.Field{
		field.String("image_id").NotEmpty().Unique(),
		field.String("owner_id").NotEmpty(),
		field.String("name").Optional(),
		field.String("mime").Optional(),
		field.Bytes("content"),
		field.Time("created_at").Default(time.Now).Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (Image) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
