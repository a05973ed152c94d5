package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record holds the schema definition for a published or pending listing.
type Record struct{ ent.Schema }

// Fields of the Record.
func (Record) Fields() []ent.Field {
	return []ent.Field{
		// External stable ID handed to clients.
		field.String("record_id").NotEmpty().Unique(),
		field.String("owner_id").NotEmpty(),
		field.String("kind").NotEmpty(),
		// JSON form fields; compatible with Postgres (JSONB) and SQLite (TEXT/BLOB).
		field.JSON("fields", map[string]any{}).Optional(),
		field.JSON("images", []string{}).Optional(),
		field.String("status").Default("pending"),
		field.Time("created_at").Default(time.Now).Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now).SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

// Indexes of the Record.
func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "status"),
	}
}
