package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category holds the selectable listing categories.
type Category struct{ ent.Schema }

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("category_id").NotEmpty().Unique(),
		field.String("name").NotEmpty(),
		field.String("kind").NotEmpty(),
		field.Int("sort_order").Default(0),
	}
}

func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "sort_order"),
	}
}
