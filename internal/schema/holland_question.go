package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HollandQuestion is a platform-wide vocational inventory item.
// The question bank is seeded at install time and treated as immutable.
type HollandQuestion struct {
	ent.Schema
}

func (HollandQuestion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (HollandQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text").
			NotEmpty(),

		field.Enum("section").
			Values("actividades", "habilidades", "ocupaciones"),

		field.Enum("category").
			Values("realista", "investigador", "artistico", "social", "emprendedor", "convencional"),

		field.Int("position").
			NonNegative().
			Comment("Presentation order within the full inventory"),
	}
}

func (HollandQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section", "position"),
		index.Fields("position").Unique(),
	}
}
