package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Conversation holds a direct messaging thread between two users of the
// same association (institution or tutor group).
type Conversation struct {
	ent.Schema
}

func (Conversation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		// exactly one of institution_id / group_id is set
		field.UUID("institution_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("group_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("participant_a", uuid.UUID{}).
			Comment("First participant (user id)"),

		field.UUID("participant_b", uuid.UUID{}).
			Comment("Second participant (user id)"),

		field.Time("last_message_at").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_a", "participant_b").Unique(),
		index.Fields("participant_a"),
		index.Fields("participant_b"),
		index.Fields("institution_id"),
		index.Fields("group_id"),
	}
}
