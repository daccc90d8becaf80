package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Institution
// ---------------------------------------------------------------------------

type Institution struct {
	ent.Schema
}

func (Institution) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Institution) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("join_code").
			MaxLen(6).
			NotEmpty().
			Unique().
			Comment("6-char uppercase alphanumeric code students and tutors enter to link"),

		field.Int("student_limit").
			NonNegative().
			Comment("Max linked users with role=student; enforced by counting inside the linking tx"),

		field.Int("tutor_limit").
			NonNegative(),

		field.String("description").
			Optional().
			Nillable(),

		field.String("director_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("director_email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("address").
			Optional().
			Nillable(),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("is_active").Default(true),
	}
}

func (Institution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("join_code"),
	}
}

// ---------------------------------------------------------------------------
// TutorGroup — independent tutor group, created on tutor-request approval
// ---------------------------------------------------------------------------

type TutorGroup struct {
	ent.Schema
}

func (TutorGroup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (TutorGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.UUID("tutor_id", uuid.UUID{}).
			Comment("FK → users.id of the owning tutor"),

		field.String("join_code").
			MaxLen(6).
			NotEmpty().
			Unique(),

		field.Int("student_limit").
			NonNegative().
			Default(5),

		field.Int("tutor_limit").
			NonNegative().
			Default(1),

		field.Bool("is_active").Default(true),
	}
}

func (TutorGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("join_code"),
		index.Fields("tutor_id"),
	}
}
