package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		// Unset until the user completes registration as student or tutor,
		// or is created as admin.
		field.Enum("role").
			Values("student", "tutor", "admin").
			Optional().
			Nillable(),

		field.Bool("is_profile_complete").
			Default(false),

		field.UUID("institution_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → institutions.id, set when joining by institution code"),

		field.UUID("group_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → tutor_groups.id, set when joining by group code"),

		field.Bool("is_hero").
			Default(false).
			Comment("Entitlement flag for students linked to an institution"),

		field.Bool("tutor_verified").
			Default(false).
			Comment("Set after the tutor's DNI + group code confirmation step"),

		// AES-256-GCM ciphertext; dni_hash is the sha-256 hex used for lookups.
		field.String("dni_encrypted").
			Optional().
			Nillable().
			Sensitive(),

		field.String("dni_hash").
			Optional().
			Nillable().
			MaxLen(64),

		// student detail
		field.String("grade").
			Optional().
			Nillable().
			MaxLen(50),

		field.String("class_section").
			Optional().
			Nillable().
			MaxLen(50),

		// tutor detail
		field.String("work_area").
			Optional().
			Nillable().
			MaxLen(255),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.Bool("email_verified").Default(false),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Default(map[string]any{}),

		field.Time("suspended_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("institution_id"),
		index.Fields("group_id"),
		index.Fields("dni_hash"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
