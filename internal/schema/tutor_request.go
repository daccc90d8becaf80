package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TutorRequest is an onboarding application reviewed by an admin.
// A rejected request is reused in place when the same person reapplies,
// so at most one row exists per applicant email.
type TutorRequest struct {
	ent.Schema
}

func (TutorRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TutorRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id of the applicant"),

		field.String("email").
			NotEmpty().
			Unique().
			MaxLen(255),

		field.String("first_name").
			MaxLen(100).
			NotEmpty(),

		field.String("last_name").
			MaxLen(100).
			NotEmpty(),

		// sha-256 hex of the applicant DNI, used for the active-request
		// uniqueness check without storing plaintext
		field.String("dni_hash").
			NotEmpty().
			MaxLen(64),

		field.String("work_area").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("motivation").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),

		field.Text("rejection_reason").
			Optional().
			Nillable(),

		field.Time("decided_at").
			Optional().
			Nillable(),

		field.UUID("decided_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Admin user id that approved or rejected"),
	}
}

func (TutorRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("dni_hash"),
	}
}
