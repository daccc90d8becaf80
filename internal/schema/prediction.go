package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/internal/riasec"
)

// ---------------------------------------------------------------------------
// PsychologicalPrediction — one RIASEC inventory attempt per student
// ---------------------------------------------------------------------------

type PsychologicalPrediction struct {
	ent.Schema
}

func (PsychologicalPrediction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PsychologicalPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id; one attempt per student"),

		field.JSON("answers", riasec.AnswerSet{}).
			Optional().
			Comment(`question id → "yes"|"no"`),

		field.Float("progress_overall").
			Default(0).
			Min(0).
			Max(100).
			Comment("0-100, recomputed from the full answer set on every write"),

		field.JSON("progress_sections", map[string]float64{}).
			Optional().
			Comment("section name → 0-100"),

		// result is set once by finalization; a non-empty result locks the attempt
		field.String("result").
			Optional().
			Nillable().
			MaxLen(100),

		field.JSON("results", riasec.Tally{}).
			Optional().
			Comment("per-category yes/no tally snapshot taken when progress first reaches 100"),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (PsychologicalPrediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}

// ---------------------------------------------------------------------------
// AcademicPrediction — one grade-based prediction per student
// ---------------------------------------------------------------------------

type AcademicPrediction struct {
	ent.Schema
}

func (AcademicPrediction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AcademicPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id; one attempt per student"),

		field.JSON("grades", map[string]string{}).
			Optional().
			Comment("subject → letter grade"),

		field.String("prediction").
			Optional().
			Nillable().
			MaxLen(100),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (AcademicPrediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
