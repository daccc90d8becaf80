package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// ForumPost — scoped to an association (institution or tutor group)
// ---------------------------------------------------------------------------

type ForumPost struct {
	ent.Schema
}

func (ForumPost) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (ForumPost) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("author_id", uuid.UUID{}).
			Comment("FK → users.id"),

		// exactly one of institution_id / group_id is set
		field.UUID("institution_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("group_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Text("content").
			NotEmpty(),

		// kept equal to the number of surviving comments, updated in the
		// same transaction as the comment write
		field.Int("comment_count").
			Default(0).
			NonNegative(),
	}
}

func (ForumPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("institution_id", "created_at"),
		index.Fields("group_id", "created_at"),
		index.Fields("author_id"),
	}
}

// ---------------------------------------------------------------------------
// ForumComment
// ---------------------------------------------------------------------------

type ForumComment struct {
	ent.Schema
}

func (ForumComment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
		SoftDeleteMixin{},
	}
}

func (ForumComment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("post_id", uuid.UUID{}).
			Comment("FK → forum_posts.id"),

		field.UUID("author_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Text("content").
			NotEmpty(),
	}
}

func (ForumComment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("post_id", "created_at"),
		index.Fields("author_id"),
	}
}
