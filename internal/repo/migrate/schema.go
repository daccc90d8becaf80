// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AcademicPredictionsColumns holds the columns for the "academic_predictions" table.
	AcademicPredictionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "grades", Type: field.TypeJSON, Nullable: true},
		{Name: "prediction", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AcademicPredictionsTable holds the schema information for the "academic_predictions" table.
	AcademicPredictionsTable = &schema.Table{
		Name:       "academic_predictions",
		Columns:    AcademicPredictionsColumns,
		PrimaryKey: []*schema.Column{AcademicPredictionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "academicprediction_user_id",
				Unique:  true,
				Columns: []*schema.Column{AcademicPredictionsColumns[3]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "institution_id", Type: field.TypeUUID, Nullable: true},
		{Name: "group_id", Type: field.TypeUUID, Nullable: true},
		{Name: "participant_a", Type: field.TypeUUID},
		{Name: "participant_b", Type: field.TypeUUID},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_participant_a_participant_b",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[4], ConversationsColumns[5]},
			},
			{
				Name:    "conversation_participant_a",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[4]},
			},
			{
				Name:    "conversation_participant_b",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[5]},
			},
			{
				Name:    "conversation_institution_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
			{
				Name:    "conversation_group_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
		},
	}
	// ForumCommentsColumns holds the columns for the "forum_comments" table.
	ForumCommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "post_id", Type: field.TypeUUID},
		{Name: "author_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// ForumCommentsTable holds the schema information for the "forum_comments" table.
	ForumCommentsTable = &schema.Table{
		Name:       "forum_comments",
		Columns:    ForumCommentsColumns,
		PrimaryKey: []*schema.Column{ForumCommentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "forumcomment_post_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ForumCommentsColumns[3], ForumCommentsColumns[1]},
			},
			{
				Name:    "forumcomment_author_id",
				Unique:  false,
				Columns: []*schema.Column{ForumCommentsColumns[4]},
			},
		},
	}
	// ForumPostsColumns holds the columns for the "forum_posts" table.
	ForumPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "author_id", Type: field.TypeUUID},
		{Name: "institution_id", Type: field.TypeUUID, Nullable: true},
		{Name: "group_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "comment_count", Type: field.TypeInt, Default: 0},
	}
	// ForumPostsTable holds the schema information for the "forum_posts" table.
	ForumPostsTable = &schema.Table{
		Name:       "forum_posts",
		Columns:    ForumPostsColumns,
		PrimaryKey: []*schema.Column{ForumPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "forumpost_institution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ForumPostsColumns[5], ForumPostsColumns[1]},
			},
			{
				Name:    "forumpost_group_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ForumPostsColumns[6], ForumPostsColumns[1]},
			},
			{
				Name:    "forumpost_author_id",
				Unique:  false,
				Columns: []*schema.Column{ForumPostsColumns[4]},
			},
		},
	}
	// HollandQuestionsColumns holds the columns for the "holland_questions" table.
	HollandQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "section", Type: field.TypeEnum, Enums: []string{"actividades", "habilidades", "ocupaciones"}},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"realista", "investigador", "artistico", "social", "emprendedor", "convencional"}},
		{Name: "position", Type: field.TypeInt},
	}
	// HollandQuestionsTable holds the schema information for the "holland_questions" table.
	HollandQuestionsTable = &schema.Table{
		Name:       "holland_questions",
		Columns:    HollandQuestionsColumns,
		PrimaryKey: []*schema.Column{HollandQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hollandquestion_section_position",
				Unique:  false,
				Columns: []*schema.Column{HollandQuestionsColumns[3], HollandQuestionsColumns[5]},
			},
			{
				Name:    "hollandquestion_position",
				Unique:  true,
				Columns: []*schema.Column{HollandQuestionsColumns[5]},
			},
		},
	}
	// InstitutionsColumns holds the columns for the "institutions" table.
	InstitutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "join_code", Type: field.TypeString, Unique: true, Size: 6},
		{Name: "student_limit", Type: field.TypeInt},
		{Name: "tutor_limit", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "director_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "director_email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// InstitutionsTable holds the schema information for the "institutions" table.
	InstitutionsTable = &schema.Table{
		Name:       "institutions",
		Columns:    InstitutionsColumns,
		PrimaryKey: []*schema.Column{InstitutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "institution_join_code",
				Unique:  false,
				Columns: []*schema.Column{InstitutionsColumns[5]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[1]},
			},
			{
				Name:    "message_sender_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// PsychologicalPredictionsColumns holds the columns for the "psychological_predictions" table.
	PsychologicalPredictionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "progress_overall", Type: field.TypeFloat64, Default: 0},
		{Name: "progress_sections", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PsychologicalPredictionsTable holds the schema information for the "psychological_predictions" table.
	PsychologicalPredictionsTable = &schema.Table{
		Name:       "psychological_predictions",
		Columns:    PsychologicalPredictionsColumns,
		PrimaryKey: []*schema.Column{PsychologicalPredictionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "psychologicalprediction_user_id",
				Unique:  true,
				Columns: []*schema.Column{PsychologicalPredictionsColumns[3]},
			},
		},
	}
	// TutorGroupsColumns holds the columns for the "tutor_groups" table.
	TutorGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "tutor_id", Type: field.TypeUUID},
		{Name: "join_code", Type: field.TypeString, Unique: true, Size: 6},
		{Name: "student_limit", Type: field.TypeInt, Default: 5},
		{Name: "tutor_limit", Type: field.TypeInt, Default: 1},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// TutorGroupsTable holds the schema information for the "tutor_groups" table.
	TutorGroupsTable = &schema.Table{
		Name:       "tutor_groups",
		Columns:    TutorGroupsColumns,
		PrimaryKey: []*schema.Column{TutorGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorgroup_join_code",
				Unique:  false,
				Columns: []*schema.Column{TutorGroupsColumns[6]},
			},
			{
				Name:    "tutorgroup_tutor_id",
				Unique:  false,
				Columns: []*schema.Column{TutorGroupsColumns[5]},
			},
		},
	}
	// TutorRequestsColumns holds the columns for the "tutor_requests" table.
	TutorRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "dni_hash", Type: field.TypeString, Size: 64},
		{Name: "work_area", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "motivation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "decided_by", Type: field.TypeUUID, Nullable: true},
	}
	// TutorRequestsTable holds the schema information for the "tutor_requests" table.
	TutorRequestsTable = &schema.Table{
		Name:       "tutor_requests",
		Columns:    TutorRequestsColumns,
		PrimaryKey: []*schema.Column{TutorRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorrequest_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestsColumns[10], TutorRequestsColumns[1]},
			},
			{
				Name:    "tutorrequest_dni_hash",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Nullable: true, Enums: []string{"student", "tutor", "admin"}},
		{Name: "is_profile_complete", Type: field.TypeBool, Default: false},
		{Name: "institution_id", Type: field.TypeUUID, Nullable: true},
		{Name: "group_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_hero", Type: field.TypeBool, Default: false},
		{Name: "tutor_verified", Type: field.TypeBool, Default: false},
		{Name: "dni_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "dni_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "grade", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "class_section", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "work_area", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_institution_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[10]},
			},
			{
				Name:    "user_group_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[11]},
			},
			{
				Name:    "user_dni_hash",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[15]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AcademicPredictionsTable,
		ConversationsTable,
		ForumCommentsTable,
		ForumPostsTable,
		HollandQuestionsTable,
		InstitutionsTable,
		MessagesTable,
		NotificationsTable,
		PsychologicalPredictionsTable,
		TutorGroupsTable,
		TutorRequestsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
