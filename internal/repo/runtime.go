// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/academicprediction"
	"github.com/orienta-pe/orienta_backend/internal/repo/conversation"
	"github.com/orienta-pe/orienta_backend/internal/repo/forumcomment"
	"github.com/orienta-pe/orienta_backend/internal/repo/forumpost"
	"github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
	"github.com/orienta-pe/orienta_backend/internal/repo/institution"
	"github.com/orienta-pe/orienta_backend/internal/repo/message"
	"github.com/orienta-pe/orienta_backend/internal/repo/notification"
	"github.com/orienta-pe/orienta_backend/internal/repo/psychologicalprediction"
	"github.com/orienta-pe/orienta_backend/internal/repo/tutorgroup"
	"github.com/orienta-pe/orienta_backend/internal/repo/tutorrequest"
	"github.com/orienta-pe/orienta_backend/internal/repo/user"
	"github.com/orienta-pe/orienta_backend/internal/repo/usersession"
	"github.com/orienta-pe/orienta_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	academicpredictionMixin := schema.AcademicPrediction{}.Mixin()
	academicpredictionMixinFields0 := academicpredictionMixin[0].Fields()
	_ = academicpredictionMixinFields0
	academicpredictionMixinFields1 := academicpredictionMixin[1].Fields()
	_ = academicpredictionMixinFields1
	academicpredictionFields := schema.AcademicPrediction{}.Fields()
	_ = academicpredictionFields
	// academicpredictionDescCreatedAt is the schema descriptor for created_at field.
	academicpredictionDescCreatedAt := academicpredictionMixinFields1[0].Descriptor()
	// academicprediction.DefaultCreatedAt holds the default value on creation for the created_at field.
	academicprediction.DefaultCreatedAt = academicpredictionDescCreatedAt.Default.(func() time.Time)
	// academicpredictionDescUpdatedAt is the schema descriptor for updated_at field.
	academicpredictionDescUpdatedAt := academicpredictionMixinFields1[1].Descriptor()
	// academicprediction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	academicprediction.DefaultUpdatedAt = academicpredictionDescUpdatedAt.Default.(func() time.Time)
	// academicprediction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	academicprediction.UpdateDefaultUpdatedAt = academicpredictionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// academicpredictionDescPrediction is the schema descriptor for prediction field.
	academicpredictionDescPrediction := academicpredictionFields[2].Descriptor()
	// academicprediction.PredictionValidator is a validator for the "prediction" field. It is called by the builders before save.
	academicprediction.PredictionValidator = academicpredictionDescPrediction.Validators[0].(func(string) error)
	// academicpredictionDescID is the schema descriptor for id field.
	academicpredictionDescID := academicpredictionMixinFields0[0].Descriptor()
	// academicprediction.DefaultID holds the default value on creation for the id field.
	academicprediction.DefaultID = academicpredictionDescID.Default.(func() uuid.UUID)
	conversationMixin := schema.Conversation{}.Mixin()
	conversationMixinFields0 := conversationMixin[0].Fields()
	_ = conversationMixinFields0
	conversationMixinFields1 := conversationMixin[1].Fields()
	_ = conversationMixinFields1
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationMixinFields1[0].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescIsActive is the schema descriptor for is_active field.
	conversationDescIsActive := conversationFields[5].Descriptor()
	// conversation.DefaultIsActive holds the default value on creation for the is_active field.
	conversation.DefaultIsActive = conversationDescIsActive.Default.(bool)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationMixinFields0[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	forumcommentMixin := schema.ForumComment{}.Mixin()
	forumcommentMixinFields0 := forumcommentMixin[0].Fields()
	_ = forumcommentMixinFields0
	forumcommentMixinFields1 := forumcommentMixin[1].Fields()
	_ = forumcommentMixinFields1
	forumcommentFields := schema.ForumComment{}.Fields()
	_ = forumcommentFields
	// forumcommentDescCreatedAt is the schema descriptor for created_at field.
	forumcommentDescCreatedAt := forumcommentMixinFields1[0].Descriptor()
	// forumcomment.DefaultCreatedAt holds the default value on creation for the created_at field.
	forumcomment.DefaultCreatedAt = forumcommentDescCreatedAt.Default.(func() time.Time)
	// forumcommentDescContent is the schema descriptor for content field.
	forumcommentDescContent := forumcommentFields[2].Descriptor()
	// forumcomment.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	forumcomment.ContentValidator = forumcommentDescContent.Validators[0].(func(string) error)
	// forumcommentDescID is the schema descriptor for id field.
	forumcommentDescID := forumcommentMixinFields0[0].Descriptor()
	// forumcomment.DefaultID holds the default value on creation for the id field.
	forumcomment.DefaultID = forumcommentDescID.Default.(func() uuid.UUID)
	forumpostMixin := schema.ForumPost{}.Mixin()
	forumpostMixinFields0 := forumpostMixin[0].Fields()
	_ = forumpostMixinFields0
	forumpostMixinFields1 := forumpostMixin[1].Fields()
	_ = forumpostMixinFields1
	forumpostFields := schema.ForumPost{}.Fields()
	_ = forumpostFields
	// forumpostDescCreatedAt is the schema descriptor for created_at field.
	forumpostDescCreatedAt := forumpostMixinFields1[0].Descriptor()
	// forumpost.DefaultCreatedAt holds the default value on creation for the created_at field.
	forumpost.DefaultCreatedAt = forumpostDescCreatedAt.Default.(func() time.Time)
	// forumpostDescUpdatedAt is the schema descriptor for updated_at field.
	forumpostDescUpdatedAt := forumpostMixinFields1[1].Descriptor()
	// forumpost.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	forumpost.DefaultUpdatedAt = forumpostDescUpdatedAt.Default.(func() time.Time)
	// forumpost.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	forumpost.UpdateDefaultUpdatedAt = forumpostDescUpdatedAt.UpdateDefault.(func() time.Time)
	// forumpostDescTitle is the schema descriptor for title field.
	forumpostDescTitle := forumpostFields[3].Descriptor()
	// forumpost.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	forumpost.TitleValidator = func() func(string) error {
		validators := forumpostDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// forumpostDescContent is the schema descriptor for content field.
	forumpostDescContent := forumpostFields[4].Descriptor()
	// forumpost.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	forumpost.ContentValidator = forumpostDescContent.Validators[0].(func(string) error)
	// forumpostDescCommentCount is the schema descriptor for comment_count field.
	forumpostDescCommentCount := forumpostFields[5].Descriptor()
	// forumpost.DefaultCommentCount holds the default value on creation for the comment_count field.
	forumpost.DefaultCommentCount = forumpostDescCommentCount.Default.(int)
	// forumpost.CommentCountValidator is a validator for the "comment_count" field. It is called by the builders before save.
	forumpost.CommentCountValidator = forumpostDescCommentCount.Validators[0].(func(int) error)
	// forumpostDescID is the schema descriptor for id field.
	forumpostDescID := forumpostMixinFields0[0].Descriptor()
	// forumpost.DefaultID holds the default value on creation for the id field.
	forumpost.DefaultID = forumpostDescID.Default.(func() uuid.UUID)
	hollandquestionMixin := schema.HollandQuestion{}.Mixin()
	hollandquestionMixinFields0 := hollandquestionMixin[0].Fields()
	_ = hollandquestionMixinFields0
	hollandquestionMixinFields1 := hollandquestionMixin[1].Fields()
	_ = hollandquestionMixinFields1
	hollandquestionFields := schema.HollandQuestion{}.Fields()
	_ = hollandquestionFields
	// hollandquestionDescCreatedAt is the schema descriptor for created_at field.
	hollandquestionDescCreatedAt := hollandquestionMixinFields1[0].Descriptor()
	// hollandquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	hollandquestion.DefaultCreatedAt = hollandquestionDescCreatedAt.Default.(func() time.Time)
	// hollandquestionDescText is the schema descriptor for text field.
	hollandquestionDescText := hollandquestionFields[0].Descriptor()
	// hollandquestion.TextValidator is a validator for the "text" field. It is called by the builders before save.
	hollandquestion.TextValidator = hollandquestionDescText.Validators[0].(func(string) error)
	// hollandquestionDescPosition is the schema descriptor for position field.
	hollandquestionDescPosition := hollandquestionFields[3].Descriptor()
	// hollandquestion.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	hollandquestion.PositionValidator = hollandquestionDescPosition.Validators[0].(func(int) error)
	// hollandquestionDescID is the schema descriptor for id field.
	hollandquestionDescID := hollandquestionMixinFields0[0].Descriptor()
	// hollandquestion.DefaultID holds the default value on creation for the id field.
	hollandquestion.DefaultID = hollandquestionDescID.Default.(func() uuid.UUID)
	institutionMixin := schema.Institution{}.Mixin()
	institutionMixinFields0 := institutionMixin[0].Fields()
	_ = institutionMixinFields0
	institutionMixinFields1 := institutionMixin[1].Fields()
	_ = institutionMixinFields1
	institutionFields := schema.Institution{}.Fields()
	_ = institutionFields
	// institutionDescCreatedAt is the schema descriptor for created_at field.
	institutionDescCreatedAt := institutionMixinFields1[0].Descriptor()
	// institution.DefaultCreatedAt holds the default value on creation for the created_at field.
	institution.DefaultCreatedAt = institutionDescCreatedAt.Default.(func() time.Time)
	// institutionDescUpdatedAt is the schema descriptor for updated_at field.
	institutionDescUpdatedAt := institutionMixinFields1[1].Descriptor()
	// institution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	institution.DefaultUpdatedAt = institutionDescUpdatedAt.Default.(func() time.Time)
	// institution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	institution.UpdateDefaultUpdatedAt = institutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// institutionDescName is the schema descriptor for name field.
	institutionDescName := institutionFields[0].Descriptor()
	// institution.NameValidator is a validator for the "name" field. It is called by the builders before save.
	institution.NameValidator = func() func(string) error {
		validators := institutionDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// institutionDescJoinCode is the schema descriptor for join_code field.
	institutionDescJoinCode := institutionFields[1].Descriptor()
	// institution.JoinCodeValidator is a validator for the "join_code" field. It is called by the builders before save.
	institution.JoinCodeValidator = func() func(string) error {
		validators := institutionDescJoinCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(join_code string) error {
			for _, fn := range fns {
				if err := fn(join_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// institutionDescStudentLimit is the schema descriptor for student_limit field.
	institutionDescStudentLimit := institutionFields[2].Descriptor()
	// institution.StudentLimitValidator is a validator for the "student_limit" field. It is called by the builders before save.
	institution.StudentLimitValidator = institutionDescStudentLimit.Validators[0].(func(int) error)
	// institutionDescTutorLimit is the schema descriptor for tutor_limit field.
	institutionDescTutorLimit := institutionFields[3].Descriptor()
	// institution.TutorLimitValidator is a validator for the "tutor_limit" field. It is called by the builders before save.
	institution.TutorLimitValidator = institutionDescTutorLimit.Validators[0].(func(int) error)
	// institutionDescDirectorName is the schema descriptor for director_name field.
	institutionDescDirectorName := institutionFields[5].Descriptor()
	// institution.DirectorNameValidator is a validator for the "director_name" field. It is called by the builders before save.
	institution.DirectorNameValidator = institutionDescDirectorName.Validators[0].(func(string) error)
	// institutionDescDirectorEmail is the schema descriptor for director_email field.
	institutionDescDirectorEmail := institutionFields[6].Descriptor()
	// institution.DirectorEmailValidator is a validator for the "director_email" field. It is called by the builders before save.
	institution.DirectorEmailValidator = institutionDescDirectorEmail.Validators[0].(func(string) error)
	// institutionDescPhone is the schema descriptor for phone field.
	institutionDescPhone := institutionFields[7].Descriptor()
	// institution.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	institution.PhoneValidator = institutionDescPhone.Validators[0].(func(string) error)
	// institutionDescCity is the schema descriptor for city field.
	institutionDescCity := institutionFields[9].Descriptor()
	// institution.CityValidator is a validator for the "city" field. It is called by the builders before save.
	institution.CityValidator = institutionDescCity.Validators[0].(func(string) error)
	// institutionDescIsActive is the schema descriptor for is_active field.
	institutionDescIsActive := institutionFields[10].Descriptor()
	// institution.DefaultIsActive holds the default value on creation for the is_active field.
	institution.DefaultIsActive = institutionDescIsActive.Default.(bool)
	// institutionDescID is the schema descriptor for id field.
	institutionDescID := institutionMixinFields0[0].Descriptor()
	// institution.DefaultID holds the default value on creation for the id field.
	institution.DefaultID = institutionDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[2].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = messageDescContent.Validators[0].(func(string) error)
	// messageDescIsRead is the schema descriptor for is_read field.
	messageDescIsRead := messageFields[3].Descriptor()
	// message.DefaultIsRead holds the default value on creation for the is_read field.
	message.DefaultIsRead = messageDescIsRead.Default.(bool)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	psychologicalpredictionMixin := schema.PsychologicalPrediction{}.Mixin()
	psychologicalpredictionMixinFields0 := psychologicalpredictionMixin[0].Fields()
	_ = psychologicalpredictionMixinFields0
	psychologicalpredictionMixinFields1 := psychologicalpredictionMixin[1].Fields()
	_ = psychologicalpredictionMixinFields1
	psychologicalpredictionFields := schema.PsychologicalPrediction{}.Fields()
	_ = psychologicalpredictionFields
	// psychologicalpredictionDescCreatedAt is the schema descriptor for created_at field.
	psychologicalpredictionDescCreatedAt := psychologicalpredictionMixinFields1[0].Descriptor()
	// psychologicalprediction.DefaultCreatedAt holds the default value on creation for the created_at field.
	psychologicalprediction.DefaultCreatedAt = psychologicalpredictionDescCreatedAt.Default.(func() time.Time)
	// psychologicalpredictionDescUpdatedAt is the schema descriptor for updated_at field.
	psychologicalpredictionDescUpdatedAt := psychologicalpredictionMixinFields1[1].Descriptor()
	// psychologicalprediction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	psychologicalprediction.DefaultUpdatedAt = psychologicalpredictionDescUpdatedAt.Default.(func() time.Time)
	// psychologicalprediction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	psychologicalprediction.UpdateDefaultUpdatedAt = psychologicalpredictionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// psychologicalpredictionDescProgressOverall is the schema descriptor for progress_overall field.
	psychologicalpredictionDescProgressOverall := psychologicalpredictionFields[2].Descriptor()
	// psychologicalprediction.DefaultProgressOverall holds the default value on creation for the progress_overall field.
	psychologicalprediction.DefaultProgressOverall = psychologicalpredictionDescProgressOverall.Default.(float64)
	// psychologicalprediction.ProgressOverallValidator is a validator for the "progress_overall" field. It is called by the builders before save.
	psychologicalprediction.ProgressOverallValidator = func() func(float64) error {
		validators := psychologicalpredictionDescProgressOverall.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(progress_overall float64) error {
			for _, fn := range fns {
				if err := fn(progress_overall); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// psychologicalpredictionDescResult is the schema descriptor for result field.
	psychologicalpredictionDescResult := psychologicalpredictionFields[4].Descriptor()
	// psychologicalprediction.ResultValidator is a validator for the "result" field. It is called by the builders before save.
	psychologicalprediction.ResultValidator = psychologicalpredictionDescResult.Validators[0].(func(string) error)
	// psychologicalpredictionDescID is the schema descriptor for id field.
	psychologicalpredictionDescID := psychologicalpredictionMixinFields0[0].Descriptor()
	// psychologicalprediction.DefaultID holds the default value on creation for the id field.
	psychologicalprediction.DefaultID = psychologicalpredictionDescID.Default.(func() uuid.UUID)
	tutorgroupMixin := schema.TutorGroup{}.Mixin()
	tutorgroupMixinFields0 := tutorgroupMixin[0].Fields()
	_ = tutorgroupMixinFields0
	tutorgroupMixinFields1 := tutorgroupMixin[1].Fields()
	_ = tutorgroupMixinFields1
	tutorgroupFields := schema.TutorGroup{}.Fields()
	_ = tutorgroupFields
	// tutorgroupDescCreatedAt is the schema descriptor for created_at field.
	tutorgroupDescCreatedAt := tutorgroupMixinFields1[0].Descriptor()
	// tutorgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	tutorgroup.DefaultCreatedAt = tutorgroupDescCreatedAt.Default.(func() time.Time)
	// tutorgroupDescUpdatedAt is the schema descriptor for updated_at field.
	tutorgroupDescUpdatedAt := tutorgroupMixinFields1[1].Descriptor()
	// tutorgroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tutorgroup.DefaultUpdatedAt = tutorgroupDescUpdatedAt.Default.(func() time.Time)
	// tutorgroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tutorgroup.UpdateDefaultUpdatedAt = tutorgroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tutorgroupDescName is the schema descriptor for name field.
	tutorgroupDescName := tutorgroupFields[0].Descriptor()
	// tutorgroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tutorgroup.NameValidator = func() func(string) error {
		validators := tutorgroupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tutorgroupDescJoinCode is the schema descriptor for join_code field.
	tutorgroupDescJoinCode := tutorgroupFields[2].Descriptor()
	// tutorgroup.JoinCodeValidator is a validator for the "join_code" field. It is called by the builders before save.
	tutorgroup.JoinCodeValidator = func() func(string) error {
		validators := tutorgroupDescJoinCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(join_code string) error {
			for _, fn := range fns {
				if err := fn(join_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tutorgroupDescStudentLimit is the schema descriptor for student_limit field.
	tutorgroupDescStudentLimit := tutorgroupFields[3].Descriptor()
	// tutorgroup.DefaultStudentLimit holds the default value on creation for the student_limit field.
	tutorgroup.DefaultStudentLimit = tutorgroupDescStudentLimit.Default.(int)
	// tutorgroup.StudentLimitValidator is a validator for the "student_limit" field. It is called by the builders before save.
	tutorgroup.StudentLimitValidator = tutorgroupDescStudentLimit.Validators[0].(func(int) error)
	// tutorgroupDescTutorLimit is the schema descriptor for tutor_limit field.
	tutorgroupDescTutorLimit := tutorgroupFields[4].Descriptor()
	// tutorgroup.DefaultTutorLimit holds the default value on creation for the tutor_limit field.
	tutorgroup.DefaultTutorLimit = tutorgroupDescTutorLimit.Default.(int)
	// tutorgroup.TutorLimitValidator is a validator for the "tutor_limit" field. It is called by the builders before save.
	tutorgroup.TutorLimitValidator = tutorgroupDescTutorLimit.Validators[0].(func(int) error)
	// tutorgroupDescIsActive is the schema descriptor for is_active field.
	tutorgroupDescIsActive := tutorgroupFields[5].Descriptor()
	// tutorgroup.DefaultIsActive holds the default value on creation for the is_active field.
	tutorgroup.DefaultIsActive = tutorgroupDescIsActive.Default.(bool)
	// tutorgroupDescID is the schema descriptor for id field.
	tutorgroupDescID := tutorgroupMixinFields0[0].Descriptor()
	// tutorgroup.DefaultID holds the default value on creation for the id field.
	tutorgroup.DefaultID = tutorgroupDescID.Default.(func() uuid.UUID)
	tutorrequestMixin := schema.TutorRequest{}.Mixin()
	tutorrequestMixinFields0 := tutorrequestMixin[0].Fields()
	_ = tutorrequestMixinFields0
	tutorrequestMixinFields1 := tutorrequestMixin[1].Fields()
	_ = tutorrequestMixinFields1
	tutorrequestFields := schema.TutorRequest{}.Fields()
	_ = tutorrequestFields
	// tutorrequestDescCreatedAt is the schema descriptor for created_at field.
	tutorrequestDescCreatedAt := tutorrequestMixinFields1[0].Descriptor()
	// tutorrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	tutorrequest.DefaultCreatedAt = tutorrequestDescCreatedAt.Default.(func() time.Time)
	// tutorrequestDescUpdatedAt is the schema descriptor for updated_at field.
	tutorrequestDescUpdatedAt := tutorrequestMixinFields1[1].Descriptor()
	// tutorrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tutorrequest.DefaultUpdatedAt = tutorrequestDescUpdatedAt.Default.(func() time.Time)
	// tutorrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tutorrequest.UpdateDefaultUpdatedAt = tutorrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tutorrequestDescEmail is the schema descriptor for email field.
	tutorrequestDescEmail := tutorrequestFields[1].Descriptor()
	// tutorrequest.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	tutorrequest.EmailValidator = func() func(string) error {
		validators := tutorrequestDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tutorrequestDescFirstName is the schema descriptor for first_name field.
	tutorrequestDescFirstName := tutorrequestFields[2].Descriptor()
	// tutorrequest.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	tutorrequest.FirstNameValidator = func() func(string) error {
		validators := tutorrequestDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tutorrequestDescLastName is the schema descriptor for last_name field.
	tutorrequestDescLastName := tutorrequestFields[3].Descriptor()
	// tutorrequest.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	tutorrequest.LastNameValidator = func() func(string) error {
		validators := tutorrequestDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tutorrequestDescDniHash is the schema descriptor for dni_hash field.
	tutorrequestDescDniHash := tutorrequestFields[4].Descriptor()
	// tutorrequest.DniHashValidator is a validator for the "dni_hash" field. It is called by the builders before save.
	tutorrequest.DniHashValidator = func() func(string) error {
		validators := tutorrequestDescDniHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(dni_hash string) error {
			for _, fn := range fns {
				if err := fn(dni_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tutorrequestDescWorkArea is the schema descriptor for work_area field.
	tutorrequestDescWorkArea := tutorrequestFields[5].Descriptor()
	// tutorrequest.WorkAreaValidator is a validator for the "work_area" field. It is called by the builders before save.
	tutorrequest.WorkAreaValidator = tutorrequestDescWorkArea.Validators[0].(func(string) error)
	// tutorrequestDescID is the schema descriptor for id field.
	tutorrequestDescID := tutorrequestMixinFields0[0].Descriptor()
	// tutorrequest.DefaultID holds the default value on creation for the id field.
	tutorrequest.DefaultID = tutorrequestDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescIsProfileComplete is the schema descriptor for is_profile_complete field.
	userDescIsProfileComplete := userFields[5].Descriptor()
	// user.DefaultIsProfileComplete holds the default value on creation for the is_profile_complete field.
	user.DefaultIsProfileComplete = userDescIsProfileComplete.Default.(bool)
	// userDescIsHero is the schema descriptor for is_hero field.
	userDescIsHero := userFields[8].Descriptor()
	// user.DefaultIsHero holds the default value on creation for the is_hero field.
	user.DefaultIsHero = userDescIsHero.Default.(bool)
	// userDescTutorVerified is the schema descriptor for tutor_verified field.
	userDescTutorVerified := userFields[9].Descriptor()
	// user.DefaultTutorVerified holds the default value on creation for the tutor_verified field.
	user.DefaultTutorVerified = userDescTutorVerified.Default.(bool)
	// userDescDniHash is the schema descriptor for dni_hash field.
	userDescDniHash := userFields[11].Descriptor()
	// user.DniHashValidator is a validator for the "dni_hash" field. It is called by the builders before save.
	user.DniHashValidator = userDescDniHash.Validators[0].(func(string) error)
	// userDescGrade is the schema descriptor for grade field.
	userDescGrade := userFields[12].Descriptor()
	// user.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	user.GradeValidator = userDescGrade.Validators[0].(func(string) error)
	// userDescClassSection is the schema descriptor for class_section field.
	userDescClassSection := userFields[13].Descriptor()
	// user.ClassSectionValidator is a validator for the "class_section" field. It is called by the builders before save.
	user.ClassSectionValidator = userDescClassSection.Validators[0].(func(string) error)
	// userDescWorkArea is the schema descriptor for work_area field.
	userDescWorkArea := userFields[14].Descriptor()
	// user.WorkAreaValidator is a validator for the "work_area" field. It is called by the builders before save.
	user.WorkAreaValidator = userDescWorkArea.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[16].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[18].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescMetadata is the schema descriptor for metadata field.
	userDescMetadata := userFields[21].Descriptor()
	// user.DefaultMetadata holds the default value on creation for the metadata field.
	user.DefaultMetadata = userDescMetadata.Default.(map[string]interface{})
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
