// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AcademicPrediction is the client for interacting with the AcademicPrediction builders.
	AcademicPrediction *AcademicPredictionClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// ForumComment is the client for interacting with the ForumComment builders.
	ForumComment *ForumCommentClient
	// ForumPost is the client for interacting with the ForumPost builders.
	ForumPost *ForumPostClient
	// HollandQuestion is the client for interacting with the HollandQuestion builders.
	HollandQuestion *HollandQuestionClient
	// Institution is the client for interacting with the Institution builders.
	Institution *InstitutionClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// PsychologicalPrediction is the client for interacting with the PsychologicalPrediction builders.
	PsychologicalPrediction *PsychologicalPredictionClient
	// TutorGroup is the client for interacting with the TutorGroup builders.
	TutorGroup *TutorGroupClient
	// TutorRequest is the client for interacting with the TutorRequest builders.
	TutorRequest *TutorRequestClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AcademicPrediction = NewAcademicPredictionClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.ForumComment = NewForumCommentClient(c.config)
	c.ForumPost = NewForumPostClient(c.config)
	c.HollandQuestion = NewHollandQuestionClient(c.config)
	c.Institution = NewInstitutionClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.PsychologicalPrediction = NewPsychologicalPredictionClient(c.config)
	c.TutorGroup = NewTutorGroupClient(c.config)
	c.TutorRequest = NewTutorRequestClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                     ctx,
		config:                  cfg,
		AcademicPrediction:      NewAcademicPredictionClient(cfg),
		Conversation:            NewConversationClient(cfg),
		ForumComment:            NewForumCommentClient(cfg),
		ForumPost:               NewForumPostClient(cfg),
		HollandQuestion:         NewHollandQuestionClient(cfg),
		Institution:             NewInstitutionClient(cfg),
		Message:                 NewMessageClient(cfg),
		Notification:            NewNotificationClient(cfg),
		PsychologicalPrediction: NewPsychologicalPredictionClient(cfg),
		TutorGroup:              NewTutorGroupClient(cfg),
		TutorRequest:            NewTutorRequestClient(cfg),
		User:                    NewUserClient(cfg),
		UserSession:             NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                     ctx,
		config:                  cfg,
		AcademicPrediction:      NewAcademicPredictionClient(cfg),
		Conversation:            NewConversationClient(cfg),
		ForumComment:            NewForumCommentClient(cfg),
		ForumPost:               NewForumPostClient(cfg),
		HollandQuestion:         NewHollandQuestionClient(cfg),
		Institution:             NewInstitutionClient(cfg),
		Message:                 NewMessageClient(cfg),
		Notification:            NewNotificationClient(cfg),
		PsychologicalPrediction: NewPsychologicalPredictionClient(cfg),
		TutorGroup:              NewTutorGroupClient(cfg),
		TutorRequest:            NewTutorRequestClient(cfg),
		User:                    NewUserClient(cfg),
		UserSession:             NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AcademicPrediction.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AcademicPrediction, c.Conversation, c.ForumComment, c.ForumPost,
		c.HollandQuestion, c.Institution, c.Message, c.Notification,
		c.PsychologicalPrediction, c.TutorGroup, c.TutorRequest, c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AcademicPrediction, c.Conversation, c.ForumComment, c.ForumPost,
		c.HollandQuestion, c.Institution, c.Message, c.Notification,
		c.PsychologicalPrediction, c.TutorGroup, c.TutorRequest, c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AcademicPredictionMutation:
		return c.AcademicPrediction.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *ForumCommentMutation:
		return c.ForumComment.mutate(ctx, m)
	case *ForumPostMutation:
		return c.ForumPost.mutate(ctx, m)
	case *HollandQuestionMutation:
		return c.HollandQuestion.mutate(ctx, m)
	case *InstitutionMutation:
		return c.Institution.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PsychologicalPredictionMutation:
		return c.PsychologicalPrediction.mutate(ctx, m)
	case *TutorGroupMutation:
		return c.TutorGroup.mutate(ctx, m)
	case *TutorRequestMutation:
		return c.TutorRequest.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AcademicPredictionClient is a client for the AcademicPrediction schema.
type AcademicPredictionClient struct {
	config
}

// NewAcademicPredictionClient returns a client for the AcademicPrediction from the given config.
func NewAcademicPredictionClient(c config) *AcademicPredictionClient {
	return &AcademicPredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `academicprediction.Hooks(f(g(h())))`.
func (c *AcademicPredictionClient) Use(hooks ...Hook) {
	c.hooks.AcademicPrediction = append(c.hooks.AcademicPrediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `academicprediction.Intercept(f(g(h())))`.
func (c *AcademicPredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AcademicPrediction = append(c.inters.AcademicPrediction, interceptors...)
}

// Create returns a builder for creating a AcademicPrediction entity.
func (c *AcademicPredictionClient) Create() *AcademicPredictionCreate {
	mutation := newAcademicPredictionMutation(c.config, OpCreate)
	return &AcademicPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AcademicPrediction entities.
func (c *AcademicPredictionClient) CreateBulk(builders ...*AcademicPredictionCreate) *AcademicPredictionCreateBulk {
	return &AcademicPredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AcademicPredictionClient) MapCreateBulk(slice any, setFunc func(*AcademicPredictionCreate, int)) *AcademicPredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AcademicPredictionCreateBulk{err: fmt.Errorf("calling to AcademicPredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AcademicPredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AcademicPredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AcademicPrediction.
func (c *AcademicPredictionClient) Update() *AcademicPredictionUpdate {
	mutation := newAcademicPredictionMutation(c.config, OpUpdate)
	return &AcademicPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AcademicPredictionClient) UpdateOne(_m *AcademicPrediction) *AcademicPredictionUpdateOne {
	mutation := newAcademicPredictionMutation(c.config, OpUpdateOne, withAcademicPrediction(_m))
	return &AcademicPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AcademicPredictionClient) UpdateOneID(id uuid.UUID) *AcademicPredictionUpdateOne {
	mutation := newAcademicPredictionMutation(c.config, OpUpdateOne, withAcademicPredictionID(id))
	return &AcademicPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AcademicPrediction.
func (c *AcademicPredictionClient) Delete() *AcademicPredictionDelete {
	mutation := newAcademicPredictionMutation(c.config, OpDelete)
	return &AcademicPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AcademicPredictionClient) DeleteOne(_m *AcademicPrediction) *AcademicPredictionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AcademicPredictionClient) DeleteOneID(id uuid.UUID) *AcademicPredictionDeleteOne {
	builder := c.Delete().Where(academicprediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AcademicPredictionDeleteOne{builder}
}

// Query returns a query builder for AcademicPrediction.
func (c *AcademicPredictionClient) Query() *AcademicPredictionQuery {
	return &AcademicPredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAcademicPrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a AcademicPrediction entity by its id.
func (c *AcademicPredictionClient) Get(ctx context.Context, id uuid.UUID) (*AcademicPrediction, error) {
	return c.Query().Where(academicprediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AcademicPredictionClient) GetX(ctx context.Context, id uuid.UUID) *AcademicPrediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AcademicPredictionClient) Hooks() []Hook {
	return c.hooks.AcademicPrediction
}

// Interceptors returns the client interceptors.
func (c *AcademicPredictionClient) Interceptors() []Interceptor {
	return c.inters.AcademicPrediction
}

func (c *AcademicPredictionClient) mutate(ctx context.Context, m *AcademicPredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AcademicPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AcademicPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AcademicPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AcademicPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AcademicPrediction mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id uuid.UUID) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id uuid.UUID) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id uuid.UUID) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Conversation mutation op: %q", m.Op())
	}
}

// ForumCommentClient is a client for the ForumComment schema.
type ForumCommentClient struct {
	config
}

// NewForumCommentClient returns a client for the ForumComment from the given config.
func NewForumCommentClient(c config) *ForumCommentClient {
	return &ForumCommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `forumcomment.Hooks(f(g(h())))`.
func (c *ForumCommentClient) Use(hooks ...Hook) {
	c.hooks.ForumComment = append(c.hooks.ForumComment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `forumcomment.Intercept(f(g(h())))`.
func (c *ForumCommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.ForumComment = append(c.inters.ForumComment, interceptors...)
}

// Create returns a builder for creating a ForumComment entity.
func (c *ForumCommentClient) Create() *ForumCommentCreate {
	mutation := newForumCommentMutation(c.config, OpCreate)
	return &ForumCommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ForumComment entities.
func (c *ForumCommentClient) CreateBulk(builders ...*ForumCommentCreate) *ForumCommentCreateBulk {
	return &ForumCommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ForumCommentClient) MapCreateBulk(slice any, setFunc func(*ForumCommentCreate, int)) *ForumCommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ForumCommentCreateBulk{err: fmt.Errorf("calling to ForumCommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ForumCommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ForumCommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ForumComment.
func (c *ForumCommentClient) Update() *ForumCommentUpdate {
	mutation := newForumCommentMutation(c.config, OpUpdate)
	return &ForumCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ForumCommentClient) UpdateOne(_m *ForumComment) *ForumCommentUpdateOne {
	mutation := newForumCommentMutation(c.config, OpUpdateOne, withForumComment(_m))
	return &ForumCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ForumCommentClient) UpdateOneID(id uuid.UUID) *ForumCommentUpdateOne {
	mutation := newForumCommentMutation(c.config, OpUpdateOne, withForumCommentID(id))
	return &ForumCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ForumComment.
func (c *ForumCommentClient) Delete() *ForumCommentDelete {
	mutation := newForumCommentMutation(c.config, OpDelete)
	return &ForumCommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ForumCommentClient) DeleteOne(_m *ForumComment) *ForumCommentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ForumCommentClient) DeleteOneID(id uuid.UUID) *ForumCommentDeleteOne {
	builder := c.Delete().Where(forumcomment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ForumCommentDeleteOne{builder}
}

// Query returns a query builder for ForumComment.
func (c *ForumCommentClient) Query() *ForumCommentQuery {
	return &ForumCommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeForumComment},
		inters: c.Interceptors(),
	}
}

// Get returns a ForumComment entity by its id.
func (c *ForumCommentClient) Get(ctx context.Context, id uuid.UUID) (*ForumComment, error) {
	return c.Query().Where(forumcomment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ForumCommentClient) GetX(ctx context.Context, id uuid.UUID) *ForumComment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ForumCommentClient) Hooks() []Hook {
	return c.hooks.ForumComment
}

// Interceptors returns the client interceptors.
func (c *ForumCommentClient) Interceptors() []Interceptor {
	return c.inters.ForumComment
}

func (c *ForumCommentClient) mutate(ctx context.Context, m *ForumCommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ForumCommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ForumCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ForumCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ForumCommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ForumComment mutation op: %q", m.Op())
	}
}

// ForumPostClient is a client for the ForumPost schema.
type ForumPostClient struct {
	config
}

// NewForumPostClient returns a client for the ForumPost from the given config.
func NewForumPostClient(c config) *ForumPostClient {
	return &ForumPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `forumpost.Hooks(f(g(h())))`.
func (c *ForumPostClient) Use(hooks ...Hook) {
	c.hooks.ForumPost = append(c.hooks.ForumPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `forumpost.Intercept(f(g(h())))`.
func (c *ForumPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.ForumPost = append(c.inters.ForumPost, interceptors...)
}

// Create returns a builder for creating a ForumPost entity.
func (c *ForumPostClient) Create() *ForumPostCreate {
	mutation := newForumPostMutation(c.config, OpCreate)
	return &ForumPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ForumPost entities.
func (c *ForumPostClient) CreateBulk(builders ...*ForumPostCreate) *ForumPostCreateBulk {
	return &ForumPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ForumPostClient) MapCreateBulk(slice any, setFunc func(*ForumPostCreate, int)) *ForumPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ForumPostCreateBulk{err: fmt.Errorf("calling to ForumPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ForumPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ForumPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ForumPost.
func (c *ForumPostClient) Update() *ForumPostUpdate {
	mutation := newForumPostMutation(c.config, OpUpdate)
	return &ForumPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ForumPostClient) UpdateOne(_m *ForumPost) *ForumPostUpdateOne {
	mutation := newForumPostMutation(c.config, OpUpdateOne, withForumPost(_m))
	return &ForumPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ForumPostClient) UpdateOneID(id uuid.UUID) *ForumPostUpdateOne {
	mutation := newForumPostMutation(c.config, OpUpdateOne, withForumPostID(id))
	return &ForumPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ForumPost.
func (c *ForumPostClient) Delete() *ForumPostDelete {
	mutation := newForumPostMutation(c.config, OpDelete)
	return &ForumPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ForumPostClient) DeleteOne(_m *ForumPost) *ForumPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ForumPostClient) DeleteOneID(id uuid.UUID) *ForumPostDeleteOne {
	builder := c.Delete().Where(forumpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ForumPostDeleteOne{builder}
}

// Query returns a query builder for ForumPost.
func (c *ForumPostClient) Query() *ForumPostQuery {
	return &ForumPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeForumPost},
		inters: c.Interceptors(),
	}
}

// Get returns a ForumPost entity by its id.
func (c *ForumPostClient) Get(ctx context.Context, id uuid.UUID) (*ForumPost, error) {
	return c.Query().Where(forumpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ForumPostClient) GetX(ctx context.Context, id uuid.UUID) *ForumPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ForumPostClient) Hooks() []Hook {
	return c.hooks.ForumPost
}

// Interceptors returns the client interceptors.
func (c *ForumPostClient) Interceptors() []Interceptor {
	return c.inters.ForumPost
}

func (c *ForumPostClient) mutate(ctx context.Context, m *ForumPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ForumPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ForumPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ForumPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ForumPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ForumPost mutation op: %q", m.Op())
	}
}

// HollandQuestionClient is a client for the HollandQuestion schema.
type HollandQuestionClient struct {
	config
}

// NewHollandQuestionClient returns a client for the HollandQuestion from the given config.
func NewHollandQuestionClient(c config) *HollandQuestionClient {
	return &HollandQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hollandquestion.Hooks(f(g(h())))`.
func (c *HollandQuestionClient) Use(hooks ...Hook) {
	c.hooks.HollandQuestion = append(c.hooks.HollandQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hollandquestion.Intercept(f(g(h())))`.
func (c *HollandQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.HollandQuestion = append(c.inters.HollandQuestion, interceptors...)
}

// Create returns a builder for creating a HollandQuestion entity.
func (c *HollandQuestionClient) Create() *HollandQuestionCreate {
	mutation := newHollandQuestionMutation(c.config, OpCreate)
	return &HollandQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HollandQuestion entities.
func (c *HollandQuestionClient) CreateBulk(builders ...*HollandQuestionCreate) *HollandQuestionCreateBulk {
	return &HollandQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HollandQuestionClient) MapCreateBulk(slice any, setFunc func(*HollandQuestionCreate, int)) *HollandQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HollandQuestionCreateBulk{err: fmt.Errorf("calling to HollandQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HollandQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HollandQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HollandQuestion.
func (c *HollandQuestionClient) Update() *HollandQuestionUpdate {
	mutation := newHollandQuestionMutation(c.config, OpUpdate)
	return &HollandQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HollandQuestionClient) UpdateOne(_m *HollandQuestion) *HollandQuestionUpdateOne {
	mutation := newHollandQuestionMutation(c.config, OpUpdateOne, withHollandQuestion(_m))
	return &HollandQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HollandQuestionClient) UpdateOneID(id uuid.UUID) *HollandQuestionUpdateOne {
	mutation := newHollandQuestionMutation(c.config, OpUpdateOne, withHollandQuestionID(id))
	return &HollandQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HollandQuestion.
func (c *HollandQuestionClient) Delete() *HollandQuestionDelete {
	mutation := newHollandQuestionMutation(c.config, OpDelete)
	return &HollandQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HollandQuestionClient) DeleteOne(_m *HollandQuestion) *HollandQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HollandQuestionClient) DeleteOneID(id uuid.UUID) *HollandQuestionDeleteOne {
	builder := c.Delete().Where(hollandquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HollandQuestionDeleteOne{builder}
}

// Query returns a query builder for HollandQuestion.
func (c *HollandQuestionClient) Query() *HollandQuestionQuery {
	return &HollandQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHollandQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a HollandQuestion entity by its id.
func (c *HollandQuestionClient) Get(ctx context.Context, id uuid.UUID) (*HollandQuestion, error) {
	return c.Query().Where(hollandquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HollandQuestionClient) GetX(ctx context.Context, id uuid.UUID) *HollandQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HollandQuestionClient) Hooks() []Hook {
	return c.hooks.HollandQuestion
}

// Interceptors returns the client interceptors.
func (c *HollandQuestionClient) Interceptors() []Interceptor {
	return c.inters.HollandQuestion
}

func (c *HollandQuestionClient) mutate(ctx context.Context, m *HollandQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HollandQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HollandQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HollandQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HollandQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown HollandQuestion mutation op: %q", m.Op())
	}
}

// InstitutionClient is a client for the Institution schema.
type InstitutionClient struct {
	config
}

// NewInstitutionClient returns a client for the Institution from the given config.
func NewInstitutionClient(c config) *InstitutionClient {
	return &InstitutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `institution.Hooks(f(g(h())))`.
func (c *InstitutionClient) Use(hooks ...Hook) {
	c.hooks.Institution = append(c.hooks.Institution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `institution.Intercept(f(g(h())))`.
func (c *InstitutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Institution = append(c.inters.Institution, interceptors...)
}

// Create returns a builder for creating a Institution entity.
func (c *InstitutionClient) Create() *InstitutionCreate {
	mutation := newInstitutionMutation(c.config, OpCreate)
	return &InstitutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Institution entities.
func (c *InstitutionClient) CreateBulk(builders ...*InstitutionCreate) *InstitutionCreateBulk {
	return &InstitutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstitutionClient) MapCreateBulk(slice any, setFunc func(*InstitutionCreate, int)) *InstitutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstitutionCreateBulk{err: fmt.Errorf("calling to InstitutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstitutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstitutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Institution.
func (c *InstitutionClient) Update() *InstitutionUpdate {
	mutation := newInstitutionMutation(c.config, OpUpdate)
	return &InstitutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstitutionClient) UpdateOne(_m *Institution) *InstitutionUpdateOne {
	mutation := newInstitutionMutation(c.config, OpUpdateOne, withInstitution(_m))
	return &InstitutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstitutionClient) UpdateOneID(id uuid.UUID) *InstitutionUpdateOne {
	mutation := newInstitutionMutation(c.config, OpUpdateOne, withInstitutionID(id))
	return &InstitutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Institution.
func (c *InstitutionClient) Delete() *InstitutionDelete {
	mutation := newInstitutionMutation(c.config, OpDelete)
	return &InstitutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstitutionClient) DeleteOne(_m *Institution) *InstitutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstitutionClient) DeleteOneID(id uuid.UUID) *InstitutionDeleteOne {
	builder := c.Delete().Where(institution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstitutionDeleteOne{builder}
}

// Query returns a query builder for Institution.
func (c *InstitutionClient) Query() *InstitutionQuery {
	return &InstitutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstitution},
		inters: c.Interceptors(),
	}
}

// Get returns a Institution entity by its id.
func (c *InstitutionClient) Get(ctx context.Context, id uuid.UUID) (*Institution, error) {
	return c.Query().Where(institution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstitutionClient) GetX(ctx context.Context, id uuid.UUID) *Institution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InstitutionClient) Hooks() []Hook {
	return c.hooks.Institution
}

// Interceptors returns the client interceptors.
func (c *InstitutionClient) Interceptors() []Interceptor {
	return c.inters.Institution
}

func (c *InstitutionClient) mutate(ctx context.Context, m *InstitutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstitutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstitutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstitutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstitutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Institution mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id uuid.UUID) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id uuid.UUID) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id uuid.UUID) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Message mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// PsychologicalPredictionClient is a client for the PsychologicalPrediction schema.
type PsychologicalPredictionClient struct {
	config
}

// NewPsychologicalPredictionClient returns a client for the PsychologicalPrediction from the given config.
func NewPsychologicalPredictionClient(c config) *PsychologicalPredictionClient {
	return &PsychologicalPredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `psychologicalprediction.Hooks(f(g(h())))`.
func (c *PsychologicalPredictionClient) Use(hooks ...Hook) {
	c.hooks.PsychologicalPrediction = append(c.hooks.PsychologicalPrediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `psychologicalprediction.Intercept(f(g(h())))`.
func (c *PsychologicalPredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PsychologicalPrediction = append(c.inters.PsychologicalPrediction, interceptors...)
}

// Create returns a builder for creating a PsychologicalPrediction entity.
func (c *PsychologicalPredictionClient) Create() *PsychologicalPredictionCreate {
	mutation := newPsychologicalPredictionMutation(c.config, OpCreate)
	return &PsychologicalPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PsychologicalPrediction entities.
func (c *PsychologicalPredictionClient) CreateBulk(builders ...*PsychologicalPredictionCreate) *PsychologicalPredictionCreateBulk {
	return &PsychologicalPredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PsychologicalPredictionClient) MapCreateBulk(slice any, setFunc func(*PsychologicalPredictionCreate, int)) *PsychologicalPredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PsychologicalPredictionCreateBulk{err: fmt.Errorf("calling to PsychologicalPredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PsychologicalPredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PsychologicalPredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PsychologicalPrediction.
func (c *PsychologicalPredictionClient) Update() *PsychologicalPredictionUpdate {
	mutation := newPsychologicalPredictionMutation(c.config, OpUpdate)
	return &PsychologicalPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PsychologicalPredictionClient) UpdateOne(_m *PsychologicalPrediction) *PsychologicalPredictionUpdateOne {
	mutation := newPsychologicalPredictionMutation(c.config, OpUpdateOne, withPsychologicalPrediction(_m))
	return &PsychologicalPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PsychologicalPredictionClient) UpdateOneID(id uuid.UUID) *PsychologicalPredictionUpdateOne {
	mutation := newPsychologicalPredictionMutation(c.config, OpUpdateOne, withPsychologicalPredictionID(id))
	return &PsychologicalPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PsychologicalPrediction.
func (c *PsychologicalPredictionClient) Delete() *PsychologicalPredictionDelete {
	mutation := newPsychologicalPredictionMutation(c.config, OpDelete)
	return &PsychologicalPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PsychologicalPredictionClient) DeleteOne(_m *PsychologicalPrediction) *PsychologicalPredictionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PsychologicalPredictionClient) DeleteOneID(id uuid.UUID) *PsychologicalPredictionDeleteOne {
	builder := c.Delete().Where(psychologicalprediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PsychologicalPredictionDeleteOne{builder}
}

// Query returns a query builder for PsychologicalPrediction.
func (c *PsychologicalPredictionClient) Query() *PsychologicalPredictionQuery {
	return &PsychologicalPredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePsychologicalPrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a PsychologicalPrediction entity by its id.
func (c *PsychologicalPredictionClient) Get(ctx context.Context, id uuid.UUID) (*PsychologicalPrediction, error) {
	return c.Query().Where(psychologicalprediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PsychologicalPredictionClient) GetX(ctx context.Context, id uuid.UUID) *PsychologicalPrediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PsychologicalPredictionClient) Hooks() []Hook {
	return c.hooks.PsychologicalPrediction
}

// Interceptors returns the client interceptors.
func (c *PsychologicalPredictionClient) Interceptors() []Interceptor {
	return c.inters.PsychologicalPrediction
}

func (c *PsychologicalPredictionClient) mutate(ctx context.Context, m *PsychologicalPredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PsychologicalPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PsychologicalPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PsychologicalPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PsychologicalPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PsychologicalPrediction mutation op: %q", m.Op())
	}
}

// TutorGroupClient is a client for the TutorGroup schema.
type TutorGroupClient struct {
	config
}

// NewTutorGroupClient returns a client for the TutorGroup from the given config.
func NewTutorGroupClient(c config) *TutorGroupClient {
	return &TutorGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutorgroup.Hooks(f(g(h())))`.
func (c *TutorGroupClient) Use(hooks ...Hook) {
	c.hooks.TutorGroup = append(c.hooks.TutorGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutorgroup.Intercept(f(g(h())))`.
func (c *TutorGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorGroup = append(c.inters.TutorGroup, interceptors...)
}

// Create returns a builder for creating a TutorGroup entity.
func (c *TutorGroupClient) Create() *TutorGroupCreate {
	mutation := newTutorGroupMutation(c.config, OpCreate)
	return &TutorGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorGroup entities.
func (c *TutorGroupClient) CreateBulk(builders ...*TutorGroupCreate) *TutorGroupCreateBulk {
	return &TutorGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorGroupClient) MapCreateBulk(slice any, setFunc func(*TutorGroupCreate, int)) *TutorGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorGroupCreateBulk{err: fmt.Errorf("calling to TutorGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorGroup.
func (c *TutorGroupClient) Update() *TutorGroupUpdate {
	mutation := newTutorGroupMutation(c.config, OpUpdate)
	return &TutorGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorGroupClient) UpdateOne(_m *TutorGroup) *TutorGroupUpdateOne {
	mutation := newTutorGroupMutation(c.config, OpUpdateOne, withTutorGroup(_m))
	return &TutorGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorGroupClient) UpdateOneID(id uuid.UUID) *TutorGroupUpdateOne {
	mutation := newTutorGroupMutation(c.config, OpUpdateOne, withTutorGroupID(id))
	return &TutorGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorGroup.
func (c *TutorGroupClient) Delete() *TutorGroupDelete {
	mutation := newTutorGroupMutation(c.config, OpDelete)
	return &TutorGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorGroupClient) DeleteOne(_m *TutorGroup) *TutorGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorGroupClient) DeleteOneID(id uuid.UUID) *TutorGroupDeleteOne {
	builder := c.Delete().Where(tutorgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorGroupDeleteOne{builder}
}

// Query returns a query builder for TutorGroup.
func (c *TutorGroupClient) Query() *TutorGroupQuery {
	return &TutorGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorGroup entity by its id.
func (c *TutorGroupClient) Get(ctx context.Context, id uuid.UUID) (*TutorGroup, error) {
	return c.Query().Where(tutorgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorGroupClient) GetX(ctx context.Context, id uuid.UUID) *TutorGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorGroupClient) Hooks() []Hook {
	return c.hooks.TutorGroup
}

// Interceptors returns the client interceptors.
func (c *TutorGroupClient) Interceptors() []Interceptor {
	return c.inters.TutorGroup
}

func (c *TutorGroupClient) mutate(ctx context.Context, m *TutorGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TutorGroup mutation op: %q", m.Op())
	}
}

// TutorRequestClient is a client for the TutorRequest schema.
type TutorRequestClient struct {
	config
}

// NewTutorRequestClient returns a client for the TutorRequest from the given config.
func NewTutorRequestClient(c config) *TutorRequestClient {
	return &TutorRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutorrequest.Hooks(f(g(h())))`.
func (c *TutorRequestClient) Use(hooks ...Hook) {
	c.hooks.TutorRequest = append(c.hooks.TutorRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutorrequest.Intercept(f(g(h())))`.
func (c *TutorRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorRequest = append(c.inters.TutorRequest, interceptors...)
}

// Create returns a builder for creating a TutorRequest entity.
func (c *TutorRequestClient) Create() *TutorRequestCreate {
	mutation := newTutorRequestMutation(c.config, OpCreate)
	return &TutorRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorRequest entities.
func (c *TutorRequestClient) CreateBulk(builders ...*TutorRequestCreate) *TutorRequestCreateBulk {
	return &TutorRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorRequestClient) MapCreateBulk(slice any, setFunc func(*TutorRequestCreate, int)) *TutorRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorRequestCreateBulk{err: fmt.Errorf("calling to TutorRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorRequest.
func (c *TutorRequestClient) Update() *TutorRequestUpdate {
	mutation := newTutorRequestMutation(c.config, OpUpdate)
	return &TutorRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorRequestClient) UpdateOne(_m *TutorRequest) *TutorRequestUpdateOne {
	mutation := newTutorRequestMutation(c.config, OpUpdateOne, withTutorRequest(_m))
	return &TutorRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorRequestClient) UpdateOneID(id uuid.UUID) *TutorRequestUpdateOne {
	mutation := newTutorRequestMutation(c.config, OpUpdateOne, withTutorRequestID(id))
	return &TutorRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorRequest.
func (c *TutorRequestClient) Delete() *TutorRequestDelete {
	mutation := newTutorRequestMutation(c.config, OpDelete)
	return &TutorRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorRequestClient) DeleteOne(_m *TutorRequest) *TutorRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorRequestClient) DeleteOneID(id uuid.UUID) *TutorRequestDeleteOne {
	builder := c.Delete().Where(tutorrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorRequestDeleteOne{builder}
}

// Query returns a query builder for TutorRequest.
func (c *TutorRequestClient) Query() *TutorRequestQuery {
	return &TutorRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorRequest entity by its id.
func (c *TutorRequestClient) Get(ctx context.Context, id uuid.UUID) (*TutorRequest, error) {
	return c.Query().Where(tutorrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorRequestClient) GetX(ctx context.Context, id uuid.UUID) *TutorRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorRequestClient) Hooks() []Hook {
	return c.hooks.TutorRequest
}

// Interceptors returns the client interceptors.
func (c *TutorRequestClient) Interceptors() []Interceptor {
	return c.inters.TutorRequest
}

func (c *TutorRequestClient) mutate(ctx context.Context, m *TutorRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TutorRequest mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AcademicPrediction, Conversation, ForumComment, ForumPost, HollandQuestion,
		Institution, Message, Notification, PsychologicalPrediction, TutorGroup,
		TutorRequest, User, UserSession []ent.Hook
	}
	inters struct {
		AcademicPrediction, Conversation, ForumComment, ForumPost, HollandQuestion,
		Institution, Message, Notification, PsychologicalPrediction, TutorGroup,
		TutorRequest, User, UserSession []ent.Interceptor
	}
)
