package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	entconv "github.com/orienta-pe/orienta_backend/internal/repo/conversation"
	entmsg "github.com/orienta-pe/orienta_backend/internal/repo/message"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListMessagesRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*repo.Conversation, error)
	GetByID(ctx context.Context, convID, userID uuid.UUID) (*repo.Conversation, error)

	// Create opens a thread between two users of the same association.
	Create(ctx context.Context, creatorID, otherID uuid.UUID) (*repo.Conversation, error)

	ListMessages(ctx context.Context, convID, userID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error)
	SendMessage(ctx context.Context, convID, senderID uuid.UUID, content string) (*repo.Message, error)
	MarkRead(ctx context.Context, convID, readerID uuid.UUID) error
	DeleteMessage(ctx context.Context, convID, messageID, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chatService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &chatService{db: db, nc: nc}
}

func (s *chatService) List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*repo.Conversation, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	convs, err := s.db.Conversation.Query().
		Where(
			entconv.IsActive(true),
			entconv.Or(
				entconv.ParticipantA(userID),
				entconv.ParticipantB(userID),
			),
		).
		Order(entconv.ByLastMessageAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *chatService) GetByID(ctx context.Context, convID, userID uuid.UUID) (*repo.Conversation, error) {
	conv, err := s.db.Conversation.Query().
		Where(
			entconv.ID(convID),
			entconv.Or(
				entconv.ParticipantA(userID),
				entconv.ParticipantB(userID),
			),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return conv, nil
}

func (s *chatService) Create(ctx context.Context, creatorID, otherID uuid.UUID) (*repo.Conversation, error) {
	if creatorID == otherID {
		return nil, ErrSameUser
	}

	creator, err := s.db.User.Query().
		Where(entuser.ID(creatorID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}
	other, err := s.db.User.Query().
		Where(entuser.ID(otherID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	// Both must share the same institution or the same tutor group.
	instID, groupID, ok := sharedAssociation(creator, other)
	if !ok {
		if creator.InstitutionID == nil && creator.GroupID == nil {
			return nil, ErrNoAssociation
		}
		return nil, ErrDifferentAssoc
	}

	// Check if conversation already exists
	exists, err := s.db.Conversation.Query().
		Where(
			entconv.Or(
				entconv.And(
					entconv.ParticipantA(creatorID),
					entconv.ParticipantB(otherID),
				),
				entconv.And(
					entconv.ParticipantA(otherID),
					entconv.ParticipantB(creatorID),
				),
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing conversation: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	c := s.db.Conversation.Create().
		SetParticipantA(creatorID).
		SetParticipantB(otherID)
	if instID != nil {
		c = c.SetInstitutionID(*instID)
	}
	if groupID != nil {
		c = c.SetGroupID(*groupID)
	}

	conv, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (s *chatService) ListMessages(ctx context.Context, convID, userID uuid.UUID, req ListMessagesRequest) ([]*repo.Message, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	if _, err := s.GetByID(ctx, convID, userID); err != nil {
		return nil, err
	}

	msgs, err := s.db.Message.Query().
		Where(
			entmsg.ConversationID(convID),
			entmsg.DeletedAtIsNil(),
		).
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *chatService) SendMessage(ctx context.Context, convID, senderID uuid.UUID, content string) (*repo.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.GetByID(ctx, convID, senderID); err != nil {
		return nil, err
	}

	msg, err := s.db.Message.Create().
		SetConversationID(convID).
		SetSenderID(senderID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	// Update last_message_at on the conversation
	_ = s.db.Conversation.Update().
		Where(entconv.ID(convID)).
		SetLastMessageAt(msg.CreatedAt).
		Exec(ctx)

	// Publish NATS event
	if s.nc != nil {
		subject := fmt.Sprintf("orienta.chat.message.new.%s", convID.String())
		_ = s.nc.Publish(subject, []byte(msg.ID.String()))
	}

	return msg, nil
}

func (s *chatService) MarkRead(ctx context.Context, convID, readerID uuid.UUID) error {
	if _, err := s.GetByID(ctx, convID, readerID); err != nil {
		return err
	}

	now := time.Now()
	return s.db.Message.Update().
		Where(
			entmsg.ConversationID(convID),
			entmsg.SenderIDNEQ(readerID),
			entmsg.IsRead(false),
		).
		SetIsRead(true).
		SetReadAt(now).
		Exec(ctx)
}

func (s *chatService) DeleteMessage(ctx context.Context, convID, messageID, userID uuid.UUID) error {
	msg, err := s.db.Message.Query().
		Where(
			entmsg.ID(messageID),
			entmsg.ConversationID(convID),
			entmsg.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("get message: %w", err)
	}

	if msg.SenderID != userID {
		return ErrUnauthorized
	}

	return s.db.Message.UpdateOne(msg).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// sharedAssociation reports the association both users belong to, if any.
func sharedAssociation(a, b *repo.User) (instID, groupID *uuid.UUID, ok bool) {
	if a.InstitutionID != nil && b.InstitutionID != nil && *a.InstitutionID == *b.InstitutionID {
		return a.InstitutionID, nil, true
	}
	if a.GroupID != nil && b.GroupID != nil && *a.GroupID == *b.GroupID {
		return nil, a.GroupID, true
	}
	return nil, nil, false
}
