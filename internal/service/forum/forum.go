package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	entcomment "github.com/orienta-pe/orienta_backend/internal/repo/forumcomment"
	entpost "github.com/orienta-pe/orienta_backend/internal/repo/forumpost"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePostRequest struct {
	Title   string
	Content string
}

// Association is the forum scope a user posts into: exactly one of the two
// ids is set, mirroring the user's own link.
type Association struct {
	InstitutionID *uuid.UUID
	GroupID       *uuid.UUID
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*repo.ForumPost, error)
	ListPosts(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*repo.ForumPost, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*repo.ForumPost, error)
	DeletePost(ctx context.Context, postID, userID uuid.UUID, isAdmin bool) error

	// AddComment and DeleteComment keep comment_count equal to the number
	// of surviving comments by updating it in the same transaction as the
	// comment write.
	AddComment(ctx context.Context, postID, authorID uuid.UUID, content string) (*repo.ForumComment, error)
	ListComments(ctx context.Context, postID uuid.UUID, page, perPage int) ([]*repo.ForumComment, error)
	DeleteComment(ctx context.Context, postID, commentID, userID uuid.UUID, isAdmin bool) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type forumService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &forumService{db: db, nc: nc}
}

// associationOf resolves the scope a user's posts belong to.
func (s *forumService) associationOf(ctx context.Context, userID uuid.UUID) (*Association, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNoAssociation
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.InstitutionID == nil && u.GroupID == nil {
		return nil, ErrNoAssociation
	}
	return &Association{InstitutionID: u.InstitutionID, GroupID: u.GroupID}, nil
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

func (s *forumService) CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*repo.ForumPost, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Title == "" || req.Content == "" {
		return nil, ErrMissingField
	}

	assoc, err := s.associationOf(ctx, authorID)
	if err != nil {
		return nil, err
	}

	c := s.db.ForumPost.Create().
		SetAuthorID(authorID).
		SetTitle(req.Title).
		SetContent(req.Content)
	if assoc.InstitutionID != nil {
		c = c.SetInstitutionID(*assoc.InstitutionID)
	} else {
		c = c.SetGroupID(*assoc.GroupID)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *forumService) ListPosts(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*repo.ForumPost, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	assoc, err := s.associationOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	q := s.db.ForumPost.Query().Where(entpost.DeletedAtIsNil())
	if assoc.InstitutionID != nil {
		q = q.Where(entpost.InstitutionID(*assoc.InstitutionID))
	} else {
		q = q.Where(entpost.GroupID(*assoc.GroupID))
	}

	posts, err := q.
		Order(entpost.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *forumService) GetPost(ctx context.Context, postID uuid.UUID) (*repo.ForumPost, error) {
	p, err := s.db.ForumPost.Query().
		Where(entpost.ID(postID), entpost.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (s *forumService) DeletePost(ctx context.Context, postID, userID uuid.UUID, isAdmin bool) error {
	p, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if !isAdmin && p.AuthorID != userID {
		return ErrUnauthorized
	}
	return s.db.ForumPost.UpdateOne(p).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func (s *forumService) AddComment(ctx context.Context, postID, authorID uuid.UUID, content string) (*repo.ForumComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrMissingField
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	p, err := tx.ForumPost.Query().
		Where(entpost.ID(postID), entpost.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			err = ErrPostNotFound
			return nil, err
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	c, err := tx.ForumComment.Create().
		SetPostID(postID).
		SetAuthorID(authorID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if _, err = tx.ForumPost.UpdateOne(p).
		AddCommentCount(1).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("increment comment count: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("orienta.forum.comment.new.%s", postID.String())
		_ = s.nc.Publish(subject, []byte(c.ID.String()))
	}

	return c, nil
}

func (s *forumService) ListComments(ctx context.Context, postID uuid.UUID, page, perPage int) ([]*repo.ForumComment, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 50
	}
	offset := (page - 1) * perPage

	comments, err := s.db.ForumComment.Query().
		Where(
			entcomment.PostID(postID),
			entcomment.DeletedAtIsNil(),
		).
		Order(entcomment.ByCreatedAt()).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *forumService) DeleteComment(ctx context.Context, postID, commentID, userID uuid.UUID, isAdmin bool) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	c, err := tx.ForumComment.Query().
		Where(
			entcomment.ID(commentID),
			entcomment.PostID(postID),
			entcomment.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			err = ErrCommentNotFound
			return err
		}
		return fmt.Errorf("get comment: %w", err)
	}

	if !isAdmin && c.AuthorID != userID {
		err = ErrUnauthorized
		return err
	}

	if err = tx.ForumComment.UpdateOne(c).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	// Floor at zero so a replayed delete can never drive the count negative.
	p, err := tx.ForumPost.Get(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	next := p.CommentCount - 1
	if next < 0 {
		next = 0
	}
	if _, err = tx.ForumPost.UpdateOne(p).
		SetCommentCount(next).
		Save(ctx); err != nil {
		return fmt.Errorf("decrement comment count: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
