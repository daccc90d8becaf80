package forum

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	"github.com/orienta-pe/orienta_backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

// createMember creates a user linked to the given institution.
func createMember(t *testing.T, client *repo.Client, email string, institutionID uuid.UUID) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetInstitutionID(institutionID).
		SetRole("student").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createInstitution(t *testing.T, client *repo.Client, code string) *repo.Institution {
	t.Helper()
	inst, err := client.Institution.Create().
		SetName("Colegio San Martín").
		SetJoinCode(code).
		SetStudentLimit(30).
		SetTutorLimit(2).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create institution: %v", err)
	}
	return inst
}

func TestCreatePost(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "AAA111")
	author := createMember(t, client, "alumno@example.com", inst.ID)

	t.Run("success in institution scope", func(t *testing.T) {
		p, err := svc.CreatePost(ctx, author.ID, CreatePostRequest{
			Title:   "  Dudas sobre el inventario  ",
			Content: "¿Alguien ya lo terminó?",
		})
		if err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
		if p.Title != "Dudas sobre el inventario" {
			t.Errorf("title was not trimmed: %q", p.Title)
		}
		if p.InstitutionID == nil || *p.InstitutionID != inst.ID {
			t.Error("post was not scoped to the author's institution")
		}
		if p.CommentCount != 0 {
			t.Errorf("new post should start with zero comments, got %d", p.CommentCount)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		if _, err := svc.CreatePost(ctx, author.ID, CreatePostRequest{Title: "solo título"}); !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("unlinked author", func(t *testing.T) {
		loner, err := client.User.Create().SetEmail("solo@example.com").Save(ctx)
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		if _, err := svc.CreatePost(ctx, loner.ID, CreatePostRequest{Title: "t", Content: "c"}); !errors.Is(err, ErrNoAssociation) {
			t.Errorf("expected ErrNoAssociation, got %v", err)
		}
	})
}

func TestListPostsScoping(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	instA := createInstitution(t, client, "AAA111")
	instB := createInstitution(t, client, "BBB222")
	alice := createMember(t, client, "alice@example.com", instA.ID)
	bruno := createMember(t, client, "bruno@example.com", instB.ID)

	if _, err := svc.CreatePost(ctx, alice.ID, CreatePostRequest{Title: "en A", Content: "hola"}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if _, err := svc.CreatePost(ctx, bruno.ID, CreatePostRequest{Title: "en B", Content: "hola"}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	posts, err := svc.ListPosts(ctx, alice.ID, 1, 20)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post visible to alice, got %d", len(posts))
	}
	if posts[0].Title != "en A" {
		t.Errorf("alice sees a post from another institution: %q", posts[0].Title)
	}
}

func TestAddCommentKeepsCountInSync(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "AAA111")
	author := createMember(t, client, "alumna@example.com", inst.ID)
	reader := createMember(t, client, "lector@example.com", inst.ID)

	p, err := svc.CreatePost(ctx, author.ID, CreatePostRequest{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.AddComment(ctx, p.ID, reader.ID, fmt.Sprintf("comentario %d", i)); err != nil {
			t.Fatalf("AddComment %d: %v", i, err)
		}
	}

	p, err = svc.GetPost(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if p.CommentCount != 3 {
		t.Errorf("expected comment_count=3, got %d", p.CommentCount)
	}

	comments, err := svc.ListComments(ctx, p.ID, 1, 50)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != int(p.CommentCount) {
		t.Errorf("comment_count=%d disagrees with %d surviving comments", p.CommentCount, len(comments))
	}
}

func TestAddCommentValidation(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "AAA111")
	author := createMember(t, client, "alumna@example.com", inst.ID)

	t.Run("empty content", func(t *testing.T) {
		if _, err := svc.AddComment(ctx, uuid.New(), author.ID, "   "); !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		if _, err := svc.AddComment(ctx, uuid.New(), author.ID, "hola"); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("expected ErrPostNotFound, got %v", err)
		}
	})
}

func TestDeleteComment(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "AAA111")
	author := createMember(t, client, "alumna@example.com", inst.ID)
	other := createMember(t, client, "otra@example.com", inst.ID)

	p, err := svc.CreatePost(ctx, author.ID, CreatePostRequest{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	c, err := svc.AddComment(ctx, p.ID, author.ID, "mi comentario")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	t.Run("non-author cannot delete", func(t *testing.T) {
		if err := svc.DeleteComment(ctx, p.ID, c.ID, other.ID, false); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("author delete decrements count", func(t *testing.T) {
		if err := svc.DeleteComment(ctx, p.ID, c.ID, author.ID, false); err != nil {
			t.Fatalf("DeleteComment: %v", err)
		}
		p, err := svc.GetPost(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetPost: %v", err)
		}
		if p.CommentCount != 0 {
			t.Errorf("expected comment_count=0 after delete, got %d", p.CommentCount)
		}
	})

	t.Run("deleted comment stays gone", func(t *testing.T) {
		if err := svc.DeleteComment(ctx, p.ID, c.ID, author.ID, false); !errors.Is(err, ErrCommentNotFound) {
			t.Errorf("expected ErrCommentNotFound, got %v", err)
		}
	})

	t.Run("count never goes negative", func(t *testing.T) {
		c2, err := svc.AddComment(ctx, p.ID, author.ID, "otro")
		if err != nil {
			t.Fatalf("AddComment: %v", err)
		}
		// Force the counter out of sync to verify the floor.
		if _, err := client.ForumPost.UpdateOneID(p.ID).SetCommentCount(0).Save(ctx); err != nil {
			t.Fatalf("reset count: %v", err)
		}
		if err := svc.DeleteComment(ctx, p.ID, c2.ID, author.ID, false); err != nil {
			t.Fatalf("DeleteComment: %v", err)
		}
		got, err := svc.GetPost(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetPost: %v", err)
		}
		if got.CommentCount != 0 {
			t.Errorf("expected comment_count floored at 0, got %d", got.CommentCount)
		}
	})
}

func TestDeletePost(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "AAA111")
	author := createMember(t, client, "alumna@example.com", inst.ID)
	other := createMember(t, client, "otra@example.com", inst.ID)

	p, err := svc.CreatePost(ctx, author.ID, CreatePostRequest{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := svc.DeletePost(ctx, p.ID, other.ID, false); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for non-author, got %v", err)
	}

	// Admin override works regardless of authorship.
	if err := svc.DeletePost(ctx, p.ID, other.ID, true); err != nil {
		t.Fatalf("admin DeletePost: %v", err)
	}
	if _, err := svc.GetPost(ctx, p.ID); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound after delete, got %v", err)
	}
}
