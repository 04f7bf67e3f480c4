package service

import (
	"context"
	"testing"
	"time"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
	"github.com/wavepoint/social-system/pkg/logger"
)

func newPostFixture(t *testing.T) (*PostService, *stubUserRepo) {
	t.Helper()
	users := newStubUserRepo()
	posts := newStubPostRepo()
	return NewPostService(posts, users, logger.Init(logger.Options{Level: "error"})), users
}

func TestPostService_Create(t *testing.T) {
	svc, users := newPostFixture(t)

	alice, err := users.Create(context.Background(), &domain.User{Username: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	bob, err := users.Create(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Unknown author.
	if _, err := svc.Create(context.Background(), ports.CreatePostInput{AuthorID: "ghost", Text: "x"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Unknown tagged user.
	_, err = svc.Create(context.Background(), ports.CreatePostInput{
		AuthorID: alice.ID, Text: "x", Tags: []string{bob.ID, "ghost"},
	})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for bad tag, got %v", err)
	}

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		AuthorID: alice.ID, Text: "hello", Media: []string{"/uploads/pic.png"}, Tags: []string{bob.ID},
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID == "" || post.AuthorID != alice.ID {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestPostService_Feed_NewestFirstWithAuthors(t *testing.T) {
	svc, users := newPostFixture(t)

	alice, err := users.Create(context.Background(), &domain.User{Username: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreatePostInput{AuthorID: alice.ID, Text: "first"}); err != nil {
		t.Fatalf("create post: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, err := svc.Create(context.Background(), ports.CreatePostInput{AuthorID: alice.ID, Text: "second"}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	feed, err := svc.Feed(context.Background())
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}
	if feed[0].Post.Text != "second" {
		t.Fatalf("expected newest first, got %q", feed[0].Post.Text)
	}
	if feed[0].Author.Username != "alice" {
		t.Fatalf("expected author profile, got %+v", feed[0].Author)
	}
}

func TestPostService_Get(t *testing.T) {
	svc, users := newPostFixture(t)

	alice, err := users.Create(context.Background(), &domain.User{Username: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	post, err := svc.Create(context.Background(), ports.CreatePostInput{AuthorID: alice.ID, Text: "hello"})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	view, err := svc.Get(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Post.ID != post.ID || view.Author.ID != alice.ID {
		t.Fatalf("unexpected view: %+v", view)
	}

	if _, err := svc.Get(context.Background(), "nope"); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
