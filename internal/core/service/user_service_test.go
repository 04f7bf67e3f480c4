package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
	"github.com/wavepoint/social-system/pkg/logger"
)

type userFixture struct {
	svc         *UserService
	users       *stubUserRepo
	posts       *stubPostRepo
	friendships *stubFriendshipRepo
	messages    *stubMessageRepo
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	f := &userFixture{
		users:       newStubUserRepo(),
		posts:       newStubPostRepo(),
		friendships: newStubFriendshipRepo(),
		messages:    newStubMessageRepo(),
	}
	f.svc = NewUserService(f.users, f.posts, f.friendships, f.messages, logger.Init(logger.Options{Level: "error"}))
	return f
}

func (f *userFixture) addUser(t *testing.T, name string) string {
	t.Helper()
	u, err := f.users.Create(context.Background(), &domain.User{Username: name, Email: name + "@example.com"})
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u.ID
}

func TestUserService_List_ExcludesCaller(t *testing.T) {
	f := newUserFixture(t)
	alice := f.addUser(t, "alice")
	f.addUser(t, "bob")

	users, err := f.svc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 || users[0].Username != "bob" {
		t.Fatalf("expected only bob, got %+v", users)
	}
}

func TestUserService_Update(t *testing.T) {
	f := newUserFixture(t)
	alice := f.addUser(t, "alice")
	f.addUser(t, "bob")

	// Duplicate email belonging to someone else.
	_, err := f.svc.Update(context.Background(), ports.UpdateUserInput{
		ID: alice, Username: "alice", Email: "BOB@example.com",
	})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Keeping one's own email is not a conflict.
	updated, err := f.svc.Update(context.Background(), ports.UpdateUserInput{
		ID: alice, Username: "alice2", Email: "alice@example.com", Password: "newpass", Avatar: "/img/alice.png",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Username != "alice2" || updated.Avatar != "/img/alice.png" {
		t.Fatalf("unexpected updated user: %+v", updated)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")) != nil {
		t.Fatalf("expected password to be rehashed")
	}

	// Missing required fields.
	if _, err := f.svc.Update(context.Background(), ports.UpdateUserInput{ID: alice, Username: "x"}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestUserService_Delete_Cascades(t *testing.T) {
	f := newUserFixture(t)
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	carol := f.addUser(t, "carol")

	now := time.Now().UTC()
	mustInsertEdge := func(requester, recipient string, status domain.FriendshipStatus) {
		if _, err := f.friendships.Insert(context.Background(), &domain.Friendship{
			RequesterID: requester, RecipientID: recipient, Status: status, CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			t.Fatalf("insert edge: %v", err)
		}
	}
	mustInsertEdge(alice, bob, domain.FriendshipAccepted)
	mustInsertEdge(carol, alice, domain.FriendshipPending)
	mustInsertEdge(bob, carol, domain.FriendshipAccepted)

	if _, err := f.messages.Insert(context.Background(), &domain.Message{SenderID: alice, ReceiverID: bob, Content: "hi", CreatedAt: now}); err != nil {
		t.Fatalf("insert message: %v", err)
	}
	if _, err := f.messages.Insert(context.Background(), &domain.Message{SenderID: bob, ReceiverID: carol, Content: "yo", CreatedAt: now}); err != nil {
		t.Fatalf("insert message: %v", err)
	}
	if _, err := f.posts.Insert(context.Background(), &domain.Post{AuthorID: alice, Text: "post", CreatedAt: now}); err != nil {
		t.Fatalf("insert post: %v", err)
	}

	if err := f.svc.Delete(context.Background(), alice); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.users.FindByID(context.Background(), alice); err != domain.ErrUserNotFound {
		t.Fatalf("expected user gone, got %v", err)
	}

	// Everything referencing alice is gone; unrelated records survive.
	edges, _ := f.friendships.FindAcceptedFor(context.Background(), alice)
	if len(edges) != 0 {
		t.Fatalf("expected no edges for deleted user, got %d", len(edges))
	}
	pending, _ := f.friendships.FindPendingForRecipient(context.Background(), alice)
	if len(pending) != 0 {
		t.Fatalf("expected no pending edges for deleted user, got %d", len(pending))
	}
	msgs, _ := f.messages.FindFor(context.Background(), alice)
	if len(msgs) != 0 {
		t.Fatalf("expected no messages for deleted user, got %d", len(msgs))
	}
	posts, _ := f.posts.FindByAuthor(context.Background(), alice)
	if len(posts) != 0 {
		t.Fatalf("expected no posts for deleted user, got %d", len(posts))
	}

	if edges, _ := f.friendships.FindAcceptedFor(context.Background(), bob); len(edges) != 1 {
		t.Fatalf("expected bob-carol edge to survive, got %d", len(edges))
	}
	if msgs, _ := f.messages.FindFor(context.Background(), carol); len(msgs) != 1 {
		t.Fatalf("expected bob-carol message to survive, got %d", len(msgs))
	}
}

func TestUserService_Delete_UnknownUser(t *testing.T) {
	f := newUserFixture(t)
	if err := f.svc.Delete(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Details(t *testing.T) {
	f := newUserFixture(t)
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	now := time.Now().UTC()
	if _, err := f.friendships.Insert(context.Background(), &domain.Friendship{
		RequesterID: alice, RecipientID: bob, Status: domain.FriendshipAccepted, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("insert edge: %v", err)
	}
	if _, err := f.posts.Insert(context.Background(), &domain.Post{AuthorID: alice, Text: "hello world", CreatedAt: now}); err != nil {
		t.Fatalf("insert post: %v", err)
	}
	if _, err := f.messages.Insert(context.Background(), &domain.Message{SenderID: bob, ReceiverID: alice, Content: "hey", CreatedAt: now}); err != nil {
		t.Fatalf("insert message: %v", err)
	}

	details, err := f.svc.Details(context.Background(), alice)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details.User.ID != alice {
		t.Fatalf("unexpected user: %+v", details.User)
	}
	if len(details.Posts) != 1 || len(details.Messages) != 1 {
		t.Fatalf("expected 1 post and 1 message, got %d/%d", len(details.Posts), len(details.Messages))
	}
	if len(details.Friends) != 1 || details.Friends[0].ID != bob {
		t.Fatalf("expected bob as friend, got %+v", details.Friends)
	}
}
