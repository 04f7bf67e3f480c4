package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// In-memory repository stubs mirroring the store-level behaviour the
// services rely on: case-insensitive email uniqueness and the unordered
// pair-key constraint on friendship edges.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindExcluding(_ context.Context, excluded []string) ([]*domain.User, error) {
	skip := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}
	out := []*domain.User{}
	for id, u := range r.users {
		if !skip[id] {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && strings.EqualFold(u.Email, user.Email) {
			return nil, domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubFriendshipRepo struct {
	edges map[string]*domain.Friendship // keyed by pair key
	seq   int
}

func newStubFriendshipRepo() *stubFriendshipRepo {
	return &stubFriendshipRepo{edges: make(map[string]*domain.Friendship)}
}

func cloneEdge(f *domain.Friendship) *domain.Friendship {
	clone := *f
	return &clone
}

func (r *stubFriendshipRepo) Insert(_ context.Context, f *domain.Friendship) (*domain.Friendship, error) {
	key := domain.PairKey(f.RequesterID, f.RecipientID)
	if _, exists := r.edges[key]; exists {
		return nil, domain.ErrFriendshipExists
	}
	r.seq++
	copy := cloneEdge(f)
	copy.ID = fmt.Sprintf("f%d", r.seq)
	r.edges[key] = cloneEdge(copy)
	return cloneEdge(copy), nil
}

func (r *stubFriendshipRepo) UpdatePendingStatus(_ context.Context, requesterID, recipientID string, status domain.FriendshipStatus) (*domain.Friendship, error) {
	key := domain.PairKey(requesterID, recipientID)
	edge, ok := r.edges[key]
	if !ok || edge.RequesterID != requesterID || edge.RecipientID != recipientID || edge.Status != domain.FriendshipPending {
		return nil, domain.ErrFriendRequestNotFound
	}
	edge.Status = status
	edge.UpdatedAt = time.Now().UTC()
	return cloneEdge(edge), nil
}

func (r *stubFriendshipRepo) FindAcceptedBetween(_ context.Context, a, b string) (*domain.Friendship, error) {
	if edge, ok := r.edges[domain.PairKey(a, b)]; ok && edge.Status == domain.FriendshipAccepted {
		return cloneEdge(edge), nil
	}
	return nil, domain.ErrFriendRequestNotFound
}

func (r *stubFriendshipRepo) FindPendingForRecipient(_ context.Context, userID string) ([]*domain.Friendship, error) {
	out := []*domain.Friendship{}
	for _, edge := range r.edges {
		if edge.RecipientID == userID && edge.Status == domain.FriendshipPending {
			out = append(out, cloneEdge(edge))
		}
	}
	return out, nil
}

func (r *stubFriendshipRepo) FindAcceptedFor(_ context.Context, userID string) ([]*domain.Friendship, error) {
	out := []*domain.Friendship{}
	for _, edge := range r.edges {
		if edge.Status == domain.FriendshipAccepted && (edge.RequesterID == userID || edge.RecipientID == userID) {
			out = append(out, cloneEdge(edge))
		}
	}
	return out, nil
}

func (r *stubFriendshipRepo) DeleteFor(_ context.Context, userID string) error {
	for key, edge := range r.edges {
		if edge.RequesterID == userID || edge.RecipientID == userID {
			delete(r.edges, key)
		}
	}
	return nil
}

type stubMessageRepo struct {
	messages []*domain.Message
	seq      int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func (r *stubMessageRepo) Insert(_ context.Context, m *domain.Message) (*domain.Message, error) {
	r.seq++
	copy := *m
	copy.ID = fmt.Sprintf("m%d", r.seq)
	r.messages = append(r.messages, &copy)
	out := copy
	return &out, nil
}

func (r *stubMessageRepo) FindConversation(_ context.Context, a, b string) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, m := range r.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			copy := *m
			out = append(out, &copy)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubMessageRepo) FindFor(_ context.Context, userID string) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			copy := *m
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubMessageRepo) DeleteFor(_ context.Context, userID string) error {
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.SenderID != userID && m.ReceiverID != userID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

type stubPostRepo struct {
	posts []*domain.Post
	seq   int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{}
}

func (r *stubPostRepo) Insert(_ context.Context, p *domain.Post) (*domain.Post, error) {
	r.seq++
	copy := *p
	copy.ID = fmt.Sprintf("p%d", r.seq)
	r.posts = append(r.posts, &copy)
	out := copy
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			copy := *p
			return &copy, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		copy := *p
		out = append(out, &copy)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPostRepo) FindByAuthor(_ context.Context, authorID string) ([]*domain.Post, error) {
	out := []*domain.Post{}
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			copy := *p
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubPostRepo) DeleteByAuthor(_ context.Context, authorID string) error {
	kept := r.posts[:0]
	for _, p := range r.posts {
		if p.AuthorID != authorID {
			kept = append(kept, p)
		}
	}
	r.posts = kept
	return nil
}

// stubThrottle blocks an email once failures reach the limit.
type stubThrottle struct {
	failures map[string]int
	limit    int
}

func newStubThrottle(limit int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), limit: limit}
}

func (t *stubThrottle) Blocked(_ context.Context, email string) (bool, error) {
	return t.failures[email] >= t.limit, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}
