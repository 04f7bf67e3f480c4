package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

// PostService implements the pass-through feed operations.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Feed returns every post newest first with author profiles attached.
func (s *PostService) Feed(ctx context.Context) ([]ports.PostView, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []ports.PostView{}, nil
	}

	ids := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}
	authors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(authors))
	for _, u := range authors {
		byID[u.ID] = u
	}

	views := make([]ports.PostView, 0, len(posts))
	for _, p := range posts {
		view := ports.PostView{Post: p}
		if u, ok := byID[p.AuthorID]; ok {
			view.Author = u.Public()
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns one post with its author profile.
func (s *PostService) Get(ctx context.Context, postID string) (*ports.PostView, error) {
	if postID == "" {
		return nil, domain.ErrMissingFields
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	view := &ports.PostView{Post: post}
	if author, err := s.users.FindByID(ctx, post.AuthorID); err == nil {
		view.Author = author.Public()
	}
	return view, nil
}

// Create persists a post after validating the author and any tagged users.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.AuthorID == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByID(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	if len(input.Tags) > 0 {
		tagged, err := s.users.FindByIDs(ctx, input.Tags)
		if err != nil {
			return nil, err
		}
		if len(tagged) != len(input.Tags) {
			return nil, domain.ErrUserNotFound
		}
	}

	now := time.Now().UTC()
	post, err := s.posts.Insert(ctx, &domain.Post{
		AuthorID:  input.AuthorID,
		Text:      input.Text,
		Media:     input.Media,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author", post.AuthorID).Msg("post created")
	return post, nil
}
