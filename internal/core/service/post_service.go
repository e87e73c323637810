package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-system/internal/core/domain"
	"github.com/inkwell/blog-system/internal/core/ports"
)

// PostService implements post creation and the read views.
type PostService struct {
	posts ports.PostRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, log: log}
}

// CreatePost resolves the author by email, inserts the post, and appends
// its id onto the author's post list. The append is a single conditional
// update on the store, so two concurrent creations by the same user both
// land in the list.
func (s *PostService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	author, err := s.users.FindByEmail(ctx, in.AuthorEmail)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:   author.ID,
		Date:     time.Now().UTC(),
		Title:    in.Title,
		Content1: in.Content1,
		Content2: in.Content2,
		Pic1:     in.Pic1,
		Pic2:     in.Pic2,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("author", author.Username).Msg("failed to create post")
		return nil, err
	}

	if err := s.users.AppendPost(ctx, author.ID, created.ID); err != nil {
		s.log.Error().Err(err).Str("post_id", created.ID).Msg("failed to link post to author")
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("author", author.Username).Msg("post created")
	return created, nil
}

func (s *PostService) AuthorByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *PostService) PostsByUsername(ctx context.Context, username string) (*domain.User, []*domain.Post, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.posts.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, *domain.User, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	author, err := s.users.FindByID(ctx, post.UserID)
	if err != nil {
		return nil, nil, err
	}
	return post, author, nil
}
