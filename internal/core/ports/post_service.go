package ports

import (
	"context"

	"github.com/inkwell/blog-system/internal/core/domain"
)

// CreatePostInput carries all data needed to create a new post.
// Pic1/Pic2 are stored upload filenames, empty when no file was attached.
type CreatePostInput struct {
	// AuthorEmail comes from the session claims; the author record is
	// re-resolved from the store rather than trusted from the token.
	AuthorEmail string
	Title       string
	Content1    string
	Content2    string
	Pic1        string
	Pic2        string
}

// PostService defines the blog use-cases.
type PostService interface {
	// CreatePost inserts the post and links its id onto the author's post list.
	CreatePost(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	AuthorByUsername(ctx context.Context, username string) (*domain.User, error)
	// PostsByUsername returns the user together with their posts, oldest first.
	PostsByUsername(ctx context.Context, username string) (*domain.User, []*domain.Post, error)
	// GetPost returns a single post together with its author.
	GetPost(ctx context.Context, id string) (*domain.Post, *domain.User, error)
}
