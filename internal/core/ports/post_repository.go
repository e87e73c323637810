package ports

import (
	"context"

	"github.com/inkwell/blog-system/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// ListByUser returns the user's posts in creation order.
	ListByUser(ctx context.Context, userID string) ([]*domain.Post, error)
}
