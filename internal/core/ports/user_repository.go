package ports

import (
	"context"

	"github.com/inkwell/blog-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user. A user with the same email or username
	// already present yields domain.ErrDuplicateIdentity.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AppendPost atomically appends postID to the user's post list.
	AppendPost(ctx context.Context, userID, postID string) error
}
