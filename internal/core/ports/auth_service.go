package ports

import (
	"context"

	"github.com/inkwell/blog-system/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// AuthService implements registration and login. Both return a signed
// session token alongside the user: registration sets the session cookie
// immediately even though the browser is sent back to the login page.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
