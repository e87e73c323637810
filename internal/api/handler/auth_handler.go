package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-system/internal/api/flash"
	"github.com/inkwell/blog-system/internal/api/metrics"
	"github.com/inkwell/blog-system/internal/api/middleware"
	"github.com/inkwell/blog-system/internal/core/domain"
	"github.com/inkwell/blog-system/internal/core/ports"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth      ports.AuthService
	flashes   *flash.Manager
	cookieTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, flashes *flash.Manager, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, flashes: flashes, cookieTTL: cookieTTL}
}

// RegisterForm renders GET /register.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return render(c, h.flashes, "register", nil)
}

// Register handles POST /register. On success the session cookie is set
// for the new identity and the browser is sent to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		h.flashes.Error(c, "Invalid registration form.")
		return c.Redirect(http.StatusFound, "/register")
	}
	if err := c.Validate(&req); err != nil {
		h.flashes.Error(c, err.Error())
		return c.Redirect(http.StatusFound, "/register")
	}

	token, _, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			h.flashes.Error(c, "Email or username already taken.")
			return c.Redirect(http.StatusFound, "/register")
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	setSessionCookie(c, token, h.cookieTTL)
	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders GET /login.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return render(c, h.flashes, "login", nil)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		h.flashes.Error(c, "Invalid login form.")
		return c.Redirect(http.StatusFound, "/login")
	}
	if err := c.Validate(&req); err != nil {
		h.flashes.Error(c, err.Error())
		return c.Redirect(http.StatusFound, "/login")
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			h.flashes.Error(c, "User not found.")
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			h.flashes.Error(c, "Incorrect password or email.")
		default:
			return err
		}
		return c.Redirect(http.StatusFound, "/login")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, token, h.cookieTTL)
	h.flashes.Success(c, "Login successful!")
	return c.Redirect(http.StatusFound, "/post/"+user.Username)
}

// Logout handles GET /logout. Clearing an already-clear cookie is harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	middleware.ClearSessionCookie(c)
	h.flashes.Success(c, "You have been logged out.")
	return c.Redirect(http.StatusFound, "/")
}
