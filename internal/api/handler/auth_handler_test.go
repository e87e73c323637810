package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-system/internal/api/flash"
	"github.com/inkwell/blog-system/internal/api/middleware"
	"github.com/inkwell/blog-system/internal/core/domain"
	"github.com/inkwell/blog-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type memFlashStore struct {
	added []ports.Flash
}

func (s *memFlashStore) Add(_ context.Context, _ string, f ports.Flash) error {
	s.added = append(s.added, f)
	return nil
}

func (s *memFlashStore) Consume(_ context.Context, _ string) ([]ports.Flash, error) {
	out := s.added
	s.added = nil
	return out, nil
}

func newFormContext(method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie && ck.Value != "" {
			return ck
		}
	}
	return nil
}

func newTestAuthHandler(stub *stubAuthService, store *memFlashStore) *AuthHandler {
	return NewAuthHandler(stub, flash.NewManager(store, zerolog.Nop()), time.Hour)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (string, *domain.User, error) {
			if in.Name != "A" || in.Username != "a1" || in.Email != "a@x.com" || in.Password != "pw1234" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "token123", &domain.User{ID: "id-1", Username: in.Username, Email: in.Email}, nil
		},
	}
	h := newTestAuthHandler(stub, &memFlashStore{})

	c, rec := newFormContext(http.MethodPost, "/register", url.Values{
		"name": {"A"}, "username": {"a1"}, "email": {"a@x.com"}, "password": {"pw1234"},
	})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	ck := sessionCookie(rec)
	if ck == nil || ck.Value != "token123" {
		t.Fatalf("expected session cookie to be set, got %+v", ck)
	}
	if !ck.HttpOnly || ck.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("unexpected cookie attributes: %+v", ck)
	}
}

func TestAuthHandler_Register_DuplicateIdentity(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (string, *domain.User, error) {
			return "", nil, domain.ErrDuplicateIdentity
		},
	}
	store := &memFlashStore{}
	h := newTestAuthHandler(stub, store)

	c, rec := newFormContext(http.MethodPost, "/register", url.Values{
		"name": {"A"}, "username": {"a1"}, "email": {"a@x.com"}, "password": {"pw1234"},
	})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/register" {
		t.Fatalf("expected redirect to /register, got %q", loc)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no session cookie expected on duplicate registration")
	}
	if len(store.added) != 1 || store.added[0].Kind != ports.FlashError {
		t.Fatalf("expected one error flash, got %+v", store.added)
	}
}

func TestAuthHandler_Register_InvalidForm(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := newTestAuthHandler(stub, &memFlashStore{})

	// Missing email and a too-short password.
	c, rec := newFormContext(http.MethodPost, "/register", url.Values{
		"name": {"A"}, "username": {"a1"}, "password": {"pw"},
	})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/register" {
		t.Fatalf("expected redirect to /register, got %q", loc)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@x.com" || password != "pw1234" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "id-1", Username: "a1", Email: email}, nil
		},
	}
	store := &memFlashStore{}
	h := newTestAuthHandler(stub, store)

	c, rec := newFormContext(http.MethodPost, "/login", url.Values{
		"email": {"a@x.com"}, "password": {"pw1234"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/post/a1" {
		t.Fatalf("expected redirect to /post/a1, got %q", loc)
	}
	if ck := sessionCookie(rec); ck == nil || ck.Value != "token123" {
		t.Fatalf("expected session cookie, got %+v", ck)
	}
	if len(store.added) != 1 || store.added[0].Message != "Login successful!" {
		t.Fatalf("unexpected flashes: %+v", store.added)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	store := &memFlashStore{}
	h := newTestAuthHandler(stub, store)

	c, rec := newFormContext(http.MethodPost, "/login", url.Values{
		"email": {"a@x.com"}, "password": {"wrong1"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no session cookie expected on failed login")
	}
	if len(store.added) != 1 || store.added[0].Message != "Incorrect password or email." {
		t.Fatalf("unexpected flashes: %+v", store.added)
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	store := &memFlashStore{}
	h := newTestAuthHandler(stub, store)

	c, rec := newFormContext(http.MethodPost, "/login", url.Values{
		"email": {"ghost@x.com"}, "password": {"pw1234"},
	})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	if len(store.added) != 1 || store.added[0].Message != "User not found." {
		t.Fatalf("unexpected flashes: %+v", store.added)
	}
}

func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{}, &memFlashStore{})

	for i := 0; i < 2; i++ {
		c, rec := newFormContext(http.MethodGet, "/logout", url.Values{})
		if err := h.Logout(c); err != nil {
			t.Fatalf("logout %d: %v", i, err)
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Fatalf("expected redirect to /, got %q", loc)
		}
		cleared := false
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == middleware.TokenCookie && ck.Value == "" && ck.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Fatalf("expected cookie to be cleared on logout %d", i)
		}
	}
}
