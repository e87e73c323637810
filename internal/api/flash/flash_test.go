package flash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-system/internal/core/ports"
)

type memStore struct {
	byID map[string][]ports.Flash
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[string][]ports.Flash)}
}

func (s *memStore) Add(_ context.Context, id string, f ports.Flash) error {
	s.byID[id] = append(s.byID[id], f)
	return nil
}

func (s *memStore) Consume(_ context.Context, id string) ([]ports.Flash, error) {
	out := s.byID[id]
	delete(s.byID, id)
	return out, nil
}

func newFlashContext(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestManager_MintsSessionCookie(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, zerolog.Nop())
	c, rec := newFlashContext(nil)

	m.Error(c, "oops")

	var minted *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieName {
			minted = ck
		}
	}
	if minted == nil || minted.Value == "" {
		t.Fatalf("expected flash session cookie to be set")
	}
	if !minted.HttpOnly {
		t.Fatalf("flash cookie should be http-only")
	}
	if got := store.byID[minted.Value]; len(got) != 1 || got[0].Message != "oops" {
		t.Fatalf("message not recorded under minted session: %+v", got)
	}
}

func TestManager_ConsumeIsOneShot(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, zerolog.Nop())
	cookie := &http.Cookie{Name: CookieName, Value: "sess-1"}

	c, _ := newFlashContext(cookie)
	m.Success(c, "Login successful!")
	m.Error(c, "Incorrect password or email.")

	c2, _ := newFlashContext(cookie)
	got := m.Consume(c2)
	if len(got) != 2 {
		t.Fatalf("expected 2 flashes, got %d", len(got))
	}
	if got[0].Kind != ports.FlashSuccess || got[1].Kind != ports.FlashError {
		t.Fatalf("unexpected kinds: %+v", got)
	}

	c3, _ := newFlashContext(cookie)
	if again := m.Consume(c3); len(again) != 0 {
		t.Fatalf("expected flashes to be consumed once, got %+v", again)
	}
}
