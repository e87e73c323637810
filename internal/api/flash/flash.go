// Package flash surfaces one-time notices across redirects. Messages live
// in the flash store keyed by an anonymous session id carried in its own
// cookie, separate from the auth token.
package flash

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-system/internal/core/ports"
)

// CookieName identifies the anonymous flash session.
const CookieName = "flash_id"

// Manager writes and consumes flash messages for a request.
type Manager struct {
	store ports.FlashStore
	log   zerolog.Logger
}

func NewManager(store ports.FlashStore, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Success records a success notice for the next page load.
func (m *Manager) Success(c echo.Context, msg string) {
	m.add(c, ports.Flash{Kind: ports.FlashSuccess, Message: msg})
}

// Error records an error notice for the next page load.
func (m *Manager) Error(c echo.Context, msg string) {
	m.add(c, ports.Flash{Kind: ports.FlashError, Message: msg})
}

// Consume returns and clears all pending notices for this browser.
// Store failures degrade to an empty list; a lost flash never fails a page.
func (m *Manager) Consume(c echo.Context) []ports.Flash {
	flashes, err := m.store.Consume(c.Request().Context(), m.sessionID(c))
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to consume flash messages")
		return nil
	}
	return flashes
}

func (m *Manager) add(c echo.Context, f ports.Flash) {
	if err := m.store.Add(c.Request().Context(), m.sessionID(c), f); err != nil {
		m.log.Warn().Err(err).Str("message", f.Message).Msg("failed to record flash message")
	}
}

// sessionID reads the flash cookie, minting and setting one when absent.
func (m *Manager) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
