package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-system/internal/api/flash"
	"github.com/inkwell/blog-system/internal/api/middleware"
)

// render executes a page template with the nullable current user and any
// pending flash notices merged into the template data.
func render(c echo.Context, flashes *flash.Manager, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["CurrentUser"] = middleware.ClaimsFrom(c)
	data["Flashes"] = flashes.Consume(c)
	return c.Render(http.StatusOK, name, data)
}

// setSessionCookie installs the signed token as the session cookie,
// bounded to the token's own lifetime.
func setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
