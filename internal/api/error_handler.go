package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-system/internal/api/flash"
	"github.com/inkwell/blog-system/internal/core/domain"
)

// NewHTTPErrorHandler returns the route-boundary error net: every failure
// that escapes a handler becomes a user-facing flash message plus a
// redirect, never a crash or a bare stack trace.
func NewHTTPErrorHandler(log zerolog.Logger, flashes *flash.Manager) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors: router 404s and the deliberate 404 on the
		// post-form route render as plain status text.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.String(he.Code, fmt.Sprintf("%v", he.Message))
			return
		}

		switch {
		case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrInvalidCredentials):
			flashes.Error(c, "Please log in again.")
			_ = c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, domain.ErrUserNotFound):
			flashes.Error(c, "User not found.")
			_ = c.Redirect(http.StatusFound, "/")
		case errors.Is(err, domain.ErrPostNotFound):
			flashes.Error(c, "Post not found.")
			_ = c.Redirect(http.StatusFound, "/")
		default:
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
			flashes.Error(c, "An error occurred.")
			_ = c.Redirect(http.StatusFound, "/")
		}
	}
}
