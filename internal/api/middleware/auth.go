package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-system/internal/api/flash"
	"github.com/inkwell/blog-system/internal/api/metrics"
	"github.com/inkwell/blog-system/internal/core/service"
)

// TokenCookie is the session cookie carrying the signed bearer token.
const TokenCookie = "token"

// claimsKey is the context key the decoded session claims are stored under.
const claimsKey = "session_claims"

// TokenVerifier decodes and checks a bearer token.
type TokenVerifier interface {
	Verify(token string) (*service.SessionClaims, error)
}

// ClaimsFrom returns the session claims attached by CurrentUser or
// RequireLogin, or nil for an anonymous request.
func ClaimsFrom(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(claimsKey).(*service.SessionClaims)
	return claims
}

// SetClaims attaches decoded session claims to the request context.
func SetClaims(c echo.Context, claims *service.SessionClaims) {
	c.Set(claimsKey, claims)
}

// CurrentUser decodes the session cookie on every request so pages can
// render a nullable "current user". An invalid token clears the cookie;
// an absent one leaves the request anonymous without touching cookies.
func CurrentUser(codec TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil {
				return next(c)
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				ClearSessionCookie(c)
				return next(c)
			}

			SetClaims(c, claims)
			return next(c)
		}
	}
}

// RequireLogin gates a route on a valid session cookie. Unauthenticated
// requests are flashed and redirected to the login page before any store
// access happens.
func RequireLogin(codec TokenVerifier, flashes *flash.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				flashes.Error(c, "You need to log in first to post.")
				return c.Redirect(http.StatusFound, "/login")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				ClearSessionCookie(c)
				flashes.Error(c, "Session expired! Please login again.")
				return c.Redirect(http.StatusFound, "/login")
			}

			SetClaims(c, claims)
			return next(c)
		}
	}
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
