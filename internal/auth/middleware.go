package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session_token"

// ContextKeyUsername is the echo context key for the authenticated username
const ContextKeyUsername = "username"

// SetSessionCookie issues or refreshes the session cookie. The expiry slides
// forward on every authenticated request, so the cookie has to be re-sent or
// the browser drops the token while the server-side session is still live.
// SameSite=None (Lax over plain HTTP, where None is rejected) keeps the
// cookie usable from the cross-origin client the CORS config allows.
func SetSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	secure := c.Request().TLS != nil
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	})
}

// ClearSessionCookie expires the session cookie on the client
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// RequireAuth middleware rejects requests without a valid, unexpired session
func RequireAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"msg":     "not logged in",
				})
			}

			username, expiresAt, err := authSvc.Validate(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"msg":     "not logged in",
				})
			}

			c.Set(ContextKeyUsername, username)
			SetSessionCookie(c, token, expiresAt)

			return next(c)
		}
	}
}

// OptionalAuth middleware resolves the session if present but never rejects
func OptionalAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := TokenFromRequest(c); token != "" {
				if username, expiresAt, err := authSvc.Validate(token); err == nil {
					c.Set(ContextKeyUsername, username)
					SetSessionCookie(c, token, expiresAt)
				}
			}
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the request
func TokenFromRequest(c echo.Context) string {
	// Try cookie first
	cookie, err := c.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	// Try Authorization header (Bearer token)
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// UsernameFromContext retrieves the authenticated username from the context.
// Returns an empty string if the request is unauthenticated.
func UsernameFromContext(c echo.Context) string {
	username, ok := c.Get(ContextKeyUsername).(string)
	if !ok {
		return ""
	}
	return username
}
