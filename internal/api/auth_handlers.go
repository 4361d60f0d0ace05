package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"album-backend/internal/auth"
	"album-backend/internal/database"
	"album-backend/internal/models"
)

// loginHandler handles POST /login
func loginHandler(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	token, expiresAt, err := authService.Login(req.Account, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fail(c, http.StatusNotFound, "wrong account or password")
		}
		return serverError(c, "login", err)
	}

	// Set token in cookie (HttpOnly for security)
	auth.SetSessionCookie(c, token, expiresAt)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "",
	})
}

// logoutHandler handles DELETE /logout
func logoutHandler(c echo.Context) error {
	token := auth.TokenFromRequest(c)

	if err := authService.Logout(token); err != nil && !errors.Is(err, database.ErrSessionNotFound) {
		return serverError(c, "logout", err)
	}

	// Clear cookie
	auth.ClearSessionCookie(c)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "",
	})
}

// heartbeatHandler handles GET /heartbeat. The client polls it to learn
// whether its session is still alive without changing any state.
func heartbeatHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, auth.UsernameFromContext(c) != "")
}
