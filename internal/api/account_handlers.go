package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"album-backend/internal/database"
	"album-backend/internal/models"
)

// registerHandler handles POST /users
func registerHandler(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	if _, err := authService.Register(req.Account, req.Password); err != nil {
		var ve *database.ValidationError
		switch {
		case errors.As(err, &ve):
			return fail(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, database.ErrDuplicateUsername):
			return fail(c, http.StatusBadRequest, "username already taken")
		default:
			return serverError(c, "register", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "",
	})
}
