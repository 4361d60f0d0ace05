package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// fail sends the standard {success, msg} error envelope
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]interface{}{
		"success": false,
		"msg":     msg,
	})
}

// serverError logs an unexpected failure and sends a generic 500.
// Internal detail never reaches the client.
func serverError(c echo.Context, op string, err error) error {
	c.Logger().Error(op+" error: ", err)
	return fail(c, http.StatusInternalServerError, "server error")
}
