package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"album-backend/internal/auth"
	"album-backend/internal/database"
	"album-backend/internal/storage"
)

var (
	authService *auth.Service
	assetRepo   *database.AssetRepo
	blobStore   storage.Backend
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authSvc *auth.Service, store storage.Backend) {
	authService = authSvc
	assetRepo = database.NewAssetRepo()
	blobStore = store

	// Account and session routes
	e.POST("/users", registerHandler, requireContentType(echo.MIMEApplicationJSON))
	e.POST("/login", loginHandler, requireContentType(echo.MIMEApplicationJSON))
	e.DELETE("/logout", logoutHandler, auth.RequireAuth(authSvc))
	e.GET("/heartbeat", heartbeatHandler, auth.OptionalAuth(authSvc))

	// Asset routes. Content type is checked before the session so a
	// malformed request fails the same way logged in or not. The body limit
	// caps the transfer before the multipart form is parsed; it leaves
	// headroom over the per-file maximum for the form framing, so requests
	// just past the file limit still reach the handler's own size check.
	e.POST("/file", uploadHandler, middleware.BodyLimit(uploadBodyLimit), requireContentType(echo.MIMEMultipartForm), auth.RequireAuth(authSvc))
	e.GET("/file/:name", serveFileHandler, auth.RequireAuth(authSvc))
	e.PATCH("/file/:id", updateAssetHandler, requireContentType(echo.MIMEApplicationJSON), auth.RequireAuth(authSvc))
	e.DELETE("/file/:id", deleteAssetHandler, auth.RequireAuth(authSvc))

	e.GET("/album/:user", albumHandler, auth.RequireAuth(authSvc))
}

// requireContentType rejects requests whose Content-Type does not match the
// route's expected encoding
func requireContentType(mime string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if !strings.Contains(contentType, mime) {
				return fail(c, http.StatusBadRequest, "unexpected content type")
			}
			return next(c)
		}
	}
}
