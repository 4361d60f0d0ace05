package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"album-backend/internal/api"
	"album-backend/internal/auth"
	"album-backend/internal/config"
	"album-backend/internal/database"
	"album-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	log.Printf("Initializing database at %s", cfg.DBPath)
	if err := database.Open(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if n, err := database.NewAccountRepo().Count(); err != nil {
		log.Fatalf("Failed to read account table: %v", err)
	} else {
		log.Printf("Database ready, %d registered accounts", n)
	}

	// Pick the blob storage backend once at startup
	backend, err := newStorageBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage backend: %v", err)
	}
	log.Printf("Using %s blob storage", cfg.Storage)

	// Initialize auth service
	authSvc := auth.NewService(cfg.SessionTTL)

	go sweepExpiredSessions()

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	api.RegisterRoutes(e, authSvc, backend)

	log.Printf("Starting album backend on %s", cfg.Addr)
	e.Logger.Fatal(e.Start(cfg.Addr))
}

func newStorageBackend(cfg *config.Config) (storage.Backend, error) {
	if cfg.Storage == config.StorageFTP {
		return storage.NewFTP(storage.FTPConfig{
			Addr:      cfg.FTPAddr,
			User:      cfg.FTPUser,
			Password:  cfg.FTPPassword,
			BasePath:  cfg.FTPBasePath,
			PublicURL: cfg.FTPPublicURL,
		}), nil
	}
	return storage.NewLocal(cfg.UploadDir)
}

// sweepExpiredSessions periodically clears expired session rows so the
// table does not grow without bound between logins.
func sweepExpiredSessions() {
	sessions := database.NewSessionRepo()
	for range time.Tick(10 * time.Minute) {
		n, err := sessions.DeleteExpired()
		if err != nil {
			log.Printf("Session sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("Removed %d expired sessions", n)
		}
	}
}
