package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StorageKind selects the blob storage backend at startup
type StorageKind string

const (
	StorageLocal StorageKind = "local"
	StorageFTP   StorageKind = "ftp"
)

// Config holds all environment-driven settings
type Config struct {
	Addr   string
	DBPath string

	Storage   StorageKind
	UploadDir string

	FTPAddr      string
	FTPUser      string
	FTPPassword  string
	FTPBasePath  string
	FTPPublicURL string

	SessionTTL   time.Duration
	AllowOrigins []string
}

// Load reads configuration from the environment with development defaults
func Load() (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("ALBUM_ADDR", ":3000"),
		DBPath:       getEnv("ALBUM_DB_PATH", "./album.db"),
		UploadDir:    getEnv("ALBUM_UPLOAD_DIR", "./images"),
		FTPAddr:      os.Getenv("ALBUM_FTP_ADDR"),
		FTPUser:      os.Getenv("ALBUM_FTP_USER"),
		FTPPassword:  os.Getenv("ALBUM_FTP_PASSWORD"),
		FTPBasePath:  getEnv("ALBUM_FTP_BASEPATH", "/"),
		FTPPublicURL: os.Getenv("ALBUM_FTP_PUBLIC_URL"),
		AllowOrigins: strings.Split(getEnv("ALBUM_ALLOW_ORIGINS", "http://localhost:8080"), ","),
	}

	switch kind := getEnv("ALBUM_STORAGE", string(StorageLocal)); StorageKind(kind) {
	case StorageLocal:
		cfg.Storage = StorageLocal
	case StorageFTP:
		if cfg.FTPAddr == "" {
			return nil, fmt.Errorf("ALBUM_FTP_ADDR is required for ftp storage")
		}
		cfg.Storage = StorageFTP
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}

	minutes, err := strconv.Atoi(getEnv("ALBUM_SESSION_TTL_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("invalid ALBUM_SESSION_TTL_MINUTES")
	}
	cfg.SessionTTL = time.Duration(minutes) * time.Minute

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
