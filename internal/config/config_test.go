package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "./album.db", cfg.DBPath)
	assert.Equal(t, StorageLocal, cfg.Storage)
	assert.Equal(t, "./images", cfg.UploadDir)
	assert.Equal(t, "/", cfg.FTPBasePath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.AllowOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ALBUM_ADDR", ":9000")
	t.Setenv("ALBUM_DB_PATH", "/var/lib/album/album.db")
	t.Setenv("ALBUM_SESSION_TTL_MINUTES", "5")
	t.Setenv("ALBUM_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/var/lib/album/album.db", cfg.DBPath)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
}

func TestLoadFTPStorage(t *testing.T) {
	t.Setenv("ALBUM_STORAGE", "ftp")
	t.Setenv("ALBUM_FTP_ADDR", "ftp.example.com:21")
	t.Setenv("ALBUM_FTP_USER", "album")
	t.Setenv("ALBUM_FTP_PUBLIC_URL", "http://ftp.example.com/album")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageFTP, cfg.Storage)
	assert.Equal(t, "ftp.example.com:21", cfg.FTPAddr)
	assert.Equal(t, "album", cfg.FTPUser)
	assert.Equal(t, "http://ftp.example.com/album", cfg.FTPPublicURL)
}

func TestLoadFTPStorageRequiresAddr(t *testing.T) {
	t.Setenv("ALBUM_STORAGE", "ftp")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadUnknownStorage(t *testing.T) {
	t.Setenv("ALBUM_STORAGE", "s3")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidSessionTTL(t *testing.T) {
	t.Setenv("ALBUM_SESSION_TTL_MINUTES", "soon")

	_, err := Load()
	assert.Error(t, err)
}
