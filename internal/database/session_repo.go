package database

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"album-backend/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionRepo handles session database operations
type SessionRepo struct{}

// NewSessionRepo creates a new session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

// Create creates a new session and returns the plain token
func (r *SessionRepo) Create(username string, ttl time.Duration) (string, *models.Session, error) {
	// Generate random token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, err
	}
	token := hex.EncodeToString(tokenBytes)

	// Hash the token for storage
	tokenHash := hashToken(token)

	session := &models.Session{
		Username:  username,
		TokenHash: tokenHash,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	result, err := DB.Exec(`
		INSERT INTO sessions (username, token_hash, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.Username, session.TokenHash, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return "", nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return "", nil, err
	}
	session.ID = id

	return token, session, nil
}

// GetByToken retrieves a session by its plain token.
// An expired row is deleted on read and reported as ErrSessionExpired.
func (r *SessionRepo) GetByToken(token string) (*models.Session, error) {
	session := &models.Session{}

	err := DB.QueryRow(`
		SELECT id, username, token_hash, created_at, expires_at
		FROM sessions WHERE token_hash = ?
	`, hashToken(token)).Scan(
		&session.ID, &session.Username, &session.TokenHash,
		&session.CreatedAt, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		// Clean up expired session
		DB.Exec("DELETE FROM sessions WHERE id = ?", session.ID)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// ExtendByToken rolls the session expiry forward by ttl from now
func (r *SessionRepo) ExtendByToken(token string, ttl time.Duration) error {
	result, err := DB.Exec(
		"UPDATE sessions SET expires_at = ? WHERE token_hash = ?",
		time.Now().Add(ttl), hashToken(token),
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteByToken deletes a session by its plain token
func (r *SessionRepo) DeleteByToken(token string) error {
	result, err := DB.Exec("DELETE FROM sessions WHERE token_hash = ?", hashToken(token))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes all expired sessions
func (r *SessionRepo) DeleteExpired() (int64, error) {
	result, err := DB.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// hashToken creates a SHA-256 hash of the token
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
