package auth

import (
	"errors"
	"time"

	"album-backend/internal/database"
	"album-backend/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles registration and session authentication
type Service struct {
	accounts *database.AccountRepo
	sessions *database.SessionRepo
	ttl      time.Duration
}

// NewService creates a new auth service with the given sliding session window
func NewService(ttl time.Duration) *Service {
	return &Service{
		accounts: database.NewAccountRepo(),
		sessions: database.NewSessionRepo(),
		ttl:      ttl,
	}
}

// Register creates a new account with a hashed password
func (s *Service) Register(username, password string) (*models.Account, error) {
	if password == "" {
		return nil, &database.ValidationError{Field: "password", Reason: "password is required"}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.accounts.Create(username, hash)
}

// Login verifies credentials and creates a session. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(username, password string) (string, time.Time, error) {
	account, err := s.accounts.GetByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrAccountNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if !VerifyPassword(password, account.PasswordHash) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, session, err := s.sessions.Create(account.Username, s.ttl)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, session.ExpiresAt, nil
}

// Logout destroys a session
func (s *Service) Logout(token string) error {
	return s.sessions.DeleteByToken(token)
}

// Validate resolves a token to its username and rolls the expiry forward,
// so any authenticated request resets the idle window. The new expiry is
// returned so the transport can refresh the client's cookie with it.
func (s *Service) Validate(token string) (string, time.Time, error) {
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := time.Now().Add(s.ttl)
	if err := s.sessions.ExtendByToken(token, s.ttl); err != nil && !errors.Is(err, database.ErrSessionNotFound) {
		return "", time.Time{}, err
	}

	return session.Username, expiresAt, nil
}
