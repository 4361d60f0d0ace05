package database

import (
	"database/sql"
	"errors"
	"unicode/utf8"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"album-backend/internal/models"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

const (
	usernameMinLen = 4
	usernameMaxLen = 20
)

// AccountRepo handles account database operations
type AccountRepo struct{}

// NewAccountRepo creates a new account repository
func NewAccountRepo() *AccountRepo {
	return &AccountRepo{}
}

// Create creates a new account with an already-hashed password.
// Username length is measured in runes, not bytes.
func (r *AccountRepo) Create(username, passwordHash string) (*models.Account, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "username is required"}
	}
	if utf8.RuneCountInString(username) < usernameMinLen {
		return nil, &ValidationError{Field: "username", Reason: "username must be at least 4 characters"}
	}
	if utf8.RuneCountInString(username) > usernameMaxLen {
		return nil, &ValidationError{Field: "username", Reason: "username must be at most 20 characters"}
	}
	if passwordHash == "" {
		return nil, &ValidationError{Field: "password", Reason: "password is required"}
	}

	exists, err := r.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	result, err := DB.Exec(`
		INSERT INTO accounts (username, password_hash)
		VALUES (?, ?)
	`, username, passwordHash)
	if err != nil {
		// A concurrent insert can slip past the existence check; the UNIQUE
		// constraint is the authority either way.
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// GetByID retrieves an account by ID
func (r *AccountRepo) GetByID(id int64) (*models.Account, error) {
	account := &models.Account{}

	err := DB.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM accounts WHERE id = ?
	`, id).Scan(&account.ID, &account.Username, &account.PasswordHash, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetByUsername retrieves an account by exact username match
func (r *AccountRepo) GetByUsername(username string) (*models.Account, error) {
	account := &models.Account{}

	err := DB.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM accounts WHERE username = ?
	`, username).Scan(&account.ID, &account.Username, &account.PasswordHash, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// ExistsByUsername checks if an account with the given username exists
func (r *AccountRepo) ExistsByUsername(username string) (bool, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM accounts WHERE username = ?", username).Scan(&count)
	return count > 0, err
}

// Count returns the total number of accounts
func (r *AccountRepo) Count() (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM accounts").Scan(&count)
	return count, err
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlitelib.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlitelib.SQLITE_CONSTRAINT
}
