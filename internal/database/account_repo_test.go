package database

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountCreateAndGet(t *testing.T) {
	openTestDB(t)
	repo := NewAccountRepo()

	created, err := repo.Create("alice", "hash-of-secret1")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "hash-of-secret1", created.PasswordHash)

	got, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountUsernameLength(t *testing.T) {
	openTestDB(t)
	repo := NewAccountRepo()

	tests := []struct {
		name     string
		username string
		ok       bool
	}{
		{"too short", "abc", false},
		{"minimum", "abcd", true},
		{"maximum", strings.Repeat("a", 20), true},
		{"too long", strings.Repeat("a", 21), false},
		{"empty", "", false},
		{"runes not bytes", "相簿測試", true}, // 4 runes, 12 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(tt.username, "somehash")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "username", ve.Field)
			}
		})
	}
}

func TestAccountRequiresPasswordHash(t *testing.T) {
	openTestDB(t)
	repo := NewAccountRepo()

	_, err := repo.Create("alice", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func TestAccountDuplicateUsername(t *testing.T) {
	openTestDB(t)
	repo := NewAccountRepo()

	_, err := repo.Create("alice", "hash1")
	require.NoError(t, err)

	_, err = repo.Create("alice", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// Uniqueness is exact-match case-sensitive
	_, err = repo.Create("Alice", "hash3")
	assert.NoError(t, err)
}

func TestAccountDuplicateConstraintMapping(t *testing.T) {
	openTestDB(t)
	repo := NewAccountRepo()

	_, err := repo.Create("alice", "hash1")
	require.NoError(t, err)

	// A writer racing past the existence check lands on the UNIQUE
	// constraint; that driver error must map to the duplicate sentinel.
	_, err = DB.Exec("INSERT INTO accounts (username, password_hash) VALUES (?, ?)", "alice", "hash2")
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
}

func TestAccountCount(t *testing.T) {
	openTestDB(t)
	repo := NewAccountRepo()

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.Create("alice", "hash1")
	require.NoError(t, err)
	_, err = repo.Create("bobby", "hash2")
	require.NoError(t, err)

	n, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
