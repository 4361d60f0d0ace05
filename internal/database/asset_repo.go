package database

import (
	"database/sql"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"album-backend/internal/models"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrMalformedID   = errors.New("malformed asset id")
)

const descriptionMaxLen = 200

// AssetRepo handles asset database operations
type AssetRepo struct{}

// NewAssetRepo creates a new asset repository
func NewAssetRepo() *AssetRepo {
	return &AssetRepo{}
}

// Create inserts a metadata record for a stored blob
func (r *AssetRepo) Create(owner, description, name string) (*models.Asset, error) {
	if owner == "" {
		return nil, &ValidationError{Field: "owner", Reason: "owner is required"}
	}
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "file name is required"}
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		ID:          uuid.NewString(),
		Owner:       owner,
		Description: description,
		Name:        name,
		CreatedAt:   time.Now(),
	}

	_, err := DB.Exec(`
		INSERT INTO assets (id, owner, description, name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, asset.ID, asset.Owner, asset.Description, asset.Name, asset.CreatedAt)
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// GetByID retrieves an asset by ID
func (r *AssetRepo) GetByID(id string) (*models.Asset, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}

	asset := &models.Asset{}

	err := DB.QueryRow(`
		SELECT id, owner, description, name, created_at
		FROM assets WHERE id = ?
	`, id).Scan(&asset.ID, &asset.Owner, &asset.Description, &asset.Name, &asset.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// ListByOwner retrieves all assets owned by the given user in one query
func (r *AssetRepo) ListByOwner(owner string) ([]*models.Asset, error) {
	rows, err := DB.Query(`
		SELECT id, owner, description, name, created_at
		FROM assets WHERE owner = ? ORDER BY created_at
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []*models.Asset{}
	for rows.Next() {
		asset := &models.Asset{}
		err := rows.Scan(&asset.ID, &asset.Owner, &asset.Description, &asset.Name, &asset.CreatedAt)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

// Update patches an asset's description and returns the post-update record.
// Owner and stored name are immutable.
func (r *AssetRepo) Update(id string, description *string) (*models.Asset, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMalformedID
	}

	if description != nil {
		if err := validateDescription(*description); err != nil {
			return nil, err
		}

		result, err := DB.Exec("UPDATE assets SET description = ? WHERE id = ?", *description, id)
		if err != nil {
			return nil, err
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, ErrAssetNotFound
		}
	}

	return r.GetByID(id)
}

// Delete removes an asset and returns the deleted record
func (r *AssetRepo) Delete(id string) (*models.Asset, error) {
	asset, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := DB.Exec("DELETE FROM assets WHERE id = ?", id); err != nil {
		return nil, err
	}

	return asset, nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > descriptionMaxLen {
		return &ValidationError{Field: "description", Reason: "description must be at most 200 characters"}
	}
	return nil
}
