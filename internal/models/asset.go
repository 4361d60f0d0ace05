package models

import "time"

// Asset represents an uploaded photo's metadata record.
// Owner is fixed at upload time and decides who may patch or delete it.
type Asset struct {
	ID          string    `json:"id"`
	Owner       string    `json:"user"`
	Description string    `json:"description,omitempty"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateAssetRequest represents the request body for patching an asset.
// A nil Description leaves the caption unchanged.
type UpdateAssetRequest struct {
	Description *string `json:"description"`
}
