package models

import "time"

// Account represents a registered album user
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}
