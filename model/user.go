package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID          uint64     `db:"id" json:"id"`
	Email       string     `db:"email" json:"email"`
	DisplayName string     `db:"display_name" json:"display_name"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MagicLinkResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyMagicLinkRequest struct {
	Token string `json:"token" validate:"required"`
}

type LoginResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Token       string `json:"token"`
}

type DevMagicLinkResponse struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}
