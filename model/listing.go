package model

import (
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
)

type Listing struct {
	ID            uint64                 `db:"id" json:"id"`
	UserID        uint64                 `db:"user_id" json:"user_id"`
	Type          constant.ListingType   `db:"type" json:"type"`
	Status        constant.ListingStatus `db:"status" json:"status"`
	Title         string                 `db:"title" json:"title"`
	Description   string                 `db:"description" json:"description"`
	Qty           int64                  `db:"qty" json:"qty"`
	PriceCents    *int64                 `db:"price_cents" json:"price_cents,omitempty"`
	HumidorItemID *uint64                `db:"humidor_item_id" json:"humidor_item_id,omitempty"`
	CigarID       *uint64                `db:"cigar_id" json:"cigar_id,omitempty"`
	ViewCount     int64                  `db:"view_count" json:"view_count"`
	PublishedAt   *time.Time             `db:"published_at" json:"published_at,omitempty"`
	SoldAt        *time.Time             `db:"sold_at" json:"sold_at,omitempty"`
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateListingRequest struct {
	Type          constant.ListingType   `json:"type" validate:"required,oneof=WTS WTB WTT"`
	Status        constant.ListingStatus `json:"status" validate:"required,oneof=DRAFT ACTIVE"`
	Title         string                 `json:"title" validate:"required"`
	Description   string                 `json:"description" validate:"required"`
	Qty           int64                  `json:"qty" validate:"gt=0"`
	PriceCents    *int64                 `json:"price_cents"`
	HumidorItemID *uint64                `json:"humidor_item_id"`
	CigarID       *uint64                `json:"cigar_id"`
}

// UpdateListingRequest is a partial update; nil fields are left unchanged.
type UpdateListingRequest struct {
	Title       *string                 `json:"title" validate:"omitempty,min=1"`
	Description *string                 `json:"description" validate:"omitempty,min=1"`
	PriceCents  *int64                  `json:"price_cents"`
	Qty         *int64                  `json:"qty" validate:"omitempty,gt=0"`
	Status      *constant.ListingStatus `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE PENDING SOLD WITHDRAWN FROZEN"`
}

type ListingFilter struct {
	Type    constant.ListingType
	Status  constant.ListingStatus
	CigarID uint64
	UserID  uint64
	Page    int
	PerPage int
}

type ListingListResponse struct {
	Items      []Listing `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
