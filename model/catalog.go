package model

import "time"

type Brand struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Line struct {
	ID      uint64 `db:"id" json:"id"`
	BrandID uint64 `db:"brand_id" json:"brand_id"`
	Name    string `db:"name" json:"name"`
}

type Cigar struct {
	ID                 uint64    `db:"id" json:"id"`
	LineID             uint64    `db:"line_id" json:"line_id"`
	Name               string    `db:"name" json:"name"`
	Vitola             string    `db:"vitola" json:"vitola"`
	MsrpCents          *int64    `db:"msrp_cents" json:"msrp_cents,omitempty"`
	TypicalStreetCents *int64    `db:"typical_street_cents" json:"typical_street_cents,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// CigarDetail is a cigar with its line, brand and ordered image URLs.
type CigarDetail struct {
	Cigar
	LineName  string   `db:"line_name" json:"line_name"`
	BrandID   uint64   `db:"brand_id" json:"brand_id"`
	BrandName string   `db:"brand_name" json:"brand_name"`
	ImageURLs []string `db:"-" json:"image_urls"`
}

type ResolveCigarRequest struct {
	BrandName          string   `json:"brand_name" validate:"required"`
	LineName           string   `json:"line_name" validate:"required"`
	CigarName          string   `json:"cigar_name" validate:"required"`
	Vitola             string   `json:"vitola"`
	MsrpCents          *int64   `json:"msrp_cents" validate:"omitempty,gte=0"`
	TypicalStreetCents *int64   `json:"typical_street_cents" validate:"omitempty,gte=0"`
	ImageURLs          []string `json:"image_urls" validate:"omitempty,dive,url"`
	AddToHumidor       bool     `json:"add_to_humidor"`
	Quantity           int64    `json:"quantity" validate:"gte=0"`
	PurchasePriceCents *int64   `json:"purchase_price_cents" validate:"omitempty,gte=0"`
}

type ResolveCigarResponse struct {
	Cigar       *CigarDetail `json:"cigar"`
	Created     bool         `json:"created"`
	HumidorItem *HumidorItem `json:"humidor_item,omitempty"`
}

type CigarSearchResponse struct {
	Items      []CigarDetail `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}
